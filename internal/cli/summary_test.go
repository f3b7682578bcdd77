package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureRows() seedData {
	return seedData{
		content: []models.ContentResponse{
			{JobID: "a", Tokens: 100, Date: at("2024-01-01 10:00")},
			{JobID: "b", Tokens: 50, Date: at("2024-01-01 11:30")},
			{JobID: "c", Tokens: 200, Date: at("2024-01-02 09:15")},
		},
		models: []models.ModelCreation{
			{ModelID: "m1", Date: at("2024-01-01 12:00")},
			{ModelID: "m2", Date: at("2024-01-02 12:00"), Standard: flag(1)},
		},
		photos: []models.PhotoUpload{
			{SGNo: "SG1", Date: at("2024-01-02 14:00"), ImageCount: 7, WebOpen: 1},
		},
	}
}

// field returns the value printed after label in a summary block.
func field(t *testing.T, out, label string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		rest, ok := strings.CutPrefix(line, "  "+label+":")
		if ok {
			return strings.TrimSpace(rest)
		}
	}
	t.Fatalf("label %q not found in:\n%s", label, out)
	return ""
}

func TestSummaryCmd_Range(t *testing.T) {
	path := testEnv(t)
	writeRows(t, path, fixtureRows())

	out, err := execute(t, "summary", "--from", "2024-01-01", "--to", "2024-01-02")
	require.NoError(t, err)

	assert.Contains(t, out, "Range Summary (2024-01-01 ~ 2024-01-02)")
	assert.Equal(t, "3", field(t, out, "Content created"))
	assert.Equal(t, "350", field(t, out, "Total tokens"))
	assert.Equal(t, "$0.75", field(t, out, "Cost"))
	assert.Equal(t, "2 (standardized 1, non-standardized 1)", field(t, out, "Models created"))
	assert.Equal(t, "1", field(t, out, "SG NO count"))
	assert.Equal(t, "7", field(t, out, "Uploaded images"))
	assert.Equal(t, "1 (100.0%)", field(t, out, "Web open"))
	assert.NotContains(t, out, "Total Tokens", "tables need --daily")
}

func TestSummaryCmd_Daily(t *testing.T) {
	path := testEnv(t)
	writeRows(t, path, fixtureRows())

	out, err := execute(t, "summary", "--from", "2024-01-01", "--to", "2024-01-01", "--daily")
	require.NoError(t, err)

	assert.Equal(t, "2", field(t, out, "Content created"))
	for _, want := range []string{"Content Created", "Total Tokens", "API Calls", "Cost ($)", "Non-Standardized"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "2024-01-01")
	assert.NotContains(t, out, "2024-01-02")

	photos := out[strings.Index(out, "Photos Uploaded"):]
	assert.Contains(t, photos, "No data in range")
}

func TestSummaryCmd_EmptyRange(t *testing.T) {
	path := testEnv(t)
	writeRows(t, path, fixtureRows())

	out, err := execute(t, "summary", "--from", "2020-01-01", "--to", "2020-01-31")
	require.NoError(t, err)

	assert.Equal(t, "0", field(t, out, "Content created"))
	assert.Equal(t, "$0.00", field(t, out, "Cost"))
	assert.Equal(t, "0 (-)", field(t, out, "Web open"))
}

func TestSummaryCmd_Periods(t *testing.T) {
	path := testEnv(t)
	now := time.Now().UTC()
	writeRows(t, path, seedData{
		content: []models.ContentResponse{
			{JobID: "today", Tokens: 10, Date: now},
			{JobID: "last-week", Tokens: 20, Date: now.AddDate(0, 0, -5)},
			{JobID: "last-month", Tokens: 40, Date: now.AddDate(0, 0, -20)},
		},
	})

	out, err := execute(t, "summary")
	require.NoError(t, err)

	blocks := strings.Split(out, "\n\n")
	require.GreaterOrEqual(t, len(blocks), 3)
	assert.True(t, strings.HasPrefix(blocks[0], "Daily Summary"))
	assert.Equal(t, "1", field(t, blocks[0], "Content created"))
	assert.True(t, strings.HasPrefix(blocks[1], "Weekly Summary"))
	assert.Equal(t, "2", field(t, blocks[1], "Content created"))
	assert.True(t, strings.HasPrefix(blocks[2], "Monthly Summary"))
	assert.Equal(t, "3", field(t, blocks[2], "Content created"))
	assert.Equal(t, "70", field(t, blocks[2], "Total tokens"))

	out, err = execute(t, "summary", "--period", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "Weekly Summary")
	assert.NotContains(t, out, "Daily Summary")
	assert.NotContains(t, out, "Monthly Summary")
}

func TestSummaryCmd_Errors(t *testing.T) {
	path := testEnv(t)
	writeRows(t, path, fixtureRows())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"BadPeriod", []string{"--period", "yearly"}, "invalid --period"},
		{"BadFrom", []string{"--from", "01/02/2024"}, "--from"},
		{"BadTo", []string{"--to", "2024-02-30"}, "--to"},
		{"Inverted", []string{"--from", "2024-01-03", "--to", "2024-01-01"}, "is after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"summary"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSummaryCmd_MissingDatabase(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "summary")
	require.Error(t, err)
}

func TestParsePeriods(t *testing.T) {
	t.Parallel()

	all, err := parsePeriods("ALL")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	one, err := parsePeriods("monthly")
	require.NoError(t, err)
	assert.Equal(t, map[models.Period]bool{models.PeriodMonthly: true}, one)

	_, err = parsePeriods("hourly")
	require.Error(t, err)
}

func TestResolveRange(t *testing.T) {
	t.Parallel()

	def := models.NewDateRange(at("2023-01-02 00:00"), at("2024-01-02 00:00"))

	r, err := resolveRange("", "", def)
	require.NoError(t, err)
	assert.Equal(t, def, r)

	r, err = resolveRange("2023-12-01", "", def)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-01 ~ 2024-01-02", r.String())

	r, err = resolveRange("", "2023-06-30", def)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-02 ~ 2023-06-30", r.String())

	_, err = resolveRange("2024-02-01", "", def)
	require.Error(t, err)
}
