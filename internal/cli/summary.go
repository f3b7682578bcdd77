package cli

import (
	"fmt"
	"io"
	"strings"

	bubbletable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/services"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/components"
)

type summaryOptions struct {
	period string
	from   string
	to     string
	daily  bool
}

func newSummaryCmd() *cobra.Command {
	var opts summaryOptions

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print period or custom range summaries",
		Long: `Print the daily, weekly and monthly trailing summaries, or the totals of a
custom range when --from or --to is given. Dates use YYYY-MM-DD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.period, "period", "p", "all", "Period to print: daily, weekly, monthly or all")
	cmd.Flags().StringVar(&opts.from, "from", "", "Range start date (default: configured default range)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Range end date (default: today)")
	cmd.Flags().BoolVar(&opts.daily, "daily", false, "Also print per-day tables for the range")

	return cmd
}

func runSummary(cmd *cobra.Command, opts summaryOptions) error {
	periods, err := parsePeriods(opts.period)
	if err != nil {
		return err
	}

	cfg, logCloser, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	// One-shot reads have nothing to refresh.
	cfg.WatchDatabase = false

	mgr, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() { _ = mgr.Close() }()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if opts.from == "" && opts.to == "" && !opts.daily {
		summaries, err := mgr.PeriodSummaries(ctx)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			if !periods[s.Period] {
				continue
			}
			printSummary(out, s.Period.String()+" Summary", s.RangeSummary)
			fmt.Fprintln(out)
		}
		return nil
	}

	r, err := resolveRange(opts.from, opts.to, mgr.DefaultRange())
	if err != nil {
		return err
	}
	summary, err := mgr.RangeReport(ctx, r)
	if err != nil {
		return err
	}

	printSummary(out, "Range Summary", summary)
	if opts.daily {
		fmt.Fprintln(out)
		printDaily(out, summary)
	}
	return nil
}

// parsePeriods returns the set of periods selected by flag.
func parsePeriods(flag string) (map[models.Period]bool, error) {
	flag = strings.ToLower(strings.TrimSpace(flag))
	selected := make(map[models.Period]bool, len(models.Periods))
	if flag == "" || flag == "all" {
		for _, p := range models.Periods {
			selected[p] = true
		}
		return selected, nil
	}
	p, ok := models.ParsePeriod(flag)
	if !ok {
		return nil, fmt.Errorf("invalid --period %q (want daily, weekly, monthly or all)", flag)
	}
	selected[p] = true
	return selected, nil
}

// resolveRange fills missing bounds from def and validates the result.
func resolveRange(from, to string, def models.DateRange) (models.DateRange, error) {
	r := def
	if from != "" {
		start, err := models.ParseDate(from)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("--from: %w", err)
		}
		r.Start = start
	}
	if to != "" {
		end, err := models.ParseDate(to)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("--to: %w", err)
		}
		r.End = end
	}
	if !r.Valid() {
		return models.DateRange{}, fmt.Errorf("--from %s is after --to %s",
			r.Start.Format(models.DateLayout), r.End.Format(models.DateLayout))
	}
	return r, nil
}

func printSummary(w io.Writer, title string, s models.RangeSummary) {
	fmt.Fprintf(w, "%s (%s)\n", title, s.Range)
	row := func(label, value string) {
		fmt.Fprintf(w, "  %-18s %s\n", label+":", value)
	}
	row("Content created", components.FormatCount(int64(s.Content.Count)))
	row("Total tokens", components.FormatCount(s.Content.Tokens))
	row("Cost", components.FormatCost(s.Content.Cost))
	row("Models created", fmt.Sprintf("%s (standardized %s, non-standardized %s)",
		components.FormatCount(int64(s.Models.Total)),
		components.FormatCount(int64(s.Models.Standardized)),
		components.FormatCount(int64(s.Models.NonStandardized)),
	))
	row("SG NO count", components.FormatCount(int64(s.Photos.SGNos)))
	row("Uploaded images", components.FormatCount(s.Photos.Images))
	row("Web open", fmt.Sprintf("%s (%s)",
		components.FormatCount(int64(s.Photos.WebOpen)),
		components.FormatPercent(int64(s.Photos.WebOpen), int64(s.Photos.SGNos)),
	))
}

func printDaily(w io.Writer, s models.RangeSummary) {
	sections := []struct {
		title    string
		headings []string
		rows     [][]string
	}{
		{"Content Created", components.ContentHeadings, plainRows(components.ContentRows(s.ContentDays))},
		{"Models Created", components.ModelHeadings, plainRows(components.ModelRows(s.ModelDays))},
		{"Photos Uploaded", components.PhotoHeadings, plainRows(components.PhotoRows(s.PhotoDays))},
	}

	for _, sec := range sections {
		fmt.Fprintln(w, sec.title)
		if len(sec.rows) == 0 {
			fmt.Fprintln(w, "  No data in range")
			fmt.Fprintln(w)
			continue
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(sec.headings...).
			Rows(sec.rows...)
		fmt.Fprintln(w, t.Render())
		fmt.Fprintln(w)
	}
}

func plainRows(rows []bubbletable.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
