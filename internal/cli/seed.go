package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/j-veylop/workload-dashboard-tui/internal/db"
	"github.com/j-veylop/workload-dashboard-tui/internal/logger"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/components"
)

type seedOptions struct {
	path string
	days int
	seed uint64
}

// seedData holds generated demo rows.
type seedData struct {
	content []models.ContentResponse
	models  []models.ModelCreation
	photos  []models.PhotoUpload
}

func newSeedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill a local SQLite database with demo rows",
		Long: `Create the ai_response, model_create and photo_upload tables in a SQLite
file when missing and insert demo rows for the trailing --days days.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "SQLite file to fill (default: DATABASE_PATH)")
	cmd.Flags().IntVar(&opts.days, "days", 60, "Number of days to generate, ending today")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Random seed for reproducible data")

	return cmd
}

func runSeed(cmd *cobra.Command, opts seedOptions) error {
	if opts.days < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", opts.days)
	}

	cfg, logCloser, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	path := opts.path
	if path == "" {
		if cfg.DatabaseDriver != db.DriverSQLite {
			return fmt.Errorf("seed only writes SQLite files, pass --path")
		}
		path = cfg.DatabasePath
	}

	ctx := cmd.Context()
	store, err := db.Open(ctx, db.Options{
		Driver:    db.DriverSQLite,
		DSN:       path,
		Location:  cfg.Location,
		Bootstrap: true,
	})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	now := time.Now().In(cfg.Location)
	data := generateSeed(now, opts.days, newSeedRand(opts.seed))

	if err := insertSeed(ctx, store, data); err != nil {
		return err
	}

	logger.Info("Seeded database", "path", path, "days", opts.days,
		"content", len(data.content), "models", len(data.models), "photos", len(data.photos))

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s responses, %s models and %s uploads into %s\n",
		components.FormatCount(int64(len(data.content))),
		components.FormatCount(int64(len(data.models))),
		components.FormatCount(int64(len(data.photos))),
		path,
	)
	return err
}

func newSeedRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// generateSeed builds demo rows for the days days ending on now's date.
// Timestamps keep now's location and fall within working hours.
func generateSeed(now time.Time, days int, rng *rand.Rand) seedData {
	var data seedData
	loc := now.Location()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		at := func() time.Time {
			return day.Add(9*time.Hour + time.Duration(rng.IntN(9*60))*time.Minute)
		}
		stamp := day.Format("20060102")

		for n := range rng.IntN(20) + 5 {
			data.content = append(data.content, models.ContentResponse{
				JobID:  fmt.Sprintf("job-%s-%03d", stamp, n),
				Tokens: rng.Int64N(3800) + 200,
				Date:   at(),
			})
		}

		for n := range rng.IntN(8) + 1 {
			standard := 0
			if rng.IntN(10) < 7 {
				standard = 1
			}
			data.models = append(data.models, models.ModelCreation{
				ModelID:  fmt.Sprintf("model-%s-%03d", stamp, n),
				Date:     at(),
				Standard: &standard,
			})
		}

		for n := range rng.IntN(6) + 1 {
			data.photos = append(data.photos, models.PhotoUpload{
				SGNo:       fmt.Sprintf("SG%s%03d", stamp, n),
				Date:       at(),
				ImageCount: rng.Int64N(12) + 1,
				WebOpen:    rng.IntN(2),
			})
		}
	}
	return data
}

func insertSeed(ctx context.Context, store *db.DB, data seedData) error {
	for _, r := range data.content {
		if err := store.InsertContentResponse(ctx, r); err != nil {
			return err
		}
	}
	for _, m := range data.models {
		if err := store.InsertModelCreation(ctx, m); err != nil {
			return err
		}
	}
	for _, p := range data.photos {
		if err := store.InsertPhotoUpload(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
