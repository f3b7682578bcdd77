// Package cli wires the wdt command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/j-veylop/workload-dashboard-tui/internal/app"
	"github.com/j-veylop/workload-dashboard-tui/internal/config"
	"github.com/j-veylop/workload-dashboard-tui/internal/logger"
	"github.com/j-veylop/workload-dashboard-tui/internal/services"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/tabs/charts"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/tabs/daily"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/tabs/info"
	"github.com/j-veylop/workload-dashboard-tui/internal/ui/tabs/overview"
	"github.com/j-veylop/workload-dashboard-tui/internal/version"
)

// NewRootCmd builds the wdt command. Without a subcommand it runs the dashboard.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   version.Name,
		Short: "Workload dashboard for AI content, model and photo activity",
		Long: `wdt reads the ai_response, model_create and photo_upload tables and shows
daily, weekly and monthly summaries, custom range tables and charts.

Configuration comes from .env files and environment variables such as
DATABASE_DRIVER, DATABASE_PATH, DATABASE_DSN, DASHBOARD_TIMEZONE and COST_PER_CALL.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.AddCommand(
		newSummaryCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)

	root.Version = version.GetVersion()
	root.SetVersionTemplate(fmt.Sprintf("%s %s\n", version.Name, version.GetVersion()))

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and points the logger at the configured file.
func setup() (*config.Config, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	closer, err := logger.Init(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closer, nil
}

func runTUI() error {
	cfg, logCloser, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	logger.Info("Starting dashboard", "version", version.GetVersion(), "source", cfg.Source())

	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			logger.Warn("Error closing services", "error", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	state := model.GetState()
	model.SetTabs([]app.Tab{
		overview.New(state),
		daily.New(state, svcManager.DefaultRange),
		charts.New(state),
		info.New(state, cfg),
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
