package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cinemax-cli/booking"
	"cinemax-cli/config"
	"cinemax-cli/logging"
	"cinemax-cli/service"
	"cinemax-cli/tui"
)

const appName = "cinemax"

var (
	Version = "dev"
	Commit  = "none"
)

type rootOptions struct {
	configPath string
	seed       uint64
	occupancy  float64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "CineMax movie ticket booking in the terminal",
		Long:          `Browse the movie catalog, pick a showtime and book seats, all from the terminal.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to the config file (default is the user config dir)")
	root.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for the pre-booked seat layout (0 means random)")
	root.Flags().Float64Var(&opts.occupancy, "occupancy", booking.DefaultOccupancy, "probability that a seat starts out booked")

	root.AddCommand(newCatalogCmd(), newVersionCmd())
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Booking.Seed = opts.seed
	}
	if cmd.Flags().Changed("occupancy") {
		cfg.Booking.Occupancy = opts.occupancy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSession(cfg *config.Config, logger *zap.Logger) *booking.Session {
	var src booking.Source
	if cfg.Booking.Seed != 0 {
		src = booking.SeededSource(cfg.Booking.Seed)
	}
	return booking.NewSession(
		booking.WithGenerator(booking.NewGenerator(src, cfg.Booking.Occupancy)),
		booking.WithLogger(logger),
	)
}

func runTUI(cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	session := newSession(cfg, logger)
	defer session.Teardown()

	logger.Info("starting",
		zap.String("version", Version),
		zap.Float64("occupancy", cfg.Booking.Occupancy),
		zap.Uint64("seed", cfg.Booking.Seed),
	)

	program := tea.NewProgram(tui.New(tui.Options{
		Session:         session,
		Catalog:         service.NewCatalog(),
		Logger:          logger,
		ShowSeatNumbers: cfg.UI.ShowSeatNumbers,
	}), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}
	return nil
}

func versionString() string {
	if Commit != "none" && Commit != "" {
		return fmt.Sprintf("%s %s (%s)", appName, Version, Commit)
	}
	return fmt.Sprintf("%s %s", appName, Version)
}
