package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teamfinder/internal/config"
	"teamfinder/internal/logging"
	"teamfinder/internal/misslog"
	"teamfinder/internal/roster"
	"teamfinder/internal/source"
)

// app is the state shared by every subcommand, filled by the root
// pre-run hook.
type app struct {
	configPath string
	envPath    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "teamfinder",
		Short: "Find attack teams for a defense from a counter sheet",
		Long: `teamfinder reads a counter sheet of defense and attack teams and answers
which attack team beats a given defense, tolerating small typos in unit names.

Configuration comes from an optional YAML file (--config), a .env file and
environment variables, in increasing order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&a.envPath, "env", ".env", "dotenv file to load before reading the environment")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newConvertCmd(a),
		newFindCmd(a),
		newUnitsCmd(a),
		newInspectCmd(a),
		newMissesCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.envPath != "" {
		config.LoadEnv(a.envPath)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}

	logger, err := logging.New(level, cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// loadBook reads the configured counter sheet and logs what ingestion
// skipped.
func (a *app) loadBook() (*roster.Book, error) {
	src := a.cfg.Source

	var (
		book *roster.Book
		err  error
	)

	if src.Cleaned {
		book, err = source.LoadCleanedBook(src.Path)
	} else {
		book, err = source.LoadBook(src.Path, src.Sheet, a.cfg.Layout)
	}

	if err != nil {
		return nil, err
	}

	for _, d := range book.Diagnostics.Warnings {
		a.logger.Warn("ingestion warning", zap.String("code", d.Code), zap.String("detail", d.String()))
	}

	for _, d := range book.Diagnostics.Infos {
		a.logger.Debug("ingestion note", zap.String("code", d.Code), zap.String("detail", d.String()))
	}

	a.logger.Info("counter sheet loaded",
		zap.String("path", src.Path),
		zap.Int("sets", book.Len()),
		zap.Int("discarded", book.Stats.Discarded),
		zap.Int("overflow", book.Stats.Overflow),
	)

	return book, nil
}

func (a *app) openMissLog() (misslog.Log, error) {
	log, err := misslog.Open(a.cfg.MissLog.Backend, a.cfg.MissLog.Path)
	if err != nil {
		return nil, fmt.Errorf("open miss log: %w", err)
	}

	return log, nil
}
