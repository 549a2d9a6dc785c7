package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thanksgrp/run-length/internal/config"
	logpkg "github.com/thanksgrp/run-length/internal/log"
)

// app holds the state shared by the subcommands once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewRoot constructs the root Cobra command and registers the group, stats
// and archive command groups.
func NewRoot() *cobra.Command {
	a := &app{cfg: config.Default(), logger: logpkg.Discard()}

	root := &cobra.Command{
		Use:           "runlength",
		Short:         "Run-length analysis of value sequences",
		Long:          "runlength groups consecutive equal values, computes summary statistics and archives run encodings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("config", os.Getenv("RUNLENGTH_CONFIG"), "Path to a JSON config file")
	root.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")
	root.PersistentFlags().String("log-format", "", "Log format: text|json")
	root.PersistentFlags().String("data-dir", "", "Archive data directory")
	root.PersistentFlags().String("backend", "", "Archive backend: pebble|sqlite")
	root.PersistentFlags().Int("precision", -1, "Digits after the decimal point of float output")

	root.AddCommand(
		newGroupCommand(a),
		newStatsCommand(a),
		newArchiveCommand(a),
	)
	return root
}

// setup resolves the configuration (defaults, file, env, flags) and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.FromEnv(&cfg)

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.Archive.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Archive.Backend = v
	}
	if v, _ := cmd.Flags().GetInt("precision"); v >= 0 {
		cfg.Precision = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	a.cfg = cfg
	a.logger = logpkg.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	return nil
}
