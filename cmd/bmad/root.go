// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bmad/internal/config"
	"github.com/katalvlaran/bmad/internal/logging"
)

var version = "dev"

// app is the state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bmad",
		Short: "Multi-label classification with boolean matrix decomposition",
		Long: `bmad compresses the label columns of a multi-label CSV dataset into a
few latent labels with the Asso boolean matrix decomposition, and evaluates a
nearest-neighbour classifier trained on the compressed labels.

Configuration is read from --config (YAML), then BMAD_* environment
variables; flags win over both.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newDecomposeCmd(a))
	root.AddCommand(newEvaluateCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log.Named("bmad")

	return nil
}
