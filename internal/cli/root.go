// Package cli implements the stepform command line.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// app carries what the subcommands share once the root command has resolved
// configuration.
type app struct {
	cfg    Config
	logger *slog.Logger
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCommand()
	return root.ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	var logLevel string
	var logFormat string

	a := &app{}

	root := &cobra.Command{
		Use:           "stepform",
		Short:         "Three-step personal, address and payment form",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", FormatText, "log format (text, json)")

	root.AddCommand(newFillCommand(a))
	root.AddCommand(newGraphCommand())

	return root
}
