// SPDX-License-Identifier: MIT

// Command paescore scores protein complex predictions by the expected
// positional error across the binder/target interface.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paescore/logging"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	logger    *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "paescore",
		Short: "Rank binder designs by predicted aligned error at the interface",
		Long: `paescore reads the predicted aligned error (PAE) matrix of a structure
prediction, splits it at the binder/target boundary and reports the mean
error of each block:

  pae_binder       binder tokens against the binder
  pae_target       target tokens against the target
  pae_interaction  average of the two cross-chain means

Lower pae_interaction means a more confidently placed interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", logging.DefaultFormat, "Log encoding: console or json")

	rootCmd.AddCommand(newScoreCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newInitConfigCmd(a))

	return rootCmd
}

// relog rebuilds the logger when level or format differ from the flags.
func (a *app) relog(level, format string) error {
	if level == a.logLevel && format == a.logFormat {
		return nil
	}
	logger, err := logging.New(level, format)
	if err != nil {
		return err
	}
	_ = a.logger.Sync()
	a.logger, a.logLevel, a.logFormat = logger, level, format

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
