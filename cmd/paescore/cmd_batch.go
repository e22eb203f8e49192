// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paescore/batch"
	"github.com/katalvlaran/paescore/config"
	"github.com/katalvlaran/paescore/report"
)

type batchOptions struct {
	configPath string
	workers    int
	format     string
	out        string
	failFast   bool
}

func newBatchCmd(a *app) *cobra.Command {
	o := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score every job of a configuration file and rank the binders",
		Long: `batch loads the jobs of a YAML configuration (see init-config), scores
them concurrently and writes one ranked row per job. Failed jobs are
reported after the ranked ones and do not stop the batch unless
--fail-fast is given.

Flags override the file; PAESCORE_FIELD, PAESCORE_WORKERS and
PAESCORE_LOG_LEVEL override both the file and the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, a, o)
		},
	}

	cmd.Flags().StringVarP(&o.configPath, "config", "c", "paescore.yaml", "Configuration file")
	cmd.Flags().IntVarP(&o.workers, "workers", "j", 0, "Concurrent jobs (default from config)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: json, jsonl, tsv (default from config)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Output file, - for stdout (default from config)")
	cmd.Flags().BoolVar(&o.failFast, "fail-fast", false, "Stop at the first failed job")

	return cmd
}

func runBatch(cmd *cobra.Command, a *app, o *batchOptions) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	outPath := cfg.ResolvePath(cfg.Output.Path)
	if flags.Changed("out") {
		outPath = o.out
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast = o.failFast
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if _, err = report.Lookup(cfg.Output.Format); err != nil {
		return err
	}

	level, format := a.logLevel, a.logFormat
	if !flags.Changed("log-level") {
		level = cfg.Logging.Level
	}
	if !flags.Changed("log-format") {
		format = cfg.Logging.Format
	}
	if err = a.relog(level, format); err != nil {
		return err
	}

	jobs := make([]batch.Job, len(cfg.Jobs))
	for i, j := range cfg.Jobs {
		jobs[i] = batch.Job{
			Name:         j.Name,
			Source:       cfg.ResolvePath(j.Source),
			Field:        cfg.JobField(j),
			BinderLength: j.BinderLength,
			BinderChain:  j.BinderChain,
		}
	}

	runner := &batch.Runner{Workers: cfg.Workers, FailFast: cfg.FailFast, Logger: a.logger}
	run, runErr := runner.Run(cmd.Context(), jobs)

	if err = writeReport(cmd.OutOrStdout(), outPath, cfg.Output.Format, run); err != nil {
		return err
	}
	if n := run.Failed(); n > 0 {
		a.logger.Warn("Some jobs failed", zap.Int("failed", n), zap.Int("jobs", len(jobs)))
	}

	return runErr
}

// writeReport writes the ranked rows to path, or to stdout for "" and "-".
// A close error on the file is returned.
func writeReport(stdout io.Writer, path, format string, run *batch.Run) error {
	rows := report.FromRun(run)
	if path == "" || path == "-" {
		return report.WriteRows(format, stdout, rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if err = report.WriteRows(format, f, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("batch: close %s: %w", path, err)
	}

	return nil
}
