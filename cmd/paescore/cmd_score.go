// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paescore/batch"
	"github.com/katalvlaran/paescore/interaction"
	"github.com/katalvlaran/paescore/loader"
	"github.com/katalvlaran/paescore/matrix"
	"github.com/katalvlaran/paescore/report"
)

type scoreOptions struct {
	input         string
	field         string
	binderLength  int
	binderChain   string
	format        string
	allowNegative bool
	quadrants     bool
}

func newScoreCmd(a *app) *cobra.Command {
	o := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single prediction record",
		Example: `  paescore score --input fold_1_full_data_0.json --binder-chain A
  paescore score --input fold_1_full_data_0.json --binder-length 100 --format tsv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, a, o)
		},
	}

	cmd.Flags().StringVarP(&o.input, "input", "i", "", "Prediction record (JSON or YAML)")
	cmd.Flags().StringVar(&o.field, "field", loader.DefaultField, "Field holding the PAE matrix")
	cmd.Flags().IntVar(&o.binderLength, "binder-length", 0, "Number of leading binder tokens")
	cmd.Flags().StringVar(&o.binderChain, "binder-chain", "", "Chain id of the binder, resolved from token_chain_ids")
	cmd.Flags().StringVarP(&o.format, "format", "f", "json", "Output format: json, jsonl, tsv")
	cmd.Flags().BoolVar(&o.allowNegative, "allow-negative", false, "Accept negative matrix entries")
	cmd.Flags().BoolVar(&o.quadrants, "quadrants", false, "Print the four block means as JSON instead")
	_ = cmd.MarkFlagRequired("input")
	cmd.MarkFlagsMutuallyExclusive("binder-length", "binder-chain")
	cmd.MarkFlagsOneRequired("binder-length", "binder-chain")

	return cmd
}

func runScore(cmd *cobra.Command, a *app, o *scoreOptions) error {
	if !o.quadrants {
		if _, err := report.Lookup(o.format); err != nil {
			return err
		}
	}

	var opts []loader.Option
	if o.allowNegative {
		opts = append(opts, loader.WithMatrixOptions(matrix.WithAllowNegative()))
	}
	rec, err := loader.LoadRecord(o.input, o.field, opts...)
	if err != nil {
		return err
	}

	b := o.binderLength
	if o.binderChain != "" {
		if rec.ChainIDs == nil {
			return fmt.Errorf("score: %s: use --binder-length: %w", rec.Source, batch.ErrNoChainIDs)
		}
		if b, err = interaction.BinderLength(rec.ChainIDs, o.binderChain); err != nil {
			return err
		}
	}
	a.logger.Debug("Scoring record",
		zap.String("source", rec.Source),
		zap.Int("tokens", rec.Matrix.Size()),
		zap.Int("binder_length", b))

	if o.quadrants {
		q, err := interaction.ScoreQuadrants(rec.Matrix, b)
		if err != nil {
			return err
		}
		return report.EncodePretty(cmd.OutOrStdout(), q)
	}

	res, err := interaction.Score(rec.Matrix, b)
	if err != nil {
		return err
	}
	a.logger.Info("Scored record",
		zap.String("source", rec.Source),
		zap.Float64("pae_interaction", res.PAEInteraction))

	return report.WriteResult(o.format, cmd.OutOrStdout(), res)
}
