// SPDX-License-Identifier: MIT

// Package paescore scores predicted protein complexes by the confidence of
// their binder/target interface.
//
// A structure predictor such as AlphaFold 3 reports, for every pair of tokens
// (i, j), the expected positional error of token j when the prediction is
// aligned on token i: the predicted aligned error (PAE) matrix. Splitting that
// matrix at the boundary between the designed binder and the fixed target
// gives four blocks, and their means summarize the complex:
//
//	                 cols [0,b)        cols [b,N)
//	rows [0,b)    binder×binder     binder×target
//	rows [b,N)    target×binder     target×target
//
//	pae_binder      = mean(binder×binder)
//	pae_target      = mean(target×target)
//	pae_interaction = (mean(binder×target) + mean(target×binder)) / 2
//
// Lower pae_interaction means a more confidently placed interface, so binder
// designs are ranked by it in ascending order.
//
// Packages:
//
//   - matrix:      square Dense storage, no-copy Block windows, numeric policy.
//   - loader:      reads *_full_data_*.json (or YAML) records into a matrix.
//   - interaction: Score, Split, ScoreQuadrants and BinderLength.
//   - batch:       concurrent scoring of many records plus ranking.
//   - report:      json, jsonl and tsv writers.
//   - config:      YAML batch configuration.
//   - logging:     zap logger construction.
//
// The paescore command in cmd/paescore wires them together:
//
//	paescore score --input fold_1_full_data_0.json --binder-chain A
//	paescore init-config --out paescore.yaml
//	paescore batch --config paescore.yaml --format tsv
package paescore
