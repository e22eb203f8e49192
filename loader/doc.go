// SPDX-License-Identifier: MIT

// Package loader reads persisted structure-prediction records and extracts
// the predicted aligned error matrix as a matrix.Dense.
//
// The default target is the AlphaFold 3 *_full_data_*.json record, whose "pae"
// field is a square array of numbers and whose "token_chain_ids" field names
// the chain of every token. Other fields are ignored and never converted.
//
// JSON is the default payload format; YAML mappings are accepted for .yaml and
// .yml paths or with WithFormat(FormatYAML).
//
// Each call performs a single read. Failures map to ErrSourceNotFound,
// ErrUnreadable, ErrDecode, ErrMissingField, or the matrix package sentinels
// for malformed or out-of-policy arrays.
package loader
