// SPDX-License-Identifier: MIT

// Package report serializes interaction scores.
//
// Formats are looked up by name in a registry ("json", "jsonl", "tsv").
// Each format can write a single interaction.Result or the ranked rows of a
// batch.Run. A reader that closes the pipe early (head, less) is not an
// error.
package report
