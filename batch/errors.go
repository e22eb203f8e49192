// SPDX-License-Identifier: MIT

package batch

import "errors"

var (
	// ErrInvalidJob indicates a job that names both a binder length and a binder chain.
	ErrInvalidJob = errors.New("batch: invalid job")

	// ErrNoChainIDs indicates a job locates its binder by chain but the record
	// carries no per-token chain ids.
	ErrNoChainIDs = errors.New("batch: record has no chain ids")

	// ErrSkipped marks a job that never ran because the batch was cancelled
	// or stopped at an earlier failure.
	ErrSkipped = errors.New("batch: job skipped")
)
