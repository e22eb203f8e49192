// SPDX-License-Identifier: MIT

package interaction

import "errors"

var (
	// ErrInvalidBoundary indicates a binder length outside [0, N].
	// The wrapping message carries the supplied value and the valid range.
	ErrInvalidBoundary = errors.New("interaction: invalid boundary")

	// ErrEmptyPartition indicates that one or more quadrants have zero area,
	// which happens when the boundary sits at 0 or N. The wrapping message
	// names every empty quadrant.
	ErrEmptyPartition = errors.New("interaction: empty partition")

	// ErrUnknownChain indicates the requested binder chain id is absent from
	// the token chain ids.
	ErrUnknownChain = errors.New("interaction: unknown chain")

	// ErrNonContiguousChain indicates the binder chain is not a single
	// leading run of tokens, so no single boundary index describes it.
	ErrNonContiguousChain = errors.New("interaction: binder chain is not a leading contiguous run")
)
