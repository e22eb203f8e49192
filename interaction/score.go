// SPDX-License-Identifier: MIT
// Package: interaction
//
// Purpose:
//   - Reduce a PAE matrix split at the binder/target boundary to the three
//     summary scores used to rank binder designs.
//
// Determinism:
//   - Every block is summed in fixed row-major order; Score is a pure function
//     of (matrix, boundary) and repeated calls are bit-identical.

package interaction

import (
	"fmt"

	"github.com/katalvlaran/paescore/matrix"
)

// Result is the summary of one predicted complex.
// Values are in the units of the input matrix (Ångström for AlphaFold PAE).
type Result struct {
	// PAEBinder is the mean of the binder×binder block.
	PAEBinder float64 `json:"pae_binder" yaml:"pae_binder"`
	// PAETarget is the mean of the target×target block.
	PAETarget float64 `json:"pae_target" yaml:"pae_target"`
	// PAEInteraction is the unweighted average of the two directional cross means.
	PAEInteraction float64 `json:"pae_interaction" yaml:"pae_interaction"`
}

// Quadrants carries the four raw block means.
// BinderTarget and TargetBinder are kept apart because the matrix is directional.
type Quadrants struct {
	BinderBinder float64 `json:"binder_binder"`
	TargetTarget float64 `json:"target_target"`
	BinderTarget float64 `json:"binder_target"`
	TargetBinder float64 `json:"target_binder"`
}

// Result folds the quadrant means into the three summary scores.
func (q Quadrants) Result() Result {
	return Result{
		PAEBinder:      q.BinderBinder,
		PAETarget:      q.TargetTarget,
		PAEInteraction: (q.BinderTarget + q.TargetBinder) / 2,
	}
}

// Score computes pae_binder, pae_target and pae_interaction for m split at
// binderLength.
//
// Implementation:
//   - Stage 1: Split validates m and 0 ≤ binderLength ≤ N.
//   - Stage 2: reject degenerate splits (b = 0 or b = N) naming the empty quadrants.
//   - Stage 3: mean of each block; interaction = (mean(b×t) + mean(t×b)) / 2.
//
// Behavior highlights:
//   - The interaction score averages the two directional means, so each
//     direction contributes half regardless of how asymmetric the matrix is.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidBoundary (Stage 1).
//   - ErrEmptyPartition (Stage 2).
//   - errors from a custom Matrix.At implementation (Stage 3).
//
// Complexity:
//   - Time O(N²), Space O(1).
func Score(m matrix.Matrix, binderLength int) (Result, error) {
	q, err := ScoreQuadrants(m, binderLength)
	if err != nil {
		return Result{}, err
	}

	return q.Result(), nil
}

// ScoreQuadrants returns the four block means that Score folds together.
// Preconditions and errors are identical to Score.
func ScoreQuadrants(m matrix.Matrix, binderLength int) (Quadrants, error) {
	p, err := Split(m, binderLength)
	if err != nil {
		return Quadrants{}, err
	}
	if err = emptyPartitionError(p); err != nil {
		return Quadrants{}, err
	}

	var means [4]float64
	for _, q := range allQuadrants {
		means[q], err = p.Block(q).Mean()
		if err != nil {
			return Quadrants{}, fmt.Errorf("interaction: mean of %s: %w", q, err)
		}
	}

	return Quadrants{
		BinderBinder: means[BinderBinder],
		TargetTarget: means[TargetTarget],
		BinderTarget: means[BinderTarget],
		TargetBinder: means[TargetBinder],
	}, nil
}
