// SPDX-License-Identifier: MIT

package interaction

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/paescore/matrix"
)

// Quadrant names one of the four blocks induced by the binder/target boundary.
// The first word is the row (aligned-on) side, the second the column side.
type Quadrant int

const (
	// BinderBinder is rows/cols [0,b).
	BinderBinder Quadrant = iota
	// TargetTarget is rows/cols [b,N).
	TargetTarget
	// BinderTarget is rows [0,b), cols [b,N).
	BinderTarget
	// TargetBinder is rows [b,N), cols [0,b).
	TargetBinder
)

// allQuadrants lists every quadrant in the fixed reporting order.
var allQuadrants = [...]Quadrant{BinderBinder, TargetTarget, BinderTarget, TargetBinder}

// String returns the lower-case name used in errors and reports.
func (q Quadrant) String() string {
	switch q {
	case BinderBinder:
		return "binder×binder"
	case TargetTarget:
		return "target×target"
	case BinderTarget:
		return "binder×target"
	case TargetBinder:
		return "target×binder"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// Partition holds the four no-copy blocks of a matrix split at a boundary.
type Partition struct {
	N            int // side length of the source matrix
	BinderLength int // boundary index b

	blocks [4]*matrix.Block
}

// Block returns the window for quadrant q.
func (p Partition) Block(q Quadrant) *matrix.Block {
	return p.blocks[q]
}

// Empty returns the quadrants with zero area, in reporting order.
func (p Partition) Empty() []Quadrant {
	var out []Quadrant
	for _, q := range allQuadrants {
		if p.blocks[q].Empty() {
			out = append(out, q)
		}
	}

	return out
}

// Split partitions m at binderLength into four blocks.
//
// Implementation:
//   - Stage 1: reject nil matrices and boundaries outside [0, N].
//   - Stage 2: build four windows; no entries are copied.
//
// Behavior highlights:
//   - b = 0 and b = N are accepted here and yield empty blocks; only the
//     reductions in Score reject them.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidBoundary.
//
// Complexity:
//   - Time O(1), Space O(1).
func Split(m matrix.Matrix, binderLength int) (Partition, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Partition{}, fmt.Errorf("interaction.Split: %w", err)
	}
	n := m.Size()
	if binderLength < 0 || binderLength > n {
		return Partition{}, fmt.Errorf("interaction.Split: binder length %d outside [0, %d]: %w",
			binderLength, n, ErrInvalidBoundary)
	}
	b, t := binderLength, n-binderLength

	p := Partition{N: n, BinderLength: b}
	windows := [4][4]int{
		BinderBinder: {0, 0, b, b},
		TargetTarget: {b, b, t, t},
		BinderTarget: {0, b, b, t},
		TargetBinder: {b, 0, t, b},
	}
	for _, q := range allQuadrants {
		w := windows[q]
		blk, err := matrix.BlockOf(m, w[0], w[1], w[2], w[3])
		if err != nil {
			return Partition{}, fmt.Errorf("interaction.Split: %s: %w", q, err)
		}
		p.blocks[q] = blk
	}

	return p, nil
}

// emptyPartitionError names every empty quadrant of p, or returns nil.
func emptyPartitionError(p Partition) error {
	empty := p.Empty()
	if len(empty) == 0 {
		return nil
	}
	names := make([]string, len(empty))
	for i, q := range empty {
		names[i] = q.String()
	}

	return fmt.Errorf("interaction: binder length %d of %d leaves %s empty: %w",
		p.BinderLength, p.N, strings.Join(names, ", "), ErrEmptyPartition)
}
