// SPDX-License-Identifier: MIT

package batch

import (
	"cmp"
	"slices"
)

// Rank orders outcomes for candidate selection: scored jobs by ascending
// pae_interaction (lower expected error means a more confident interface),
// ties broken by job name, then failures in their original order.
//
// The input is not modified. Scored outcomes get Rank 1..k; failures get 0.
func Rank(outcomes []Outcome) []Outcome {
	ranked := make([]Outcome, 0, len(outcomes))
	var failed []Outcome
	for _, o := range outcomes {
		if o.OK() {
			ranked = append(ranked, o)
		} else {
			o.Rank = 0
			failed = append(failed, o)
		}
	}

	slices.SortStableFunc(ranked, func(a, b Outcome) int {
		if c := cmp.Compare(a.Result.PAEInteraction, b.Result.PAEInteraction); c != 0 {
			return c
		}
		return cmp.Compare(a.Job.Name, b.Job.Name)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return append(ranked, failed...)
}
