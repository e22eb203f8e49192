// SPDX-License-Identifier: MIT

package interaction

import "fmt"

// BinderLength derives the boundary index from per-token chain ids, as found
// in the token_chain_ids column of AlphaFold 3 full-data output.
//
// The binder must be the leading contiguous run of binderChain: the batch job
// lists the designed chain before the target, so its tokens come first.
//
// Errors:
//   - ErrUnknownChain when binderChain does not occur.
//   - ErrNonContiguousChain when the first token is not binderChain or the
//     chain reappears after the run ends.
func BinderLength(chainIDs []string, binderChain string) (int, error) {
	first := -1
	for i, id := range chainIDs {
		if id == binderChain {
			first = i
			break
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("interaction.BinderLength: chain %q not among %d tokens: %w",
			binderChain, len(chainIDs), ErrUnknownChain)
	}
	if first != 0 {
		return 0, fmt.Errorf("interaction.BinderLength: chain %q starts at token %d: %w",
			binderChain, first, ErrNonContiguousChain)
	}

	n := 0
	for n < len(chainIDs) && chainIDs[n] == binderChain {
		n++
	}
	for i := n; i < len(chainIDs); i++ {
		if chainIDs[i] == binderChain {
			return 0, fmt.Errorf("interaction.BinderLength: chain %q reappears at token %d: %w",
				binderChain, i, ErrNonContiguousChain)
		}
	}

	return n, nil
}
