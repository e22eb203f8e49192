// SPDX-License-Identifier: MIT

// Package interaction scores predicted binder/target complexes from their
// predicted aligned error (PAE) matrix.
//
// A complex of N tokens is the designed binder (tokens [0,b)) followed by the
// fixed target (tokens [b,N)). Splitting the N×N PAE matrix at b gives four
// quadrants:
//
//	            cols [0,b)       cols [b,N)
//	rows [0,b)  binder×binder    binder×target
//	rows [b,N)  target×binder    target×target
//
// Score reports
//
//	pae_binder      = mean(binder×binder)
//	pae_target      = mean(target×target)
//	pae_interaction = (mean(binder×target) + mean(target×binder)) / 2
//
// Lower pae_interaction means the predictor is more confident about the
// relative placement of binder and target.
//
// A boundary outside [0,N] fails with ErrInvalidBoundary; b = 0 or b = N
// leaves quadrants empty and fails with ErrEmptyPartition instead of
// producing NaN.
//
// Usage:
//
//	m, err := loader.Load("fold_complex_full_data_0.json", loader.DefaultField)
//	res, err := interaction.Score(m, 100)
//	fmt.Println(res.PAEInteraction)
package interaction
