// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric ingestion policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts FromRows/Set and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultRequireNonNegative rejects negative entries on ingestion and Set.
	// Predicted aligned error is a non-negative distance; a negative value means
	// the wrong field was read.
	DefaultRequireNonNegative = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf     bool // DefaultValidateNaNInf
	requireNonNegative bool // DefaultRequireNonNegative
}

// WithValidateNaNInf enables rejection of NaN/±Inf values (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value guard.
// Non-finite entries then propagate into block means unchanged.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRequireNonNegative enables rejection of negative entries (the default).
func WithRequireNonNegative() Option {
	return func(o *Options) { o.requireNonNegative = true }
}

// WithAllowNegative disables the non-negative guard, e.g. for difference
// matrices built from two predictions.
func WithAllowNegative() Option {
	return func(o *Options) { o.requireNonNegative = false }
}

// NewOptions resolves opts over the package defaults.
// Exposed so that loaders can forward a resolved policy in logs and tests.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidatesNaNInf reports whether the finite-value guard is enabled.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// RequiresNonNegative reports whether the non-negative guard is enabled.
func (o Options) RequiresNonNegative() bool { return o.requireNonNegative }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf:     DefaultValidateNaNInf,
		requireNonNegative: DefaultRequireNonNegative,
	}
}

// gatherOptions applies user setters in order over defaults; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
