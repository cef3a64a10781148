// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense storage growth.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Capacity reservations only affect physical storage. Logical width and
//     height are always exactly what the constructor was asked for.
//   - The growth factor applies to both rows and columns. Any factor >= 2 keeps
//     row insertion amortized O(1).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGrowthFactor multiplies the physical capacity when it is exhausted.
	DefaultGrowthFactor = 2

	// DefaultRowCapacity is the minimum physical row count reserved at construction.
	DefaultRowCapacity = 0

	// DefaultColCapacity is the minimum physical column count reserved at construction.
	DefaultColCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowCapacityNegative = "matrix: WithRowCapacity: n must be non-negative"
	panicColCapacityNegative = "matrix: WithColCapacity: n must be non-negative"
	panicGrowthFactorInvalid = "matrix: WithGrowthFactor: factor must be >= 2"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept `...Option` and resolve them via
// gatherOptions.
type Options struct {
	rowCap int // physical rows reserved up front (>= 0)
	colCap int // physical columns reserved up front (>= 0)
	growth int // geometric growth factor (>= 2)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		rowCap: DefaultRowCapacity,
		colCap: DefaultColCapacity,
		growth: DefaultGrowthFactor,
	}
}

// WithRowCapacity reserves at least n physical rows so the first n-height row
// insertions never reallocate. Panics if n < 0.
func WithRowCapacity(n int) Option {
	if n < 0 {
		panic(panicRowCapacityNegative)
	}

	return func(o *Options) { o.rowCap = n }
}

// WithColCapacity reserves at least n physical cells per row so the first
// n-width column insertions never reallocate. Panics if n < 0.
func WithColCapacity(n int) Option {
	if n < 0 {
		panic(panicColCapacityNegative)
	}

	return func(o *Options) { o.colCap = n }
}

// WithGrowthFactor sets the geometric growth factor. Panics if k < 2, since a
// factor of 1 would degrade row insertion to O(height) reallocations.
func WithGrowthFactor(k int) Option {
	if k < 2 {
		panic(panicGrowthFactorInvalid)
	}

	return func(o *Options) { o.growth = k }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
