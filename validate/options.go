// Package validate: functional configuration.

package validate

import "math"

// DefaultTolerance is the symmetry comparison tolerance: values match when
// |a-b| ≤ tol·max(1,|a|,|b|), so it acts absolutely near zero and
// relatively for large magnitudes.
const DefaultTolerance = 1e-9

const panicToleranceInvalid = "validate: WithTolerance: tol must be finite, non-negative"

// Option configures Validate.
type Option func(*Options)

// Options stores the effective configuration; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	tol float64
}

// WithTolerance overrides the symmetry tolerance. Zero demands bit-exact
// value matches. Panics on NaN, ±Inf or negative input.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions resolves setters against defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
