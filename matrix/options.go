// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) and Epsilon (public resolver).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - One source of truth: ellipse, jones, stokes, mueller and coherency all
//     accept ...matrix.Option for their approximate comparisons.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by approximate
	// comparisons (AllClose, ApproxEqual, IsHermitian, IsPhysical).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles finite-value validation in NewC2/NewR4.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the numeric tolerance eps used by approximate comparisons.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Larger eps relaxes equality checks. Angles derived through asin/atan
//     near their branch points lose precision first; 1e-9 is comfortably
//     above that noise for unit-intensity states.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf lets NewC2/NewR4 accept NaN and ±Inf entries.
// Use only when the caller sanitizes values itself.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves user options over the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Epsilon returns the comparison tolerance resolved from opts.
// Packages that compare polarization values call this instead of reading
// Options directly.
func Epsilon(opts ...Option) float64 {
	return gatherOptions(opts...).eps
}
