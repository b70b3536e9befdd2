// Package probin turns a univariate probability distribution — continuous
// or integer-valued discrete — into a discrete approximation over a grid
// of contiguous intervals, with several conventions for collapsing each
// interval to a representative point.
//
// 🚀 What is probin?
//
//	A small, pure computational library that brings together:
//		• Distribution adapters: CDF / density / quantile / support, backed by gonum
//		• Bound resolution: fixed-width grids or caller-supplied boundaries,
//		  quantile-derived edges for unbounded supports
//		• Mass assignment: one probability per interval via pseudo-CDF differences
//		• Alignment: interval, left, centred, right — plus a mean-preserving
//		  "unbiased" scheme from the actuarial literature
//		• Truncated means: E[min(X,u)] analytically or by trapezoidal integration
//
// ✨ Why choose probin?
//
//   - Minimal API, clear naming — one call discretises, one call realigns
//   - Immutable values — every transform returns a fresh distribution
//   - Pure Go — no cgo, no I/O, no global state; diagnostics are typed
//     events delivered to an observer you provide (or nobody)
//
// Everything is organized under two subpackages:
//
//	dist/       — the Distribution contract + gonum-backed families
//	              (Normal, Exponential, Uniform, Gamma, Poisson, …),
//	              NonParametric point masses and a Truncate combinator
//	discretize/ — bound resolution, mass assignment, alignment methods
//	              and the truncated-mean estimator
//
// Quick sketch:
//
//	    ─┬─────┬─────┬─────┬─────┬─
//	     e0    e1    e2    e3    e4      edges from the bound resolver
//	      p0    p1    p2    p3           p_i = F*(e_{i+1}) − F*(e_i)
//
//	where F* is the CDF for continuous input, or a piecewise-uniform
//	pseudo-CDF for integer-valued discrete input.
//
// Dive into the package docs of dist and discretize for full examples and
// the exact semantics of each alignment method.
//
//	go get github.com/katalvlaran/probin/discretize
package probin
