// Package dist defines core types, capabilities, and sentinel errors
// for the dist subpackage of github.com/katalvlaran/probin.
package dist

import (
	"errors"
)

// Sentinel errors for adapter construction.
var (
	// ErrBadSupport indicates support values that are not finite and strictly increasing.
	ErrBadSupport = errors.New("dist: support values must be finite and strictly increasing")
	// ErrBadWeights indicates probabilities that are negative or do not sum to one.
	ErrBadWeights = errors.New("dist: probabilities must be non-negative and sum to one")
	// ErrBadTruncation indicates truncation bounds that leave no probability mass.
	ErrBadTruncation = errors.New("dist: truncation bounds must enclose positive probability mass")
)

// Kind tags a distribution as continuous or integer-valued discrete.
// The discretiser dispatches its pseudo-CDF formula on this single tag.
type Kind int

const (
	// Continuous distributions have a density; their pseudo-CDF is the CDF itself.
	Continuous Kind = iota
	// DiscreteInt distributions place mass only on integers; their pseudo-CDF
	// smears each unit of mass uniformly across [k, k+1).
	DiscreteInt
)

// String returns the tag name, for diagnostics and tests.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case DiscreteInt:
		return "discrete"
	default:
		return "unknown"
	}
}

// Distribution is the capability set a univariate distribution must
// provide to be discretised. Implementations are immutable; the
// discretiser never mutates one.
//
// Quantile must invert CDF up to numerical precision: for p in (0,1),
// CDF(Quantile(p)) ≈ p. Min and Max report the support bounds and may
// return ±Inf for unbounded sides.
type Distribution interface {
	// Kind reports whether Prob is a density or an integer point mass.
	Kind() Kind
	// CDF returns P(X ≤ x), in [0,1].
	CDF(x float64) float64
	// Prob returns the density at x (continuous) or the mass at x (discrete).
	Prob(x float64) float64
	// Quantile returns the smallest x with CDF(x) ≥ p.
	Quantile(p float64) float64
	// Min returns the infimum of the support, possibly -Inf.
	Min() float64
	// Max returns the supremum of the support, possibly +Inf.
	Max() float64
}

// Meaner is an optional capability: adapters with a closed-form mean
// expose it here so callers can skip numerical integration.
type Meaner interface {
	// Mean returns E[X]; it may be ±Inf or NaN for heavy-tailed families.
	Mean() float64
}
