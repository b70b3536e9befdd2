// Package discretize defines core types, options, and sentinel errors
// for the discretize subpackage of github.com/katalvlaran/probin.
package discretize

import (
	"errors"
	"math"
)

// Sentinel errors for discretisation operations.
var (
	// ErrBadWidth indicates a non-positive or non-finite interval width.
	ErrBadWidth = errors.New("discretize: interval width must be positive and finite")
	// ErrBadQuantile indicates quantile bounds outside 0 < min < max < 1.
	ErrBadQuantile = errors.New("discretize: quantile bounds must satisfy 0 < min < max < 1")
	// ErrNoIntervals indicates an empty interval sequence.
	ErrNoIntervals = errors.New("discretize: at least one interval is required")
	// ErrNotContiguous indicates intervals that are not ascending with shared edges.
	ErrNotContiguous = errors.New("discretize: intervals must be ascending and contiguous")
	// ErrVanishingMass indicates total probability mass of zero or a non-finite value.
	ErrVanishingMass = errors.New("discretize: total probability mass is zero or not finite")
	// ErrUnequalWidths indicates unequal interval widths where the unbiased method requires equal ones.
	ErrUnequalWidths = errors.New("discretize: unbiased method requires equal interval widths")
	// ErrTooFewPoints indicates an alignment that needs at least two support points.
	ErrTooFewPoints = errors.New("discretize: alignment needs at least two support points")
	// ErrTooFewSamples indicates a trapezoid sample count too low to resolve a mean.
	ErrTooFewSamples = errors.New("discretize: trapezoid sample count too low to resolve the mean")
	// ErrBadDistribution indicates support/probability slices that do not form a distribution.
	ErrBadDistribution = errors.New("discretize: support and probabilities must describe a valid distribution")
)

// Method selects how interval-indexed mass is re-expressed on points.
type Method int

const (
	// MethodInterval keeps the interval-indexed result unchanged.
	MethodInterval Method = iota
	// MethodLeftAligned places each interval's mass on its lower bound.
	MethodLeftAligned
	// MethodCentred places each interval's mass on its midpoint.
	MethodCentred
	// MethodRightAligned places each interval's mass on its upper bound.
	MethodRightAligned
	// MethodUnbiased places mass on every interval edge so the discrete
	// mean matches the original mean (local moment matching).
	MethodUnbiased
)

// String returns the method name, for diagnostics and tests.
func (m Method) String() string {
	switch m {
	case MethodInterval:
		return "interval"
	case MethodLeftAligned:
		return "left_aligned"
	case MethodCentred:
		return "centred"
	case MethodRightAligned:
		return "right_aligned"
	case MethodUnbiased:
		return "unbiased"
	default:
		return "unknown"
	}
}

// Interval is a closed-open slice [Lower, Upper) of the real line.
// Lower may be -Inf only for the first interval of a discretisation and
// Upper may be +Inf only for the last.
type Interval struct {
	Lower, Upper float64
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() float64 { return iv.Lower + (iv.Upper-iv.Lower)/2 }

// Degenerate reports whether the interval has zero width.
func (iv Interval) Degenerate() bool { return iv.Lower == iv.Upper }

// Finite reports whether both bounds are finite.
func (iv Interval) Finite() bool {
	return !math.IsInf(iv.Lower, 0) && !math.IsInf(iv.Upper, 0)
}

// Options contains tunable parameters for discretisation.
type Options struct {
	// MinQuantile substitutes for an infinite lower support bound:
	// the lowest edge is rounded outward from Quantile(MinQuantile).
	MinQuantile float64
	// MaxQuantile is the symmetric substitute for an infinite upper bound.
	MaxQuantile float64
	// Method selects the alignment applied to the interval-indexed result.
	Method Method
	// TrapezoidPoints is the sample count for numerical mean integration,
	// consulted only by MethodUnbiased.
	TrapezoidPoints int
	// OnDiagnostic receives non-fatal events; nil discards them.
	OnDiagnostic DiagFunc
}

// DefaultOptions returns an Options with default settings:
// MinQuantile=0.001, MaxQuantile=0.999, Method=MethodInterval,
// TrapezoidPoints=10000.
func DefaultOptions() Options {
	return Options{
		MinQuantile:     0.001,
		MaxQuantile:     0.999,
		Method:          MethodInterval,
		TrapezoidPoints: 10000,
	}
}

// normalizeOptions dereferences opts, falling back to defaults on nil.
func normalizeOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	return *opts
}
