package discretize

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/probin/dist"
)

// ByWidth discretises d over intervals of the given width.
//
// Algorithm outline:
//  1. Resolve edges: multiples of width across the support, with
//     quantile-derived outward-rounded edges replacing infinite bounds
//     (Options.MinQuantile / MaxQuantile) and exact partial edges at
//     finite bounds that are not width multiples.
//  2. Assign one probability per interval as a pseudo-CDF difference at
//     its edges and normalise once, compensating for quantile truncation.
//  3. Apply Options.Method to the interval-indexed result.
//
// Errors:
//   - ErrBadWidth      — width is not positive and finite.
//   - ErrBadQuantile   — quantile bounds outside 0 < min < max < 1.
//   - ErrVanishingMass — the grid captures no probability mass.
//   - errors of the selected alignment method (see Align docs).
func ByWidth(d dist.Distribution, width float64, opts *Options) (*Discrete, error) {
	o := normalizeOptions(opts)
	if !(width > 0) || math.IsInf(width, 1) {
		return nil, ErrBadWidth
	}
	if !(o.MinQuantile > 0 && o.MinQuantile < o.MaxQuantile && o.MaxQuantile < 1) {
		return nil, ErrBadQuantile
	}
	return fromEdges(d, resolveWidthEdges(d, width, o.MinQuantile, o.MaxQuantile), o)
}

// ByBoundaries discretises d over intervals cut at the given boundary
// values. Input order is irrelevant — boundaries are sorted internally;
// values outside the open support interval are dropped, and the support
// bounds themselves (possibly infinite) become the outermost edges. An
// empty boundary list yields a single interval spanning the support.
func ByBoundaries(d dist.Distribution, boundaries []float64, opts *Options) (*Discrete, error) {
	o := normalizeOptions(opts)
	return fromEdges(d, resolveBoundaryEdges(d, boundaries), o)
}

// ByIntervals discretises d over caller-supplied intervals — the
// primitive ByWidth and ByBoundaries reduce to. Intervals must be
// ascending and contiguous (shared edges); returns ErrNotContiguous
// otherwise and ErrNoIntervals on an empty sequence.
func ByIntervals(d dist.Distribution, intervals []Interval, opts *Options) (*Discrete, error) {
	o := normalizeOptions(opts)
	if len(intervals) == 0 {
		return nil, ErrNoIntervals
	}
	if err := checkContiguous(intervals); err != nil {
		return nil, err
	}
	edges := make([]float64, 0, len(intervals)+1)
	edges = append(edges, intervals[0].Lower)
	for _, iv := range intervals {
		edges = append(edges, iv.Upper)
	}
	return fromEdges(d, edges, o)
}

// fromEdges is the mass assignment engine: one probability per adjacent
// edge pair via pseudo-CDF differences, normalised once — the single
// normalization point, which redistributes any mass truncated outside
// [edges[0], edges[n]] proportionally across retained intervals.
// Zero-probability and degenerate zero-width intervals are retained,
// preserving contiguity.
func fromEdges(d dist.Distribution, edges []float64, o Options) (*Discrete, error) {
	probs := make([]float64, len(edges)-1)
	prev := pseudoCDF(d, edges[0])
	var cur float64
	for i := 1; i < len(edges); i++ {
		cur = pseudoCDF(d, edges[i])
		probs[i-1] = math.Max(cur-prev, 0)
		prev = cur
	}

	total := floats.Sum(probs)
	if !(total > 0) || math.IsInf(total, 1) {
		return nil, ErrVanishingMass
	}
	floats.Scale(1/total, probs)

	intervals := make([]Interval, len(edges)-1)
	for i := range intervals {
		intervals[i] = Interval{Lower: edges[i], Upper: edges[i+1]}
	}
	return applyMethod(d, &Discrete{intervals: intervals, probs: probs}, o)
}
