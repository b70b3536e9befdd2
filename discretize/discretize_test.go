package discretize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/probin/discretize"
	"github.com/katalvlaran/probin/dist"
)

// requireSumToOne asserts the sum-to-one invariant of a discretised result.
func requireSumToOne(t *testing.T, dd *discretize.Discrete) {
	t.Helper()
	require.InDelta(t, 1.0, floats.Sum(dd.Probs()), 1e-10, "probabilities must sum to one")
}

// requireContiguous asserts exact shared edges across the interval support.
func requireContiguous(t *testing.T, intervals []discretize.Interval) {
	t.Helper()
	for i := 1; i < len(intervals); i++ {
		require.Equal(t, intervals[i-1].Upper, intervals[i].Lower,
			"interval %d must start exactly where interval %d ends", i, i-1)
	}
}

// TestByWidth_Normal discretises N(0,1) at width 0.1: probabilities sum
// to one, the grid is contiguous with positive widths, and the outermost
// edges are finite quantile-derived bounds enclosing the 0.1%/99.9%
// quantiles.
func TestByWidth_Normal(t *testing.T) {
	dd, err := discretize.ByWidth(dist.Normal(0, 1), 0.1, nil)
	require.NoError(t, err, "discretising N(0,1) must succeed")
	require.True(t, dd.IntervalValued(), "default method keeps intervals")

	requireSumToOne(t, dd)
	intervals := dd.Intervals()
	requireContiguous(t, intervals)
	for _, iv := range intervals {
		assert.Greater(t, iv.Upper, iv.Lower, "intervals on a width grid have positive width")
	}

	first, last := intervals[0], intervals[len(intervals)-1]
	assert.False(t, math.IsInf(first.Lower, -1), "lower edge must be quantile-derived, not infinite")
	assert.False(t, math.IsInf(last.Upper, 1), "upper edge must be quantile-derived, not infinite")
	assert.LessOrEqual(t, first.Lower, -3.09, "lowest edge captures the 0.1 percent quantile")
	assert.GreaterOrEqual(t, last.Upper, 3.09, "highest edge captures the 99.9 percent quantile")
}

// TestByWidth_PoissonGrouping groups Poisson(3) mass into width-2
// intervals through the piecewise-uniform pseudo-CDF.
func TestByWidth_PoissonGrouping(t *testing.T) {
	d := dist.Poisson(3)
	dd, err := discretize.ByWidth(d, 2, nil)
	require.NoError(t, err, "discretising Poisson(3) must succeed")

	requireSumToOne(t, dd)
	intervals := dd.Intervals()
	requireContiguous(t, intervals)
	assert.GreaterOrEqual(t, intervals[0].Lower, 0.0, "poisson has no negative support")

	// first interval [0,2) collects the full mass of 0 and 1
	want := d.Prob(0) + d.Prob(1)
	assert.InDelta(t, want, dd.Probs()[0], 1e-5,
		"pseudo-CDF difference over [0,2) equals P(0)+P(1) up to renormalisation")
}

// TestByWidth_UniformExactGrid verifies exact edges when the support is
// a multiple of the width.
func TestByWidth_UniformExactGrid(t *testing.T) {
	dd, err := discretize.ByWidth(dist.Uniform(0, 10), 1, nil)
	require.NoError(t, err, "discretising U(0,10) must succeed")

	intervals := dd.Intervals()
	require.Len(t, intervals, 10, "ten unit intervals span [0,10]")
	assert.Equal(t, 0.0, intervals[0].Lower, "grid starts at the support minimum")
	assert.Equal(t, 10.0, intervals[9].Upper, "grid ends at the support maximum")
	for i, p := range dd.Probs() {
		assert.InDelta(t, 0.1, p, 1e-9, "interval %d carries one tenth of the mass", i)
	}
}

// TestByWidth_PartialEndIntervals verifies that a support bound off the
// width grid becomes an exact partial edge.
func TestByWidth_PartialEndIntervals(t *testing.T) {
	dd, err := discretize.ByWidth(dist.Uniform(0.3, 2.0), 0.5, nil)
	require.NoError(t, err, "discretising U(0.3,2) must succeed")

	intervals := dd.Intervals()
	assert.Equal(t, 0.3, intervals[0].Lower, "first edge is the exact support bound")
	assert.InDelta(t, 0.5, intervals[0].Upper, 1e-12, "second edge is the next width multiple")
	assert.Less(t, intervals[0].Width(), 0.5, "first interval is narrower than the width")
	requireSumToOne(t, dd)
	requireContiguous(t, intervals)
}

// TestByWidth_InputValidation exercises width and quantile validation.
func TestByWidth_InputValidation(t *testing.T) {
	d := dist.Normal(0, 1)

	_, err := discretize.ByWidth(d, 0, nil)
	assert.ErrorIs(t, err, discretize.ErrBadWidth, "zero width must error")

	_, err = discretize.ByWidth(d, -1, nil)
	assert.ErrorIs(t, err, discretize.ErrBadWidth, "negative width must error")

	_, err = discretize.ByWidth(d, math.Inf(1), nil)
	assert.ErrorIs(t, err, discretize.ErrBadWidth, "infinite width must error")

	opts := discretize.DefaultOptions()
	opts.MinQuantile, opts.MaxQuantile = 0.9, 0.1
	_, err = discretize.ByWidth(d, 0.1, &opts)
	assert.ErrorIs(t, err, discretize.ErrBadQuantile, "inverted quantile bounds must error")
}

// TestByBoundaries_SortingInvariance verifies that caller boundary order
// is irrelevant.
func TestByBoundaries_SortingInvariance(t *testing.T) {
	d := dist.Normal(0, 1)

	a, err := discretize.ByBoundaries(d, []float64{-1, 0, 1}, nil)
	require.NoError(t, err, "sorted boundaries must succeed")
	b, err := discretize.ByBoundaries(d, []float64{1, -1, 0}, nil)
	require.NoError(t, err, "shuffled boundaries must succeed")

	assert.Equal(t, a.Intervals(), b.Intervals(), "intervals must not depend on input order")
	assert.Equal(t, a.Probs(), b.Probs(), "probabilities must not depend on input order")
}

// TestByBoundaries_SemiInfiniteTails verifies that an unbounded support
// carries ±Inf through to the outermost intervals.
func TestByBoundaries_SemiInfiniteTails(t *testing.T) {
	dd, err := discretize.ByBoundaries(dist.Normal(0, 1), []float64{-1, 0, 1}, nil)
	require.NoError(t, err, "boundary discretisation must succeed")

	intervals := dd.Intervals()
	require.Len(t, intervals, 4, "three boundaries cut the line into four intervals")
	assert.True(t, math.IsInf(intervals[0].Lower, -1), "first interval is unbounded below")
	assert.True(t, math.IsInf(intervals[3].Upper, 1), "last interval is unbounded above")
	requireSumToOne(t, dd)

	// middle intervals carry the exact CDF differences
	assert.InDelta(t, 0.3413, dd.Probs()[1], 1e-4, "mass of (-1,0)")
	assert.InDelta(t, 0.3413, dd.Probs()[2], 1e-4, "mass of (0,1)")
}

// TestByBoundaries_DropsOutsideSupport verifies boundary filtering
// against the open support interval.
func TestByBoundaries_DropsOutsideSupport(t *testing.T) {
	dd, err := discretize.ByBoundaries(dist.Uniform(0, 10), []float64{-5, 2, 15}, nil)
	require.NoError(t, err, "boundary discretisation must succeed")

	intervals := dd.Intervals()
	require.Len(t, intervals, 2, "out-of-support boundaries are dropped")
	assert.Equal(t, discretize.Interval{Lower: 0, Upper: 2}, intervals[0], "support minimum caps the grid")
	assert.Equal(t, discretize.Interval{Lower: 2, Upper: 10}, intervals[1], "support maximum caps the grid")
	assert.InDelta(t, 0.2, dd.Probs()[0], 1e-12, "mass of [0,2) under U(0,10)")
}

// TestByBoundaries_DuplicateBoundaryRetained verifies the degenerate
// zero-width policy: the interval survives with zero probability and
// contiguity intact.
func TestByBoundaries_DuplicateBoundaryRetained(t *testing.T) {
	dd, err := discretize.ByBoundaries(dist.Uniform(0, 10), []float64{5, 5}, nil)
	require.NoError(t, err, "duplicate boundaries must succeed")

	intervals := dd.Intervals()
	require.Len(t, intervals, 3, "duplicate boundary yields a structural zero-width interval")
	assert.True(t, intervals[1].Degenerate(), "middle interval has zero width")
	assert.Equal(t, 0.0, dd.Probs()[1], "degenerate interval carries no mass")
	requireContiguous(t, intervals)
	requireSumToOne(t, dd)
}

// TestByIntervals_Validation exercises the primitive's input checks.
func TestByIntervals_Validation(t *testing.T) {
	d := dist.Uniform(0, 1)

	_, err := discretize.ByIntervals(d, nil, nil)
	assert.ErrorIs(t, err, discretize.ErrNoIntervals, "empty interval list must error")

	gap := []discretize.Interval{{Lower: 0, Upper: 0.4}, {Lower: 0.5, Upper: 1}}
	_, err = discretize.ByIntervals(d, gap, nil)
	assert.ErrorIs(t, err, discretize.ErrNotContiguous, "gapped intervals must error")

	inverted := []discretize.Interval{{Lower: 1, Upper: 0}}
	_, err = discretize.ByIntervals(d, inverted, nil)
	assert.ErrorIs(t, err, discretize.ErrNotContiguous, "inverted interval must error")
}

// TestByIntervals_VanishingMass verifies the fatal error when the grid
// misses the distribution entirely.
func TestByIntervals_VanishingMass(t *testing.T) {
	off := []discretize.Interval{{Lower: 100, Upper: 101}}
	_, err := discretize.ByIntervals(dist.Uniform(0, 1), off, nil)
	assert.ErrorIs(t, err, discretize.ErrVanishingMass, "a grid outside the support captures no mass")
}

// TestByIntervals_MatchesByWidth verifies the primitive reproduces the
// width entry point given the same edges.
func TestByIntervals_MatchesByWidth(t *testing.T) {
	d := dist.Uniform(0, 10)
	ref, err := discretize.ByWidth(d, 2.5, nil)
	require.NoError(t, err, "width discretisation must succeed")

	prim, err := discretize.ByIntervals(d, ref.Intervals(), nil)
	require.NoError(t, err, "primitive discretisation must succeed")
	assert.Equal(t, ref.Intervals(), prim.Intervals(), "same edges in, same intervals out")
	assert.Equal(t, ref.Probs(), prim.Probs(), "same edges in, same masses out")
}

// TestFromIntervals_Validation exercises the caller-facing constructor.
func TestFromIntervals_Validation(t *testing.T) {
	ivs := []discretize.Interval{{Lower: 0, Upper: 1}, {Lower: 1, Upper: 2}}

	_, err := discretize.FromIntervals(ivs, []float64{0.5})
	assert.ErrorIs(t, err, discretize.ErrBadDistribution, "length mismatch must error")

	_, err = discretize.FromIntervals(ivs, []float64{0.7, 0.7})
	assert.ErrorIs(t, err, discretize.ErrBadDistribution, "probabilities must sum to one")

	dd, err := discretize.FromIntervals(ivs, []float64{0.5, 0.5})
	require.NoError(t, err, "valid input must construct")
	assert.True(t, dd.IntervalValued(), "constructed value is interval-indexed")
	assert.InDelta(t, 1.0, dd.Total(), 1e-12, "total mass is one")
}

// TestFromPoints_Validation exercises the point constructor.
func TestFromPoints_Validation(t *testing.T) {
	_, err := discretize.FromPoints([]float64{1, 1}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, discretize.ErrBadDistribution, "duplicate points must error")

	_, err = discretize.FromPoints([]float64{1, math.Inf(1)}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, discretize.ErrBadDistribution, "infinite points must error")

	dd, err := discretize.FromPoints([]float64{1, 2}, []float64{0.5, 0.5})
	require.NoError(t, err, "valid input must construct")
	assert.False(t, dd.IntervalValued(), "constructed value is point-indexed")
	assert.InDelta(t, 1.5, dd.Mean(), 1e-12, "weighted mean of the points")
}

// TestDiscrete_AccessorsCopy verifies immutability: mutating accessor
// results must not leak back into the value.
func TestDiscrete_AccessorsCopy(t *testing.T) {
	dd, err := discretize.ByWidth(dist.Uniform(0, 10), 2.5, nil)
	require.NoError(t, err, "discretisation must succeed")

	probs := dd.Probs()
	probs[0] = 42
	assert.InDelta(t, 0.25, dd.Probs()[0], 1e-12, "mutation of the copy must not affect the value")

	ivs := dd.Intervals()
	ivs[0].Lower = -99
	assert.Equal(t, 0.0, dd.Intervals()[0].Lower, "interval copy must be detached")
}
