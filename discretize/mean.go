package discretize

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/probin/dist"
)

const (
	// minTrapezoidPoints is the smallest sample count accepted for
	// numerical mean integration; fewer cannot resolve the integral to
	// the accuracy the unbiased method needs.
	minTrapezoidPoints = 64
	// tailQuantile bounds the integration range on unbounded supports.
	tailQuantile = 1e-12
	// massTol is the probability below which a tail is treated as empty.
	massTol = 1e-12
)

// SafeMean returns E[X] for d.
//
// Resolution order:
//  1. The adapter's closed-form mean (dist.Meaner), when finite.
//  2. Discrete input: exact summation k·P(X=k) over the integer lattice
//     between the 1e-12 quantiles.
//  3. Trapezoidal integration of x·pdf(x) over [Q(1e-12), Q(1-1e-12)]
//     with nSamples uniformly spaced points.
//
// The numerical branch rejects nSamples below 64 with ErrTooFewSamples
// instead of silently returning a biased estimate.
func SafeMean(d dist.Distribution, nSamples int) (float64, error) {
	if m, ok := d.(dist.Meaner); ok {
		if mu := m.Mean(); !math.IsInf(mu, 0) && !math.IsNaN(mu) {
			return mu, nil
		}
	}
	if d.Kind() == dist.DiscreteInt {
		return latticeMean(d), nil
	}
	if nSamples < minTrapezoidPoints {
		return 0, ErrTooFewSamples
	}
	lo := d.Quantile(tailQuantile)
	hi := d.Quantile(1 - tailQuantile)
	xs := make([]float64, nSamples)
	floats.Span(xs, lo, hi)
	ys := make([]float64, nSamples)
	for i, x := range xs {
		ys[i] = x * d.Prob(x)
	}
	return integrate.Trapezoidal(xs, ys), nil
}

// latticeMean sums k·P(X=k) over the integer support between the
// extreme quantiles. A lattice pmf is almost-everywhere zero as a
// density, so trapezoid integration would measure nothing.
func latticeMean(d dist.Distribution) float64 {
	lo := math.Ceil(d.Quantile(tailQuantile))
	hi := math.Floor(d.Quantile(1 - tailQuantile))
	var mu float64
	for k := lo; k <= hi; k++ {
		mu += k * d.Prob(k)
	}
	return mu
}

// LimitedExpectation returns E[min(X,u)], the expectation of X capped
// at ceiling u — the L(u) the unbiased alignment is built on.
//
// Shortcuts: u at or above the support supremum is SafeMean; u at or
// below the infimum is u itself; numerically empty tails (mass below
// 1e-12 on either side of u) take the same shortcuts. Otherwise
//
//	E[min(X,u)] = E[X | X ≤ u]·P(X ≤ u) + u·P(X > u)
//
// with the conditional mean estimated by SafeMean over the truncated
// distribution, using nSamples trapezoid points when no closed form
// exists.
func LimitedExpectation(d dist.Distribution, u float64, nSamples int) (float64, error) {
	if u >= d.Max() {
		return SafeMean(d, nSamples)
	}
	if u <= d.Min() {
		return u, nil
	}
	pu := d.CDF(u)
	if pu <= massTol {
		return u, nil
	}
	if 1-pu <= massTol {
		return SafeMean(d, nSamples)
	}
	td, err := dist.Truncate(d, d.Min(), u)
	if err != nil {
		return 0, err
	}
	mu, err := SafeMean(td, nSamples)
	if err != nil {
		return 0, err
	}
	return mu*pu + u*(1-pu), nil
}
