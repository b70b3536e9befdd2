package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// probTol is the slack used when checking that weights sum to one.
const probTol = 1e-9

// discrete adapts an integer-valued family to the Distribution contract.
// The quantile is found by scanning the integer lattice upward from the
// lower support bound, which all provided discrete families keep finite.
type discrete struct {
	cdf    func(float64) float64
	pmf    func(float64) float64
	mean   float64
	lo, hi float64
}

// Kind reports DiscreteInt.
func (d *discrete) Kind() Kind { return DiscreteInt }

// CDF returns P(X ≤ x), clamped outside the support so evaluation at
// lattice points below Min (the pseudo-CDF does this) stays defined.
func (d *discrete) CDF(x float64) float64 {
	if x < d.lo {
		return 0
	}
	if x >= d.hi {
		return 1
	}
	return d.cdf(x)
}

// Prob returns the mass at x, zero outside the support.
func (d *discrete) Prob(x float64) float64 {
	if x < d.lo || x > d.hi {
		return 0
	}
	return d.pmf(x)
}

// Quantile returns the smallest integer k with CDF(k) ≥ p.
func (d *discrete) Quantile(p float64) float64 {
	if p <= 0 {
		return d.lo
	}
	if p >= 1 {
		return d.hi
	}
	k := math.Floor(d.lo)
	for d.CDF(k) < p && k < d.hi {
		k++
	}
	return k
}

// Min returns the infimum of the support.
func (d *discrete) Min() float64 { return d.lo }

// Max returns the supremum of the support.
func (d *discrete) Max() float64 { return d.hi }

// Mean returns the closed-form mean of the family.
func (d *discrete) Mean() float64 { return d.mean }

// Poisson returns a Poisson distribution with the given rate, supported
// on {0, 1, 2, …}.
func Poisson(lambda float64) Distribution {
	p := distuv.Poisson{Lambda: lambda}
	return &discrete{
		cdf:  p.CDF,
		pmf:  p.Prob,
		mean: p.Mean(),
		lo:   0,
		hi:   math.Inf(1),
	}
}

// nonParametric is a finite discrete distribution over explicit points.
type nonParametric struct {
	xs, ps []float64
	mean   float64
}

// NonParametric returns a finite discrete distribution placing
// probability ps[i] on point xs[i]. xs must be finite and strictly
// increasing; ps must be non-negative and sum to one. Points are
// expected to be integers (the documented discrete-support limitation);
// this is not validated.
func NonParametric(xs, ps []float64) (Distribution, error) {
	if len(xs) == 0 || len(xs) != len(ps) {
		return nil, ErrBadSupport
	}
	var total, mean float64
	for i, x := range xs {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, ErrBadSupport
		}
		if i > 0 && x <= xs[i-1] {
			return nil, ErrBadSupport
		}
		if ps[i] < 0 || math.IsNaN(ps[i]) {
			return nil, ErrBadWeights
		}
		total += ps[i]
		mean += x * ps[i]
	}
	if math.Abs(total-1) > probTol {
		return nil, ErrBadWeights
	}
	return &nonParametric{
		xs:   append([]float64(nil), xs...),
		ps:   append([]float64(nil), ps...),
		mean: mean,
	}, nil
}

// Kind reports DiscreteInt.
func (n *nonParametric) Kind() Kind { return DiscreteInt }

// CDF returns the total mass at points ≤ x.
func (n *nonParametric) CDF(x float64) float64 {
	var sum float64
	for i, p := range n.ps {
		if n.xs[i] > x {
			break
		}
		sum += p
	}
	return sum
}

// Prob returns the mass at x, zero off the stored points.
func (n *nonParametric) Prob(x float64) float64 {
	for i, xi := range n.xs {
		if xi == x {
			return n.ps[i]
		}
		if xi > x {
			break
		}
	}
	return 0
}

// Quantile returns the smallest stored point whose cumulative mass
// reaches p.
func (n *nonParametric) Quantile(p float64) float64 {
	if p <= 0 {
		return n.xs[0]
	}
	var sum float64
	for i, pi := range n.ps {
		sum += pi
		if sum >= p {
			return n.xs[i]
		}
	}
	return n.xs[len(n.xs)-1]
}

// Min returns the smallest stored point.
func (n *nonParametric) Min() float64 { return n.xs[0] }

// Max returns the largest stored point.
func (n *nonParametric) Max() float64 { return n.xs[len(n.xs)-1] }

// Mean returns the weighted mean of the stored points.
func (n *nonParametric) Mean() float64 { return n.mean }
