package dist

import "math"

// truncated conditions a base distribution on lo ≤ X ≤ hi. It deliberately
// does not satisfy Meaner: the truncated mean has no general closed form,
// so callers fall through to numerical estimation.
type truncated struct {
	base   Distribution
	lo, hi float64
	below  float64 // mass strictly below lo
	z      float64 // mass inside [lo, hi]
}

// Truncate restricts d to the interval [lo, hi], renormalising all
// probability within it. The effective bounds are clipped to d's support.
// Returns ErrBadTruncation when the interval is empty or carries no
// probability mass.
func Truncate(d Distribution, lo, hi float64) (Distribution, error) {
	lo = math.Max(lo, d.Min())
	hi = math.Min(hi, d.Max())
	if !(lo < hi) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, ErrBadTruncation
	}
	var below float64
	switch {
	case math.IsInf(lo, -1):
		below = 0
	case d.Kind() == DiscreteInt:
		// keep the mass sitting exactly on lo inside the truncation
		below = d.CDF(math.Ceil(lo) - 1)
	default:
		below = d.CDF(lo)
	}
	var upper float64
	if math.IsInf(hi, 1) {
		upper = 1
	} else {
		upper = d.CDF(hi)
	}
	z := upper - below
	if !(z > 0) {
		return nil, ErrBadTruncation
	}
	return &truncated{base: d, lo: lo, hi: hi, below: below, z: z}, nil
}

// Kind reports the base distribution's kind.
func (t *truncated) Kind() Kind { return t.base.Kind() }

// CDF returns the conditional P(X ≤ x | lo ≤ X ≤ hi).
func (t *truncated) CDF(x float64) float64 {
	if x < t.lo {
		return 0
	}
	if x >= t.hi {
		return 1
	}
	return (t.base.CDF(x) - t.below) / t.z
}

// Prob returns the renormalised density or mass at x.
func (t *truncated) Prob(x float64) float64 {
	if x < t.lo || x > t.hi {
		return 0
	}
	return t.base.Prob(x) / t.z
}

// Quantile maps p through the base quantile restricted to [lo, hi].
func (t *truncated) Quantile(p float64) float64 {
	if p <= 0 {
		return t.lo
	}
	if p >= 1 {
		return t.hi
	}
	x := t.base.Quantile(t.below + p*t.z)
	// clamp against base quantile noise at the edges
	return math.Min(math.Max(x, t.lo), t.hi)
}

// Min returns the truncation lower bound.
func (t *truncated) Min() float64 { return t.lo }

// Max returns the truncation upper bound.
func (t *truncated) Max() float64 { return t.hi }
