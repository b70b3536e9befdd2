package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// continuous adapts a distuv continuous family to the Distribution
// contract. The quantile func may be nil, in which case the CDF is
// inverted by bisection over the support.
type continuous struct {
	cdf      func(float64) float64
	pdf      func(float64) float64
	quantile func(float64) float64
	mean     float64
	lo, hi   float64
}

// Kind reports Continuous.
func (c *continuous) Kind() Kind { return Continuous }

// CDF returns P(X ≤ x), clamped outside the support so families whose
// distuv CDF is undefined below their lower bound stay well-behaved.
func (c *continuous) CDF(x float64) float64 {
	if x <= c.lo {
		return 0
	}
	if x >= c.hi {
		return 1
	}
	return c.cdf(x)
}

// Prob returns the density at x, zero outside the support.
func (c *continuous) Prob(x float64) float64 {
	if x < c.lo || x > c.hi {
		return 0
	}
	return c.pdf(x)
}

// Quantile returns the smallest x with CDF(x) ≥ p.
func (c *continuous) Quantile(p float64) float64 {
	if p <= 0 {
		return c.lo
	}
	if p >= 1 {
		return c.hi
	}
	if c.quantile != nil {
		return c.quantile(p)
	}
	return bisectQuantile(c.CDF, p, c.lo, c.hi)
}

// Min returns the infimum of the support.
func (c *continuous) Min() float64 { return c.lo }

// Max returns the supremum of the support.
func (c *continuous) Max() float64 { return c.hi }

// Mean returns the closed-form mean of the family.
func (c *continuous) Mean() float64 { return c.mean }

// Normal returns a normal distribution with mean mu and standard
// deviation sigma. Parameters follow distuv.Normal semantics.
func Normal(mu, sigma float64) Distribution {
	n := distuv.Normal{Mu: mu, Sigma: sigma}
	return &continuous{
		cdf:      n.CDF,
		pdf:      n.Prob,
		quantile: n.Quantile,
		mean:     n.Mean(),
		lo:       math.Inf(-1),
		hi:       math.Inf(1),
	}
}

// Exponential returns an exponential distribution with the given rate.
func Exponential(rate float64) Distribution {
	e := distuv.Exponential{Rate: rate}
	return &continuous{
		cdf:      e.CDF,
		pdf:      e.Prob,
		quantile: e.Quantile,
		mean:     e.Mean(),
		lo:       0,
		hi:       math.Inf(1),
	}
}

// Uniform returns a uniform distribution on [a, b].
func Uniform(a, b float64) Distribution {
	u := distuv.Uniform{Min: a, Max: b}
	return &continuous{
		cdf:      u.CDF,
		pdf:      u.Prob,
		quantile: u.Quantile,
		mean:     u.Mean(),
		lo:       a,
		hi:       b,
	}
}

// LogNormal returns a log-normal distribution: ln X ~ N(mu, sigma).
func LogNormal(mu, sigma float64) Distribution {
	l := distuv.LogNormal{Mu: mu, Sigma: sigma}
	return &continuous{
		cdf:      l.CDF,
		pdf:      l.Prob,
		quantile: l.Quantile,
		mean:     l.Mean(),
		lo:       0,
		hi:       math.Inf(1),
	}
}

// Weibull returns a Weibull distribution with shape k and scale lambda.
func Weibull(k, lambda float64) Distribution {
	w := distuv.Weibull{K: k, Lambda: lambda}
	return &continuous{
		cdf:      w.CDF,
		pdf:      w.Prob,
		quantile: w.Quantile,
		mean:     w.Mean(),
		lo:       0,
		hi:       math.Inf(1),
	}
}

// Gamma returns a gamma distribution with shape alpha and rate beta.
// distuv.Gamma carries no closed-form quantile, so the CDF is inverted
// numerically.
func Gamma(alpha, beta float64) Distribution {
	g := distuv.Gamma{Alpha: alpha, Beta: beta}
	return &continuous{
		cdf:  g.CDF,
		pdf:  g.Prob,
		mean: g.Mean(),
		lo:   0,
		hi:   math.Inf(1),
	}
}

// bisectQuantile inverts a monotone CDF by bisection. Infinite support
// bounds are first replaced by finite brackets grown geometrically until
// they enclose the target probability.
func bisectQuantile(cdf func(float64) float64, p, lo, hi float64) float64 {
	a, b := lo, hi
	if math.IsInf(a, -1) {
		a = -1
		for cdf(a) > p {
			a *= 2
			if math.IsInf(a, -1) {
				break
			}
		}
	}
	if math.IsInf(b, 1) {
		b = math.Max(1, a+1)
		for cdf(b) < p {
			b *= 2
			if math.IsInf(b, 1) {
				break
			}
		}
	}
	for i := 0; i < 200 && b-a > 1e-13*math.Max(1, math.Abs(a)+math.Abs(b)); i++ {
		mid := 0.5 * (a + b)
		if cdf(mid) < p {
			a = mid
		} else {
			b = mid
		}
	}
	return 0.5 * (a + b)
}
