package discretize

import (
	"math"

	"github.com/katalvlaran/probin/dist"
)

// pseudoCDF evaluates the distribution-kind-agnostic CDF surrogate at x.
//
// Continuous input: the CDF itself. Discrete integer-valued input: the
// full mass of all integers strictly below floor(x) plus a linear
// fraction of the mass at floor(x) — each unit of mass is smeared
// uniformly across [k, k+1), so interval edges may fall between
// integers. ±Inf map to 1 and 0 without touching the underlying CDF.
func pseudoCDF(d dist.Distribution, x float64) float64 {
	switch {
	case math.IsInf(x, 1):
		return 1
	case math.IsInf(x, -1):
		return 0
	}
	if d.Kind() == dist.DiscreteInt {
		k := math.Floor(x)
		return d.CDF(k-1) + d.Prob(k)*(x-k)
	}
	return d.CDF(x)
}
