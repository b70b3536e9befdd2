package discretize

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/probin/dist"
)

// widthTol is the relative tolerance for the equal-width requirement of
// the unbiased method.
const widthTol = 1e-9

// alignUnbiased implements the mean-preserving discretisation from the
// actuarial literature (local moment matching of first moments): mass is
// placed on every finite interval edge e_0 < … < e_n so that the
// discrete mean matches E[X] as closely as the truncated-mean estimates
// allow.
//
// With L(u) = E[min(X,u)] and S(u) = 1 - CDF(u):
//
//	p_0 = (L(e_0) - L(e_1))/(e_1 - e_0) + S(e_0)
//	p_j = (2·L(e_j) - L(e_{j-1}) - L(e_{j+1}))/(e_{j+1} - e_j)   0 < j < n
//	p_n = (L(e_n) - L(e_{n-1}))/(e_n - e_{n-1}) - S(e_n)
//
// The S terms fold the tail mass outside [e_0, e_n] into the outermost
// points, so semi-infinite edges are simply excluded up front. All
// widths between the remaining edges must be equal — every adjacent
// pair is checked, not just a sample. Probabilities are clamped at zero
// and normalised to sum to one.
//
// Errors:
//   - ErrTooFewPoints  — fewer than two finite edges.
//   - ErrUnequalWidths — adjacent edge spacings differ.
//   - ErrTooFewSamples — nSamples cannot resolve a numerical mean.
//   - ErrVanishingMass — the moment-matched masses sum to zero.
func alignUnbiased(src dist.Distribution, dd *Discrete, nSamples int) (*Discrete, error) {
	edges := finiteEdges(dd.intervals)
	n := len(edges)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if err := checkEqualWidths(edges); err != nil {
		return nil, err
	}

	limited := make([]float64, n)
	for i, e := range edges {
		v, err := LimitedExpectation(src, e, nSamples)
		if err != nil {
			return nil, err
		}
		limited[i] = v
	}

	probs := make([]float64, n)
	probs[0] = (limited[0]-limited[1])/(edges[1]-edges[0]) + 1 - src.CDF(edges[0])
	probs[n-1] = (limited[n-1]-limited[n-2])/(edges[n-1]-edges[n-2]) - (1 - src.CDF(edges[n-1]))
	for j := 1; j < n-1; j++ {
		probs[j] = (2*limited[j] - limited[j-1] - limited[j+1]) / (edges[j+1] - edges[j])
	}
	for i, p := range probs {
		if p < 0 {
			probs[i] = 0
		}
	}

	total := floats.Sum(probs)
	if !(total > 0) || math.IsInf(total, 1) {
		return nil, ErrVanishingMass
	}
	floats.Scale(1/total, probs)
	return &Discrete{points: edges, probs: probs}, nil
}

// finiteEdges collects the interval edges, excluding semi-infinite ones.
func finiteEdges(intervals []Interval) []float64 {
	edges := make([]float64, 0, len(intervals)+1)
	if !math.IsInf(intervals[0].Lower, -1) {
		edges = append(edges, intervals[0].Lower)
	}
	for _, iv := range intervals {
		if !math.IsInf(iv.Upper, 1) {
			edges = append(edges, iv.Upper)
		}
	}
	return edges
}

// checkEqualWidths requires every adjacent edge spacing to match the
// first one within widthTol.
func checkEqualWidths(edges []float64) error {
	w := edges[1] - edges[0]
	for i := 2; i < len(edges); i++ {
		if math.Abs((edges[i]-edges[i-1])-w) > widthTol*math.Max(1, math.Abs(w)) {
			return ErrUnequalWidths
		}
	}
	return nil
}
