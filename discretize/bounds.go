package discretize

import (
	"math"
	"sort"

	"github.com/katalvlaran/probin/dist"
)

// edgeTol absorbs floating-point drift when deciding whether a support
// bound already sits on a width multiple.
const edgeTol = 1e-9

// resolveWidthEdges builds ascending interval edges at multiples of
// width spanning the distribution's support.
//
// Infinite natural bounds are replaced by quantile-derived edges rounded
// outward to the next full width multiple — floor(Q(minQ)/w)-1 below,
// ceil(Q(maxQ)/w)+1 above — so the quantile mass is always captured.
// Finite natural bounds that are not exact multiples become partial
// first/last edges, making the outermost intervals narrower than width.
func resolveWidthEdges(d dist.Distribution, width, minQ, maxQ float64) []float64 {
	lo := d.Min()
	hi := d.Max()
	if math.IsInf(lo, -1) {
		lo = (math.Floor(d.Quantile(minQ)/width) - 1) * width
	}
	if math.IsInf(hi, 1) {
		hi = (math.Ceil(d.Quantile(maxQ)/width) + 1) * width
	}

	// multiples of width strictly inside (lo, hi)
	kLo := int(math.Floor(lo/width+edgeTol)) + 1
	kHi := int(math.Ceil(hi/width-edgeTol)) - 1

	edges := make([]float64, 0, kHi-kLo+3)
	edges = append(edges, lo)
	for k := kLo; k <= kHi; k++ {
		edges = append(edges, float64(k)*width)
	}
	edges = append(edges, hi)
	return edges
}

// resolveBoundaryEdges sorts caller-supplied boundaries ascending, drops
// any outside the open support interval, and caps the sequence with the
// (possibly infinite) support bounds. Duplicate boundaries survive as
// degenerate zero-width intervals; the mass engine assigns them zero
// probability.
func resolveBoundaryEdges(d dist.Distribution, boundaries []float64) []float64 {
	bs := append([]float64(nil), boundaries...)
	sort.Float64s(bs)

	lo, hi := d.Min(), d.Max()
	edges := make([]float64, 0, len(bs)+2)
	edges = append(edges, lo)
	for _, b := range bs {
		if b > lo && b < hi {
			edges = append(edges, b)
		}
	}
	edges = append(edges, hi)
	return edges
}
