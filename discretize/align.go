package discretize

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/probin/dist"
)

// applyMethod dispatches the interval-indexed result of the mass engine
// to the selected alignment. Unknown Method values fall back to
// MethodInterval with a DiagUnknownMethod event rather than erroring.
func applyMethod(src dist.Distribution, dd *Discrete, o Options) (*Discrete, error) {
	switch o.Method {
	case MethodInterval:
		return dd, nil
	case MethodLeftAligned, MethodCentred, MethodRightAligned:
		return alignBounds(dd, o.Method, o.OnDiagnostic)
	case MethodUnbiased:
		return alignUnbiased(src, dd, o.TrapezoidPoints)
	default:
		emit(o.OnDiagnostic, DiagUnknownMethod,
			"unrecognised method %d, falling back to %s", int(o.Method), MethodInterval)
		return dd, nil
	}
}

// alignBounds maps each interval to one representative point — lower
// bound, midpoint, or upper bound — after removing semi-infinite tail
// intervals and renormalising. Degenerate zero-width intervals are
// skipped so the point support stays strictly increasing.
func alignBounds(dd *Discrete, m Method, diag DiagFunc) (*Discrete, error) {
	trimmed, err := removeInfiniteTails(dd, diag)
	if err != nil {
		return nil, err
	}
	points := make([]float64, 0, trimmed.Len())
	probs := make([]float64, 0, trimmed.Len())
	for i, iv := range trimmed.intervals {
		if iv.Degenerate() {
			continue
		}
		switch m {
		case MethodLeftAligned:
			points = append(points, iv.Lower)
		case MethodCentred:
			points = append(points, iv.Mid())
		case MethodRightAligned:
			points = append(points, iv.Upper)
		}
		probs = append(probs, trimmed.probs[i])
	}
	if len(points) == 0 {
		return nil, ErrVanishingMass
	}
	return &Discrete{points: points, probs: probs}, nil
}

// removeInfiniteTails drops a first interval unbounded below and a last
// interval unbounded above, renormalising the remaining probabilities.
// Each drop raises DiagInfiniteTailDropped. Point-indexed input is
// returned unchanged (points are finite by construction).
func removeInfiniteTails(dd *Discrete, diag DiagFunc) (*Discrete, error) {
	if !dd.IntervalValued() {
		return dd, nil
	}
	start, end := 0, len(dd.intervals)
	if math.IsInf(dd.intervals[0].Lower, -1) {
		emit(diag, DiagInfiniteTailDropped,
			"dropping lower tail interval (-Inf, %g) carrying mass %g",
			dd.intervals[0].Upper, dd.probs[0])
		start = 1
	}
	if end > start && math.IsInf(dd.intervals[end-1].Upper, 1) {
		emit(diag, DiagInfiniteTailDropped,
			"dropping upper tail interval (%g, +Inf) carrying mass %g",
			dd.intervals[end-1].Lower, dd.probs[end-1])
		end--
	}
	if end <= start {
		return nil, ErrVanishingMass
	}
	if start == 0 && end == len(dd.intervals) {
		return dd, nil
	}
	intervals := append([]Interval(nil), dd.intervals[start:end]...)
	probs := append([]float64(nil), dd.probs[start:end]...)
	total := floats.Sum(probs)
	if !(total > 0) {
		return nil, ErrVanishingMass
	}
	floats.Scale(1/total, probs)
	return &Discrete{intervals: intervals, probs: probs}, nil
}

// RemoveInfiniteTails returns dd without semi-infinite tail intervals,
// renormalised to sum to one. Drops are reported to the optional
// observer. Returns ErrVanishingMass when nothing finite remains.
func RemoveInfiniteTails(dd *Discrete, onDiag ...DiagFunc) (*Discrete, error) {
	return removeInfiniteTails(dd, firstDiag(onDiag))
}

// LeftAlign re-expresses dd on points at interval lower bounds.
//
// Interval-indexed input goes through infinite-tail removal (with
// renormalisation) first, so LeftAlign(ByWidth(d, w, nil)) matches
// ByWidth(d, w, &Options{Method: MethodLeftAligned}) exactly.
// Point-indexed input is already left-aligned and is returned as is.
func LeftAlign(dd *Discrete, onDiag ...DiagFunc) (*Discrete, error) {
	if !dd.IntervalValued() {
		return dd, nil
	}
	return alignBounds(dd, MethodLeftAligned, firstDiag(onDiag))
}

// Centre re-expresses dd on interval midpoints.
//
// Point-indexed input treats each point as the left edge of a bin
// reaching to the next point: the result has the n-1 adjacent midpoints
// with the first n-1 probabilities, dropping the final mass without
// renormalising. Fewer than two points is ErrTooFewPoints — there is no
// spacing to interpolate across.
func Centre(dd *Discrete, onDiag ...DiagFunc) (*Discrete, error) {
	if dd.IntervalValued() {
		return alignBounds(dd, MethodCentred, firstDiag(onDiag))
	}
	if dd.Len() < 2 {
		return nil, ErrTooFewPoints
	}
	n := dd.Len()
	points := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		points[i] = dd.points[i] + (dd.points[i+1]-dd.points[i])/2
	}
	return &Discrete{points: points, probs: append([]float64(nil), dd.probs[:n-1]...)}, nil
}

// RightAlign re-expresses dd on interval upper bounds.
//
// Point-indexed input shifts each mass to the next point, dropping the
// final mass without renormalising; fewer than two points is
// ErrTooFewPoints.
func RightAlign(dd *Discrete, onDiag ...DiagFunc) (*Discrete, error) {
	if dd.IntervalValued() {
		return alignBounds(dd, MethodRightAligned, firstDiag(onDiag))
	}
	if dd.Len() < 2 {
		return nil, ErrTooFewPoints
	}
	n := dd.Len()
	return &Discrete{
		points: append([]float64(nil), dd.points[1:]...),
		probs:  append([]float64(nil), dd.probs[:n-1]...),
	}, nil
}

// LeftAlignBy is the explicit-width variant of LeftAlign. Points are
// taken to be left bin edges already, so the shift is zero and the
// input is returned unchanged; the variant exists for API symmetry with
// CentreBy and RightAlignBy and never errors.
func LeftAlignBy(dd *Discrete, width float64) *Discrete {
	return shiftBy(dd, 0)
}

// CentreBy shifts every support value by width/2. Always well-defined,
// never errors, and drops nothing.
func CentreBy(dd *Discrete, width float64) *Discrete {
	return shiftBy(dd, width/2)
}

// RightAlignBy shifts every support value by width. Always well-defined,
// never errors, and drops nothing.
func RightAlignBy(dd *Discrete, width float64) *Discrete {
	return shiftBy(dd, width)
}

// shiftBy translates the support by delta, preserving the support kind.
func shiftBy(dd *Discrete, delta float64) *Discrete {
	out := &Discrete{probs: append([]float64(nil), dd.probs...)}
	if dd.IntervalValued() {
		out.intervals = make([]Interval, len(dd.intervals))
		for i, iv := range dd.intervals {
			out.intervals[i] = Interval{Lower: iv.Lower + delta, Upper: iv.Upper + delta}
		}
		return out
	}
	out.points = make([]float64, len(dd.points))
	for i, p := range dd.points {
		out.points[i] = p + delta
	}
	return out
}

// firstDiag unpacks the optional observer argument of the standalone
// utilities.
func firstDiag(fs []DiagFunc) DiagFunc {
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}
