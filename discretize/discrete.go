package discretize

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Discrete is a discrete distribution over an ascending support of
// either intervals or points. It is immutable once constructed: every
// transform in this package returns a fresh value and accessors return
// copies of the underlying slices.
//
// Probabilities of a freshly discretised value sum to one within
// numerical tolerance. The zero-shift Centre and RightAlign utilities
// are the documented exception: they drop the final mass without
// renormalising.
type Discrete struct {
	intervals []Interval // nil when point-indexed
	points    []float64  // nil when interval-indexed
	probs     []float64
}

// FromIntervals builds an interval-indexed Discrete from caller-supplied
// intervals and probabilities. Intervals must be ascending and share
// edges exactly (interval i's Upper equals interval i+1's Lower);
// probabilities must be non-negative and sum to one within 1e-9.
func FromIntervals(intervals []Interval, probs []float64) (*Discrete, error) {
	if len(intervals) == 0 {
		return nil, ErrNoIntervals
	}
	if len(intervals) != len(probs) {
		return nil, ErrBadDistribution
	}
	if err := checkContiguous(intervals); err != nil {
		return nil, err
	}
	if !validWeights(probs) {
		return nil, ErrBadDistribution
	}
	return &Discrete{
		intervals: append([]Interval(nil), intervals...),
		probs:     append([]float64(nil), probs...),
	}, nil
}

// FromPoints builds a point-indexed Discrete from strictly increasing
// finite points and probabilities summing to one within 1e-9.
func FromPoints(points, probs []float64) (*Discrete, error) {
	if len(points) == 0 || len(points) != len(probs) {
		return nil, ErrBadDistribution
	}
	for i, p := range points {
		if math.IsInf(p, 0) || math.IsNaN(p) {
			return nil, ErrBadDistribution
		}
		if i > 0 && p <= points[i-1] {
			return nil, ErrBadDistribution
		}
	}
	if !validWeights(probs) {
		return nil, ErrBadDistribution
	}
	return &Discrete{
		points: append([]float64(nil), points...),
		probs:  append([]float64(nil), probs...),
	}, nil
}

// IntervalValued reports whether the support is interval-valued.
func (d *Discrete) IntervalValued() bool { return d.intervals != nil }

// Len returns the number of support entries.
func (d *Discrete) Len() int { return len(d.probs) }

// Intervals returns a copy of the interval support, nil for
// point-indexed values.
func (d *Discrete) Intervals() []Interval {
	if d.intervals == nil {
		return nil
	}
	return append([]Interval(nil), d.intervals...)
}

// Points returns a copy of the point support, nil for interval-indexed
// values.
func (d *Discrete) Points() []float64 {
	if d.points == nil {
		return nil
	}
	return append([]float64(nil), d.points...)
}

// Probs returns a copy of the probabilities.
func (d *Discrete) Probs() []float64 {
	return append([]float64(nil), d.probs...)
}

// Total returns the sum of the probabilities. One for discretised
// results; less after a mass-dropping utility.
func (d *Discrete) Total() float64 {
	var sum float64
	for _, p := range d.probs {
		sum += p
	}
	return sum
}

// Mean returns the probability-weighted mean of the support. Interval
// support is represented by midpoints, so a semi-infinite tail interval
// yields ±Inf or NaN.
func (d *Discrete) Mean() float64 {
	if !d.IntervalValued() {
		return stat.Mean(d.points, d.probs)
	}
	mids := make([]float64, len(d.intervals))
	for i, iv := range d.intervals {
		mids[i] = iv.Mid()
	}
	return stat.Mean(mids, d.probs)
}

// checkContiguous verifies ascending order and exactly shared edges.
func checkContiguous(intervals []Interval) error {
	for i, iv := range intervals {
		if math.IsNaN(iv.Lower) || math.IsNaN(iv.Upper) || iv.Upper < iv.Lower {
			return ErrNotContiguous
		}
		if i > 0 && iv.Lower != intervals[i-1].Upper {
			return ErrNotContiguous
		}
	}
	return nil
}

// validWeights reports non-negative probabilities summing to one
// within 1e-9.
func validWeights(probs []float64) bool {
	var total float64
	for _, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return false
		}
		total += p
	}
	return math.Abs(total-1) <= 1e-9
}
