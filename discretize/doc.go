// Package discretize converts a univariate distribution into a discrete
// approximation over contiguous intervals, with five conventions for
// re-expressing the result on points.
//
// 🚀 What is discretize?
//
//	One pipeline with three entry points:
//		• ByWidth(d, w, opts)        — fixed-width grid over the support
//		• ByBoundaries(d, bs, opts)  — caller-chosen cut points, any order
//		• ByIntervals(d, ivs, opts)  — the primitive both reduce to
//
//	Edges → masses → alignment:
//		1. The bound resolver produces ascending edges; infinite support
//		   bounds become quantile-derived edges rounded outward to full
//		   width multiples (Options.MinQuantile / MaxQuantile).
//		2. The mass engine assigns each interval the pseudo-CDF difference
//		   at its edges and normalises exactly once.
//		3. Options.Method collapses intervals to points:
//		   MethodInterval (keep intervals), MethodLeftAligned,
//		   MethodCentred, MethodRightAligned (bounds/midpoints after
//		   infinite-tail removal), or MethodUnbiased (mean-preserving
//		   local moment matching on equal-width grids).
//
// ✨ Guarantees:
//
//   - Probabilities of a discretised result sum to one within 1e-10
//   - Interval results are contiguous: intervals share edges exactly
//   - Every value is immutable; transforms return fresh values
//   - Fatal conditions are sentinel errors; non-fatal ones are typed
//     Diagnostics delivered to Options.OnDiagnostic (nil = discard)
//
// Standalone utilities realign existing Discrete values: LeftAlign,
// Centre, RightAlign (zero-shift variants infer the spacing from the
// support), their *By variants (pure shifts by width/2 or width), and
// RemoveInfiniteTails. SafeMean and LimitedExpectation expose the
// truncated-mean estimator the unbiased method is built on.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/probin/dist"
//	  "github.com/katalvlaran/probin/discretize"
//	)
//
//	opts := discretize.DefaultOptions()
//	opts.Method = discretize.MethodCentred
//
//	dd, err := discretize.ByWidth(dist.Normal(0, 1), 0.1, &opts)
//	if err != nil {
//	  // handle ErrBadWidth, ErrVanishingMass, …
//	}
//	fmt.Println(dd.Points(), dd.Probs())
//
// Discrete input (integer-valued) is handled through a piecewise-uniform
// pseudo-CDF that smears each unit of mass across [k, k+1), so edges may
// fall between integers. Non-integer discrete support is unsupported.
//
// See examples in example_test.go.
package discretize
