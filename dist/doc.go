// Package dist defines the distribution contract consumed by
// probin/discretize, together with ready-made adapters over gonum's
// stat/distuv families and two combinators of its own.
//
// 🚀 What is dist?
//
//	A minimal capability surface for univariate distributions:
//		• CDF(x)      — cumulative probability, in [0,1]
//		• Prob(x)     — density (continuous) or mass (discrete)
//		• Quantile(p) — inverse CDF
//		• Min, Max    — support bounds, either may be infinite
//		• Kind        — Continuous or DiscreteInt
//
// Ready-made adapters:
//
//	Normal, Exponential, Uniform, LogNormal, Weibull, Gamma — continuous,
//	backed by gonum.org/v1/gonum/stat/distuv; families distuv leaves
//	without a closed-form Quantile (Gamma) invert their CDF by bisection.
//
//	Poisson        — discrete, integer support {0, 1, 2, …}
//	NonParametric  — finite discrete distribution over explicit points
//	Truncate       — conditions any Distribution on a sub-interval of
//	                 its support
//
// Discrete distributions are assumed to place mass only on integers;
// non-integer discrete support is unsupported and not validated.
//
// Adapters with a closed-form mean additionally satisfy Meaner, which
// the truncated-mean estimator in probin/discretize consults before
// falling back to numerical integration.
//
// All values are immutable once constructed; nothing in this package
// performs I/O or holds global state.
package dist
