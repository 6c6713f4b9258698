// Package fit provides the chi-squared minimization and uncertainty
// estimation core shared by the analyses.
//
// The package offers two minimizers behind one contract (objective and
// initial guess in, minimizing parameter vector or ErrNoConvergence out):
//
//   - [Descend]: fixed-step neighbour-comparison walk for one parameter
//   - [Minimize]: Nelder-Mead simplex for multi-parameter objectives
//
// Uncertainties come from the chi-squared min+1 confidence boundary:
//
//   - [BoundaryError]: 1-D crossing search, one symmetric error
//   - [SweepSurface] + [Surface.TraceContour] + [ContourErrors]: 2-D
//     contour extent, one error per parameter
//
// # Undefined objectives
//
// Physical models may be undefined for some candidate parameters (for
// example a negative square-root argument in the tunnelling model). Both
// minimizers treat NaN as worse than any defined value and step away from
// it; an undefined objective is never surfaced to the caller.
package fit
