// Package interp presents a discrete signal source as a continuous-position
// function. Available strategies, from cheapest to highest order:
//
//   - [Nearest]:      nearest-sample selection
//   - [Linear]:       2-point linear interpolation
//   - [Extrapolator]: causal 2-point extrapolation (reads no future samples)
//   - [Lagrange]:     order-2H polynomial via an iterative divided-difference
//     tableau, recomputing abscissa differences per call
//   - [FastLagrange]: same polynomial with reciprocal spacings precomputed at
//     construction; an optimization only, results match [Lagrange]
//
// The integer codes accepted by [New] follow the generator configuration
// convention: 0 nearest, -1 causal extrapolation, 1 linear, >1 polynomial
// half-window size.
//
// Interpolator scratch arrays are reused across calls; instances are neither
// reentrant nor safe for concurrent use.
package interp
