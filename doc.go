// Package noisegrad is deterministic, seeded gradient noise for Go — 1 to 4
// dimensions, exact analytic derivatives, periodic tiling, and curl noise.
//
// 🚀 What is noisegrad?
//
//	A pure-Go building block for differentiable procedural fields:
//		• Forward evaluation: Noise1..Noise4 over seeded lattice gradients
//		• Backward evaluation: exact coordinate adjoints, not finite differences
//		• PNoise variants: seamless tiling with per-axis integer periods
//		• CurlNoise: divergence-free flow fields for fluid-like motion
//		• field: grid sampling, divergence stencils, summary statistics
//		• cmd/noiseview: a terminal animator for eyeballing fields
//
// ✨ Why choose noisegrad?
//
//   - Deterministic – identical (seed, coordinate) is bit-identical output
//   - Differentiable – backward entry points produce the true analytic
//     gradient of the forward value, verified by finite differences
//   - Concurrent by construction – every evaluation is a pure function
//     with no shared state and no allocation
//   - C²-continuous – smootherstep blending keeps fields smooth across
//     lattice boundaries
//
// Under the hood, everything is organized under four subpackages:
//
//	vec/    — Vec2/Vec3/Vec4 value types with named components
//	rng/    — the seeded PCG hash state behind lattice gradients
//	noise/  — forward, backward, periodic and curl evaluation
//	field/  — rectangular grid sampling and diagnostics
//
// Quick ASCII example:
//
//	  g00───g10        gradients hashed per lattice node,
//	   │  p  │         dot products with the offsets to p,
//	  g01───g11        blended by smootherstep along each axis.
//
// Dive into the per-package docs for contracts and complexity notes, and
// into examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/noisegrad
package noisegrad
