// Package noise provides deterministic, seeded gradient-noise fields in 1–4
// dimensions together with their exact analytic derivatives, plus periodic
// (tiling) variants and a divergence-free curl-noise construction.
//
// 🚀 What is it for?
//
//	The package is the forward/backward primitive pair of a reverse-mode
//	differentiable computation: the enclosing system evaluates Noise* while
//	running forward and calls the matching *Backward once per forward call
//	while unwinding, feeding it the upstream adjoint scalar.  It is equally
//	usable standalone wherever smooth seeded fields are needed:
//	  • procedural terrain / texture synthesis
//	  • fluid-like particle advection through CurlNoise
//	  • smooth pseudo-random animation channels (Noise4 with a time axis)
//
// ✨ Key properties:
//   - deterministic: identical (seed, coordinate) → bit-identical output
//   - C²-continuous across lattice boundaries (smootherstep kernel)
//   - exact analytic gradients, not finite differences
//   - pure functions: no shared state, no allocation, safe for any
//     number of concurrent callers
//   - PNoise* tiles seamlessly with caller-chosen positive periods per axis
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/noisegrad/noise"
//	  "github.com/katalvlaran/noisegrad/vec"
//	)
//
//	v := noise.Noise2(seed, vec.Vec2{X: 1.3, Y: -4.2})
//
//	// reverse-mode step: accumulate d(output)/d(coord) into adj
//	var adj vec.Vec2
//	noise.Noise2Backward(seed, vec.Vec2{X: 1.3, Y: -4.2}, upstream, &adj)
//
// The seed is not a differentiable input and the Backward functions carry no
// adjoint slot for it; periods of the PNoise* family are likewise plain
// values.  CurlNoise* is forward-only: its adjoint is defined as a no-op and
// no Backward counterpart is exported.
//
// The backward evaluators write into caller-owned accumulators with +=,
// never =, because one coordinate may collect contributions from several
// noise calls in a larger computation.  Concurrent writers to the same
// accumulator must be serialized by the caller.
package noise
