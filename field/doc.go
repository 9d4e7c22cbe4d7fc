// Package field samples noise fields onto rectangular grids and computes
// summary and differential diagnostics over the samples.
//
// What:
//
//   - Scalar: row-major grid of Noise2 (or a Noise3 time slice) samples.
//   - Curl: row-major grid of CurlNoise2 flow vectors.
//   - Divergence: central-difference divergence of a sampled vector grid.
//   - Summary: mean and standard deviation of a scalar grid.
//
// Why:
//
//   - Terrain/texture synthesis: bake a field into a heightmap.
//   - Flow visualization: sample a curl field for particle advection.
//   - Diagnostics: empirical range, bias, and divergence of a field.
//
// Complexity:
//
//   - Scalar / Curl:  O(W×H) time and memory.
//   - Divergence:     O(W×H) time and memory (interior cells only).
//   - Summary:        O(W×H) time, O(1) memory.
//
// Options:
//
//   - Options.Origin: world coordinate of grid cell (0,0).
//   - Options.Step:   world distance between adjacent cells (must be > 0).
//   - Options.Time:   when nonzero, Scalar samples Noise3 on the z=Time plane.
//
// Errors:
//
//   - ErrBadDims: requested width or height is not positive.
//   - ErrBadStep: options carry a non-positive step.
//   - ErrGridTooSmall: divergence needs at least a 3×3 grid.
//   - ErrNonRectangular: rows of a supplied grid differ in length.
package field
