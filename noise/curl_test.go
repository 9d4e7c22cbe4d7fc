package noise_test

import (
	"testing"

	"github.com/katalvlaran/noisegrad/noise"
	"github.com/katalvlaran/noisegrad/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// divergence stencil step and tolerance: the fields are C¹ in their
// construction, so the central-difference divergence converges to the
// analytic zero at O(h²).
const (
	divEps = 5e-4
	divTol = 1e-3
)

// TestCurlNoise2_DivergenceFree checks ∂Fx/∂x + ∂Fy/∂y ≈ 0 at sampled
// interior points.
func TestCurlNoise2_DivergenceFree(t *testing.T) {
	for _, seed := range []uint32{2, 17} {
		for _, p := range []vec.Vec2{
			{X: 0.31, Y: 0.62},
			{X: -1.55, Y: 2.27},
			{X: 4.12, Y: -3.81},
		} {
			dFxDx := (noise.CurlNoise2(seed, vec.Vec2{X: p.X + divEps, Y: p.Y}).X -
				noise.CurlNoise2(seed, vec.Vec2{X: p.X - divEps, Y: p.Y}).X) / (2 * divEps)
			dFyDy := (noise.CurlNoise2(seed, vec.Vec2{X: p.X, Y: p.Y + divEps}).Y -
				noise.CurlNoise2(seed, vec.Vec2{X: p.X, Y: p.Y - divEps}).Y) / (2 * divEps)

			div := dFxDx + dFyDy
			require.True(t, scalar.EqualWithinAbs(div, 0, divTol),
				"seed=%d p=%+v div=%v", seed, p, div)
		}
	}
}

// TestCurlNoise3_DivergenceFree checks the 3D discrete-curl construction
// is divergence-free to stencil accuracy.
func TestCurlNoise3_DivergenceFree(t *testing.T) {
	for _, seed := range []uint32{2, 17} {
		for _, p := range []vec.Vec3{
			{X: 0.31, Y: 0.62, Z: 0.44},
			{X: -1.55, Y: 2.27, Z: -0.73},
			{X: 4.12, Y: -3.81, Z: 7.29},
		} {
			dFxDx := (noise.CurlNoise3(seed, vec.Vec3{X: p.X + divEps, Y: p.Y, Z: p.Z}).X -
				noise.CurlNoise3(seed, vec.Vec3{X: p.X - divEps, Y: p.Y, Z: p.Z}).X) / (2 * divEps)
			dFyDy := (noise.CurlNoise3(seed, vec.Vec3{X: p.X, Y: p.Y + divEps, Z: p.Z}).Y -
				noise.CurlNoise3(seed, vec.Vec3{X: p.X, Y: p.Y - divEps, Z: p.Z}).Y) / (2 * divEps)
			dFzDz := (noise.CurlNoise3(seed, vec.Vec3{X: p.X, Y: p.Y, Z: p.Z + divEps}).Z -
				noise.CurlNoise3(seed, vec.Vec3{X: p.X, Y: p.Y, Z: p.Z - divEps}).Z) / (2 * divEps)

			div := dFxDx + dFyDy + dFzDz
			require.True(t, scalar.EqualWithinAbs(div, 0, divTol),
				"seed=%d p=%+v div=%v", seed, p, div)
		}
	}
}

// TestCurlNoise4_DivergenceFree checks the projected 4D construction is
// divergence-free over its three spatial axes at a fixed time slice.
func TestCurlNoise4_DivergenceFree(t *testing.T) {
	p := vec.Vec4{X: 0.31, Y: 0.62, Z: 0.44, W: 1.37}

	dFxDx := (noise.CurlNoise4(6, vec.Vec4{X: p.X + divEps, Y: p.Y, Z: p.Z, W: p.W}).X -
		noise.CurlNoise4(6, vec.Vec4{X: p.X - divEps, Y: p.Y, Z: p.Z, W: p.W}).X) / (2 * divEps)
	dFyDy := (noise.CurlNoise4(6, vec.Vec4{X: p.X, Y: p.Y + divEps, Z: p.Z, W: p.W}).Y -
		noise.CurlNoise4(6, vec.Vec4{X: p.X, Y: p.Y - divEps, Z: p.Z, W: p.W}).Y) / (2 * divEps)
	dFzDz := (noise.CurlNoise4(6, vec.Vec4{X: p.X, Y: p.Y, Z: p.Z + divEps, W: p.W}).Z -
		noise.CurlNoise4(6, vec.Vec4{X: p.X, Y: p.Y, Z: p.Z - divEps, W: p.W}).Z) / (2 * divEps)

	div := dFxDx + dFyDy + dFzDz
	require.True(t, scalar.EqualWithinAbs(div, 0, divTol), "div=%v", div)
}

// TestCurlNoise_Deterministic verifies curl fields replay bit-identically
// and that the re-seeded component fields actually differ from the base
// field.
func TestCurlNoise_Deterministic(t *testing.T) {
	p3 := vec.Vec3{X: 1.4, Y: -0.6, Z: 2.9}
	assert.Equal(t, noise.CurlNoise3(12, p3), noise.CurlNoise3(12, p3))
	assert.NotEqual(t, noise.CurlNoise3(12, p3), noise.CurlNoise3(13, p3))

	p2 := vec.Vec2{X: 1.4, Y: -0.6}
	assert.Equal(t, noise.CurlNoise2(12, p2), noise.CurlNoise2(12, p2))
}

// TestCurlNoise_LatticePointZero verifies curl fields vanish exactly at
// integer coordinates, where every gradient component is masked to zero.
func TestCurlNoise_LatticePointZero(t *testing.T) {
	v2 := noise.CurlNoise2(5, vec.Vec2{X: 1, Y: -2})
	assert.Equal(t, 0.0, v2.Norm())

	v3 := noise.CurlNoise3(5, vec.Vec3{X: 1, Y: -2, Z: 0})
	assert.Equal(t, 0.0, v3.Norm())
}
