package noise

import (
	"github.com/katalvlaran/noisegrad/rng"
	"github.com/katalvlaran/noisegrad/vec"
)

// CurlNoise2 returns a divergence-free 2D vector field: the perpendicular
// of the scalar field's gradient at p. Divergence-free by construction
// (the closed-form 2D curl of a scalar potential).
//
// Curl noise is forward-only: its adjoint is defined as a no-op, so no
// CurlNoise2Backward exists. Differentiating through curl noise is
// unsupported.
func CurlNoise2(seed uint32, p vec.Vec2) vec.Vec2 {
	g := noiseGrad2(seed, p)
	return vec.Vec2{X: -g.Y, Y: g.X}
}

// CurlNoise3 returns a divergence-free 3D vector field built from three
// decorrelated scalar fields: the second and third fields re-hash the seed
// through the fixed offsets curlReseedB and curlReseedC, and the three
// gradients combine as a discrete curl. Forward-only, like CurlNoise2.
func CurlNoise3(seed uint32, p vec.Vec3) vec.Vec3 {
	g1 := noiseGrad3(seed, p)
	seed = uint32(rng.Init2(seed, curlReseedB))
	g2 := noiseGrad3(seed, p)
	seed = uint32(rng.Init2(seed, curlReseedC))
	g3 := noiseGrad3(seed, p)

	return vec.Vec3{
		X: g3.Y - g2.Z,
		Y: g1.Z - g3.X,
		Z: g2.X - g1.Y,
	}
}

// CurlNoise4 is the 4D analogue of CurlNoise3, projected onto three output
// components: the fourth axis (time) varies the field without contributing
// an output component. Forward-only.
func CurlNoise4(seed uint32, p vec.Vec4) vec.Vec3 {
	g1 := noiseGrad4(seed, p)
	seed = uint32(rng.Init2(seed, curlReseedB))
	g2 := noiseGrad4(seed, p)
	seed = uint32(rng.Init2(seed, curlReseedC))
	g3 := noiseGrad4(seed, p)

	return vec.Vec3{
		X: g3.Y - g2.Z,
		Y: g1.Z - g3.X,
		Z: g2.X - g1.Y,
	}
}
