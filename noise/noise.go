package noise

import "github.com/katalvlaran/noisegrad/vec"

// Noise1 evaluates the 1D gradient-noise field identified by seed at x.
//
// The result is continuous and C²-differentiable everywhere, zero at every
// integer coordinate, and bounded by the unit gradient magnitude. Identical
// (seed, x) pairs always return bit-identical values.
func Noise1(seed uint32, x float64) float64 {
	x0, x1, fx := split(x)

	return evalForward(seed,
		[maxDim]int32{x0},
		[maxDim]int32{x1},
		[maxDim]float64{fx},
		1)
}

// Noise2 evaluates the 2D gradient-noise field identified by seed at p.
func Noise2(seed uint32, p vec.Vec2) float64 {
	x0, x1, fx := split(p.X)
	y0, y1, fy := split(p.Y)

	return evalForward(seed,
		[maxDim]int32{x0, y0},
		[maxDim]int32{x1, y1},
		[maxDim]float64{fx, fy},
		2)
}

// Noise3 evaluates the 3D gradient-noise field identified by seed at p.
func Noise3(seed uint32, p vec.Vec3) float64 {
	x0, x1, fx := split(p.X)
	y0, y1, fy := split(p.Y)
	z0, z1, fz := split(p.Z)

	return evalForward(seed,
		[maxDim]int32{x0, y0, z0},
		[maxDim]int32{x1, y1, z1},
		[maxDim]float64{fx, fy, fz},
		3)
}

// Noise4 evaluates the 4D gradient-noise field identified by seed at p.
// The fourth axis is conventionally time.
func Noise4(seed uint32, p vec.Vec4) float64 {
	x0, x1, fx := split(p.X)
	y0, y1, fy := split(p.Y)
	z0, z1, fz := split(p.Z)
	t0, t1, ft := split(p.W)

	return evalForward(seed,
		[maxDim]int32{x0, y0, z0, t0},
		[maxDim]int32{x1, y1, z1, t1},
		[maxDim]float64{fx, fy, fz, ft},
		4)
}
