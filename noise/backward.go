package noise

import "github.com/katalvlaran/noisegrad/vec"

// The Backward functions compute the exact analytic partial derivatives of
// the matching forward call with respect to each coordinate component,
// scale them by the caller's upstream adjoint scalar, and accumulate the
// result into the caller-owned adjoint storage with +=. They never
// overwrite: one coordinate may collect contributions from several noise
// calls in a larger reverse-mode computation. The seed is not
// differentiable and has no adjoint slot.

// noiseGrad1 returns d Noise1 / dx.
func noiseGrad1(seed uint32, x float64) float64 {
	x0, x1, fx := split(x)
	g := evalBackward(seed,
		[maxDim]int32{x0},
		[maxDim]int32{x1},
		[maxDim]float64{fx},
		[maxDim]float64{heaviside(fx)},
		1)
	return g[0]
}

// noiseGrad2 returns the gradient of Noise2 at p.
func noiseGrad2(seed uint32, p vec.Vec2) vec.Vec2 {
	x0, x1, fx := split(p.X)
	y0, y1, fy := split(p.Y)
	g := evalBackward(seed,
		[maxDim]int32{x0, y0},
		[maxDim]int32{x1, y1},
		[maxDim]float64{fx, fy},
		[maxDim]float64{heaviside(fx), heaviside(fy)},
		2)
	return vec.Vec2{X: g[0], Y: g[1]}
}

// noiseGrad3 returns the gradient of Noise3 at p.
func noiseGrad3(seed uint32, p vec.Vec3) vec.Vec3 {
	x0, x1, fx := split(p.X)
	y0, y1, fy := split(p.Y)
	z0, z1, fz := split(p.Z)
	g := evalBackward(seed,
		[maxDim]int32{x0, y0, z0},
		[maxDim]int32{x1, y1, z1},
		[maxDim]float64{fx, fy, fz},
		[maxDim]float64{heaviside(fx), heaviside(fy), heaviside(fz)},
		3)
	return vec.Vec3{X: g[0], Y: g[1], Z: g[2]}
}

// noiseGrad4 returns the gradient of Noise4 at p.
func noiseGrad4(seed uint32, p vec.Vec4) vec.Vec4 {
	x0, x1, fx := split(p.X)
	y0, y1, fy := split(p.Y)
	z0, z1, fz := split(p.Z)
	t0, t1, ft := split(p.W)
	g := evalBackward(seed,
		[maxDim]int32{x0, y0, z0, t0},
		[maxDim]int32{x1, y1, z1, t1},
		[maxDim]float64{fx, fy, fz, ft},
		[maxDim]float64{heaviside(fx), heaviside(fy), heaviside(fz), heaviside(ft)},
		4)
	return vec.Vec4{X: g[0], Y: g[1], Z: g[2], W: g[3]}
}

// Noise1Backward accumulates upstream·dNoise1/dx into *adjX.
func Noise1Backward(seed uint32, x float64, upstream float64, adjX *float64) {
	*adjX += noiseGrad1(seed, x) * upstream
}

// Noise2Backward accumulates upstream·∇Noise2(p) into *adjP.
func Noise2Backward(seed uint32, p vec.Vec2, upstream float64, adjP *vec.Vec2) {
	g := noiseGrad2(seed, p)
	adjP.X += g.X * upstream
	adjP.Y += g.Y * upstream
}

// Noise3Backward accumulates upstream·∇Noise3(p) into *adjP.
func Noise3Backward(seed uint32, p vec.Vec3, upstream float64, adjP *vec.Vec3) {
	g := noiseGrad3(seed, p)
	adjP.X += g.X * upstream
	adjP.Y += g.Y * upstream
	adjP.Z += g.Z * upstream
}

// Noise4Backward accumulates upstream·∇Noise4(p) into *adjP.
func Noise4Backward(seed uint32, p vec.Vec4, upstream float64, adjP *vec.Vec4) {
	g := noiseGrad4(seed, p)
	adjP.X += g.X * upstream
	adjP.Y += g.Y * upstream
	adjP.Z += g.Z * upstream
	adjP.W += g.W * upstream
}
