package noise

import "github.com/katalvlaran/noisegrad/vec"

// The PNoise family is identical to the Noise family except that lattice
// node coordinates wrap modulo a caller-supplied positive integer period
// per axis, so the field tiles seamlessly: PNoise(seed, c+k·p, p) equals
// PNoise(seed, c, p) for any integer k. The modulo is Euclidean (always
// non-negative) so wrap-around is seamless across coordinate 0.
//
// Periods must be positive; they are a caller contract and are not
// validated here. Periods are not differentiable parameters and the
// PNoise*Backward functions carry no adjoint slot for them.

// emod is the Euclidean (non-negative) remainder of n modulo p.
func emod(n, p int32) int32 {
	m := n % p
	if m < 0 {
		m += p
	}
	return m
}

// wrap maps a lattice cell onto the periodic lattice: the low node wraps
// modulo p and the high node is the low node's successor modulo p.
func wrap(lo int32, p int) (w0, w1 int32) {
	w0 = emod(lo, int32(p))
	w1 = emod(w0+1, int32(p))
	return w0, w1
}

// PNoise1 evaluates the 1D noise field tiling with period px.
func PNoise1(seed uint32, x float64, px int) float64 {
	lo, _, fx := split(x)
	x0, x1 := wrap(lo, px)

	return evalForward(seed,
		[maxDim]int32{x0},
		[maxDim]int32{x1},
		[maxDim]float64{fx},
		1)
}

// PNoise2 evaluates the 2D noise field tiling with periods (px, py).
func PNoise2(seed uint32, p vec.Vec2, px, py int) float64 {
	loX, _, fx := split(p.X)
	loY, _, fy := split(p.Y)
	x0, x1 := wrap(loX, px)
	y0, y1 := wrap(loY, py)

	return evalForward(seed,
		[maxDim]int32{x0, y0},
		[maxDim]int32{x1, y1},
		[maxDim]float64{fx, fy},
		2)
}

// PNoise3 evaluates the 3D noise field tiling with periods (px, py, pz).
func PNoise3(seed uint32, p vec.Vec3, px, py, pz int) float64 {
	loX, _, fx := split(p.X)
	loY, _, fy := split(p.Y)
	loZ, _, fz := split(p.Z)
	x0, x1 := wrap(loX, px)
	y0, y1 := wrap(loY, py)
	z0, z1 := wrap(loZ, pz)

	return evalForward(seed,
		[maxDim]int32{x0, y0, z0},
		[maxDim]int32{x1, y1, z1},
		[maxDim]float64{fx, fy, fz},
		3)
}

// PNoise4 evaluates the 4D noise field tiling with periods (px, py, pz, pt).
func PNoise4(seed uint32, p vec.Vec4, px, py, pz, pt int) float64 {
	loX, _, fx := split(p.X)
	loY, _, fy := split(p.Y)
	loZ, _, fz := split(p.Z)
	loT, _, ft := split(p.W)
	x0, x1 := wrap(loX, px)
	y0, y1 := wrap(loY, py)
	z0, z1 := wrap(loZ, pz)
	t0, t1 := wrap(loT, pt)

	return evalForward(seed,
		[maxDim]int32{x0, y0, z0, t0},
		[maxDim]int32{x1, y1, z1, t1},
		[maxDim]float64{fx, fy, fz, ft},
		4)
}

// PNoise1Backward accumulates upstream·dPNoise1/dx into *adjX.
func PNoise1Backward(seed uint32, x float64, px int, upstream float64, adjX *float64) {
	lo, _, fx := split(x)
	x0, x1 := wrap(lo, px)
	g := evalBackward(seed,
		[maxDim]int32{x0},
		[maxDim]int32{x1},
		[maxDim]float64{fx},
		[maxDim]float64{heaviside(fx)},
		1)
	*adjX += g[0] * upstream
}

// PNoise2Backward accumulates upstream·∇PNoise2(p) into *adjP.
func PNoise2Backward(seed uint32, p vec.Vec2, px, py int, upstream float64, adjP *vec.Vec2) {
	loX, _, fx := split(p.X)
	loY, _, fy := split(p.Y)
	x0, x1 := wrap(loX, px)
	y0, y1 := wrap(loY, py)
	g := evalBackward(seed,
		[maxDim]int32{x0, y0},
		[maxDim]int32{x1, y1},
		[maxDim]float64{fx, fy},
		[maxDim]float64{heaviside(fx), heaviside(fy)},
		2)
	adjP.X += g[0] * upstream
	adjP.Y += g[1] * upstream
}

// PNoise3Backward accumulates upstream·∇PNoise3(p) into *adjP.
func PNoise3Backward(seed uint32, p vec.Vec3, px, py, pz int, upstream float64, adjP *vec.Vec3) {
	loX, _, fx := split(p.X)
	loY, _, fy := split(p.Y)
	loZ, _, fz := split(p.Z)
	x0, x1 := wrap(loX, px)
	y0, y1 := wrap(loY, py)
	z0, z1 := wrap(loZ, pz)
	g := evalBackward(seed,
		[maxDim]int32{x0, y0, z0},
		[maxDim]int32{x1, y1, z1},
		[maxDim]float64{fx, fy, fz},
		[maxDim]float64{heaviside(fx), heaviside(fy), heaviside(fz)},
		3)
	adjP.X += g[0] * upstream
	adjP.Y += g[1] * upstream
	adjP.Z += g[2] * upstream
}

// PNoise4Backward accumulates upstream·∇PNoise4(p) into *adjP.
func PNoise4Backward(seed uint32, p vec.Vec4, px, py, pz, pt int, upstream float64, adjP *vec.Vec4) {
	loX, _, fx := split(p.X)
	loY, _, fy := split(p.Y)
	loZ, _, fz := split(p.Z)
	loT, _, ft := split(p.W)
	x0, x1 := wrap(loX, px)
	y0, y1 := wrap(loY, py)
	z0, z1 := wrap(loZ, pz)
	t0, t1 := wrap(loT, pt)
	g := evalBackward(seed,
		[maxDim]int32{x0, y0, z0, t0},
		[maxDim]int32{x1, y1, z1, t1},
		[maxDim]float64{fx, fy, fz, ft},
		[maxDim]float64{heaviside(fx), heaviside(fy), heaviside(fz), heaviside(ft)},
		4)
	adjP.X += g[0] * upstream
	adjP.Y += g[1] * upstream
	adjP.Z += g[2] * upstream
	adjP.W += g[3] * upstream
}
