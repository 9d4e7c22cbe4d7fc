package noise

import "math"

// The evaluators below fold the per-dimension blend trees into one routine
// over the 2^dim corners of the enclosing unit hypercube. Corners are
// indexed by a bit pattern with axis 0 in the least-significant bit: bit a
// set selects the "far" lattice node on axis a (coordinate hi[a], offset
// frac[a]−1). Blending proceeds axis by axis; each pass halves the corner
// count by interpolating sibling pairs with that axis's fractional offset,
// exactly the pairing and order of the unrolled per-dimension forms.

// corner carries one hypercube corner's blended value and its partial
// derivative channels, one per axis.
type corner struct {
	v float64
	d [maxDim]float64
}

// cornerNode materializes corner c's lattice coordinates and fractional
// offset from the low/high node coordinates and offsets per axis.
func cornerNode(c int, lo, hi [maxDim]int32, frac [maxDim]float64, dim int) (node [maxDim]int32, off [maxDim]float64) {
	for a := 0; a < dim; a++ {
		if c>>a&1 == 1 {
			node[a] = hi[a]
			off[a] = frac[a] - 1
		} else {
			node[a] = lo[a]
			off[a] = frac[a]
		}
	}
	return node, off
}

// evalForward blends the 2^dim corner dot products into one scalar.
func evalForward(seed uint32, lo, hi [maxDim]int32, frac [maxDim]float64, dim int) float64 {
	var vals [1 << maxDim]float64

	n := 1 << dim
	for c := 0; c < n; c++ {
		node, off := cornerNode(c, lo, hi, frac, dim)
		vals[c] = dotCell(gradientAt(seed, node, dim), off, dim)
	}

	for a := 0; a < dim; a++ {
		n >>= 1
		for i := 0; i < n; i++ {
			vals[i] = interpolate(vals[2*i], vals[2*i+1], frac[a])
		}
	}

	return vals[0]
}

// evalBackward mirrors evalForward while carrying dim partial-derivative
// channels per corner, and returns the exact gradient of the blended scalar
// with respect to the query coordinate. mask holds the per-axis heaviside
// guards: a masked axis contributes no offset chain-rule term, which keeps
// the derivative finite exactly at lattice-aligned coordinates.
//
// The value channel of each blend uses the current axis's offset; the
// current axis's derivative channel additionally receives the heaviside
// term, while the other channels only propagate their endpoint derivatives.
func evalBackward(seed uint32, lo, hi [maxDim]int32, frac, mask [maxDim]float64, dim int) [maxDim]float64 {
	var cs [1 << maxDim]corner

	n := 1 << dim
	for c := 0; c < n; c++ {
		node, off := cornerNode(c, lo, hi, frac, dim)
		g := gradientAt(seed, node, dim)
		cs[c].v = dotCell(g, off, dim)
		for k := 0; k < dim; k++ {
			var dOff [maxDim]float64
			dOff[k] = mask[k]
			cs[c].d[k] = dotCellGrad(g, dOff, dim)
		}
	}

	for a := 0; a < dim; a++ {
		n >>= 1
		for i := 0; i < n; i++ {
			cLo, cHi := cs[2*i], cs[2*i+1]
			var out corner
			out.v = interpolate(cLo.v, cHi.v, frac[a])
			for k := 0; k < dim; k++ {
				dT := 0.0
				if k == a {
					dT = mask[a]
				}
				out.d[k] = interpolateGrad(cLo.v, cHi.v, frac[a], cLo.d[k], cHi.d[k], dT)
			}
			cs[i] = out
		}
	}

	return cs[0].d
}

// split decomposes one continuous coordinate into its enclosing lattice
// cell and fractional offset.
func split(x float64) (lo, hi int32, fr float64) {
	f := math.Floor(x)
	return int32(f), int32(f) + 1, x - f
}

// heaviside is 1 unless fr is numerically indistinguishable from a lattice
// node, in which case the axis's derivative term is suppressed.
func heaviside(fr float64) float64 {
	if fr < heavisideEps {
		return 0
	}
	return 1
}
