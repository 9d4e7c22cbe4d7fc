package noise

import (
	"math"

	"github.com/katalvlaran/noisegrad/rng"
)

// axisPrimes indexes the per-axis hash multipliers by axis number.
var axisPrimes = [maxDim]uint32{primeX, primeY, primeZ, primeW}

// latticeState folds dim signed lattice coordinates and the field seed into
// one hash state: seed + XOR over axes of coordinate·prime. Arithmetic is
// 32-bit modular, so negative coordinates hash as their two's-complement
// images and every (seed, node) pair maps to exactly one state.
func latticeState(seed uint32, node [maxDim]int32, dim int) rng.State {
	var idx uint32
	for a := 0; a < dim; a++ {
		idx ^= uint32(node[a]) * axisPrimes[a]
	}
	return rng.State(seed + idx)
}

// gradientAt returns the pseudo-random gradient attached to one lattice
// node, as dim leading components. It is a pure function of (seed, node):
// gradients are recomputed on every access, never cached.
//
//   - dim 1: a uniform scalar in [-1,1]
//   - dim 2: a unit vector from a uniform angle in [0,2π)
//   - dim 3/4: independent normal draws, normalized to unit length; the
//     all-zero draw (probability ~0, untested by design) falls back to the
//     +X axis unit vector rather than dividing by zero
func gradientAt(seed uint32, node [maxDim]int32, dim int) [maxDim]float64 {
	st := latticeState(seed, node, dim)
	var g [maxDim]float64
	switch dim {
	case 1:
		g[0] = st.Uniform(-1, 1)
	case 2:
		phi := st.Uniform(0, 2*math.Pi)
		g[0] = math.Cos(phi)
		g[1] = math.Sin(phi)
	default:
		var norm float64
		for a := 0; a < dim; a++ {
			g[a] = st.Normal()
			norm += g[a] * g[a]
		}
		if norm == 0 {
			g[0] = 1
			return g
		}
		inv := 1 / math.Sqrt(norm)
		for a := 0; a < dim; a++ {
			g[a] *= inv
		}
	}
	return g
}

// dotCell is the forward lattice dot-product cell: gradient · offset, where
// offset is the fractional displacement from the node to the query point.
func dotCell(g, off [maxDim]float64, dim int) float64 {
	var v float64
	for a := 0; a < dim; a++ {
		v += g[a] * off[a]
	}
	return v
}

// dotCellGrad is the backward cell contract: gradient · dOff for an
// upstream offset derivative dOff. The gradient itself does not depend
// differentiably on the continuous coordinate, so the cell is linear in it.
func dotCellGrad(g, dOff [maxDim]float64, dim int) float64 {
	var v float64
	for a := 0; a < dim; a++ {
		v += g[a] * dOff[a]
	}
	return v
}
