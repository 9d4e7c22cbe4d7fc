package noise

// smootherstep is the quintic blending curve 6t⁵−15t⁴+10t³ on t∈[0,1].
// Its first and second derivatives vanish at t=0 and t=1, which is what
// makes the blended field C²-continuous across lattice boundaries.
func smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// smootherstepGrad is d/dt smootherstep(t) = 30t²(t−1)².
func smootherstepGrad(t float64) float64 {
	return 30 * t * t * (t*(t-2) + 1)
}

// interpolate blends a0 toward a1 by smootherstep(t).
func interpolate(a0, a1, t float64) float64 {
	return (a1-a0)*smootherstep(t) + a0
}

// interpolateGrad is the total derivative of interpolate under an upstream
// perturbation of (a0, a1, t) with respective derivatives (dA0, dA1, dT).
// The same form serves both to push coordinate derivatives through one blend
// step and to merge partial-derivative channels across axes; it is not
// symmetric in which operand carries the offset derivative, so callers must
// blend axes in the same order as the forward pass.
func interpolateGrad(a0, a1, t, dA0, dA1, dT float64) float64 {
	return (dA1-dA0)*smootherstep(t) + (a1-a0)*smootherstepGrad(t)*dT + dA0
}
