package field

import (
	"github.com/katalvlaran/noisegrad/noise"
	"github.com/katalvlaran/noisegrad/vec"
	"gonum.org/v1/gonum/stat"
)

// Scalar samples the scalar noise field identified by seed onto a w×h grid,
// row-major (result[y][x]). Cell (x,y) maps to world coordinate
// Origin + Step·(x,y); when opts.Time is nonzero the 3D field is sampled on
// the z = Time plane instead of the 2D field.
// Returns ErrBadDims or ErrBadStep on invalid input.
// Complexity: O(W×H) time and memory.
func Scalar(seed uint32, w, h int, opts Options) ([][]float64, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDims
	}
	if opts.Step <= 0 {
		return nil, ErrBadStep
	}

	grid := make([][]float64, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]float64, w)
		wy := opts.Origin.Y + opts.Step*float64(y)
		for x := 0; x < w; x++ {
			wx := opts.Origin.X + opts.Step*float64(x)
			if opts.Time != 0 {
				grid[y][x] = noise.Noise3(seed, vec.Vec3{X: wx, Y: wy, Z: opts.Time})
			} else {
				grid[y][x] = noise.Noise2(seed, vec.Vec2{X: wx, Y: wy})
			}
		}
	}

	return grid, nil
}

// Curl samples the 2D curl-noise flow field identified by seed onto a w×h
// grid, row-major, with the same coordinate mapping as Scalar.
// Returns ErrBadDims or ErrBadStep on invalid input.
// Complexity: O(W×H) time and memory.
func Curl(seed uint32, w, h int, opts Options) ([][]vec.Vec2, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDims
	}
	if opts.Step <= 0 {
		return nil, ErrBadStep
	}

	grid := make([][]vec.Vec2, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]vec.Vec2, w)
		wy := opts.Origin.Y + opts.Step*float64(y)
		for x := 0; x < w; x++ {
			wx := opts.Origin.X + opts.Step*float64(x)
			grid[y][x] = noise.CurlNoise2(seed, vec.Vec2{X: wx, Y: wy})
		}
	}

	return grid, nil
}

// Divergence computes the central-difference divergence
// ∂Fx/∂x + ∂Fy/∂y of a sampled vector grid for every interior cell; the
// returned grid is (h−2)×(w−2). step is the world distance the samples were
// taken at.
// Returns ErrBadStep for a non-positive step, ErrGridTooSmall for grids
// under 3×3, or ErrNonRectangular for ragged input.
// Complexity: O(W×H) time and memory.
func Divergence(f [][]vec.Vec2, step float64) ([][]float64, error) {
	if step <= 0 {
		return nil, ErrBadStep
	}
	h := len(f)
	if h < 3 || len(f[0]) < 3 {
		return nil, ErrGridTooSmall
	}
	w := len(f[0])
	for _, row := range f {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	div := make([][]float64, h-2)
	for y := 1; y < h-1; y++ {
		div[y-1] = make([]float64, w-2)
		for x := 1; x < w-1; x++ {
			dFxDx := (f[y][x+1].X - f[y][x-1].X) / (2 * step)
			dFyDy := (f[y+1][x].Y - f[y-1][x].Y) / (2 * step)
			div[y-1][x-1] = dFxDx + dFyDy
		}
	}

	return div, nil
}

// Summary returns the mean and standard deviation of a scalar grid's
// samples. Empty grids summarize to (0, 0); a single sample reports zero
// deviation.
// Complexity: O(W×H) time, O(1) extra memory beyond the flattened view.
func Summary(g [][]float64) (mean, stddev float64) {
	var flat []float64
	for _, row := range g {
		flat = append(flat, row...)
	}
	if len(flat) == 0 {
		return 0, 0
	}
	if len(flat) == 1 {
		return flat[0], 0
	}
	mean = stat.Mean(flat, nil)
	stddev = stat.StdDev(flat, nil)

	return mean, stddev
}
