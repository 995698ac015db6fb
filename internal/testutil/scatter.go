package testutil

import "math/rand"

// RegularScatter returns the coordinates of an nx-by-ny lattice spanning
// [x0, x1] x [y0, y1], x varying slowest.
func RegularScatter(nx, ny int, x0, x1, y0, y1 float64) (xs, ys []float64) {
	xs = make([]float64, 0, nx*ny)
	ys = make([]float64, 0, nx*ny)
	for i := 0; i < nx; i++ {
		x := x0
		if nx > 1 {
			x = x0 + (x1-x0)*float64(i)/float64(nx-1)
		}
		for j := 0; j < ny; j++ {
			y := y0
			if ny > 1 {
				y = y0 + (y1-y0)*float64(j)/float64(ny-1)
			}
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// DeterministicScatter returns n points drawn uniformly from the square
// [-halfWidth, halfWidth]^2 with a fixed seed for reproducibility.
func DeterministicScatter(seed int64, n int, halfWidth float64) (xs, ys []float64) {
	rng := rand.New(rand.NewSource(seed))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = (rng.Float64()*2 - 1) * halfWidth
		ys[i] = (rng.Float64()*2 - 1) * halfWidth
	}
	return xs, ys
}

// Plane evaluates c0 + cx*x + cy*y at every sample position.
func Plane(xs, ys []float64, c0, cx, cy float64) []float64 {
	out := make([]float64, len(xs))
	for i := range out {
		out[i] = c0 + cx*xs[i] + cy*ys[i]
	}
	return out
}
