// Package interp resamples scattered 2D samples onto regular grids.
//
// Available methods, from cheapest to smoothest:
//
//   - [Nearest]: value of the closest sample (ties go to the lowest sample
//     index); defined everywhere
//   - [Linear]:  barycentric interpolation on the Delaunay triangulation;
//     NaN outside the convex hull
//   - [Cubic]:   cubic Bezier triangle patches built from least-squares
//     vertex gradients; exact for planar data, NaN outside the convex hull
//
// A [Scheme] is built once per set of sample positions with [New]. It
// resolves query geometry with [Scheme.Locate] and evaluates any number of
// value sets at the located sites with [Scheme.Eval]; schemes are read-only
// after construction and safe for concurrent Eval calls.
//
// [Resampler] maps a scheme over many value sets (one per spectral bin) onto
// a fixed grid, fanning the bins out to a worker pool. Bins never interact.
//
// # Usage
//
//	s, err := interp.New(interp.Nearest, x, y)
//	r := interp.NewResampler(s, interp.Linspace(-1, 1, 300), interp.Linspace(-1, 1, 300), 0)
//	cube := r.Cube(bins) // (bin, x, y), row-major
package interp
