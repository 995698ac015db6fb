// Package delaunay triangulates scattered points over their convex hull
// and locates query points in the result. It backs the linear and cubic
// scattered interpolation schemes.
package delaunay

import (
	"errors"
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

// ErrDegenerate is returned when the input has fewer than three distinct,
// non-collinear points.
var ErrDegenerate = errors.New("delaunay: fewer than three non-collinear points")

// hullTolerance is the relative slack, in units of the squared point-set
// extent, for accepting query points on hull edges.
const hullTolerance = 1e-12

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Triangulation is a Delaunay triangulation of Points covering their
// convex hull.
//
// Triangles are counter-clockwise vertex index triples into Points.
// Neighbors[t][k] is the triangle across the edge opposite vertex k of
// triangle t, or -1 on the hull.
type Triangulation struct {
	Points    []Point
	Triangles [][3]int
	Neighbors [][3]int

	tol float64
}

// New triangulates the points (xs[i], ys[i]). Exact duplicates are
// ignored: only the first occurrence becomes a vertex.
func New(xs, ys []float64) (*Triangulation, error) {
	n := len(xs)
	if len(ys) != n {
		return nil, errors.New("delaunay: coordinate slices differ in length")
	}

	pts := make([]Point, n)
	first := make(map[Point]int, n)
	var unique []delaunay.Point
	var index []int // unique vertex -> input index
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range pts {
		p := Point{xs[i], ys[i]}
		pts[i] = p
		if _, ok := first[p]; ok {
			continue
		}
		first[p] = i
		unique = append(unique, delaunay.Point{X: p.X, Y: p.Y})
		index = append(index, i)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	if len(unique) < 3 || collinear(unique) {
		return nil, ErrDegenerate
	}

	dt, err := delaunay.Triangulate(unique)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	t := &Triangulation{
		Points:    pts,
		Triangles: make([][3]int, 0, len(dt.Triangles)/3),
		Neighbors: make([][3]int, 0, len(dt.Triangles)/3),
	}

	// Halfedge e runs from dt.Triangles[e] to the next vertex of triangle
	// e/3, so it is the edge opposite the third vertex.
	for e := 0; e+2 < len(dt.Triangles); e += 3 {
		v := [3]int{index[dt.Triangles[e]], index[dt.Triangles[e+1]], index[dt.Triangles[e+2]]}
		var nb [3]int
		for j := range 3 {
			nb[(j+2)%3] = -1
			if h := dt.Halfedges[e+j]; h >= 0 {
				nb[(j+2)%3] = h / 3
			}
		}
		if orient(pts[v[0]], pts[v[1]], pts[v[2]]) < 0 {
			v[1], v[2] = v[2], v[1]
			nb[1], nb[2] = nb[2], nb[1]
		}
		t.Triangles = append(t.Triangles, v)
		t.Neighbors = append(t.Neighbors, nb)
	}

	if len(t.Triangles) == 0 {
		return nil, ErrDegenerate
	}

	span := math.Max(maxX-minX, maxY-minY)
	t.tol = hullTolerance * span * span

	return t, nil
}

// collinear reports whether all points lie exactly on one line.
func collinear(pts []delaunay.Point) bool {
	a := Point{pts[0].X, pts[0].Y}
	b := Point{pts[1].X, pts[1].Y}
	for _, p := range pts[2:] {
		if orient(a, b, Point{p.X, p.Y}) != 0 {
			return false
		}
	}
	return true
}

// orient is twice the signed area of (a, b, c): positive when c lies to the
// left of a->b.
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircle is positive when d lies inside the circumcircle of the
// counter-clockwise triangle (a, b, c).
func inCircle(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	ad := adx*adx + ady*ady
	bd := bdx*bdx + bdy*bdy
	cd := cdx*cdx + cdy*cdy

	return ad*(bdx*cdy-cdx*bdy) - bd*(adx*cdy-cdx*ady) + cd*(adx*bdy-bdx*ady)
}
