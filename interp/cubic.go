package interp

import (
	"math"

	"github.com/cwbudde/algo-rt/internal/delaunay"
)

// gradientStencil holds the value-independent part of a vertex's
// least-squares gradient fit: g = inv * sum_j d_j (f_j - f_i).
type gradientStencil struct {
	nbrs   []int
	dx, dy []float64
	inv    [2][2]float64 // inverse normal matrix; zero when singular
}

type cubic struct {
	tr      *delaunay.Triangulation
	stencil []gradientStencil
}

func newCubic(tr *delaunay.Triangulation) *cubic {
	adj := tr.VertexNeighbors()
	c := &cubic{tr: tr, stencil: make([]gradientStencil, len(tr.Points))}

	for i, nbrs := range adj {
		st := gradientStencil{
			nbrs: nbrs,
			dx:   make([]float64, len(nbrs)),
			dy:   make([]float64, len(nbrs)),
		}

		var sxx, sxy, syy float64
		p := tr.Points[i]
		for k, j := range nbrs {
			dx, dy := tr.Points[j].X-p.X, tr.Points[j].Y-p.Y
			st.dx[k], st.dy[k] = dx, dy
			sxx += dx * dx
			sxy += dx * dy
			syy += dy * dy
		}

		det := sxx*syy - sxy*sxy
		if det > 1e-12*sxx*syy {
			st.inv = [2][2]float64{
				{syy / det, -sxy / det},
				{-sxy / det, sxx / det},
			}
		}

		c.stencil[i] = st
	}

	return c
}

func (c *cubic) Method() Method { return Cubic }

func (c *cubic) Locate(qx, qy []float64) []Site {
	return locateTriangles(c.tr, qx, qy)
}

// gradients fits a plane through each vertex and its Delaunay neighbours.
func (c *cubic) gradients(values []float64) (gx, gy []float64) {
	gx = make([]float64, len(c.stencil))
	gy = make([]float64, len(c.stencil))
	for i, st := range c.stencil {
		var bx, by float64
		for k, j := range st.nbrs {
			df := values[j] - values[i]
			bx += st.dx[k] * df
			by += st.dy[k] * df
		}
		gx[i] = st.inv[0][0]*bx + st.inv[0][1]*by
		gy[i] = st.inv[1][0]*bx + st.inv[1][1]*by
	}
	return gx, gy
}

func (c *cubic) Eval(dst, values []float64, sites []Site) {
	gx, gy := c.gradients(values)

	for i, s := range sites {
		if s.Tri < 0 {
			dst[i] = math.NaN()
			continue
		}
		v := c.tr.Triangles[s.Tri]
		dst[i] = c.patch(v, values, gx, gy, s.Bary)
	}
}

// patch evaluates the cubic Bezier triangle over v at barycentric
// coordinates (u, w, t). Edge control points come from the vertex gradients;
// the centre point uses the quadratic-precision rule E + (E - V)/2.
func (c *cubic) patch(v [3]int, values, gx, gy []float64, bary [3]float64) float64 {
	p0, p1, p2 := c.tr.Points[v[0]], c.tr.Points[v[1]], c.tr.Points[v[2]]
	f0, f1, f2 := values[v[0]], values[v[1]], values[v[2]]

	along := func(vi int, from, to delaunay.Point) float64 {
		return (gx[vi]*(to.X-from.X) + gy[vi]*(to.Y-from.Y)) / 3
	}

	b210 := f0 + along(v[0], p0, p1)
	b201 := f0 + along(v[0], p0, p2)
	b120 := f1 + along(v[1], p1, p0)
	b021 := f1 + along(v[1], p1, p2)
	b102 := f2 + along(v[2], p2, p0)
	b012 := f2 + along(v[2], p2, p1)

	e := (b210 + b201 + b120 + b021 + b102 + b012) / 6
	vm := (f0 + f1 + f2) / 3
	b111 := e + (e-vm)/2

	u, w, t := bary[0], bary[1], bary[2]

	return f0*u*u*u + f1*w*w*w + f2*t*t*t +
		3*(b210*u*u*w+b201*u*u*t+b120*u*w*w+b021*w*w*t+b102*u*t*t+b012*w*t*t) +
		6*b111*u*w*t
}
