package interp

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-rt/internal/delaunay"
)

// Errors returned by [New] and [ParseMethod].
var (
	ErrUnknownMethod  = errors.New("interp: unknown interpolation method")
	ErrNoSamples      = errors.New("interp: no sample points")
	ErrLengthMismatch = errors.New("interp: coordinate slices differ in length")
	ErrDegenerate     = errors.New("interp: samples do not span an area")
)

// Site is the value-independent geometry of one query point.
type Site struct {
	Index int        // nearest sample, or -1
	Tri   int        // enclosing Delaunay triangle, or -1
	Bary  [3]float64 // barycentric coordinates in Tri
}

// Outside reports whether the site has no enclosing triangle and no nearest
// sample, i.e. it evaluates to NaN.
func (s Site) Outside() bool {
	return s.Index < 0 && s.Tri < 0
}

var outside = Site{Index: -1, Tri: -1}

// Scheme interpolates values given at fixed scattered sample positions.
type Scheme interface {
	// Method reports which interpolation method the scheme implements.
	Method() Method

	// Locate resolves the query points (qx[i], qy[i]).
	Locate(qx, qy []float64) []Site

	// Eval writes the interpolant of values (one per sample) at every site
	// into dst. len(dst) must be at least len(sites).
	Eval(dst, values []float64, sites []Site)
}

// New builds the scheme for method over the sample positions (x[i], y[i]).
func New(method Method, x, y []float64) (Scheme, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) == 0 {
		return nil, ErrNoSamples
	}

	switch method {
	case Nearest:
		return newNearest(x, y), nil
	case Linear:
		tr, err := triangulate(x, y)
		if err != nil {
			return nil, err
		}
		return &linear{tr: tr}, nil
	case Cubic:
		tr, err := triangulate(x, y)
		if err != nil {
			return nil, err
		}
		return newCubic(tr), nil
	default:
		return nil, ErrUnknownMethod
	}
}

func triangulate(x, y []float64) (*delaunay.Triangulation, error) {
	tr, err := delaunay.New(x, y)
	if errors.Is(err, delaunay.ErrDegenerate) {
		return nil, ErrDegenerate
	}
	return tr, err
}

// locateTriangles walks the triangulation for every query point, seeding
// each walk with the previous hit.
func locateTriangles(tr *delaunay.Triangulation, qx, qy []float64) []Site {
	sites := make([]Site, len(qx))
	hint := -1
	for i := range sites {
		tri, bary, ok := tr.Locate(delaunay.Point{X: qx[i], Y: qy[i]}, hint)
		if !ok {
			sites[i] = outside
			continue
		}
		hint = tri
		sites[i] = Site{Index: -1, Tri: tri, Bary: bary}
	}
	return sites
}

type linear struct {
	tr *delaunay.Triangulation
}

func (l *linear) Method() Method { return Linear }

func (l *linear) Locate(qx, qy []float64) []Site {
	return locateTriangles(l.tr, qx, qy)
}

func (l *linear) Eval(dst, values []float64, sites []Site) {
	for i, s := range sites {
		if s.Tri < 0 {
			dst[i] = math.NaN()
			continue
		}
		v := l.tr.Triangles[s.Tri]
		dst[i] = s.Bary[0]*values[v[0]] + s.Bary[1]*values[v[1]] + s.Bary[2]*values[v[2]]
	}
}
