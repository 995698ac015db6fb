package interp

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// sample is a k-d tree entry remembering its position in the input.
type sample struct {
	x, y float64
	idx  int
}

func (p sample) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(sample)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("interp: illegal dimension")
	}
}

func (p sample) Dims() int { return 2 }

// Distance returns the squared Euclidean distance.
func (p sample) Distance(c kdtree.Comparable) float64 {
	q := c.(sample)
	dx, dy := p.x-q.x, p.y-q.y
	return dx*dx + dy*dy
}

type samples []sample

func (s samples) Index(i int) kdtree.Comparable         { return s[i] }
func (s samples) Len() int                              { return len(s) }
func (s samples) Pivot(d kdtree.Dim) int                { return plane{samples: s, Dim: d}.Pivot() }
func (s samples) Slice(start, end int) kdtree.Interface { return s[start:end] }

// plane sorts samples along one dimension for tree construction.
type plane struct {
	kdtree.Dim
	samples
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.samples[i].x < p.samples[j].x
	case 1:
		return p.samples[i].y < p.samples[j].y
	default:
		panic("interp: illegal dimension")
	}
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.samples = p.samples[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.samples[i], p.samples[j] = p.samples[j], p.samples[i]
}

type nearest struct {
	tree *kdtree.Tree
}

func newNearest(x, y []float64) *nearest {
	pts := make(samples, len(x))
	for i := range pts {
		pts[i] = sample{x: x[i], y: y[i], idx: i}
	}
	// kdtree.New reorders pts in place; idx keeps the original order.
	return &nearest{tree: kdtree.New(pts, false)}
}

func (n *nearest) Method() Method { return Nearest }

func (n *nearest) Locate(qx, qy []float64) []Site {
	sites := make([]Site, len(qx))
	for i := range sites {
		sites[i] = Site{Index: n.closest(qx[i], qy[i]), Tri: -1}
	}
	return sites
}

// closest returns the index of the sample nearest to (x, y). Among
// equidistant samples the lowest index wins.
func (n *nearest) closest(x, y float64) int {
	q := sample{x: x, y: y, idx: -1}

	best, dist := n.tree.Nearest(q)
	if best == nil {
		return -1
	}

	// Collect every sample at the nearest distance. The radius is widened
	// slightly so tree pruning cannot drop exact ties across split planes.
	keep := kdtree.NewDistKeeper(dist*(1+1e-9) + math.SmallestNonzeroFloat64)
	n.tree.NearestSet(keep, q)

	idx := best.(sample).idx
	for _, c := range keep.Heap {
		if c.Comparable == nil || c.Dist > dist {
			continue
		}
		if s := c.Comparable.(sample); s.idx < idx {
			idx = s.idx
		}
	}
	return idx
}

func (n *nearest) Eval(dst, values []float64, sites []Site) {
	for i, s := range sites {
		dst[i] = values[s.Index]
	}
}
