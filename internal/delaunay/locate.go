package delaunay

// Locate returns the triangle containing p and the barycentric coordinates
// of p in it. The walk starts at hint when it is a valid triangle index.
// ok is false when p lies outside the convex hull.
func (t *Triangulation) Locate(p Point, hint int) (tri int, bary [3]float64, ok bool) {
	if len(t.Triangles) == 0 {
		return -1, bary, false
	}

	tol := t.tol

	tri = hint
	if tri < 0 || tri >= len(t.Triangles) {
		tri = 0
	}

	for step := 0; step < len(t.Triangles); step++ {
		moved := false
		v := t.Triangles[tri]
		for r := range 3 {
			k := (r + step) % 3
			a, c := t.Points[v[(k+1)%3]], t.Points[v[(k+2)%3]]
			o := orient(a, c, p)
			nb := t.Neighbors[tri][k]
			if nb < 0 {
				if o < -tol {
					return -1, bary, false
				}
				continue
			}
			if o < 0 {
				tri = nb
				moved = true
				break
			}
		}
		if !moved {
			return tri, t.barycentric(tri, p), true
		}
	}

	return t.scan(p, tol)
}

func (t *Triangulation) scan(p Point, tol float64) (int, [3]float64, bool) {
	for i, v := range t.Triangles {
		inside := true
		for k := range 3 {
			if orient(t.Points[v[(k+1)%3]], t.Points[v[(k+2)%3]], p) < -tol {
				inside = false
				break
			}
		}
		if inside {
			return i, t.barycentric(i, p), true
		}
	}
	return -1, [3]float64{}, false
}

func (t *Triangulation) barycentric(tri int, p Point) [3]float64 {
	v := t.Triangles[tri]
	a, b, c := t.Points[v[0]], t.Points[v[1]], t.Points[v[2]]

	det := orient(a, b, c)
	l0 := orient(b, c, p) / det
	l1 := orient(c, a, p) / det

	return [3]float64{l0, l1, 1 - l0 - l1}
}

// VertexNeighbors returns, for every point, the indices of the points it
// shares a triangle edge with, in order of first appearance.
// Points that were dropped as duplicates have no neighbours.
func (t *Triangulation) VertexNeighbors() [][]int {
	adj := make([][]int, len(t.Points))
	seen := make(map[[2]int]struct{}, 3*len(t.Triangles))
	for _, v := range t.Triangles {
		for k := range 3 {
			a, b := v[k], v[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if _, ok := seen[[2]int{a, b}]; ok {
				continue
			}
			seen[[2]int{a, b}] = struct{}{}
			adj[a] = append(adj[a], b)
			adj[b] = append(adj[b], a)
		}
	}
	return adj
}
