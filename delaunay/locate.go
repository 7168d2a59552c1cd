package delaunay

// Locator finds the face containing a query point by walking across the mesh from the
// face it located last. A Locator keeps a mutable hint and must not be shared between
// goroutines; the Triangulation itself can be shared freely.
type Locator struct {
	t    *Triangulation
	last int
}

// NewLocator returns a Locator starting its walks at the first face.
func (t *Triangulation) NewLocator() *Locator {
	return &Locator{t: t}
}

// Locate returns the face containing p, or (Outside, false) when p lies outside the
// convex hull. A point on a shared edge or on a vertex is reported as the lowest-index
// face among all faces touching it, so the answer never depends on the walk.
func (t *Triangulation) Locate(p Point) (Face, bool) {
	return t.NewLocator().Locate(p)
}

// Locate returns the face containing p, or (Outside, false) when p lies outside the
// convex hull. See Triangulation.Locate for the boundary rule.
func (l *Locator) Locate(p Point) (Face, bool) {
	t := l.t
	if len(t.Triangles) == 0 || !p.InRange() {
		return Outside, false
	}
	if p.X < t.lo.X || p.X > t.hi.X || p.Y < t.lo.Y || p.Y > t.hi.Y {
		return Outside, false
	}

	f := l.walk(p)
	if f < 0 {
		return Outside, false
	}
	l.last = f
	return Face(t.canonicalFace(f, p)), true
}

// walk performs a visibility walk towards p. It returns -1 once p is found to be
// strictly outside a hull edge.
func (l *Locator) walk(p Point) int {
	t := l.t
	n := t.NumFaces()

	f := l.last
	if f < 0 || f >= n {
		f = 0
	}
	from := -1

	for steps := 0; steps <= n; steps++ {
		e0 := 3 * f
		next := -1
		for k := 0; k < 3; k++ {
			e := e0 + k
			if e == from {
				continue
			}
			a := t.Points[t.Triangles[e]]
			b := t.Points[t.Triangles[nextHalfedge(e)]]
			if orient(a, b, p) < 0 {
				next = e
				break
			}
		}
		if next < 0 {
			return f
		}
		h := t.Halfedges[next]
		if h < 0 {
			return -1
		}
		from = h
		f = h / 3
	}

	// The walk on a Delaunay mesh always terminates; scanning keeps a corrupted mesh
	// from looping forever.
	return t.scan(p)
}

// scan tests every face in order and returns the first one containing p, or -1.
func (t *Triangulation) scan(p Point) int {
	for f := 0; f < t.NumFaces(); f++ {
		if t.Contains(Face(f), p) {
			return f
		}
	}
	return -1
}

// Contains reports whether p lies inside or on the boundary of face f.
func (t *Triangulation) Contains(f Face, p Point) bool {
	e0 := int(f) * 3
	for k := 0; k < 3; k++ {
		a := t.Points[t.Triangles[e0+k]]
		b := t.Points[t.Triangles[e0+(k+1)%3]]
		if orient(a, b, p) < 0 {
			return false
		}
	}
	return true
}

// canonicalFace maps a face containing p to the lowest-index face containing p.
func (t *Triangulation) canonicalFace(f int, p Point) int {
	e0 := 3 * f
	var on [3]bool
	zeros := 0
	for k := 0; k < 3; k++ {
		a := t.Points[t.Triangles[e0+k]]
		b := t.Points[t.Triangles[e0+(k+1)%3]]
		if orient(a, b, p) == 0 {
			on[k] = true
			zeros++
		}
	}

	switch zeros {
	case 0:
		return f
	case 1:
		for k := 0; k < 3; k++ {
			if !on[k] {
				continue
			}
			if h := t.Halfedges[e0+k]; h >= 0 && h/3 < f {
				return h / 3
			}
		}
		return f
	}

	// p sits on two edges, so it is the vertex they share: edge k ends where edge k+1 starts.
	for k := 0; k < 3; k++ {
		if on[k] && on[(k+1)%3] {
			return t.vertexFace[t.Triangles[e0+(k+1)%3]]
		}
	}
	return f
}
