// Package delaunay implements a 2d Delaunay triangulation over integer lattice points
// together with a walking point locator.
//
// The construction is deterministic: duplicated points collapse into one vertex and the
// resulting topology, face numbering and per-face vertex order depend only on the set of
// distinct coordinates, never on the order in which they were supplied.
package delaunay

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrCoordRange is returned when a point lies outside ±MaxCoord.
var ErrCoordRange = errors.New("coordinate out of range")

// Face identifies a triangle of a Triangulation by its index.
type Face int

// Outside is the sentinel Face reported for points outside the convex hull.
const Outside Face = -1

// Triangulation stores the distinct sites, the triangles and the half edges of a
// Delaunay triangulation.
//
// Triangles holds three site indices per face, positively oriented (see Area2) and
// starting with the lexicographically smallest site. Halfedges[e] is the index of the
// twin of halfedge e, the edge from Triangles[e] to the next vertex of the same face,
// or -1 when e lies on the convex hull.
type Triangulation struct {
	Points    []Point
	Triangles []int
	Halfedges []int
	Hull      []int

	vertexFace []int
	adjacency  [][]int
	lo, hi     Point
	dropped    int
}

// Triangulate returns the Delaunay triangulation of the provided points. Sites are indexed
// in order of first occurrence; repeated coordinates map onto the existing index. Fewer than
// three distinct points, or collinear input, produce a triangulation without faces.
func Triangulate(points []Point) (*Triangulation, error) {
	index := make(map[Point]int, len(points))
	distinct := make([]Point, 0, len(points))
	for i, p := range points {
		if !p.InRange() {
			return nil, errors.Wrapf(ErrCoordRange, "point %d (%d,%d) exceeds ±%d", i, p.X, p.Y, MaxCoord)
		}
		if _, ok := index[p]; ok {
			continue
		}
		index[p] = len(distinct)
		distinct = append(distinct, p)
	}

	t := &Triangulation{Points: distinct}

	// Run the sweep over a lexicographically sorted copy so that the outcome does not
	// depend on the caller's ordering, then translate back to site indices.
	order := make([]int, len(distinct))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return distinct[order[i]].less(distinct[order[j]])
	})
	sorted := make([]Point, len(distinct))
	for i, id := range order {
		sorted[i] = distinct[id]
	}

	tri := newTriangulator(sorted)
	if tri.triangulate() {
		t.Triangles = make([]int, len(tri.triangles))
		for i, v := range tri.triangles {
			t.Triangles[i] = order[v]
		}
		t.Halfedges = tri.halfedges
		for _, v := range tri.hullIndices() {
			t.Hull = append(t.Hull, order[v])
		}
		t.dropped = tri.skipped
		t.canonicalize()
	}
	t.index()

	return t, nil
}

// canonicalize rotates every face so that it starts with its lexicographically smallest
// vertex, remapping the half edges accordingly.
func (t *Triangulation) canonicalize() {
	n := len(t.Triangles)
	remap := make([]int, n)
	for f := 0; f < n; f += 3 {
		r := 0
		for k := 1; k < 3; k++ {
			if t.Points[t.Triangles[f+k]].less(t.Points[t.Triangles[f+r]]) {
				r = k
			}
		}
		for k := 0; k < 3; k++ {
			remap[f+k] = f + (k-r+3)%3
		}
	}

	triangles := make([]int, n)
	halfedges := make([]int, n)
	for e := 0; e < n; e++ {
		triangles[remap[e]] = t.Triangles[e]
		if h := t.Halfedges[e]; h >= 0 {
			halfedges[remap[e]] = remap[h]
		} else {
			halfedges[remap[e]] = -1
		}
	}
	t.Triangles = triangles
	t.Halfedges = halfedges
}

// index precomputes the lowest face incident to each vertex and the vertex adjacency.
func (t *Triangulation) index() {
	t.vertexFace = make([]int, len(t.Points))
	for i := range t.vertexFace {
		t.vertexFace[i] = -1
	}
	sets := make([]map[int]struct{}, len(t.Points))
	for e, v := range t.Triangles {
		f := e / 3
		if t.vertexFace[v] < 0 {
			t.vertexFace[v] = f
		}
		w := t.Triangles[nextHalfedge(e)]
		if sets[v] == nil {
			sets[v] = make(map[int]struct{})
		}
		if sets[w] == nil {
			sets[w] = make(map[int]struct{})
		}
		sets[v][w] = struct{}{}
		sets[w][v] = struct{}{}
	}

	t.adjacency = make([][]int, len(t.Points))
	for v, set := range sets {
		keys := make([]int, 0, len(set))
		for w := range set {
			keys = append(keys, w)
		}
		sort.Ints(keys)
		t.adjacency[v] = keys
	}
	t.lo, t.hi = t.bounds()
}

// NumSites returns the number of distinct sites.
func (t *Triangulation) NumSites() int {
	return len(t.Points)
}

// Site returns the coordinate of site i.
func (t *Triangulation) Site(i int) Point {
	return t.Points[i]
}

// NumFaces returns the number of triangles.
func (t *Triangulation) NumFaces() int {
	return len(t.Triangles) / 3
}

// Vertices returns the site indices of face f in their fixed order.
func (t *Triangulation) Vertices(f Face) (a, b, c int) {
	i := int(f) * 3
	return t.Triangles[i], t.Triangles[i+1], t.Triangles[i+2]
}

// Neighbors returns the sorted indices of the sites sharing an edge with site i.
// Sites that are not a vertex of any face have no neighbors.
func (t *Triangulation) Neighbors(i int) []int {
	return t.adjacency[i]
}

// Dropped returns how many distinct points could not be attached to the mesh.
func (t *Triangulation) Dropped() int {
	return t.dropped
}

// Edges returns every undirected edge once, as pairs of site indices.
func (t *Triangulation) Edges() [][2]int {
	var edges [][2]int
	for e, h := range t.Halfedges {
		if e > h {
			edges = append(edges, [2]int{t.Triangles[e], t.Triangles[nextHalfedge(e)]})
		}
	}
	return edges
}

// ConvexHull returns the hull vertices as points.
func (t *Triangulation) ConvexHull() []Point {
	hull := make([]Point, len(t.Hull))
	for i, v := range t.Hull {
		hull[i] = t.Points[v]
	}
	return hull
}

// Validate performs several sanity checks on the Triangulation. Returns nil if no issues
// were found. It is meant for tests and debugging.
func (t *Triangulation) Validate() error {
	if len(t.Triangles) != len(t.Halfedges) || len(t.Triangles)%3 != 0 {
		return errors.New("triangles and halfedges disagree in length")
	}

	// verify halfedges
	for e, h := range t.Halfedges {
		if h == -1 {
			continue
		}
		if t.Halfedges[h] != e {
			return errors.New("invalid halfedge connection")
		}
		if t.Triangles[e] != t.Triangles[nextHalfedge(h)] || t.Triangles[h] != t.Triangles[nextHalfedge(e)] {
			return errors.Errorf("halfedge %d and its twin %d do not share endpoints", e, h)
		}
	}

	// verify orientation and the empty circumcircle property
	var sum int64
	for f := 0; f < t.NumFaces(); f++ {
		a, b, c := t.Vertices(Face(f))
		o := orient(t.Points[a], t.Points[b], t.Points[c])
		if o <= 0 {
			return errors.Errorf("face %d is not positively oriented", f)
		}
		sum += o
		for k := 0; k < 3; k++ {
			h := t.Halfedges[3*f+k]
			if h < 0 {
				continue
			}
			opp := t.Triangles[prevHalfedge(h)]
			if inCircle(t.Points[a], t.Points[b], t.Points[c], t.Points[opp]) {
				return errors.Errorf("face %d violates the Delaunay condition", f)
			}
		}
	}

	// verify the hull area against the sum of triangle areas
	if len(t.Hull) > 0 {
		var hull int64
		p0 := t.Points[t.Hull[0]]
		for i := 1; i+1 < len(t.Hull); i++ {
			hull += Area2(p0, t.Points[t.Hull[i]], t.Points[t.Hull[i+1]])
		}
		if hull != sum {
			return errors.Errorf("hull area %d disagrees with triangle area %d", hull, sum)
		}
	}

	return nil
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func prevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// bounds returns the bounding box of the sites.
func (t *Triangulation) bounds() (lo, hi Point) {
	lo = Point{math.MaxInt, math.MaxInt}
	hi = Point{math.MinInt, math.MinInt}
	for _, p := range t.Points {
		lo = Point{min(lo.X, p.X), min(lo.Y, p.Y)}
		hi = Point{max(hi.X, p.X), max(hi.Y, p.Y)}
	}
	return lo, hi
}
