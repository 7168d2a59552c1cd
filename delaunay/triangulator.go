package delaunay

import (
	"math"
	"sort"
)

// triangulator runs the sweep-hull construction over a set of distinct points.
// Triangles are emitted as consecutive vertex index triples; halfedges[e] is the
// opposite halfedge of e in the adjacent triangle, or -1 on the hull.
type triangulator struct {
	points           []Point
	squaredDistances []float64
	ids              []int
	cx, cy           float64
	triangles        []int
	halfedges        []int
	trianglesLen     int
	hull             *node
	hash             []*node
	skipped          int
}

func newTriangulator(points []Point) *triangulator {
	return &triangulator{points: points}
}

// sorting a triangulator sorts the ids by the distance of the referenced point from
// the seed circumcenter, ties broken by coordinates.

func (tri *triangulator) Len() int {
	return len(tri.points)
}

func (tri *triangulator) Swap(i, j int) {
	tri.ids[i], tri.ids[j] = tri.ids[j], tri.ids[i]
}

func (tri *triangulator) Less(i, j int) bool {
	d1 := tri.squaredDistances[tri.ids[i]]
	d2 := tri.squaredDistances[tri.ids[j]]
	if d1 != d2 {
		return d1 < d2
	}
	return tri.points[tri.ids[i]].less(tri.points[tri.ids[j]])
}

// triangulate builds the mesh. It returns false when the points admit no
// triangle, i.e. fewer than three points or all of them collinear.
func (tri *triangulator) triangulate() bool {
	points := tri.points

	n := len(points)
	if n < 3 {
		return false
	}

	tri.ids = make([]int, n)

	// compute bounds
	x0, y0 := points[0].X, points[0].Y
	x1, y1 := x0, y0
	for i, p := range points {
		x0 = min(x0, p.X)
		x1 = max(x1, p.X)
		y0 = min(y0, p.Y)
		y1 = max(y1, p.Y)
		tri.ids[i] = i
	}

	var i0, i1, i2 int

	// pick a seed point close to the midpoint
	mx := (float64(x0) + float64(x1)) / 2
	my := (float64(y0) + float64(y1)) / 2
	minDist := infinity
	for i, p := range points {
		d := p.squaredDistanceTo(mx, my)
		if d < minDist {
			i0 = i
			minDist = d
		}
	}

	// find the point closest to the seed
	minSq := int64(math.MaxInt64)
	for i, p := range points {
		if i == i0 {
			continue
		}
		d := p.SquaredDistance(points[i0])
		if d > 0 && d < minSq {
			i1 = i
			minSq = d
		}
	}

	// find the third point which forms the smallest circumcircle
	minRadius := infinity
	for i, p := range points {
		if i == i0 || i == i1 {
			continue
		}
		r := circumRadius(points[i0], points[i1], p)
		if r < minRadius {
			i2 = i
			minRadius = r
		}
	}
	if minRadius == infinity {
		return false
	}

	// swap the order of the seed points so the seed triangle is positively oriented
	if orient(points[i0], points[i1], points[i2]) < 0 {
		i1, i2 = i2, i1
	}

	tri.cx, tri.cy = circumcenter(points[i0], points[i1], points[i2])

	// sort the points by distance from the seed triangle circumcenter
	tri.squaredDistances = make([]float64, n)
	for i, p := range points {
		tri.squaredDistances[i] = p.squaredDistanceTo(tri.cx, tri.cy)
	}
	sort.Sort(tri)

	// initialize a hash table for storing edges of the advancing convex hull
	hashSize := int(math.Ceil(math.Sqrt(float64(n))))
	tri.hash = make([]*node, hashSize)

	// initialize a circular doubly-linked list that will hold the advancing convex hull
	nodes := make([]node, n)

	e := newNode(nodes, i0, nil)
	e.t = 0
	tri.hashEdge(e)

	e = newNode(nodes, i1, e)
	e.t = 1
	tri.hashEdge(e)

	e = newNode(nodes, i2, e)
	e.t = 2
	tri.hashEdge(e)

	tri.hull = e

	maxTriangles := 2*n - 5
	tri.triangles = make([]int, maxTriangles*3)
	tri.halfedges = make([]int, maxTriangles*3)

	tri.addTriangle(i0, i1, i2, -1, -1, -1)

	for k := 0; k < n; k++ {
		i := tri.ids[k]
		p := points[i]

		// skip seed triangle points
		if i == i0 || i == i1 || i == i2 {
			continue
		}

		// find a visible edge on the convex hull using the edge hash
		var start *node
		key := tri.hashKey(p)
		for j := 0; j < len(tri.hash); j++ {
			start = tri.hash[key]
			if start != nil && start.i >= 0 {
				break
			}
			key++
			if key >= len(tri.hash) {
				key = 0
			}
		}
		if start == nil || start.i < 0 {
			tri.skipped++
			continue
		}
		start = start.prev

		e := start
		for orient(p, points[e.i], points[e.next.i]) >= 0 {
			e = e.next
			if e == start {
				e = nil
				break
			}
		}
		if e == nil {
			// no visible hull edge: the point cannot be attached
			tri.skipped++
			continue
		}
		walkBack := e == start

		// add the first triangle from the point
		t := tri.addTriangle(e.i, i, e.next.i, -1, -1, e.t)
		e.t = t // keep track of boundary triangles on the hull
		e = newNode(nodes, i, e)

		// recursively flip triangles from the point until they satisfy the Delaunay condition
		e.t = tri.legalize(t + 2)

		// walk forward through the hull, adding more triangles and flipping recursively
		q := e.next
		for orient(p, points[q.i], points[q.next.i]) < 0 {
			t = tri.addTriangle(q.i, i, q.next.i, q.prev.t, -1, q.t)
			q.prev.t = tri.legalize(t + 2)
			tri.hull = q.remove()
			q = q.next
		}

		if walkBack {
			// walk backward from the other side, adding more triangles and flipping
			q := e.prev
			for orient(p, points[q.prev.i], points[q.i]) < 0 {
				t = tri.addTriangle(q.prev.i, i, q.i, -1, q.t, q.prev.t)
				tri.legalize(t + 2)
				q.prev.t = t
				tri.hull = q.remove()
				q = q.prev
			}
		}

		// save the two new edges in the hash table
		tri.hashEdge(e)
		tri.hashEdge(e.prev)
	}

	tri.triangles = tri.triangles[:tri.trianglesLen]
	tri.halfedges = tri.halfedges[:tri.trianglesLen]

	return true
}

func (tri *triangulator) hashKey(p Point) int {
	a := pseudoAngle(float64(p.X)-tri.cx, float64(p.Y)-tri.cy)
	return int(a*float64(len(tri.hash))) % len(tri.hash)
}

func (tri *triangulator) hashEdge(e *node) {
	tri.hash[tri.hashKey(tri.points[e.i])] = e
}

// addTriangle appends the triangle (i0, i1, i2) and links its halfedges to a, b and c.
func (tri *triangulator) addTriangle(i0, i1, i2, a, b, c int) int {
	i := tri.trianglesLen
	tri.triangles[i] = i0
	tri.triangles[i+1] = i1
	tri.triangles[i+2] = i2
	tri.link(i, a)
	tri.link(i+1, b)
	tri.link(i+2, c)
	tri.trianglesLen += 3
	return i
}

func (tri *triangulator) link(a, b int) {
	tri.halfedges[a] = b
	if b >= 0 {
		tri.halfedges[b] = a
	}
}

// legalize flips the edge a if the adjacent pair of triangles violates the
// Delaunay condition, then recurses into the two new outer edges.
//
//	          pl                    pl
//	         /||\                  /  \
//	      al/ || \bl            al/    \a
//	       /  ||  \              /      \
//	      /  a||b  \    flip    /___ar___\
//	    p0\   ||   /p1   =>   p0\---bl---/p1
//	       \  ||  /              \      /
//	      ar\ || /br             b\    /br
//	         \||/                  \  /
//	          pr                    pr
func (tri *triangulator) legalize(a int) int {
	b := tri.halfedges[a]

	a0 := a - a%3
	ar := a0 + (a+2)%3

	if b < 0 {
		return ar
	}

	b0 := b - b%3
	al := a0 + (a+1)%3
	bl := b0 + (b+2)%3

	p0 := tri.triangles[ar]
	pr := tri.triangles[a]
	pl := tri.triangles[al]
	p1 := tri.triangles[bl]

	if !inCircle(tri.points[p0], tri.points[pr], tri.points[pl], tri.points[p1]) {
		return ar
	}

	tri.triangles[a] = p1
	tri.triangles[b] = p0

	// edge swapped on the other side of the hull (rare), fix the halfedge reference
	if tri.halfedges[bl] == -1 {
		e := tri.hull
		for {
			if e.t == bl {
				e.t = a
				break
			}
			e = e.next
			if e == tri.hull {
				break
			}
		}
	}

	tri.link(a, tri.halfedges[bl])
	tri.link(b, tri.halfedges[ar])
	tri.link(ar, bl)

	br := b0 + (b+1)%3

	tri.legalize(a)
	return tri.legalize(br)
}

// hullIndices returns the hull vertices in the order they are linked.
func (tri *triangulator) hullIndices() []int {
	var result []int
	e := tri.hull
	for e != nil {
		result = append(result, e.i)
		e = e.prev
		if e == tri.hull {
			break
		}
	}
	return result
}
