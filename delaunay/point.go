package delaunay

import "math"

// MaxCoord bounds the absolute value of every coordinate handled by the package.
// Within this range all orientation tests are exact in int64 arithmetic.
const MaxCoord = 1 << 29

var (
	infinity = math.Inf(1)
	eps      = math.Nextafter(1, 2) - 1
)

// Point is an integer lattice coordinate. X is the image row and Y the image column,
// matching the (i, j) order used when rasterizing.
type Point struct {
	X, Y int
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// InRange reports whether both components are within ±MaxCoord.
func (p Point) InRange() bool {
	return p.X >= -MaxCoord && p.X <= MaxCoord && p.Y >= -MaxCoord && p.Y <= MaxCoord
}

// SquaredDistance returns the squared euclidean distance between p and q.
func (p Point) SquaredDistance(q Point) int64 {
	dx := int64(p.X - q.X)
	dy := int64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// less orders points lexicographically, first by X then by Y.
func (p Point) less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) squaredDistanceTo(x, y float64) float64 {
	dx := float64(p.X) - x
	dy := float64(p.Y) - y
	return dx*dx + dy*dy
}
