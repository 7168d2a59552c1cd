// Package sites chooses the site coordinates fed to the interpolation: uniformly at random,
// on a regular grid, or along the edges of the image. It also reads and writes site lists.
//
// Sites use the (row, column) convention of delaunay.Point.
package sites

import (
	"math/rand"

	"github.com/esimov/vorinterp/delaunay"
)

// Random returns n sites drawn uniformly from [0,height)×[0,width). The sequence depends
// only on the seed. Duplicates are possible and collapse into one mesh vertex.
func Random(height, width, n int, seed int64) []delaunay.Point {
	if height <= 0 || width <= 0 || n <= 0 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	points := make([]delaunay.Point, n)
	for i := range points {
		points[i] = delaunay.Pt(r.Intn(height), r.Intn(width))
	}
	return points
}

// Grid returns sites every step pixels in both directions. The last row and column are
// always included so the mesh reaches the image border.
func Grid(height, width, step int) []delaunay.Point {
	if height <= 0 || width <= 0 || step <= 0 {
		return nil
	}
	rows := axis(height, step)
	cols := axis(width, step)
	points := make([]delaunay.Point, 0, len(rows)*len(cols))
	for _, i := range rows {
		for _, j := range cols {
			points = append(points, delaunay.Pt(i, j))
		}
	}
	return points
}

func axis(n, step int) []int {
	var v []int
	for i := 0; i < n; i += step {
		v = append(v, i)
	}
	if v[len(v)-1] != n-1 {
		v = append(v, n-1)
	}
	return v
}
