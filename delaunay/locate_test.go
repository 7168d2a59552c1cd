package delaunay

import (
	"testing"
)

// bruteLocate returns the lowest face whose closed region contains p.
func bruteLocate(t *Triangulation, p Point) Face {
	for f := 0; f < t.NumFaces(); f++ {
		if t.Contains(Face(f), p) {
			return Face(f)
		}
	}
	return Outside
}

func TestLocateMatchesScan(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		size   int
	}{
		{name: "random", points: randomPoints(60, 40, 11), size: 40},
		{name: "lattice", points: gridPoints(5, 5, 6), size: 30},
		{name: "triangle", points: []Point{Pt(0, 0), Pt(0, 20), Pt(20, 0)}, size: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri, err := Triangulate(tt.points)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			loc := tri.NewLocator()
			for i := -2; i < tt.size+2; i++ {
				for j := -2; j < tt.size+2; j++ {
					p := Pt(i, j)
					want := bruteLocate(tri, p)
					got, ok := loc.Locate(p)
					if ok != (want != Outside) || got != want {
						t.Fatalf("point %v: got face %d (%v), want %d", p, got, ok, want)
					}
				}
			}
		})
	}
}

func TestLocateHintIndependent(t *testing.T) {
	tri, err := Triangulate(randomPoints(80, 64, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rowMajor := make(map[Point]Face)
	loc := tri.NewLocator()
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			f, _ := loc.Locate(Pt(i, j))
			rowMajor[Pt(i, j)] = f
		}
	}

	// walk the grid column-major and backwards, starting from a different hint
	loc = tri.NewLocator()
	for j := 63; j >= 0; j-- {
		for i := 63; i >= 0; i-- {
			f, _ := loc.Locate(Pt(i, j))
			if f != rowMajor[Pt(i, j)] {
				t.Fatalf("point (%d,%d): face %d, row-major walk found %d", i, j, f, rowMajor[Pt(i, j)])
			}
		}
	}
}

func TestLocateBoundary(t *testing.T) {
	// the diagonal from (0,0) to (4,4) is shared by both faces
	tri, err := Triangulate([]Point{Pt(0, 0), Pt(0, 4), Pt(4, 0), Pt(4, 4)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var shared [2]int
	n := 0
	for _, e := range tri.Edges() {
		a, b := tri.Site(e[0]), tri.Site(e[1])
		if a.X != b.X && a.Y != b.Y {
			shared = e
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected exactly one diagonal, got %d", n)
	}
	a, b := tri.Site(shared[0]), tri.Site(shared[1])
	mid := Pt((a.X+b.X)/2, (a.Y+b.Y)/2)

	f, ok := tri.Locate(mid)
	if !ok || f != 0 {
		t.Errorf("point on the diagonal should resolve to face 0, got %d", f)
	}
	for _, v := range []Point{a, b} {
		if f, ok := tri.Locate(v); !ok || f != 0 {
			t.Errorf("shared vertex %v should resolve to face 0, got %d", v, f)
		}
	}
}

func TestLocateOutside(t *testing.T) {
	tri, err := Triangulate([]Point{Pt(10, 10), Pt(10, 20), Pt(20, 10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range []Point{Pt(0, 0), Pt(20, 20), Pt(16, 16), Pt(-MaxCoord-5, 0), Pt(MaxCoord*2, 3)} {
		if f, ok := tri.Locate(p); ok || f != Outside {
			t.Errorf("point %v should be outside, got %d", p, f)
		}
	}
	if f, ok := tri.Locate(Pt(15, 15)); !ok || f != 0 {
		t.Errorf("point on the hypotenuse should be inside, got %d", f)
	}
}
