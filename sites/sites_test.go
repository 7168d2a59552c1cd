package sites

import (
	"bytes"
	"image"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/esimov/vorinterp/delaunay"
)

func TestRandom(t *testing.T) {
	a := Random(30, 50, 200, 7)
	b := Random(30, 50, 200, 7)
	if len(a) != 200 {
		t.Fatalf("expected 200 sites, got %d", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should give the same sites")
	}
	for _, p := range a {
		if p.X < 0 || p.X >= 30 || p.Y < 0 || p.Y >= 50 {
			t.Errorf("site %v outside the 30x50 image", p)
		}
	}
	if Random(0, 10, 5, 1) != nil || Random(10, 10, 0, 1) != nil {
		t.Error("degenerate arguments should give no sites")
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		step          int
		want          int
	}{
		{name: "exact", height: 10, width: 7, step: 3, want: 12},
		{name: "padded", height: 11, width: 8, step: 3, want: 20},
		{name: "corners only", height: 5, width: 5, step: 10, want: 4},
		{name: "invalid step", height: 5, width: 5, step: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Grid(tt.height, tt.width, tt.step)
			if len(points) != tt.want {
				t.Fatalf("expected %d sites, got %d", tt.want, len(points))
			}
			if tt.want == 0 {
				return
			}
			last := points[len(points)-1]
			if last != delaunay.Pt(tt.height-1, tt.width-1) {
				t.Errorf("grid should end at the bottom right corner, got %v", last)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	points := []delaunay.Point{delaunay.Pt(0, 0), delaunay.Pt(12, 3), delaunay.Pt(-4, 9)}
	for _, f := range []Format{CSV, JSON} {
		var buf bytes.Buffer
		if err := Write(&buf, points, f); err != nil {
			t.Fatalf("format %d: unexpected error: %v", f, err)
		}
		got, err := Read(&buf, f)
		if err != nil {
			t.Fatalf("format %d: unexpected error: %v", f, err)
		}
		if !reflect.DeepEqual(got, points) {
			t.Errorf("format %d: got %v, want %v", f, got, points)
		}
	}
}

func TestReadCSV(t *testing.T) {
	got, err := Read(strings.NewReader("# sites\n1,2\n\n 3 , 4\n"), CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []delaunay.Point{delaunay.Pt(1, 2), delaunay.Pt(3, 4)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, in := range []string{"1,2,3\n", "a,1\n", "1\n"} {
		if _, err := Read(strings.NewReader(in), CSV); err == nil {
			t.Errorf("input %q should fail", in)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if FormatFromPath("sites.JSON") != JSON {
		t.Error("expected JSON for a .JSON file")
	}
	if FormatFromPath("sites.txt") != CSV {
		t.Error("expected CSV for a .txt file")
	}
}

func square(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{A: 255}
			if x >= size/4 && x < 3*size/4 && y >= size/4 && y < 3*size/4 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEdges(t *testing.T) {
	img := square(40)
	opts := DefaultOptions

	a := Edges(img, opts)
	b := Edges(img, opts)
	if !reflect.DeepEqual(a, b) {
		t.Error("edge detection should be deterministic")
	}
	if len(a) <= 4 {
		t.Fatalf("expected edge sites besides the corners, got %d sites", len(a))
	}
	for _, p := range a {
		if p.X < 0 || p.X >= 40 || p.Y < 0 || p.Y >= 40 {
			t.Errorf("site %v outside the image", p)
		}
	}
	tail := a[len(a)-4:]
	if !reflect.DeepEqual(tail, corners(40, 40)) {
		t.Errorf("expected the corners last, got %v", tail)
	}

	opts.MaxPoints = 10
	opts.Corners = false
	if n := len(Edges(img, opts)); n != 10 {
		t.Errorf("expected MaxPoints to cap the sites at 10, got %d", n)
	}
}

func TestEdgesFlat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	opts := DefaultOptions
	opts.Corners = false
	if n := len(Edges(img, opts)); n != 0 {
		t.Errorf("a flat image has no edges, got %d sites", n)
	}
}
