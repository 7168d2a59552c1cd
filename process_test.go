package vorinterp

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/esimov/vorinterp/delaunay"
)

func cornerSites(w, h int) []delaunay.Point {
	return []delaunay.Point{delaunay.Pt(0, 0), delaunay.Pt(0, w-1), delaunay.Pt(h-1, 0), delaunay.Pt(h-1, w-1)}
}

func TestProcessorImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 25, 15))
	for y := 5; y < 15; y++ {
		for x := 5; x < 25; x++ {
			src.Set(x, y, color.RGBA{R: 40, G: 80, B: 120, A: 255})
		}
	}

	p := &Processor{}
	res, err := p.Interpolate(src, cornerSites(20, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Raster.Width != 20 || res.Raster.Height != 10 {
		t.Fatalf("expected a 20x10 raster, got %dx%d", res.Raster.Width, res.Raster.Height)
	}
	if got := res.Image.NRGBAAt(7, 3); got != (color.NRGBA{R: 40, G: 80, B: 120, A: 255}) {
		t.Errorf("unexpected pixel %v", got)
	}
}

func TestWireframe(t *testing.T) {
	src := uniformRaster(20, 20, Color{90, 90, 90})
	sites := cornerSites(20, 20)

	tests := []struct {
		name string
		p    Processor
		// pixel away from every edge
		want color.NRGBA
	}{
		{name: "without", p: Processor{Wireframe: WithoutWireframe}, want: color.NRGBA{90, 90, 90, 255}},
		{name: "with", p: Processor{Wireframe: WithWireframe, LineWidth: 1}, want: color.NRGBA{90, 90, 90, 255}},
		{name: "only", p: Processor{Wireframe: WireframeOnly, LineWidth: 1}, want: color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.p.Run(src, sites)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Image.Bounds() != image.Rect(0, 0, 20, 20) {
				t.Fatalf("unexpected bounds %v", res.Image.Bounds())
			}
			if got := res.Image.NRGBAAt(10, 5); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if !bytes.Equal(res.Raster.Pix, src.Pix) {
				t.Error("effects must not alter the interpolated raster")
			}
		})
	}
}

func TestMarkers(t *testing.T) {
	src := uniformRaster(20, 20, Color{200, 10, 10})
	p := &Processor{MarkerRadius: 3}
	res, err := p.Run(src, []delaunay.Point{delaunay.Pt(0, 0), delaunay.Pt(0, 19), delaunay.Pt(19, 0), delaunay.Pt(10, 10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the marker outline is black, its inside the site color
	if got := res.Image.NRGBAAt(10, 10); got != (color.NRGBA{200, 10, 10, 255}) {
		t.Errorf("marker center should carry the site color, got %v", got)
	}
	c := res.Image.NRGBAAt(13, 10)
	if c.R >= 200 {
		t.Errorf("marker outline should darken the pixel, got %v", c)
	}
}

func TestNoise(t *testing.T) {
	a := uniformRaster(16, 16, Color{128, 128, 128})
	b := a.Clone()
	Noise(a, 30)
	Noise(b, 30)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("grain should be reproducible")
	}
	if bytes.Equal(a.Pix, uniformRaster(16, 16, Color{128, 128, 128}).Pix) {
		t.Error("grain should alter the image")
	}

	c := uniformRaster(4, 4, Color{1, 2, 3})
	Noise(c, 0)
	if !bytes.Equal(c.Pix, uniformRaster(4, 4, Color{1, 2, 3}).Pix) {
		t.Error("zero grain should leave the image untouched")
	}
}

func TestSideBySide(t *testing.T) {
	left := uniformRaster(10, 5, Color{255, 0, 0}).Image()
	right := uniformRaster(6, 7, Color{0, 0, 255}).Image()

	img := SideBySide(left, right, "", "")
	if img.Bounds() != image.Rect(0, 0, 10+compareGap+6, 7) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.NRGBAAt(2, 2); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("left image missing, got %v", got)
	}
	if got := img.NRGBAAt(11, 2); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("gap should be white, got %v", got)
	}
	if got := img.NRGBAAt(10+compareGap+1, 6); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("right image missing, got %v", got)
	}

	titled := SideBySide(left, right, "input", "output")
	if titled.Bounds().Dy() != 7+compareHeader {
		t.Errorf("expected a header band, got height %d", titled.Bounds().Dy())
	}
}

func TestMetrics(t *testing.T) {
	a := NewRaster(1, 1)
	b := NewRaster(1, 1)
	b.Set(0, 0, Color{3, 4, 0})

	mse, err := MSE(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(mse, 25.0/3, 1e-12) {
		t.Errorf("expected MSE 25/3, got %v", mse)
	}
	psnr, err := PSNR(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(psnr, 10*math.Log10(255*255*3/25.0), 1e-9) {
		t.Errorf("unexpected PSNR %v", psnr)
	}
	if psnr, _ := PSNR(a, a); !math.IsInf(psnr, 1) {
		t.Errorf("identical rasters should give +Inf, got %v", psnr)
	}
	if _, err := MSE(a, NewRaster(2, 1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRasterConversions(t *testing.T) {
	r := noiseRaster(7, 3, 10)
	back := RasterFromImage(r.Image())
	if !bytes.Equal(back.Pix, r.Pix) {
		t.Error("converting to an image and back should keep the pixels")
	}

	if _, err := RasterFromPix(2, 2, make([]uint8, 12)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := RasterFromPix(2, 2, make([]uint8, 16)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	gray := grayRaster(uniformRaster(2, 2, Color{255, 255, 255}))
	if gray.At(1, 1) != (Color{255, 255, 255}) {
		t.Errorf("white should stay white, got %v", gray.At(1, 1))
	}
}

func TestColor(t *testing.T) {
	r, g, b, a := Color{0x12, 0x34, 0xff}.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0xffff || a != 0xffff {
		t.Errorf("unexpected RGBA %x %x %x %x", r, g, b, a)
	}
	if got := ColorModel.Convert(color.NRGBA{R: 9, G: 8, B: 7, A: 255}); got != (Color{9, 8, 7}) {
		t.Errorf("unexpected conversion %v", got)
	}
}
