package vorinterp

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"testing"
)

func BenchmarkInterpolate(b *testing.B) {
	src := noiseRaster(640, 480, 1)
	sites := randomSites(640, 480, 2500, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Interpolate(src, sites); err != nil {
			b.Fatalf("Failed interpolating benchmark image: %v", err)
		}
	}
}

func BenchmarkDraw(b *testing.B) {
	buf, err := os.ReadFile("./testdata/sample.png")
	if err != nil {
		b.Skipf("Failed opening test file: %v", err)
	}
	img, _, err := image.Decode(bytes.NewBuffer(buf))
	if err != nil {
		b.Skipf("Failed decoding image: %v", err)
	}
	bounds := img.Bounds()
	sites := randomSites(bounds.Dx(), bounds.Dy(), 2500, 3)
	p := &Processor{
		Wireframe: WithWireframe,
		LineWidth: 1,
		Noise:     10,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = p.Interpolate(img, sites); err != nil {
			b.Fatalf("Failed drawing benchmark image: %v", err)
		}
	}
}
