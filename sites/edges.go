package sites

import (
	"image"
	"math/rand"

	"github.com/esimov/vorinterp"
	"github.com/esimov/vorinterp/delaunay"
)

// pointRate defines the share of edge pixels kept as sites.
const pointRate = 0.875

// Options drives the edge based site detection.
type Options struct {
	BlurRadius      int
	SobelThreshold  int
	PointsThreshold int
	MaxPoints       int
	Seed            int64
	// Corners adds the four image corners so the mesh covers the whole image.
	Corners bool
}

// DefaultOptions mirror the defaults of the command line tool.
var DefaultOptions = Options{
	BlurRadius:      2,
	SobelThreshold:  10,
	PointsThreshold: 20,
	MaxPoints:       2500,
	Seed:            1,
	Corners:         true,
}

// Edges picks sites along the edges of img: the image is blurred, converted to grayscale
// and run through a Sobel filter, then a random subset of the pixels whose neighborhood
// is brighter than PointsThreshold is kept. The same options always give the same sites.
func Edges(img image.Image, o Options) []delaunay.Point {
	src := vorinterp.Grayscale(vorinterp.ImgToNRGBA(img))
	blur(src, o.BlurRadius)
	edges := sobel(src, float64(o.SobelThreshold))

	points := edgePoints(edges, o.PointsThreshold, o.MaxPoints, o.Seed)
	if h, w := edges.Bounds().Dy(), edges.Bounds().Dx(); o.Corners && h > 0 && w > 0 {
		points = append(points, corners(h, w)...)
	}
	return points
}

// edgePoints retrieves the points whose 3x3 neighborhood average exceeds the threshold
// and keeps a random sample of them.
func edgePoints(img *image.NRGBA, threshold, maxPoints int, seed int64) []delaunay.Point {
	r := rand.New(rand.NewSource(seed))
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	var (
		sum, total   int
		x, y, sx, sy int
		row, col     int
		points       []delaunay.Point
		dpoints      []delaunay.Point
	)

	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			sum, total = 0, 0

			for row = -1; row <= 1; row++ {
				sy = y + row
				if sy >= 0 && sy < height {
					for col = -1; col <= 1; col++ {
						sx = x + col
						if sx >= 0 && sx < width {
							sum += int(img.Pix[img.PixOffset(sx, sy)])
							total++
						}
					}
				}
			}
			if total > 0 {
				sum /= total
			}
			if sum > threshold {
				points = append(points, delaunay.Pt(y, x))
			}
		}
	}

	limit := int(float64(len(points)) * pointRate)
	if maxPoints > 0 && limit > maxPoints {
		limit = maxPoints
	}

	tlen := len(points)
	for i := 0; i < limit; i++ {
		j := r.Intn(tlen)
		dpoints = append(dpoints, points[j])
		// move the picked point out of the sampling range
		points[j] = points[tlen-1]
		tlen--
	}
	return dpoints
}

func corners(height, width int) []delaunay.Point {
	return []delaunay.Point{
		delaunay.Pt(0, 0),
		delaunay.Pt(0, width-1),
		delaunay.Pt(height-1, 0),
		delaunay.Pt(height-1, width-1),
	}
}
