package vorinterp

import (
	"image"

	"github.com/esimov/vorinterp/delaunay"
	"github.com/pkg/errors"
)

const (
	WithoutWireframe = iota
	WithWireframe
	WireframeOnly
)

// Processor holds the options of an interpolation run.
// The zero value interpolates with the FallbackNeighbors policy and no effects.
type Processor struct {
	Fallback      FallbackPolicy
	FallbackColor Color
	// StrictBounds rejects sites outside the image instead of letting them stretch the mesh.
	StrictBounds bool

	Wireframe int
	LineWidth float64
	IsSolid   bool
	// MarkerRadius draws a dot of this radius over every site when positive.
	MarkerRadius float64
	Noise        int
	Grayscale    bool
}

// Result gathers the outcome of an interpolation run.
type Result struct {
	// Raster is the interpolated image before any effect is applied.
	Raster *Raster
	// Image is the final picture with grain, wireframe and markers.
	Image         *image.NRGBA
	Triangulation *delaunay.Triangulation
	Palette       *Palette
	Accumulator   *Accumulator
}

// Interpolate rebuilds src from the colors gathered around the sites, using the default
// Processor options. The returned raster is newly allocated and has the size of src.
func Interpolate(src *Raster, sites []delaunay.Point) (*Raster, error) {
	p := &Processor{}
	res, err := p.Run(src, sites)
	if err != nil {
		return nil, err
	}
	return res.Raster, nil
}

// Interpolate converts any image into a raster, ignoring its alpha channel, and runs it
// through the processor.
func (p *Processor) Interpolate(src image.Image, sites []delaunay.Point) (*Result, error) {
	return p.Run(RasterFromImage(src), sites)
}

// Run triangulates the sites, aggregates the colors of src around them and renders the
// interpolated image. Effects are applied on Result.Image only.
func (p *Processor) Run(src *Raster, sites []delaunay.Point) (*Result, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}
	if p.StrictBounds {
		for k, s := range sites {
			if s.X < 0 || s.X >= src.Height || s.Y < 0 || s.Y >= src.Width {
				return nil, errors.Wrapf(ErrInvalidInput, "site %d (%d,%d) lies outside the %dx%d image",
					k, s.X, s.Y, src.Height, src.Width)
			}
		}
	}

	if p.Grayscale {
		src = grayRaster(src)
	}

	mesh, tri, err := BuildMesh(sites)
	if err != nil {
		return nil, err
	}

	acc := Aggregate(src, mesh)
	pal, err := Resolve(acc, mesh, p.Fallback, p.FallbackColor)
	if err != nil {
		return nil, err
	}
	out := NewRaster(src.Width, src.Height)
	Render(out, mesh, pal)

	Logger().Debug("interpolated image",
		"width", src.Width,
		"height", src.Height,
		"faces", tri.NumFaces(),
	)

	return &Result{
		Raster:        out,
		Image:         p.Draw(out, tri, pal),
		Triangulation: tri,
		Palette:       pal,
		Accumulator:   acc,
	}, nil
}

// Draw composes the final picture: grain first, then the wireframe and the site markers.
func (p *Processor) Draw(r *Raster, tri *delaunay.Triangulation, pal *Palette) *image.NRGBA {
	if p.Noise > 0 {
		r = r.Clone()
		Noise(r, p.Noise)
	}
	img := r.Image()
	if p.Wireframe == WithoutWireframe && p.MarkerRadius <= 0 {
		return img
	}
	return p.drawMesh(img, tri, pal)
}
