package vorinterp

import (
	"image"

	"github.com/pkg/errors"
)

// Raster is a plain row-major RGB buffer, 3 bytes per pixel.
// The pixel at row i and column j starts at Pix[(i*Width+j)*3].
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster allocates a zeroed raster of the given size.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// RasterFromPix wraps an existing H×W×3 buffer without copying it.
// It returns an ErrInvalidInput error when the buffer does not match the dimensions.
func RasterFromPix(width, height int, pix []uint8) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "non-positive dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return nil, errors.Wrapf(ErrInvalidInput, "pixel buffer holds %d bytes, expected %d for %dx%dx3",
			len(pix), width*height*3, height, width)
	}
	return &Raster{Width: width, Height: height, Pix: pix}, nil
}

// RasterFromImage copies any image into a new raster, dropping the alpha channel.
func RasterFromImage(img image.Image) *Raster {
	src := ImgToNRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	r := NewRaster(w, h)
	for y := 0; y < h; y++ {
		si := src.PixOffset(0, y)
		di := y * w * 3
		for x := 0; x < w; x++ {
			r.Pix[di+0] = src.Pix[si+0]
			r.Pix[di+1] = src.Pix[si+1]
			r.Pix[di+2] = src.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return r
}

// Image converts the raster into an opaque *image.NRGBA.
func (r *Raster) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		di := dst.PixOffset(0, y)
		si := y * r.Width * 3
		for x := 0; x < r.Width; x++ {
			dst.Pix[di+0] = r.Pix[si+0]
			dst.Pix[di+1] = r.Pix[si+1]
			dst.Pix[di+2] = r.Pix[si+2]
			dst.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return dst
}

// At returns the color of the pixel at row i, column j.
func (r *Raster) At(i, j int) Color {
	o := (i*r.Width + j) * 3
	return Color{r.Pix[o], r.Pix[o+1], r.Pix[o+2]}
}

// Set paints the pixel at row i, column j.
func (r *Raster) Set(i, j int, c Color) {
	o := (i*r.Width + j) * 3
	r.Pix[o] = c.R
	r.Pix[o+1] = c.G
	r.Pix[o+2] = c.B
}

// Fill paints every pixel with c.
func (r *Raster) Fill(c Color) {
	for o := 0; o < len(r.Pix); o += 3 {
		r.Pix[o] = c.R
		r.Pix[o+1] = c.G
		r.Pix[o+2] = c.B
	}
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &Raster{Width: r.Width, Height: r.Height, Pix: pix}
}

// validate checks the raster shape.
func (r *Raster) validate() error {
	if r == nil {
		return errors.Wrap(ErrInvalidInput, "nil raster")
	}
	_, err := RasterFromPix(r.Width, r.Height, r.Pix)
	return err
}
