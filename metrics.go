package vorinterp

import (
	"math"

	"github.com/pkg/errors"
)

// MSE returns the mean squared error between two rasters of the same size, averaged over
// all channels.
func MSE(a, b *Raster) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height || len(a.Pix) != len(b.Pix) {
		return 0, errors.Wrapf(ErrInvalidInput, "cannot compare %dx%d with %dx%d",
			a.Height, a.Width, b.Height, b.Width)
	}
	if len(a.Pix) == 0 {
		return 0, nil
	}
	var sum uint64
	for i := range a.Pix {
		d := int64(a.Pix[i]) - int64(b.Pix[i])
		sum += uint64(d * d)
	}
	return float64(sum) / float64(len(a.Pix)), nil
}

// PSNR returns the peak signal to noise ratio in decibels. Identical rasters report +Inf.
func PSNR(a, b *Raster) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(255*255/mse), nil
}
