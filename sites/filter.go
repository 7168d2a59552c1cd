package sites

import (
	"image"
	"math"
)

type kernel [3][3]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// convolutionFilter applies a mathematical operation over the source image by taking
// the matrix table as input parameter and convolving the matrix values over the red channel.
// The result is written to every color channel, so it expects grayscale input.
func convolutionFilter(matrix []float64, img *image.NRGBA, divisor float64) {
	var (
		width  = img.Bounds().Dx()
		height = img.Bounds().Dy()
		size   = int(math.Sqrt(float64(len(matrix))))
		dim    = size / 2
	)

	weights := make([]float64, len(matrix))
	for k := range matrix {
		weights[k] = matrix[k] / divisor
	}
	src := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src[x+y*width] = float64(img.Pix[img.PixOffset(x, y)])
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var v float64

			for row := -dim; row <= dim; row++ {
				sy := y + row
				if sy < 0 || sy >= height {
					continue
				}
				kstep := (row + dim) * size
				for col := -dim; col <= dim; col++ {
					sx := x + col
					if sx >= 0 && sx < width {
						v += src[sx+sy*width] * weights[(col+dim)+kstep]
					}
				}
			}

			c := uint8(math.Max(0, math.Min(255, v)))
			o := img.PixOffset(x, y)
			img.Pix[o], img.Pix[o+1], img.Pix[o+2] = c, c, c
		}
	}
}

// blur smooths a grayscale image in place with a box filter of the given radius.
func blur(img *image.NRGBA, radius int) {
	if radius <= 0 {
		return
	}
	matrix := setBlurMatrix(radius)
	convolutionFilter(matrix, img, float64(len(matrix)))
}

// setBlurMatrix populates a matrix table with values used in conjunction with the convolution filter operator.
func setBlurMatrix(size int) []float64 {
	var (
		side   = size*2 + 1
		length = side * side
		matrix = make([]float64, length)
	)

	for i := 0; i < length; i++ {
		matrix[i] = 1
	}

	return matrix
}

// sobel returns the gradient magnitude of a grayscale image. Magnitudes not exceeding the
// threshold are zeroed, the rest are halved and clipped to 255.
func sobel(src *image.NRGBA, threshold float64) *image.NRGBA {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	at := func(x, y int) int32 {
		x = max(0, min(width-1, x))
		y = max(0, min(height-1, y))
		return int32(src.Pix[src.PixOffset(x, y)])
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumX, sumY int32
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					v := at(x+kx-1, y+ky-1)
					sumX += v * kernelX[ky][kx]
					sumY += v * kernelY[ky][kx]
				}
			}
			var c uint8
			magnitude := math.Sqrt(float64(sumX*sumX) + float64(sumY*sumY))
			if magnitude > threshold {
				c = uint8(math.Min(255, magnitude/2))
			}
			o := dst.PixOffset(x, y)
			dst.Pix[o], dst.Pix[o+1], dst.Pix[o+2], dst.Pix[o+3] = c, c, c, 0xff
		}
	}
	return dst
}
