package vorinterp

import (
	"image"

	"github.com/fogleman/gg"
)

const (
	compareGap    = 8
	compareHeader = 20
)

// SideBySide places left and right next to each other on a white sheet, each one under
// its title. Empty titles drop the header band.
func SideBySide(left, right image.Image, leftTitle, rightTitle string) *image.NRGBA {
	lb, rb := left.Bounds(), right.Bounds()
	header := 0
	if leftTitle != "" || rightTitle != "" {
		header = compareHeader
	}
	width := lb.Dx() + compareGap + rb.Dx()
	height := header + Max(lb.Dy(), rb.Dy())

	ctx := gg.NewContext(width, height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.DrawImage(left, -lb.Min.X, header-lb.Min.Y)
	ctx.DrawImage(right, lb.Dx()+compareGap-rb.Min.X, header-rb.Min.Y)

	if header > 0 {
		ctx.SetRGB(0, 0, 0)
		mid := float64(header) / 2
		ctx.DrawStringAnchored(leftTitle, float64(lb.Dx())/2, mid, 0.5, 0.5)
		ctx.DrawStringAnchored(rightTitle, float64(lb.Dx()+compareGap)+float64(rb.Dx())/2, mid, 0.5, 0.5)
	}
	return ImgToNRGBA(ctx.Image())
}
