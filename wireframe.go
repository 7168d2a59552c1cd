package vorinterp

import (
	"image"
	"image/color"

	"github.com/esimov/vorinterp/delaunay"
	"github.com/fogleman/gg"
)

// canvas returns the gg coordinates of the center of the pixel at site p.
// gg works in (x, y) = (column, row).
func canvas(p delaunay.Point) (float64, float64) {
	return float64(p.Y) + 0.5, float64(p.X) + 0.5
}

// drawMesh strokes the triangulation over img according to the wireframe mode and
// draws the site markers.
func (p *Processor) drawMesh(img *image.NRGBA, tri *delaunay.Triangulation, pal *Palette) *image.NRGBA {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	var ctx *gg.Context
	if p.Wireframe == WireframeOnly {
		ctx = gg.NewContext(width, height)
		ctx.DrawRectangle(0, 0, float64(width), float64(height))
		ctx.SetRGBA(1, 1, 1, 1)
		ctx.Fill()
	} else {
		ctx = gg.NewContextForImage(img)
	}

	lineWidth := p.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}

	if p.Wireframe != WithoutWireframe {
		for f := 0; f < tri.NumFaces(); f++ {
			a, b, c := tri.Vertices(delaunay.Face(f))
			p0, p1, p2 := tri.Site(a), tri.Site(b), tri.Site(c)

			ctx.Push()
			ctx.MoveTo(canvas(p0))
			ctx.LineTo(canvas(p1))
			ctx.LineTo(canvas(p2))
			ctx.ClosePath()

			var lineColor color.NRGBA
			switch {
			case p.Wireframe == WithWireframe:
				lineColor = color.NRGBA{R: 0, G: 0, B: 0, A: 20}
			case p.IsSolid:
				lineColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
			default:
				ca, cb, cc := pal.Colors[a], pal.Colors[b], pal.Colors[c]
				lineColor = color.NRGBA{
					R: uint8((int(ca.R) + int(cb.R) + int(cc.R)) / 3),
					G: uint8((int(ca.G) + int(cb.G) + int(cc.G)) / 3),
					B: uint8((int(ca.B) + int(cb.B) + int(cc.B)) / 3),
					A: 255,
				}
			}
			ctx.SetStrokeStyle(gg.NewSolidPattern(lineColor))
			ctx.SetLineWidth(lineWidth)
			ctx.Stroke()
			ctx.Pop()
		}
	}

	if p.MarkerRadius > 0 {
		for i := 0; i < tri.NumSites(); i++ {
			x, y := canvas(tri.Site(i))
			ctx.DrawCircle(x, y, p.MarkerRadius)
			ctx.SetColor(pal.Colors[i])
			ctx.FillPreserve()
			ctx.SetRGBA(0, 0, 0, 1)
			ctx.SetLineWidth(1)
			ctx.Stroke()
		}
	}

	return ImgToNRGBA(ctx.Image())
}
