package vorinterp

import "image/color"

// Color is an opaque RGB color with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color, reporting a fully opaque color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ColorModel converts any color to Color, dropping alpha after un-premultiplying.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
})
