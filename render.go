package vorinterp

import (
	"math/bits"

	"github.com/esimov/vorinterp/delaunay"
)

// Render paints every pixel of dst covered by the mesh with the barycentric blend of the
// colors of the containing face. Pixels outside the mesh are left untouched.
func Render(dst *Raster, mesh Mesh, pal *Palette) {
	RenderRows(dst, mesh, pal, 0, dst.Height)
}

// RenderRows renders rows [from, to) of dst. Rows never interact, so disjoint ranges can
// be rendered by separate goroutines, each with its own call.
func RenderRows(dst *Raster, mesh Mesh, pal *Palette, from, to int) {
	if mesh.NumFaces() == 0 {
		return
	}
	loc := mesh.NewLocator()
	for i := from; i < to; i++ {
		o := i * dst.Width * 3
		for j := 0; j < dst.Width; j, o = j+1, o+3 {
			p := delaunay.Pt(i, j)
			f, ok := loc.Locate(p)
			if !ok {
				continue
			}
			c := blend(mesh, pal, f, p)
			dst.Pix[o] = c.R
			dst.Pix[o+1] = c.G
			dst.Pix[o+2] = c.B
		}
	}
}

// areas returns twice the unsigned areas of PBC, PCA and PAB together with the area of
// ABC for face f = (A, B, C).
func areas(mesh Mesh, f delaunay.Face, p delaunay.Point) (wa, wb, wc, total int64) {
	a, b, c := mesh.Vertices(f)
	pa, pb, pc := mesh.Site(a), mesh.Site(b), mesh.Site(c)
	return delaunay.Area2(p, pb, pc), delaunay.Area2(p, pc, pa), delaunay.Area2(p, pa, pb),
		delaunay.Area2(pa, pb, pc)
}

// Barycentric returns the weights of p relative to the vertices of face f, in face order.
// For p inside or on the face the weights are non-negative and sum to one.
func Barycentric(mesh Mesh, f delaunay.Face, p delaunay.Point) (wa, wb, wc float64) {
	a, b, c, total := areas(mesh, f, p)
	t := float64(total)
	return float64(a) / t, float64(b) / t, float64(c) / t
}

// blend evaluates wA·cA + wB·cB + wC·cC per channel and truncates it towards zero.
// The weighted sum is computed on integers in 128 bits, so the only rounding is the
// final truncation: equal vertex colors always reproduce that color.
func blend(mesh Mesh, pal *Palette, f delaunay.Face, p delaunay.Point) Color {
	a, b, c := mesh.Vertices(f)
	wa, wb, wc, total := areas(mesh, f, p)
	ca, cb, cc := pal.Colors[a], pal.Colors[b], pal.Colors[c]
	w := [3]uint64{uint64(wa), uint64(wb), uint64(wc)}
	return Color{
		R: mix(w, [3]uint8{ca.R, cb.R, cc.R}, uint64(total)),
		G: mix(w, [3]uint8{ca.G, cb.G, cc.G}, uint64(total)),
		B: mix(w, [3]uint8{ca.B, cb.B, cc.B}, uint64(total)),
	}
}

// mix returns floor(Σ w[k]·v[k] / total), clamped to 255.
func mix(w [3]uint64, v [3]uint8, total uint64) uint8 {
	var hi, lo uint64
	for k := 0; k < 3; k++ {
		h, l := bits.Mul64(w[k], uint64(v[k]))
		var carry uint64
		lo, carry = bits.Add64(lo, l, 0)
		hi, _ = bits.Add64(hi, h, carry)
	}
	if hi >= total {
		return 255
	}
	q, _ := bits.Div64(hi, lo, total)
	return uint8(min(q, 255))
}
