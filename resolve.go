package vorinterp

import (
	"strings"

	"github.com/pkg/errors"
)

// FallbackPolicy decides the color of a mesh vertex that collected no pixel.
type FallbackPolicy int

const (
	// FallbackNeighbors averages the resolved Delaunay neighbors of the site, spreading
	// outwards one ring per round. Sites no ring reaches get the fallback color.
	FallbackNeighbors FallbackPolicy = iota
	// FallbackColor paints the site with the fallback color.
	FallbackColor
	// FallbackStrict makes Resolve fail with ErrUnresolvedSite.
	FallbackStrict
)

var fallbackNames = []string{"neighbors", "color", "strict"}

func (p FallbackPolicy) String() string {
	if p < 0 || int(p) >= len(fallbackNames) {
		return "unknown"
	}
	return fallbackNames[p]
}

// ParseFallback converts a policy name into a FallbackPolicy.
func ParseFallback(s string) (FallbackPolicy, error) {
	for i, name := range fallbackNames {
		if strings.EqualFold(s, name) {
			return FallbackPolicy(i), nil
		}
	}
	return 0, errors.Errorf("unknown fallback policy %q (want one of %s)", s, strings.Join(fallbackNames, ", "))
}

// Palette is the resolved color table, indexed by site index.
// Resolved[i] reports whether Colors[i] was averaged from pixels; otherwise it came from
// the fallback policy, or the site is not a vertex of any face and is never looked up.
type Palette struct {
	Colors   []Color
	Resolved []bool
}

// Resolve averages the accumulated colors of every site. Each channel is the floor of
// sum/count. Face vertices without pixels are handled by policy.
func Resolve(acc *Accumulator, mesh Mesh, policy FallbackPolicy, fallback Color) (*Palette, error) {
	n := mesh.NumSites()
	pal := &Palette{
		Colors:   make([]Color, n),
		Resolved: make([]bool, n),
	}

	var pending []int
	for i := 0; i < n; i++ {
		if cnt := acc.Count[i]; cnt > 0 {
			pal.Colors[i] = Color{
				R: uint8(acc.Sum[i][0] / cnt),
				G: uint8(acc.Sum[i][1] / cnt),
				B: uint8(acc.Sum[i][2] / cnt),
			}
			pal.Resolved[i] = true
			continue
		}
		pal.Colors[i] = fallback
		if len(mesh.Neighbors(i)) > 0 {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return pal, nil
	}

	switch policy {
	case FallbackStrict:
		p := mesh.Site(pending[0])
		return nil, errors.Wrapf(ErrUnresolvedSite, "%d sites without pixels, first is site %d at (%d,%d)",
			len(pending), pending[0], p.X, p.Y)
	case FallbackNeighbors:
		pending = fillFromNeighbors(pal, mesh, pending)
	}

	for _, i := range pending {
		p := mesh.Site(i)
		Logger().Warn("site resolved to the fallback color", "site", i, "x", p.X, "y", p.Y)
	}
	return pal, nil
}

// fillFromNeighbors colors pending sites with the mean of their known neighbors, one ring
// at a time. A ring only reads colors known before it started, so the outcome does not
// depend on the order of pending. It returns the sites left unresolved.
func fillFromNeighbors(pal *Palette, mesh Mesh, pending []int) []int {
	known := make([]bool, len(pal.Colors))
	copy(known, pal.Resolved)

	for len(pending) > 0 {
		var (
			next   []int
			filled []int
			colors []Color
		)
		for _, i := range pending {
			var sum [3]uint64
			var cnt uint64
			for _, v := range mesh.Neighbors(i) {
				if !known[v] {
					continue
				}
				c := pal.Colors[v]
				sum[0] += uint64(c.R)
				sum[1] += uint64(c.G)
				sum[2] += uint64(c.B)
				cnt++
			}
			if cnt == 0 {
				next = append(next, i)
				continue
			}
			filled = append(filled, i)
			colors = append(colors, Color{uint8(sum[0] / cnt), uint8(sum[1] / cnt), uint8(sum[2] / cnt)})
		}
		if len(filled) == 0 {
			return next
		}
		for k, i := range filled {
			pal.Colors[i] = colors[k]
			known[i] = true
			p := mesh.Site(i)
			Logger().Debug("site colored from its neighbors", "site", i, "x", p.X, "y", p.Y)
		}
		pending = next
	}
	return nil
}
