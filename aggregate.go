package vorinterp

import "github.com/esimov/vorinterp/delaunay"

// Accumulator holds the running channel sums and pixel counts of every site,
// indexed by site index.
type Accumulator struct {
	Sum   [][3]uint64
	Count []uint64
}

// NewAccumulator returns an empty accumulator for n sites.
func NewAccumulator(n int) *Accumulator {
	return &Accumulator{
		Sum:   make([][3]uint64, n),
		Count: make([]uint64, n),
	}
}

// Add accumulates one pixel into site i.
func (a *Accumulator) Add(i int, c Color) {
	a.Sum[i][0] += uint64(c.R)
	a.Sum[i][1] += uint64(c.G)
	a.Sum[i][2] += uint64(c.B)
	a.Count[i]++
}

// Merge adds the totals of other into a. Both accumulators must cover the same sites.
func (a *Accumulator) Merge(other *Accumulator) {
	for i := range other.Count {
		a.Sum[i][0] += other.Sum[i][0]
		a.Sum[i][1] += other.Sum[i][1]
		a.Sum[i][2] += other.Sum[i][2]
		a.Count[i] += other.Count[i]
	}
}

// Aggregate assigns every pixel of src to the nearest vertex of the face containing it
// and accumulates the pixel color into that site. Pixels outside the mesh are skipped.
func Aggregate(src *Raster, mesh Mesh) *Accumulator {
	acc := NewAccumulator(mesh.NumSites())
	AggregateRows(acc, src, mesh, 0, src.Height)
	return acc
}

// AggregateRows runs the aggregation over rows [from, to) only, adding into acc.
// Disjoint row ranges aggregated into separate accumulators and merged afterwards give
// the same totals as a single Aggregate call.
func AggregateRows(acc *Accumulator, src *Raster, mesh Mesh, from, to int) {
	if mesh.NumFaces() == 0 {
		return
	}
	loc := mesh.NewLocator()
	for i := from; i < to; i++ {
		o := i * src.Width * 3
		for j := 0; j < src.Width; j, o = j+1, o+3 {
			p := delaunay.Pt(i, j)
			f, ok := loc.Locate(p)
			if !ok {
				continue
			}
			v := nearestVertex(mesh, f, p)
			acc.Add(v, Color{src.Pix[o], src.Pix[o+1], src.Pix[o+2]})
		}
	}
}

// nearestVertex returns the vertex of f closest to p. Ties go to the earlier vertex in
// the face order.
func nearestVertex(mesh Mesh, f delaunay.Face, p delaunay.Point) int {
	a, b, c := mesh.Vertices(f)
	best, dist := a, p.SquaredDistance(mesh.Site(a))
	for _, v := range [2]int{b, c} {
		if d := p.SquaredDistance(mesh.Site(v)); d < dist {
			best, dist = v, d
		}
	}
	return best
}
