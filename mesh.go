package vorinterp

import "github.com/esimov/vorinterp/delaunay"

// Locator maps a point to the face containing it.
// Implementations may keep a mutable hint and need not be safe for concurrent use.
type Locator interface {
	Locate(p delaunay.Point) (delaunay.Face, bool)
}

// Mesh is the read-only triangulation the pipeline works on.
// A Mesh must be safe for concurrent reads; every goroutine asks for its own Locator.
type Mesh interface {
	NumSites() int
	Site(i int) delaunay.Point
	NumFaces() int
	Vertices(f delaunay.Face) (a, b, c int)
	Neighbors(i int) []int
	NewLocator() Locator
}

type triMesh struct {
	*delaunay.Triangulation
}

// NewMesh adapts a Delaunay triangulation to the Mesh interface.
func NewMesh(t *delaunay.Triangulation) Mesh {
	return triMesh{t}
}

func (m triMesh) NewLocator() Locator {
	return m.Triangulation.NewLocator()
}

// BuildMesh triangulates the sites and wraps the result as a Mesh.
// Sites beyond ±delaunay.MaxCoord are reported as ErrInvalidInput.
func BuildMesh(sites []delaunay.Point) (Mesh, *delaunay.Triangulation, error) {
	tri, err := delaunay.Triangulate(sites)
	if err != nil {
		return nil, nil, wrapInvalid(err)
	}
	Logger().Debug("triangulated sites",
		"sites", len(sites),
		"distinct", tri.NumSites(),
		"faces", tri.NumFaces(),
		"dropped", tri.Dropped(),
	)
	if tri.Dropped() > 0 {
		Logger().Warn("sites left out of the mesh", "count", tri.Dropped())
	}
	return NewMesh(tri), tri, nil
}
