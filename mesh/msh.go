package mesh

import (
	"strings"
)

// Mesh type tags, always stored lower case
const (
	EuclideanMesh = "euclidean-mesh"
	EuclideanGrid = "euclidean-grid"
	EllipsoidMesh = "ellipsoid-mesh"
	EllipsoidGrid = "ellipsoid-grid"
)

// CellKind is the numeric cell code used by BOUND records
type CellKind int

const (
	PointKind CellKind = 0
	Edge2Kind CellKind = 10
	Tria3Kind CellKind = 20
	Quad4Kind CellKind = 21
	Tria4Kind CellKind = 30
	Hexa8Kind CellKind = 31
	Wedg6Kind CellKind = 32
	Pyra5Kind CellKind = 33
)

var cellKindNames = map[CellKind]string{
	PointKind: "POINT",
	Edge2Kind: "EDGE2",
	Tria3Kind: "TRIA3",
	Quad4Kind: "QUAD4",
	Tria4Kind: "TRIA4",
	Hexa8Kind: "HEXA8",
	Wedg6Kind: "WEDG6",
	Pyra5Kind: "PYRA5",
}

func (k CellKind) String() string {
	if name, ok := cellKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Vert2 is a 2D vertex
type Vert2 struct {
	Coord [2]float64
	IDtag int
}

// Vert3 is a 3D vertex
type Vert3 struct {
	Coord [3]float64
	IDtag int
}

// Cells carry 0-based node indices into the vertex array plus a user tag.
// Nodes returns a view of the index array, its length is the topology arity.
type Edge2 struct {
	Index [2]int
	IDtag int
}

type Tria3 struct {
	Index [3]int
	IDtag int
}

type Quad4 struct {
	Index [4]int
	IDtag int
}

// Tria4 is a tetrahedron
type Tria4 struct {
	Index [4]int
	IDtag int
}

type Hexa8 struct {
	Index [8]int
	IDtag int
}

type Pyra5 struct {
	Index [5]int
	IDtag int
}

type Wedg6 struct {
	Index [6]int
	IDtag int
}

func (c *Edge2) Nodes() []int { return c.Index[:] }
func (c *Tria3) Nodes() []int { return c.Index[:] }
func (c *Quad4) Nodes() []int { return c.Index[:] }
func (c *Tria4) Nodes() []int { return c.Index[:] }
func (c *Hexa8) Nodes() []int { return c.Index[:] }
func (c *Pyra5) Nodes() []int { return c.Index[:] }
func (c *Wedg6) Nodes() []int { return c.Index[:] }

func (c *Edge2) SetIDtag(id int) { c.IDtag = id }
func (c *Tria3) SetIDtag(id int) { c.IDtag = id }
func (c *Quad4) SetIDtag(id int) { c.IDtag = id }
func (c *Tria4) SetIDtag(id int) { c.IDtag = id }
func (c *Hexa8) SetIDtag(id int) { c.IDtag = id }
func (c *Pyra5) SetIDtag(id int) { c.IDtag = id }
func (c *Wedg6) SetIDtag(id int) { c.IDtag = id }

// Bound marks cell Index of kind Cells as part of boundary IDtag
type Bound struct {
	IDtag int
	Index int
	Cells CellKind
}

// Msh is the mesh / grid container populated by the MSH readers. Entity
// slices stay nil until their segment is read.
type Msh struct {
	MshID string
	NDims int
	Radii []float64 // [3] once set

	Vert2 []Vert2
	Vert3 []Vert3

	Edge2 []Edge2
	Tria3 []Tria3
	Quad4 []Quad4
	Tria4 []Tria4
	Hexa8 []Hexa8
	Pyra5 []Pyra5
	Wedg6 []Wedg6
	Bound []Bound

	// Structured grid axes
	XGrid []float64
	YGrid []float64
	ZGrid []float64

	Power *Array
	Value *Array
	Slope *Array
}

// NewMsh returns an empty euclidean mesh
func NewMsh() *Msh {
	return &Msh{
		MshID: EuclideanMesh,
	}
}

// IsGrid reports whether the tag names a structured grid
func (m *Msh) IsGrid() bool {
	switch strings.ToLower(m.MshID) {
	case EuclideanGrid, EllipsoidGrid:
		return true
	}
	return false
}

// NumVertices returns the length of whichever vertex array matches NDims,
// falling back to the non-empty one.
func (m *Msh) NumVertices() int {
	switch {
	case m.NDims == 3 && m.Vert3 != nil:
		return len(m.Vert3)
	case m.NDims == 2 && m.Vert2 != nil:
		return len(m.Vert2)
	case len(m.Vert3) > 0:
		return len(m.Vert3)
	}
	return len(m.Vert2)
}

// Cells returns the node lists of every cell, grouped by kind
func (m *Msh) Cells() map[CellKind][][]int {
	cells := make(map[CellKind][][]int)
	add := func(kind CellKind, n int, nodes func(i int) []int) {
		if n == 0 {
			return
		}
		list := make([][]int, n)
		for i := range list {
			list[i] = nodes(i)
		}
		cells[kind] = list
	}
	add(Edge2Kind, len(m.Edge2), func(i int) []int { return m.Edge2[i].Nodes() })
	add(Tria3Kind, len(m.Tria3), func(i int) []int { return m.Tria3[i].Nodes() })
	add(Quad4Kind, len(m.Quad4), func(i int) []int { return m.Quad4[i].Nodes() })
	add(Tria4Kind, len(m.Tria4), func(i int) []int { return m.Tria4[i].Nodes() })
	add(Hexa8Kind, len(m.Hexa8), func(i int) []int { return m.Hexa8[i].Nodes() })
	add(Pyra5Kind, len(m.Pyra5), func(i int) []int { return m.Pyra5[i].Nodes() })
	add(Wedg6Kind, len(m.Wedg6), func(i int) []int { return m.Wedg6[i].Nodes() })
	return cells
}
