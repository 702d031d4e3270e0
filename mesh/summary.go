package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type AxisSummary struct {
	Len int     `json:"len"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FieldSummary struct {
	Shape []int   `json:"shape"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type DegreeSummary struct {
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
}

// Summary is a printable digest of a loaded Msh
type Summary struct {
	MshID    string                  `json:"mshID"`
	NDims    int                     `json:"ndims"`
	Radii    []float64               `json:"radii,omitempty"`
	Vertices int                     `json:"vertices"`
	Cells    map[string]int          `json:"cells,omitempty"`
	Bound    int                     `json:"bound"`
	Axes     map[string]AxisSummary  `json:"axes,omitempty"`
	Fields   map[string]FieldSummary `json:"fields,omitempty"`
	Degree   *DegreeSummary          `json:"degree,omitempty"`
}

func (m *Msh) Summary(withAdjacency bool) (S Summary, err error) {
	S = Summary{
		MshID:    m.MshID,
		NDims:    m.NDims,
		Radii:    m.Radii,
		Vertices: m.NumVertices(),
		Cells:    make(map[string]int),
		Bound:    len(m.Bound),
		Axes:     make(map[string]AxisSummary),
		Fields:   make(map[string]FieldSummary),
	}
	for kind, list := range m.Cells() {
		S.Cells[kind.String()] = len(list)
	}
	for name, axis := range map[string][]float64{"x": m.XGrid, "y": m.YGrid, "z": m.ZGrid} {
		if len(axis) == 0 {
			continue
		}
		S.Axes[name] = AxisSummary{Len: len(axis), Min: floats.Min(axis), Max: floats.Max(axis)}
	}
	for name, field := range map[string]*Array{"power": m.Power, "value": m.Value, "slope": m.Slope} {
		if field.Len() == 0 {
			continue
		}
		fs := FieldSummary{Shape: field.Shape}
		if M, derr := field.Dense(); derr == nil {
			fs.Min, fs.Max = mat.Min(M), mat.Max(M)
		} else {
			fs.Min, fs.Max = floats.Min(field.Data), floats.Max(field.Data)
		}
		S.Fields[name] = fs
	}
	if withAdjacency && S.Vertices > 0 {
		var A *sparse.CSR
		if A, err = m.Adjacency(); err != nil {
			return
		}
		S.Degree = degreeSummary(A)
	}
	return
}

// Adjacency returns the symmetric vertex graph, two vertices being adjacent
// when they share a cell.
func (m *Msh) Adjacency() (A *sparse.CSR, err error) {
	var (
		nv = m.NumVertices()
	)
	if nv == 0 {
		err = fmt.Errorf("mesh has no vertices")
		return
	}
	dok := sparse.NewDOK(nv, nv)
	for kind, list := range m.Cells() {
		for ic, nodes := range list {
			for _, n := range nodes {
				if n < 0 || n >= nv {
					err = fmt.Errorf("%s cell %d references vertex %d, mesh has %d vertices",
						kind, ic, n, nv)
					return
				}
			}
			for i, ni := range nodes {
				for _, nj := range nodes[i+1:] {
					if ni == nj {
						continue
					}
					dok.Set(ni, nj, 1)
					dok.Set(nj, ni, 1)
				}
			}
		}
	}
	A = dok.ToCSR()
	return
}

func degreeSummary(A *sparse.CSR) (D *DegreeSummary) {
	var (
		nr, _  = A.Dims()
		indptr = A.RawMatrix().Indptr
		total  int
	)
	D = &DegreeSummary{}
	for i := 0; i < nr; i++ {
		deg := indptr[i+1] - indptr[i]
		total += deg
		if deg > D.Max {
			D.Max = deg
		}
	}
	if nr > 0 {
		D.Mean = float64(total) / float64(nr)
	}
	return
}
