package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// two triangles sharing the edge 1-2 plus a dangling edge 3-4
func twoTriangles() *Msh {
	m := NewMsh()
	m.NDims = 2
	m.Vert2 = []Vert2{
		{Coord: [2]float64{0, 0}}, {Coord: [2]float64{1, 0}}, {Coord: [2]float64{0, 1}},
		{Coord: [2]float64{1, 1}}, {Coord: [2]float64{2, 2}},
	}
	m.Tria3 = []Tria3{
		{Index: [3]int{0, 1, 2}},
		{Index: [3]int{1, 3, 2}},
	}
	m.Edge2 = []Edge2{{Index: [2]int{3, 4}, IDtag: 1}}
	m.Bound = []Bound{{IDtag: 1, Index: 0, Cells: Edge2Kind}}
	return m
}

func TestAdjacency(t *testing.T) {
	m := twoTriangles()
	A, err := m.Adjacency()
	require.NoError(t, err)

	nr, nc := A.Dims()
	assert.Equal(t, 5, nr)
	assert.Equal(t, 5, nc)
	assert.Equal(t, 1., A.At(0, 1))
	assert.Equal(t, 1., A.At(2, 1))
	assert.Equal(t, 1., A.At(3, 4))
	assert.Equal(t, 0., A.At(0, 3))
	assert.Equal(t, 0., A.At(1, 1))

	m.Tria3[1].Index[2] = 9
	_, err = m.Adjacency()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRIA3 cell 1 references vertex 9")

	_, err = NewMsh().Adjacency()
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	m := twoTriangles()
	m.XGrid = []float64{-1, 3, 2}
	m.Value = NewArray(2, 2)
	copy(m.Value.Data, []float64{4, -2, 7, 1})
	m.Slope = NewArray(2, 3, 2)
	m.Slope.Set(-5, 1, 2, 0)

	S, err := m.Summary(true)
	require.NoError(t, err)
	assert.Equal(t, EuclideanMesh, S.MshID)
	assert.Equal(t, 2, S.NDims)
	assert.Equal(t, 5, S.Vertices)
	assert.Equal(t, map[string]int{"TRIA3": 2, "EDGE2": 1}, S.Cells)
	assert.Equal(t, 1, S.Bound)
	assert.Equal(t, map[string]AxisSummary{"x": {Len: 3, Min: -1, Max: 3}}, S.Axes)
	assert.Equal(t, FieldSummary{Shape: []int{2, 2}, Min: -2, Max: 7}, S.Fields["value"])
	assert.Equal(t, FieldSummary{Shape: []int{2, 3, 2}, Min: -5, Max: 0}, S.Fields["slope"])
	assert.NotContains(t, S.Fields, "power")

	// degrees 2,3,3,3,1
	require.NotNil(t, S.Degree)
	assert.Equal(t, 3, S.Degree.Max)
	assert.InDelta(t, 12./5., S.Degree.Mean, 1e-12)

	S, err = m.Summary(false)
	require.NoError(t, err)
	assert.Nil(t, S.Degree)
}
