package readers

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFile(tag string, axes [][]float64, kind string, rows, cols int, extra string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MSHID=3;%s\n", tag)
	for d, axis := range axes {
		fmt.Fprintf(&sb, "COORD=%d;%d\n", d+1, len(axis))
		for _, x := range axis {
			fmt.Fprintf(&sb, "%g\n", x)
		}
	}
	if kind != "" {
		fmt.Fprintf(&sb, "%s=%d;%d\n", kind, rows, cols)
		for i := 0; i < rows; i++ {
			vals := make([]string, cols)
			for j := range vals {
				vals[j] = fmt.Sprint(i + 100*j)
			}
			fmt.Fprintln(&sb, strings.Join(vals, ";"))
		}
	}
	sb.WriteString(extra)
	return sb.String()
}

func TestReshapeGrid2D(t *testing.T) {
	var (
		x = []float64{0, 1, 2}
		y = []float64{0, 1}
	)
	// 12 values, one per row: 2 values per grid point
	msh, err := loadString(t, gridFile("euclidean-grid", [][]float64{x, y}, "VALUE", 12, 1, ""))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 2}, msh.Value.Shape)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for v := 0; v < 2; v++ {
				assert.Equal(t, float64(i+2*j+6*v), msh.Value.At(i, j, v), "(%d,%d,%d)", i, j, v)
			}
		}
	}

	// the same layout written as 6 rows of 2 columns
	msh, err = loadString(t, gridFile("ELLIPSOID-GRID", [][]float64{x, y}, "SLOPE", 6, 2, ""))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 2}, msh.Slope.Shape)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for v := 0; v < 2; v++ {
				assert.Equal(t, float64(i+2*j+100*v), msh.Slope.At(i, j, v))
			}
		}
	}
}

func TestReshapeGrid2DSingleValue(t *testing.T) {
	msh, err := loadString(t, gridFile("euclidean-grid", [][]float64{{0, 1, 2}, {0, 1}}, "VALUE", 6, 1, ""))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, msh.Value.Shape)
	assert.Equal(t, 3., msh.Value.At(1, 1))
	assert.Equal(t, 4., msh.Value.At(0, 2))
}

func TestReshapeGrid3D(t *testing.T) {
	axes := [][]float64{{0, 1}, {0, 1, 2}, {0, 1}}
	msh, err := loadString(t, gridFile("euclidean-grid", axes, "VALUE", 12, 1, ""))
	require.NoError(t, err)
	assert.Equal(t, 3, msh.NDims)
	// ny, nx, nz
	require.Equal(t, []int{3, 2, 2}, msh.Value.Shape)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				assert.Equal(t, float64(i+3*j+6*k), msh.Value.At(i, j, k))
			}
		}
	}
}

func TestReshapeGridErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing y axis",
			content: gridFile("euclidean-grid", [][]float64{{0, 1}}, "VALUE", 2, 1, "NDIMS=2\n"),
			errMsg:  "invalid YGRID",
		},
		{
			name:    "missing x axis",
			content: gridFile("euclidean-grid", nil, "VALUE", 2, 1, "NDIMS=2\nCOORD=2;2\n0\n1\n"),
			errMsg:  "invalid XGRID",
		},
		{
			name:    "missing z axis",
			content: gridFile("euclidean-grid", [][]float64{{0}, {0}}, "SLOPE", 1, 1, "NDIMS=3\n"),
			errMsg:  "invalid ZGRID",
		},
		{
			name:    "values do not fill grid",
			content: gridFile("euclidean-grid", [][]float64{{0, 1, 2}, {0, 1}}, "VALUE", 5, 1, ""),
			errMsg:  "invalid VALUE: 5 values do not fill a grid",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadString(t, tc.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFormat))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestReshapeGridSkipped(t *testing.T) {
	// mesh tags keep the flat layout
	msh, err := loadString(t, gridFile("euclidean-mesh", [][]float64{{0, 1, 2}, {0, 1}}, "VALUE", 6, 1, ""))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 1}, msh.Value.Shape)

	// no axis required when there is nothing to reshape
	msh, err = loadString(t, gridFile("euclidean-grid", nil, "POWER", 2, 1, "NDIMS=2\n"))
	require.NoError(t, err)
	assert.Nil(t, msh.Value)
	assert.Equal(t, []int{2, 1}, msh.Power.Shape)

	msh, err = loadString(t, gridFile("euclidean-grid", [][]float64{{0, 1}}, "VALUE", 0, 1, ""))
	require.NoError(t, err)
	assert.Equal(t, 0, msh.Value.Len())

	// 1D grids have no reshape rule
	msh, err = loadString(t, gridFile("euclidean-grid", [][]float64{{0, 1, 2}}, "VALUE", 3, 1, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, msh.NDims)
	assert.Equal(t, []int{3, 1}, msh.Value.Shape)
}

func TestColMajorOffset(t *testing.T) {
	shape := []int{2, 3, 4}
	seen := make(map[int]bool)
	for k := 0; k < 24; k++ {
		off := colMajorOffset(shape, k)
		assert.False(t, seen[off])
		seen[off] = true
	}
	// k = i + 2j + 6l lands on row major (i*3 + j)*4 + l
	assert.Equal(t, (1*3+0)*4+2, colMajorOffset(shape, 1+2*0+6*2))
	assert.Equal(t, (0*3+2)*4+1, colMajorOffset(shape, 0+2*2+6*1))
	assert.Equal(t, 5, colMajorOffset([]int{6, 1}, 5))
	assert.Equal(t, 4, colMajorOffset([]int{6}, 4))
}
