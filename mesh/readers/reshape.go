package readers

import (
	"log/slog"

	"github.com/notargets/gomsh/mesh"
)

// reshapeGrid unrolls a grid field into [ny, nx, nval] (2D) or
// [ny, nx, nz, nval] (3D). Values are taken from A in column major order
// and placed in column major order, so the y index varies fastest through
// the rows of the file. A unit nval is dropped from the shape.
func reshapeGrid(msh *mesh.Msh, A *mesh.Array, kind string, log *slog.Logger) (R *mesh.Array, err error) {
	if A.Len() == 0 {
		return A, nil
	}
	var (
		axes [][]float64
	)
	switch msh.NDims {
	case 2:
		axes = [][]float64{msh.YGrid, msh.XGrid}
	case 3:
		axes = [][]float64{msh.YGrid, msh.XGrid, msh.ZGrid}
	default:
		log.Debug("grid field left unshaped", "kind", kind, "ndims", msh.NDims)
		return A, nil
	}
	if len(msh.XGrid) == 0 {
		return nil, formatErrf("XGRID", "", "x axis required to reshape %s", kind)
	}
	if len(msh.YGrid) == 0 {
		return nil, formatErrf("YGRID", "", "y axis required to reshape %s", kind)
	}
	if msh.NDims == 3 && len(msh.ZGrid) == 0 {
		return nil, formatErrf("ZGRID", "", "z axis required to reshape %s", kind)
	}

	var (
		shape = make([]int, 0, len(axes)+1)
		nprd  = 1
	)
	for _, axis := range axes {
		shape = append(shape, len(axis))
		nprd *= len(axis)
	}
	if A.Len()%nprd != 0 {
		return nil, formatErrf(kind, "", "%d values do not fill a grid of %v points", A.Len(), shape)
	}
	shape = append(shape, A.Len()/nprd)

	R = mesh.NewArray(shape...)
	for k := range R.Data {
		R.Data[colMajorOffset(R.Shape, k)] = A.Data[colMajorOffset(A.Shape, k)]
	}
	if shape[len(shape)-1] == 1 {
		R.Shape = R.Shape[:len(R.Shape)-1]
	}
	return
}

// colMajorOffset maps the k'th element in column major order to its row
// major offset within an array of the given shape.
func colMajorOffset(shape []int, k int) (off int) {
	var (
		stride = 1
	)
	for d := len(shape) - 1; d >= 0; d-- {
		// index d of element k in column major order
		var (
			prd = 1
		)
		for _, n := range shape[:d] {
			prd *= n
		}
		off += ((k / prd) % shape[d]) * stride
		stride *= shape[d]
	}
	return
}
