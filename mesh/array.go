package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Array is a dense N-d array of reals stored in row major order, the last
// index varies fastest.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray allocates a zeroed array of the given shape
func NewArray(shape ...int) (A *Array) {
	var (
		size = 1
	)
	for _, n := range shape {
		if n < 0 {
			panic(fmt.Errorf("negative array dimension in shape %v", shape))
		}
		if n != 0 && size > math.MaxInt/n {
			panic(fmt.Errorf("array shape %v overflows int", shape))
		}
		size *= n
	}
	A = &Array{
		Shape: append([]int(nil), shape...),
		Data:  make([]float64, size),
	}
	return
}

// Len is the total element count
func (A *Array) Len() int {
	if A == nil {
		return 0
	}
	return len(A.Data)
}

// NDims is the number of dimensions
func (A *Array) NDims() int { return len(A.Shape) }

func (A *Array) offset(idx []int) (k int) {
	if len(idx) != len(A.Shape) {
		panic(fmt.Errorf("index %v does not match shape %v", idx, A.Shape))
	}
	for d, i := range idx {
		if i < 0 || i >= A.Shape[d] {
			panic(fmt.Errorf("index %v out of range for shape %v", idx, A.Shape))
		}
		k = k*A.Shape[d] + i
	}
	return
}

// At returns the element at idx, one index per dimension
func (A *Array) At(idx ...int) float64 { return A.Data[A.offset(idx)] }

// Set stores val at idx
func (A *Array) Set(val float64, idx ...int) { A.Data[A.offset(idx)] = val }

// Dense returns a matrix view sharing storage with a 2-d array. Arrays
// with a zero dimension have no matrix form.
func (A *Array) Dense() (M *mat.Dense, err error) {
	if A.NDims() != 2 {
		err = fmt.Errorf("array of shape %v is not 2-d", A.Shape)
		return
	}
	if A.Shape[0] == 0 || A.Shape[1] == 0 {
		err = fmt.Errorf("array of shape %v is empty", A.Shape)
		return
	}
	M = mat.NewDense(A.Shape[0], A.Shape[1], A.Data)
	return
}
