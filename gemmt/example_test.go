package gemmt_test

import (
	"fmt"

	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-relapack/gemmt"
)

func ExampleGemmt() {
	// Lower triangle of C (3×3) := A (3×2) · B (2×3), column-major.
	a := []float64{1, 2, 3, 4, 5, 6} // columns (1,2,3), (4,5,6)
	b := []float64{1, 0, 0, 1, 1, 1} // columns (1,0), (0,1), (1,1)
	c := make([]float64, 9)

	gemmt.Gemmt(blas.Lower, blas.NoTrans, blas.NoTrans, 3, 2, 1.0, a, 3, b, 2, 0.0, c, 3)

	for i := 0; i < 3; i++ {
		fmt.Println(c[i], c[i+3], c[i+6])
	}
	// The strict upper triangle was never written.

	// Output:
	// 1 0 0
	// 2 5 0
	// 3 6 9
}
