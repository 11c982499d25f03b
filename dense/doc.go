// Package dense supplies the full-output multiply primitives that the
// recursive routines in this module are built on.
//
// All matrices are column-major: element (i, j) of a matrix with
// leading dimension ld lives at data[i+j*ld]. The leading dimension may
// exceed the logical row count, which is how sub-matrix windows share
// their parent's storage.
//
// # Backends
//
// The Blas interface carries the two primitives the recursive kernels
// need: a matrix-matrix multiply (Gemm) and a matrix-vector multiply
// (Gemv). Two implementations ship with the package:
//   - Ref[T]: portable, generic over float32/float64, vectorized with
//     go-highway where the access pattern is contiguous.
//   - Gonum: gonum's native BLAS presented column-major, for callers
//     already standardized on gonum (built-in float types only).
//
// A backend that additionally implements Triangular advertises a native
// triangular-output multiply; the gemmt package forwards to it directly
// instead of recursing.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-relapack/dense"
//
//	var be dense.Ref[float64]
//	// C (2x2) := A (2x3) * B (3x2), all column-major
//	a := []float64{1, 4, 2, 5, 3, 6}
//	b := []float64{7, 8, 9, 10, 11, 12}
//	c := make([]float64, 4)
//	be.Gemm(blas.NoTrans, blas.NoTrans, 2, 2, 3, 1, a, 2, b, 3, 0, c, 2)
package dense
