// Package gemmt computes a general matrix-matrix product that updates
// only one triangle of its square result:
//
//	C := alpha·op(A)·op(B) + beta·C
//
// where only the lower or upper triangle of C, diagonal included, is
// read or written; the opposite triangle is left byte-for-byte
// untouched. This is the GEMMT extension found in several BLAS
// libraries, useful for symmetric-update workloads where the full dense
// product would waste half the flops and half the stores.
//
// # Algorithm
//
// The implementation is the ReLAPACK divide-and-conquer scheme: the
// n×n triangular target splits into quadrants, the two diagonal
// quadrants recurse, and the off-diagonal quadrant, which lies entirely
// inside the selected triangle, is produced by a single full dense
// multiply. At or below a crossover order the triangle is
// computed directly, one matrix-vector multiply per output column.
// All floating-point work therefore lands in the dense primitives of
// the configured backend; the recursion itself allocates nothing and
// runs single-threaded with O(log n) stack depth.
//
// # Example Usage
//
//	import (
//	    "gonum.org/v1/gonum/blas"
//
//	    "github.com/ajroetker/go-relapack/gemmt"
//	)
//
//	// Lower triangle of C (3×3) := A (3×2) · B (2×3), column-major.
//	a := []float64{1, 2, 3, 4, 5, 6}
//	b := []float64{1, 0, 0, 1, 1, 1}
//	c := make([]float64, 9)
//	gemmt.Gemmt(blas.Lower, blas.NoTrans, blas.NoTrans, 3, 2, 1.0, a, 3, b, 2, 0.0, c, 3)
//
// Matrices are column-major with explicit leading dimensions, matching
// the conventional dense-linear-algebra calling form, so calls can be
// swapped one-for-one with an accelerated GEMMT.
//
// Invalid BLAS parameters are reported through an xerbla-style handler
// and leave C unmodified; Go-level slice-length violations panic, as in
// gonum. Concurrent calls are safe only when their C write regions do
// not overlap.
package gemmt
