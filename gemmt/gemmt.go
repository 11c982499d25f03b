// Copyright 2026 go-relapack Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gemmt

import (
	"github.com/ajroetker/go-highway/hwy"
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-relapack/dense"
)

// The routine name reported through Xerbla. Type-neutral: the generic
// instantiations all validate identically.
const srname = "GEMMT"

// Gemmt computes C := alpha·op(A)·op(B) + beta·C, writing only the
// triangle of C selected by uplo (diagonal included) and leaving the
// opposite strict triangle untouched.
//
// All matrices are column-major. C is n×n with leading dimension
// ldc ≥ max(1, n). op(A) is n×k, so A is stored n×k when transA is
// blas.NoTrans and k×n when blas.Trans, with lda at least its stored
// row count; B symmetrically. blas.ConjTrans is not accepted: the
// element types are real and conjugate variants are out of scope.
//
// Invalid parameters are reported to the default Xerbla handler and
// leave C unmodified. Use a Config to swap the dense backend, the
// crossover order, or the diagnostic handler.
func Gemmt[T hwy.Floats](uplo blas.Uplo, transA, transB blas.Transpose, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	Config[T]{}.Gemmt(uplo, transA, transB, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

// Gemmt is the configured form of the package-level Gemmt. See that
// function for the call contract.
func (cfg Config[T]) Gemmt(uplo blas.Uplo, transA, transB blas.Transpose, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	rc := cfg.resolved()

	lower := uplo == blas.Lower
	upper := uplo == blas.Upper
	notransA := transA == blas.NoTrans
	tranA := transA == blas.Trans
	notransB := transB == blas.NoTrans
	tranB := transB == blas.Trans

	// A is stored n×k when not transposed, k×n otherwise; likewise B.
	rowsA := k
	if notransA {
		rowsA = n
	}
	rowsB := n
	if notransB {
		rowsB = k
	}

	// Fixed scan order; the first violation decides the reported index.
	info := 0
	switch {
	case !lower && !upper:
		info = 1
	case !notransA && !tranA:
		info = 2
	case !notransB && !tranB:
		info = 3
	case n < 0:
		info = 4
	case k < 0:
		info = 5
	case lda < max(1, rowsA):
		info = 8
	case ldb < max(1, rowsB):
		info = 10
	case ldc < max(1, n):
		info = 13
	}
	if info != 0 {
		rc.Xerbla(srname, info)
		return
	}

	if n == 0 {
		return
	}

	// Slice lengths are not BLAS parameters; violations are programmer
	// errors and panic, gonum-style. Checked before any write so a
	// panicking call still leaves C untouched.
	if k > 0 {
		if len(a) < lda*(n+k-rowsA-1)+rowsA {
			panic(shortA)
		}
		if len(b) < ldb*(n+k-rowsB-1)+rowsB {
			panic(shortB)
		}
	}
	if len(c) < ldc*(n-1)+n {
		panic(shortC)
	}

	// Fast path: the backend's library ships a native triangular
	// multiply; hand the validated call straight to it.
	if native, ok := rc.Dense.(dense.Triangular[T]); ok {
		native.Gemmt(uplo, transA, transB, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
		return
	}

	rc.rec(uplo, transA, transB, n, k, alpha,
		view[T]{data: a, ld: lda},
		view[T]{data: b, ld: ldb},
		beta,
		view[T]{data: c, ld: ldc})
}
