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

package dense

import (
	"github.com/ajroetker/go-highway/hwy"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

// Gonum presents gonum's native BLAS as a column-major Blas backend.
//
// gonum's Implementation is row-major. A column-major matrix
// reinterpreted row-major with the same stride is its transpose, so
// Gemm swaps the operands and the output dimensions
// (Cᵀ = op(B)ᵀ·op(A)ᵀ) and Gemv flips the transpose flag. Transpose
// flags and stride minima carry over unchanged under this identity.
//
// The element type must be exactly float32 or float64; defined float
// types panic with a clear message rather than silently doing nothing.
type Gonum[T hwy.Floats] struct {
	impl gonum.Implementation
}

var (
	_ Blas[float32] = Gonum[float32]{}
	_ Blas[float64] = Gonum[float64]{}
)

// Gemm computes C := alpha·op(A)·op(B) + beta·C, column-major.
func (g Gonum[T]) Gemm(transA, transB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	if transA != blas.NoTrans && transA != blas.Trans {
		panic(badTranspose)
	}
	if transB != blas.NoTrans && transB != blas.Trans {
		panic(badTranspose)
	}
	if m == 0 || n == 0 {
		return
	}
	// An empty contraction is legal here (the recursion produces it)
	// but gonum's slice-length checks reject the empty operands, so
	// the surviving beta scaling is done locally.
	if k == 0 || alpha == 0 {
		for j := 0; j < n; j++ {
			scal(beta, c[j*ldc:j*ldc+m])
		}
		return
	}
	switch av := any(a).(type) {
	case []float64:
		g.impl.Dgemm(transB, transA, n, m, k, float64(alpha),
			any(b).([]float64), ldb, av, lda, float64(beta), any(c).([]float64), ldc)
	case []float32:
		g.impl.Sgemm(transB, transA, n, m, k, float32(alpha),
			any(b).([]float32), ldb, av, lda, float32(beta), any(c).([]float32), ldc)
	default:
		panic(badType)
	}
}

// Gemv computes y := alpha·op(A)·x + beta·y with A stored m×n,
// column-major.
func (g Gonum[T]) Gemv(trans blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	if trans != blas.NoTrans && trans != blas.Trans {
		panic(badTranspose)
	}
	lenY, lenX := m, n
	if trans == blas.Trans {
		lenY, lenX = n, m
	}
	if lenY == 0 {
		return
	}
	if lenX == 0 || alpha == 0 {
		scalStride(beta, y, lenY, incY)
		return
	}
	flipped := blas.Trans
	if trans == blas.Trans {
		flipped = blas.NoTrans
	}
	switch av := any(a).(type) {
	case []float64:
		g.impl.Dgemv(flipped, n, m, float64(alpha), av, lda,
			any(x).([]float64), incX, float64(beta), any(y).([]float64), incY)
	case []float32:
		g.impl.Sgemv(flipped, n, m, float32(alpha), av, lda,
			any(x).([]float32), incX, float32(beta), any(y).([]float32), incY)
	default:
		panic(badType)
	}
}
