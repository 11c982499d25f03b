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
)

// Ref is the portable reference backend, generic over float32 and
// float64. It is single-threaded and allocation-free.
//
// The kernels exploit column-major layout: when an operand is walked
// along its stored columns the access is unit-stride and vectorized
// (axpy form for op(A) = A, dot form for op(A) = Aᵀ); the doubly
// strided Aᵀ·Bᵀ case falls back to scalar loops.
//
// Only blas.NoTrans and blas.Trans are understood; conjugate flags are
// a programmer error here because the element types are real.
type Ref[T hwy.Floats] struct{}

var (
	_ Blas[float32] = Ref[float32]{}
	_ Blas[float64] = Ref[float64]{}
)

// Gemm computes C := alpha·op(A)·op(B) + beta·C where C is m×n and the
// shared contraction dimension is k.
//
// Panics if a slice is too short for its dimensions or a transpose
// flag is not blas.NoTrans or blas.Trans.
func (Ref[T]) Gemm(transA, transB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	if transA != blas.NoTrans && transA != blas.Trans {
		panic(badTranspose)
	}
	if transB != blas.NoTrans && transB != blas.Trans {
		panic(badTranspose)
	}
	if m == 0 || n == 0 {
		return
	}
	if len(c) < ldc*(n-1)+m {
		panic(shortC)
	}

	// With nothing to contract the product term vanishes and only the
	// beta scaling of C remains.
	if alpha == 0 || k == 0 {
		for j := 0; j < n; j++ {
			scal(beta, c[j*ldc:j*ldc+m])
		}
		return
	}

	if transA == blas.NoTrans {
		if len(a) < lda*(k-1)+m {
			panic(shortA)
		}
	} else if len(a) < lda*(m-1)+k {
		panic(shortA)
	}
	if transB == blas.NoTrans {
		if len(b) < ldb*(n-1)+k {
			panic(shortB)
		}
	} else if len(b) < ldb*(k-1)+n {
		panic(shortB)
	}

	switch {
	case transA == blas.NoTrans && transB == blas.NoTrans:
		gemmNN(m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	case transA == blas.Trans && transB == blas.NoTrans:
		gemmTN(m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	case transA == blas.NoTrans && transB == blas.Trans:
		gemmNT(m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	default:
		gemmTT(m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	}
}

// gemmNN: columns of C accumulate scaled columns of A.
// C[:,j] = beta·C[:,j] + alpha·Σ_p B[p,j]·A[:,p]
func gemmNN[T hwy.Floats](m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	for j := 0; j < n; j++ {
		cj := c[j*ldc : j*ldc+m]
		scal(beta, cj)
		for p := 0; p < k; p++ {
			if s := alpha * b[p+j*ldb]; s != 0 {
				axpy(s, a[p*lda:p*lda+m], cj)
			}
		}
	}
}

// gemmTN: A is stored k×m, so both dot operands are contiguous.
// C[i,j] = beta·C[i,j] + alpha·(A[:,i] · B[:,j])
func gemmTN[T hwy.Floats](m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	for j := 0; j < n; j++ {
		bj := b[j*ldb : j*ldb+k]
		for i := 0; i < m; i++ {
			t := alpha * dotUnit(a[i*lda:i*lda+k], bj)
			if beta == 0 {
				c[i+j*ldc] = t
			} else {
				c[i+j*ldc] = t + beta*c[i+j*ldc]
			}
		}
	}
}

// gemmNT: like gemmNN but the B scalar is read across B's rows.
func gemmNT[T hwy.Floats](m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	for j := 0; j < n; j++ {
		cj := c[j*ldc : j*ldc+m]
		scal(beta, cj)
		for p := 0; p < k; p++ {
			if s := alpha * b[j+p*ldb]; s != 0 {
				axpy(s, a[p*lda:p*lda+m], cj)
			}
		}
	}
}

// gemmTT: both operands strided; scalar loops.
func gemmTT[T hwy.Floats](m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += a[p+i*lda] * b[j+p*ldb]
			}
			t := alpha * sum
			if beta == 0 {
				c[i+j*ldc] = t
			} else {
				c[i+j*ldc] = t + beta*c[i+j*ldc]
			}
		}
	}
}

// Gemv computes y := alpha·op(A)·x + beta·y where A is stored m×n.
// Increments must be positive; negative-increment BLAS calls are not
// needed by this module and are rejected.
func (Ref[T]) Gemv(trans blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	if trans != blas.NoTrans && trans != blas.Trans {
		panic(badTranspose)
	}
	if incX < 1 || incY < 1 {
		panic(badIncrement)
	}

	lenY, lenX := m, n
	if trans == blas.Trans {
		lenY, lenX = n, m
	}
	if lenY == 0 {
		return
	}
	if len(y) < (lenY-1)*incY+1 {
		panic(shortY)
	}

	scalStride(beta, y, lenY, incY)
	if alpha == 0 || lenX == 0 {
		return
	}
	if len(a) < lda*(n-1)+m {
		panic(shortA)
	}
	if len(x) < (lenX-1)*incX+1 {
		panic(shortX)
	}

	if trans == blas.NoTrans {
		if incY == 1 {
			yy := y[:m]
			for j := 0; j < n; j++ {
				if s := alpha * x[j*incX]; s != 0 {
					axpy(s, a[j*lda:j*lda+m], yy)
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			s := alpha * x[j*incX]
			if s == 0 {
				continue
			}
			col := a[j*lda : j*lda+m]
			for i := 0; i < m; i++ {
				y[i*incY] += s * col[i]
			}
		}
		return
	}

	// Trans: one dot per column of A, contiguous when incX is 1.
	for j := 0; j < n; j++ {
		col := a[j*lda : j*lda+m]
		var sum T
		if incX == 1 {
			sum = dotUnit(col, x[:m])
		} else {
			for i := 0; i < m; i++ {
				sum += col[i] * x[i*incX]
			}
		}
		y[j*incY] += alpha * sum
	}
}
