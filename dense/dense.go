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

// Blas is the set of column-major dense primitives the recursive
// routines delegate their floating-point work to. Implementations are
// assumed synchronous and free to parallelize internally.
//
// Both operations follow the conventional BLAS contracts:
//
//	Gemm: C (m×n) := alpha·op(A)·op(B) + beta·C
//	Gemv: y := alpha·op(A)·x + beta·y, A stored m×n
//
// where op(X) is X or Xᵀ per the transpose flag. A beta of zero must
// overwrite, never read, the destination elements.
type Blas[T hwy.Floats] interface {
	Gemm(transA, transB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
	Gemv(trans blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int)
}

// Triangular is implemented by backends whose underlying library
// already ships a triangular-output multiply. When the backend handed
// to gemmt satisfies this interface, validated calls are forwarded to
// Gemmt directly and the recursive kernels never run.
//
// The meaning of the parameters matches gemmt.Gemmt.
type Triangular[T hwy.Floats] interface {
	Blas[T]
	Gemmt(uplo blas.Uplo, transA, transB blas.Transpose, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)
}
