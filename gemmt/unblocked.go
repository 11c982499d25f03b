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

import "gonum.org/v1/gonum/blas"

// unblocked is the recursion's base case. Each output column i gets
// exactly one matrix-vector multiply covering its in-triangle segment:
// the diagonal element and everything below it (lower) or above it
// (upper). The output stride is always 1 because the segment runs down
// a column of C; the B operand is column i of op(B), contiguous when B
// is not transposed and spaced ldb apart otherwise.
func (cfg Config[T]) unblocked(uplo blas.Uplo, transA, transB blas.Transpose, n, k int, alpha T, a view[T], b view[T], beta T, c view[T]) {
	incB := 1
	if transB == blas.Trans {
		incB = b.ld
	}

	for i := 0; i < n; i++ {
		// A_0 is op(A) rows [0, i+1); A_i is op(A) rows [i, n).
		a0 := a
		var ai view[T]
		if transA == blas.NoTrans {
			ai = a.shift(i, 0)
		} else {
			ai = a.shift(0, i)
		}

		// Column i of op(B).
		var bi view[T]
		if transB == blas.NoTrans {
			bi = b.shift(0, i)
		} else {
			bi = b.shift(i, 0)
		}

		// C_0i starts at C[0, i]; C_ii at C[i, i].
		c0i := c.shift(0, i)
		cii := c.shift(i, i)

		if uplo == blas.Lower {
			nmi := n - i
			if transA == blas.NoTrans {
				cfg.Dense.Gemv(blas.NoTrans, nmi, k, alpha, ai.data, ai.ld, bi.data, incB, beta, cii.data, 1)
			} else {
				cfg.Dense.Gemv(blas.Trans, k, nmi, alpha, ai.data, ai.ld, bi.data, incB, beta, cii.data, 1)
			}
		} else {
			ip1 := i + 1
			if transA == blas.NoTrans {
				cfg.Dense.Gemv(blas.NoTrans, ip1, k, alpha, a0.data, a0.ld, bi.data, incB, beta, c0i.data, 1)
			} else {
				cfg.Dense.Gemv(blas.Trans, k, ip1, alpha, a0.data, a0.ld, bi.data, incB, beta, c0i.data, 1)
			}
		}
	}
}
