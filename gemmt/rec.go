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

// recSplit picks the first-half order n1 for a split of n. For n ≥ 16
// the half is rounded to a multiple of 8 so the dense kernels see
// aligned panels; below that a plain halving.
func recSplit(n int) int {
	if n >= 16 {
		return (n + 8) / 16 * 8
	}
	return n / 2
}

// rec is the divide-and-conquer kernel. It assumes validated,
// conformant arguments: c is the n×n triangular target, op(a) is n×k
// and op(b) is k×n.
//
// The three steps touch disjoint regions of C, so alpha and beta are
// applied exactly once per element. The off-diagonal quadrant lies
// strictly inside the selected triangle, which is why the dense
// multiply writes it in full with no masking; masking emerges only
// through the two triangular recursions.
func (cfg Config[T]) rec(uplo blas.Uplo, transA, transB blas.Transpose, n, k int, alpha T, a view[T], b view[T], beta T, c view[T]) {
	if n <= cfg.Crossover {
		cfg.unblocked(uplo, transA, transB, n, k, alpha, a, b, beta, c)
		return
	}

	n1 := recSplit(n)
	n2 := n - n1

	// A_T        op(A) rows [0, n1) and [n1, n)
	// A_B
	aT := a
	var aB view[T]
	if transA == blas.NoTrans {
		aB = a.shift(n1, 0)
	} else {
		aB = a.shift(0, n1)
	}

	// B_L B_R    op(B) columns [0, n1) and [n1, n)
	bL := b
	var bR view[T]
	if transB == blas.NoTrans {
		bR = b.shift(0, n1)
	} else {
		bR = b.shift(n1, 0)
	}

	// C_TL C_TR
	// C_BL C_BR
	cTL := c
	cTR := c.shift(0, n1)
	cBL := c.shift(n1, 0)
	cBR := c.shift(n1, n1)

	cfg.rec(uplo, transA, transB, n1, k, alpha, aT, bL, beta, cTL)

	if uplo == blas.Lower {
		// C_BL := alpha·op(A_B)·op(B_L) + beta·C_BL
		cfg.Dense.Gemm(transA, transB, n2, n1, k, alpha, aB.data, aB.ld, bL.data, bL.ld, beta, cBL.data, cBL.ld)
	} else {
		// C_TR := alpha·op(A_T)·op(B_R) + beta·C_TR
		cfg.Dense.Gemm(transA, transB, n1, n2, k, alpha, aT.data, aT.ld, bR.data, bR.ld, beta, cTR.data, cTR.ld)
	}

	cfg.rec(uplo, transA, transB, n2, k, alpha, aB, bR, beta, cBR)
}
