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

import "github.com/ajroetker/go-highway/hwy"

// Vector micro-kernels shared by the Ref backend. Columns of a
// column-major matrix are contiguous, so the hot paths here operate on
// unit-stride slices and vectorize with go-highway; strided access
// stays scalar.

// axpy computes y += alpha * x over len(y) elements.
// Requires len(x) >= len(y).
func axpy[T hwy.Floats](alpha T, x, y []T) {
	lanes := hwy.MaxLanes[T]()
	va := hwy.Set(alpha)
	i := 0
	for ; i+lanes <= len(y); i += lanes {
		hwy.Store(hwy.MulAdd(va, hwy.Load(x[i:]), hwy.Load(y[i:])), y[i:])
	}
	for ; i < len(y); i++ {
		y[i] += alpha * x[i]
	}
}

// dotUnit computes Σ x[i]*y[i] over len(x) elements with 4 vector
// accumulators held across the loop. Requires len(y) >= len(x).
func dotUnit[T hwy.Floats](x, y []T) T {
	n := len(x)
	lanes := hwy.MaxLanes[T]()

	acc0 := hwy.Zero[T]()
	acc1 := hwy.Zero[T]()
	acc2 := hwy.Zero[T]()
	acc3 := hwy.Zero[T]()
	i := 0
	for ; i+4*lanes <= n; i += 4 * lanes {
		acc0 = hwy.MulAdd(hwy.Load(x[i:]), hwy.Load(y[i:]), acc0)
		acc1 = hwy.MulAdd(hwy.Load(x[i+lanes:]), hwy.Load(y[i+lanes:]), acc1)
		acc2 = hwy.MulAdd(hwy.Load(x[i+2*lanes:]), hwy.Load(y[i+2*lanes:]), acc2)
		acc3 = hwy.MulAdd(hwy.Load(x[i+3*lanes:]), hwy.Load(y[i+3*lanes:]), acc3)
	}
	for ; i+lanes <= n; i += lanes {
		acc0 = hwy.MulAdd(hwy.Load(x[i:]), hwy.Load(y[i:]), acc0)
	}
	sum := hwy.ReduceSum(acc0) + hwy.ReduceSum(acc1) + hwy.ReduceSum(acc2) + hwy.ReduceSum(acc3)
	for ; i < n; i++ {
		sum += x[i] * y[i]
	}
	return sum
}

// scal computes s = beta * s. A beta of zero clears the slice without
// reading it, so NaN or Inf garbage in the destination cannot survive.
func scal[T hwy.Floats](beta T, s []T) {
	switch beta {
	case 1:
		return
	case 0:
		clear(s)
		return
	}
	lanes := hwy.MaxLanes[T]()
	vb := hwy.Set(beta)
	i := 0
	for ; i+lanes <= len(s); i += lanes {
		hwy.Store(hwy.Mul(vb, hwy.Load(s[i:])), s[i:])
	}
	for ; i < len(s); i++ {
		s[i] *= beta
	}
}

// scalStride is scal over n elements spaced inc apart.
func scalStride[T hwy.Floats](beta T, s []T, n, inc int) {
	if inc == 1 {
		scal(beta, s[:n])
		return
	}
	switch beta {
	case 1:
	case 0:
		for i := 0; i < n; i++ {
			s[i*inc] = 0
		}
	default:
		for i := 0; i < n; i++ {
			s[i*inc] *= beta
		}
	}
}
