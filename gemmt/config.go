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

	"github.com/ajroetker/go-relapack/dense"
)

// DefaultCrossover is the order at or below which the recursion stops
// and the unblocked kernel runs. 24 is ReLAPACK's shipped crossover;
// past that the per-level dense multiply amortizes the splitting
// overhead. internal/cpuinfo sweeps this value on the host for tuning.
const DefaultCrossover = 24

// Config carries everything a Gemmt call depends on. There is no
// hidden global state; a Config is resolved once at entry and threaded
// through the recursion unchanged.
//
// The zero value is ready to use: the portable dense.Ref backend, the
// default crossover, and the stderr diagnostic handler.
type Config[T hwy.Floats] struct {
	// Dense supplies the matrix-matrix and matrix-vector primitives
	// all floating-point work is delegated to. If it also implements
	// dense.Triangular, validated calls are forwarded to its native
	// triangular multiply and the recursion never runs.
	Dense dense.Blas[T]

	// Crossover stops the divide-and-conquer at or below this order.
	// Zero selects DefaultCrossover; values below 1 are clamped to 1.
	Crossover int

	// Xerbla handles invalid-parameter diagnostics. Nil selects the
	// stderr handler.
	Xerbla Xerbla
}

// resolved fills in defaults and clamps the crossover.
func (cfg Config[T]) resolved() Config[T] {
	if cfg.Dense == nil {
		cfg.Dense = dense.Ref[T]{}
	}
	if cfg.Crossover == 0 {
		cfg.Crossover = DefaultCrossover
	}
	if cfg.Crossover < 1 {
		cfg.Crossover = 1
	}
	if cfg.Xerbla == nil {
		cfg.Xerbla = defaultXerbla
	}
	return cfg
}
