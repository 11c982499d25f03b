package gemmt

import (
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-relapack/dense"
)

func benchInputs(n, k int) (a, b, c []float64) {
	rng := rand.New(rand.NewSource(7))
	a = make([]float64, n*k)
	b = make([]float64, k*n)
	c = make([]float64, n*n)
	fill(rng, a)
	fill(rng, b)
	fill(rng, c)
	return a, b, c
}

func BenchmarkGemmt(bb *testing.B) {
	for _, n := range []int{64, 256, 512} {
		a, b, c := benchInputs(n, n)
		bb.Run(fmt.Sprintf("ref_n%d", n), func(bb *testing.B) {
			for i := 0; i < bb.N; i++ {
				Gemmt(blas.Lower, blas.NoTrans, blas.NoTrans, n, n, 1.0, a, n, b, n, 0.5, c, n)
			}
		})
		cfg := Config[float64]{Dense: dense.Gonum[float64]{}}
		bb.Run(fmt.Sprintf("gonum_n%d", n), func(bb *testing.B) {
			for i := 0; i < bb.N; i++ {
				cfg.Gemmt(blas.Lower, blas.NoTrans, blas.NoTrans, n, n, 1.0, a, n, b, n, 0.5, c, n)
			}
		})
	}
}

// Triangular output against the cost of the full dense product it
// replaces.
func BenchmarkGemmtVsFullGemm(bb *testing.B) {
	const n = 256
	a, b, c := benchInputs(n, n)
	var ref dense.Ref[float64]

	bb.Run("gemmt", func(bb *testing.B) {
		for i := 0; i < bb.N; i++ {
			Gemmt(blas.Lower, blas.NoTrans, blas.NoTrans, n, n, 1.0, a, n, b, n, 0.5, c, n)
		}
	})
	bb.Run("full_gemm", func(bb *testing.B) {
		for i := 0; i < bb.N; i++ {
			ref.Gemm(blas.NoTrans, blas.NoTrans, n, n, n, 1.0, a, n, b, n, 0.5, c, n)
		}
	})
}

func BenchmarkGemmtCrossover(bb *testing.B) {
	const n = 256
	a, b, c := benchInputs(n, n)
	for _, cross := range []int{8, 24, 64} {
		cfg := Config[float64]{Crossover: cross}
		bb.Run(fmt.Sprintf("crossover%d", cross), func(bb *testing.B) {
			for i := 0; i < bb.N; i++ {
				cfg.Gemmt(blas.Lower, blas.NoTrans, blas.NoTrans, n, n, 1.0, a, n, b, n, 0.5, c, n)
			}
		})
	}
}
