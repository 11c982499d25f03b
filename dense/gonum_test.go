package dense

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
	"gonum.org/v1/gonum/blas"
)

// The Gonum adapter must agree with the reference backend on the same
// column-major inputs; any row-major translation slip shows up as a
// transposed or mis-strided result.
func testGonumMatchesRef[T hwy.FloatsNative](t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	var (
		ref Ref[T]
		ada Gonum[T]
	)

	transes := []blas.Transpose{blas.NoTrans, blas.Trans}
	dims := []struct{ m, n, k int }{
		{1, 1, 1}, {3, 4, 5}, {8, 8, 8}, {12, 5, 9}, {5, 12, 3},
	}

	for _, tA := range transes {
		for _, tB := range transes {
			for _, d := range dims {
				ra, ca := d.m, d.k
				if tA == blas.Trans {
					ra, ca = d.k, d.m
				}
				rb, cb := d.k, d.n
				if tB == blas.Trans {
					rb, cb = d.n, d.k
				}
				lda := ra + 2
				ldb := rb + 1
				ldc := d.m + 3

				a := randSlice[T](rng, lda*ca)
				b := randSlice[T](rng, ldb*cb)
				c0 := randSlice[T](rng, ldc*d.n)

				cRef := append([]T(nil), c0...)
				cAda := append([]T(nil), c0...)
				ref.Gemm(tA, tB, d.m, d.n, d.k, 1.5, a, lda, b, ldb, 0.5, cRef, ldc)
				ada.Gemm(tA, tB, d.m, d.n, d.k, 1.5, a, lda, b, ldb, 0.5, cAda, ldc)

				tol := refTol[T](d.k)
				for i := range cRef {
					if err := math.Abs(float64(cRef[i] - cAda[i])); err > tol {
						t.Fatalf("Gemm transA=%c transB=%c m=%d n=%d k=%d: adapter diverges at %d: %v vs %v",
							tA, tB, d.m, d.n, d.k, i, cAda[i], cRef[i])
					}
				}
			}
		}
	}

	for _, trans := range transes {
		m, n := 9, 6
		lda := m + 1
		a := randSlice[T](rng, lda*n)
		lenY, lenX := m, n
		if trans == blas.Trans {
			lenY, lenX = n, m
		}
		for _, incX := range []int{1, 2} {
			x := randSlice[T](rng, lenX*incX)
			y0 := randSlice[T](rng, lenY)

			yRef := append([]T(nil), y0...)
			yAda := append([]T(nil), y0...)
			ref.Gemv(trans, m, n, 2.0, a, lda, x, incX, 0.25, yRef, 1)
			ada.Gemv(trans, m, n, 2.0, a, lda, x, incX, 0.25, yAda, 1)

			tol := refTol[T](lenX)
			for i := range yRef {
				if err := math.Abs(float64(yRef[i] - yAda[i])); err > tol {
					t.Fatalf("Gemv trans=%c incX=%d: adapter diverges at %d: %v vs %v",
						trans, incX, i, yAda[i], yRef[i])
				}
			}
		}
	}
}

func TestGonumMatchesRefFloat64(t *testing.T) { testGonumMatchesRef[float64](t) }
func TestGonumMatchesRefFloat32(t *testing.T) { testGonumMatchesRef[float32](t) }

// The adapter must reject flags outside {NoTrans, Trans} exactly as
// Ref does; in particular ConjTrans must not fall through to the
// NoTrans dimension mapping.
func TestGonumRejectsConjTrans(t *testing.T) {
	var ada Gonum[float64]
	a := []float64{1, 2, 3, 4}
	x := []float64{1, 1}
	y := []float64{0, 0}
	c := make([]float64, 4)

	for name, call := range map[string]func(){
		"gemm transA": func() {
			ada.Gemm(blas.ConjTrans, blas.NoTrans, 2, 2, 2, 1, a, 2, a, 2, 0, c, 2)
		},
		"gemm transB": func() {
			ada.Gemm(blas.NoTrans, blas.ConjTrans, 2, 2, 2, 1, a, 2, a, 2, 0, c, 2)
		},
		"gemv": func() {
			ada.Gemv(blas.ConjTrans, 2, 2, 1, a, 2, x, 1, 0, y, 1)
		},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic for ConjTrans", name)
				}
			}()
			call()
		}()
	}
}

type myFloat float64

func TestGonumRejectsDefinedTypes(t *testing.T) {
	var ada Gonum[myFloat]
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for defined element type")
		}
	}()
	ada.Gemm(blas.NoTrans, blas.NoTrans, 1, 1, 1, 1,
		[]myFloat{1}, 1, []myFloat{1}, 1, 0, []myFloat{0}, 1)
}
