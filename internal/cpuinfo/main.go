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

// Package main prints the CPU features and go-highway dispatch level
// the reference backend will run with, then sweeps the recursion
// crossover on this host to help pick a Config.Crossover value.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-relapack/gemmt"
)

func main() {
	n := flag.Int("n", 512, "problem order for the crossover sweep")
	k := flag.Int("k", 512, "contraction dimension for the crossover sweep")
	reps := flag.Int("reps", 3, "timed repetitions per crossover value")
	flag.Parse()

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Highway dispatch level: %d\n", hwy.CurrentLevel())
	fmt.Printf("Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Printf("Highway dispatch name: %s\n", hwy.CurrentName())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	sweep(*n, *k, *reps)
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDFHM: %v (FP16 FMA, ARMv8.4-A)\n", cpu.ARM64.HasASIMDFHM)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
}

// sweep times the lower NoTrans/NoTrans case across crossover values
// and reports the fastest. Single-threaded by construction, so the
// numbers compare the split schedule only.
func sweep(n, k, reps int) {
	rng := rand.New(rand.NewSource(1))
	a := make([]float64, n*k)
	b := make([]float64, k*n)
	c := make([]float64, n*n)
	for i := range a {
		a[i] = rng.Float64()*2 - 1
	}
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}

	fmt.Printf("=== crossover sweep (n=%d, k=%d, %d reps) ===\n", n, k, reps)
	best := 0
	bestTime := time.Duration(1<<63 - 1)
	for _, cross := range []int{4, 8, 16, 24, 32, 48, 64, 96} {
		if cross > n {
			break
		}
		cfg := gemmt.Config[float64]{Crossover: cross}
		var total time.Duration
		for r := 0; r < reps; r++ {
			start := time.Now()
			cfg.Gemmt(blas.Lower, blas.NoTrans, blas.NoTrans, n, k, 1.0, a, n, b, k, 0.0, c, n)
			total += time.Since(start)
		}
		per := total / time.Duration(reps)
		fmt.Printf("  crossover %3d: %v\n", cross, per)
		if per < bestTime {
			best, bestTime = cross, per
		}
	}
	fmt.Printf("fastest on this host: Crossover: %d (default %d)\n", best, gemmt.DefaultCrossover)
}
