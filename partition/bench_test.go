// Package partition_test — benchmarks for the equal-area solvers.
//
// Policy:
//   - Deterministic geometry (squares, U-shape); no randomness.
//   - Inputs built outside the timer; measure only the solve+assemble.
//   - Instances sized to stay fast on CI.
package partition_test

import (
	"testing"

	"github.com/katalvlaran/lvlarea/oracle"
	"github.com/katalvlaran/lvlarea/partition"
)

// BenchmarkSolveBoundary measures a single half-area bisection on a
// square: the oracle-call cost dominates.
func BenchmarkSolveBoundary(b *testing.B) {
	o := oracle.NewPlanar()
	square := quad(0, 0, 10, 10)
	build := vertBuild(o.Bounds(square))
	cfg := vertCfg(50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = partition.SolveBoundary(square, o, 0, 10, build, cfg)
	}
}

// BenchmarkPartitionVertical measures an 8-way strip split.
func BenchmarkPartitionVertical(b *testing.B) {
	o := oracle.NewPlanar()
	square := quad(0, 0, 10, 10)
	opts := partition.DefaultOptions(
		partition.WithMethod(partition.MethodVertical),
		partition.WithCount(8),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = partition.Partition(square, o, opts)
	}
}

// BenchmarkPartitionRadial measures an 8-way wedge split; wedge rings
// carry far more vertices than slabs.
func BenchmarkPartitionRadial(b *testing.B) {
	o := oracle.NewPlanar()
	square := quad(0, 0, 10, 10)
	opts := partition.DefaultOptions(
		partition.WithMethod(partition.MethodRadial),
		partition.WithCount(8),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = partition.Partition(square, o, opts)
	}
}

// BenchmarkPartitionGrid measures a 3×3 grid (3 row solves + 9 column
// solves) on a concave source.
func BenchmarkPartitionGrid(b *testing.B) {
	o := oracle.NewPlanar()
	u := uShape()
	opts := partition.DefaultOptions(partition.WithGrid(3, 3))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = partition.Partition(u, o, opts)
	}
}
