package partition

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/lvlarea/oracle"
)

// SliceBuilder produces the clipping shape spanning the interval from
// prev to candidate on the cut axis: a slab bounded by two X or Y
// coordinates, or a wedge bounded by two angles. The shape must grow
// monotonically with candidate while prev is held fixed.
type SliceBuilder func(prev, candidate float64) geom.Polygon

// SolverConfig parameterises one boundary solve.
type SolverConfig struct {
	// Target is the area share the slice must enclose.
	Target float64
	// AreaTol is the absolute area convergence tolerance.
	AreaTol float64
	// CoordTol is the interval floor on the cut axis.
	CoordTol float64
	// MaxIter is the hard bisection cap.
	MaxIter int
	// Cancel, when non-nil, aborts the solve when it returns true.
	Cancel func() bool
}

// SolveBoundary — find one equal-area cut by bisection.
//
// Description:
//
//	Holding the previous boundary fixed, the enclosed slice area is a
//	monotonic function of the candidate cut position. SolveBoundary
//	runs classical bisection on [prev, hi]: at each step the midpoint
//	slice is clipped against src and measured by the oracle; a slice
//	smaller than the target raises the lower bound, a larger one lowers
//	the upper bound.
//
// Exit paths:
//
//  1. Interval below CoordTol      → midpoint, converged.
//  2. Area gap below AreaTol       → midpoint, converged.
//  3. MaxIter exhausted            → midpoint of the final interval,
//     not converged (caller attaches a ConvergenceWarning).
//
// An empty candidate intersection measures 0, which bisection treats
// as "slice too small" — no special case needed.
//
// Contracts:
//   - prev < hi; cfg.Target > 0 (the dispatcher rejects degenerate
//     requests before any solve).
//   - The returned position lies strictly inside (prev, hi), so
//     successive solves seeded at the previous boundary produce a
//     strictly increasing sequence.
//
// Returns the cut position, whether it converged, the final area gap,
// and ErrCanceled when cfg.Cancel fired (the only error path).
//
// Complexity: O(log((hi−prev)/CoordTol)) oracle calls, ≤ MaxIter.
func SolveBoundary(src geom.Polygonal, o *oracle.AreaOracle, prev, hi float64, build SliceBuilder, cfg SolverConfig) (pos float64, converged bool, gap float64, err error) {
	low, high := prev, hi
	gap = math.Inf(1)
	for it := 0; it < cfg.MaxIter; it++ {
		if cfg.Cancel != nil && cfg.Cancel() {
			return 0, false, gap, ErrCanceled
		}
		mid := (low + high) / 2
		if high-low < cfg.CoordTol {
			return mid, true, gap, nil
		}
		area := o.Area(o.Intersect(src, build(prev, mid)))
		gap = math.Abs(area - cfg.Target)
		if gap < cfg.AreaTol {
			return mid, true, gap, nil
		}
		if area < cfg.Target {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2, false, gap, nil
}

// solveSequence resolves the full boundary set for an n-way split of
// [lo, hi]: n−1 interior cuts, each seeded at the previously resolved
// boundary, framed by the extent endpoints. The returned slice has
// n+1 strictly increasing values with bounds[0]==lo and bounds[n]==hi.
func solveSequence(src geom.Polygonal, o *oracle.AreaOracle, lo, hi float64, n int, build SliceBuilder, cfg SolverConfig, row int) ([]float64, []ConvergenceWarning, error) {
	bounds := make([]float64, 1, n+1)
	bounds[0] = lo
	var warns []ConvergenceWarning
	for i := 1; i < n; i++ {
		pos, ok, gap, err := SolveBoundary(src, o, bounds[i-1], hi, build, cfg)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			warns = append(warns, ConvergenceWarning{Slice: i, Row: row, Gap: gap})
		}
		bounds = append(bounds, pos)
	}
	bounds = append(bounds, hi)
	return bounds, warns, nil
}
