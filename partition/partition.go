// File: partition/partition.go
// Unified dispatcher for equal-area division.
//
// This file provides the canonical entry point: validate the request,
// route to the strip, radial or grid driver, and assemble the tagged
// output parts.
//
// Design principles:
//   - Deterministic: fixed inputs and tolerances always reproduce the
//     same boundaries; re-invoking is never a recovery strategy.
//   - Strict sentinels: invalid input and degenerate requests fail fast
//     with errors from types.go and no partial output.
//   - Graceful numerics: cap-exhausted solves degrade to best-effort
//     cuts recorded as ConvergenceWarnings on the Result.
package partition

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/lvlarea/oracle"
)

// Partition divides src into equal-area parts according to opts.
//
// A nil oracle selects oracle.NewPlanar(), i.e. src is measured
// directly in its own planar units.
//
// Contracts:
//   - src must measure a positive total area (ErrInvalidGeometry).
//   - opts must name a known method with count ≥ 2 (strip/radial) or
//     rows, cols ≥ 1 (grid) and positive tolerances.
//
// The output invariants of the Result type hold on success; see the
// package documentation for the method catalogue and cost model.
func Partition(src geom.Polygonal, o *oracle.AreaOracle, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if o == nil {
		o = oracle.NewPlanar()
	}
	if src == nil {
		return Result{}, ErrInvalidGeometry
	}
	total := o.Area(src)
	if total <= 0 {
		return Result{}, ErrInvalidGeometry
	}

	switch opts.Method {
	case MethodVertical:
		return partitionStrips(src, o, opts, total, true)
	case MethodHorizontal:
		return partitionStrips(src, o, opts, total, false)
	case MethodRadial:
		return partitionRadial(src, o, opts, total)
	case MethodGrid:
		return partitionGrid(src, o, opts, total)
	default:
		return Result{}, ErrUnknownMethod
	}
}

// partitionStrips drives the vertical and horizontal methods: one
// boundary sequence along the cut axis, slabs spanning the full
// orthogonal extent.
func partitionStrips(src geom.Polygonal, o *oracle.AreaOracle, opts Options, total float64, vertical bool) (Result, error) {
	b := o.Bounds(src)
	var lo, hi float64
	var build SliceBuilder
	if vertical {
		lo, hi = b.Min.X, b.Max.X
		build = func(prev, cand float64) geom.Polygon { return VerticalSlab(prev, cand, b) }
	} else {
		lo, hi = b.Min.Y, b.Max.Y
		build = func(prev, cand float64) geom.Polygon { return HorizontalSlab(prev, cand, b) }
	}

	target := total / float64(opts.Count)
	cfg := SolverConfig{
		Target:   target,
		AreaTol:  target * opts.AreaToleranceFrac,
		CoordTol: (hi - lo) * opts.CoordToleranceFrac,
		MaxIter:  opts.MaxIterations,
		Cancel:   opts.Cancel,
	}
	bounds, warns, err := solveSequence(src, o, lo, hi, opts.Count, build, cfg, -1)
	if err != nil {
		return Result{}, err
	}
	parts, err := assembleStrips(src, o, bounds, build, total*opts.SliverFrac, opts.Cancel)
	if err != nil {
		return Result{}, err
	}
	return Result{Parts: parts, Warnings: warns}, nil
}

// partitionRadial drives the cake-slice method: wedges around the
// centroid, angles swept 0°–360°, fixed angular interval floor.
func partitionRadial(src geom.Polygonal, o *oracle.AreaOracle, opts Options, total float64) (Result, error) {
	center := o.Centroid(src)
	b := o.Bounds(src)
	// Radius twice the bounding diagonal guarantees full coverage.
	radius := 2 * math.Hypot(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)
	build := func(prev, cand float64) geom.Polygon { return Wedge(center, radius, prev, cand) }

	target := total / float64(opts.Count)
	cfg := SolverConfig{
		Target:   target,
		AreaTol:  target * opts.AreaToleranceFrac,
		CoordTol: opts.AngleTolerance,
		MaxIter:  opts.MaxIterations,
		Cancel:   opts.Cancel,
	}
	bounds, warns, err := solveSequence(src, o, 0, 360, opts.Count, build, cfg, -1)
	if err != nil {
		return Result{}, err
	}
	parts, err := assembleStrips(src, o, bounds, build, total*opts.SliverFrac, opts.Cancel)
	if err != nil {
		return Result{}, err
	}
	return Result{Parts: parts, Warnings: warns}, nil
}
