// Package partition divides a planar polygon into sub-polygons of
// equal area.
//
// What:
//
//   - Partition — the canonical entry point: route a request
//     (polygon, method, count or rows×columns) to one of four
//     strategies and return tagged sub-polygons.
//   - SolveBoundary — the numeric core: bisection over one cut
//     coordinate (X, Y, or an angle) against a black-box area oracle.
//   - VerticalSlab / HorizontalSlab / Wedge / GridCell — the clipping
//     shapes the solver sweeps.
//
// Why:
//
//   - Land subdivision: split a parcel into N lots of equal area.
//   - Sampling design: equal-area strata over an irregular region.
//   - Load balancing: assign equal-area tiles of a service region.
//
// How it works:
//
//	Each interior cut is found by classical bisection: the slice from
//	the previous boundary to the candidate position is clipped against
//	the source polygon and measured by the oracle; too small pushes the
//	candidate outward, too large pulls it inward. Successive searches
//	start at the previously resolved boundary, so boundaries are
//	strictly increasing and slices never overlap. The grid method is
//	two sequential passes of the same solver: rows along Y, then
//	columns along X scoped to each row band.
//
// Complexity:
//
//   - One boundary solve: O(log(extent/tolerance)) oracle calls,
//     capped at MaxIterations.
//   - N-way strip or radial split: O(N) solves.
//   - R×C grid: O(R + R·C) solves.
//
// Options (all defaults documented on Options):
//
//   - AreaToleranceFrac, CoordToleranceFrac, AngleTolerance — solver
//     convergence tolerances.
//   - MaxIterations — hard bisection cap; exhaustion degrades to a
//     best-effort cut with a ConvergenceWarning on the Result.
//   - SliverFrac — near-zero-area islands below this fraction of the
//     total area are dropped during assembly.
//   - Cancel — optional abort hook checked between iterations and
//     between slices.
//
// Errors:
//
//   - ErrInvalidGeometry: nil/empty source or non-positive total area.
//   - ErrDegenerateCount: count < 2 for strip/radial methods.
//   - ErrDegenerateGrid: rows < 1 or cols < 1 for the grid method.
//   - ErrUnknownMethod: unrecognised Method value.
//   - ErrBadTolerance: non-positive tolerance, cap or sliver fraction.
//   - ErrCanceled: the Cancel hook fired.
//
// See: oracle for area measurement and reference-frame handling.
package partition
