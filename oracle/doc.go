// Package oracle provides the area-measurement side of lvlarea: a thin
// adapter over a planar geometry engine plus reference-frame handling,
// so the partition solver can treat "how big is this slice?" as a
// black-box question.
//
// What:
//
//   - Engine — minimal view over github.com/ctessum/geom: area,
//     intersection, bounding box, centroid, island decomposition.
//   - Frame / Reprojector — opaque reference-frame ids (proj4 strings)
//     and the heuristic that picks a locally accurate projected frame
//     (UTM-like zone from the centroid, world equal-area fallback).
//   - AreaOracle — bundles both: measures geometry in the working frame
//     directly when it is already planar, or reprojects into the
//     resolved measurement frame first when it is geographic.
//
// Why:
//
//   - Areas of geographic (degree-unit) polygons are meaningless until
//     projected; the oracle hides that entirely from the solver.
//   - Injecting Engine and Reprojector keeps the numeric core testable
//     without a real projection subsystem.
//
// Guarantees:
//
//   - Area returns 0 for nil/empty/degenerate input, never panics.
//   - Intersect returns a possibly empty geometry, never panics.
//   - A failed reprojection falls back to measuring in the raw frame.
//
// Errors:
//
//   - ErrBadFrame — a frame definition cannot be parsed.
//   - ErrNotPolygonal — a reprojection produced non-polygonal output.
//
// See: partition for the solver that consumes this package.
package oracle
