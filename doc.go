// Package lvlarea is your in-memory toolbox for planar equal-area
// geometry — slicing real-world polygons into parts of equal area.
//
// 🚀 What is lvlarea?
//
//	A small, deterministic library that divides any planar polygon
//	(concave, holed, multi-part) into N sub-polygons of equal area:
//		• Vertical stripes   — parallel slabs along X
//		• Horizontal stripes — parallel slabs along Y
//		• Radial slices      — cake wedges around the centroid
//		• Grid               — rows × columns of equal-area cells
//
// ✨ Why choose lvlarea?
//
//   - Engine-backed – boolean clipping and areas come from
//     github.com/ctessum/geom, not hand-rolled geometry
//   - CRS-aware – geographic inputs are measured in a locally accurate
//     projected frame (UTM-like zone, equal-area fallback)
//   - Tunable – every tolerance, cap and epsilon is an option with a
//     documented default
//   - Honest numerics – non-converged boundaries degrade gracefully
//     into best-effort cuts with attached warnings, never panics
//
// Everything is organized under two subpackages:
//
//	oracle/    — area measurement, reprojection frames, clipping adapter
//	partition/ — the bisection solver, slice shapes, grid composer
//
// Quick ASCII example (vertical, N=4, square 10×10):
//
//	┌──┬──┬──┬──┐
//	│25│25│25│25│
//	└──┴──┴──┴──┘
//
// See partition.Partition for the canonical entry point.
package lvlarea
