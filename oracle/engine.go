package oracle

import (
	"math"

	"github.com/ctessum/geom"
)

// Engine is the minimal view over a planar geometry library that the
// partition solver needs. All methods must tolerate nil, empty and
// degenerate input: measurements come back as 0 and clips come back
// empty — an Engine never panics.
type Engine interface {
	// Area returns the absolute area of g in the units of its frame.
	Area(g geom.Polygonal) float64
	// Intersect clips a by b; the result may be empty or multi-part.
	Intersect(a, b geom.Polygonal) geom.Polygonal
	// Bounds returns the axis-aligned bounding box of g.
	Bounds(g geom.Polygonal) *geom.Bounds
	// Centroid returns the area-weighted centroid of g.
	Centroid(g geom.Polygonal) geom.Point
	// Parts splits g into connected components ("islands"), each with
	// its hole rings attached.
	Parts(g geom.Polygonal) []geom.Polygon
}

// PlanarEngine implements Engine on github.com/ctessum/geom, whose
// boolean operations are Martinez–Rueda clipping via polyclip-go.
type PlanarEngine struct{}

// Area returns the absolute area of g; 0 for nil or empty input.
func (PlanarEngine) Area(g geom.Polygonal) (a float64) {
	// Engine contract: degenerate geometry measures 0, never panics.
	defer func() {
		if recover() != nil {
			a = 0
		}
	}()
	if g == nil {
		return 0
	}
	return math.Abs(g.Area())
}

// Intersect clips a by b. Nil operands and clipper failures yield an
// empty polygon, per the Engine contract.
func (PlanarEngine) Intersect(a, b geom.Polygonal) (out geom.Polygonal) {
	defer func() {
		if recover() != nil {
			out = geom.Polygon(nil)
		}
	}()
	if a == nil || b == nil {
		return geom.Polygon(nil)
	}
	return a.Intersection(b)
}

// Bounds returns the bounding box of g, or nil for nil input.
func (PlanarEngine) Bounds(g geom.Polygonal) *geom.Bounds {
	if g == nil {
		return nil
	}
	return g.Bounds()
}

// Centroid returns the centroid of g, or the origin for nil input.
func (PlanarEngine) Centroid(g geom.Polygonal) geom.Point {
	if g == nil {
		return geom.Point{}
	}
	return g.Centroid()
}

// Parts decomposes g into islands. Ring nesting depth (by even-odd ray
// crossing) classifies each ring: even depth starts a new island, odd
// depth is a hole attached to its smallest enclosing outer ring. This
// is the planar counterpart of splitting a multi-part geometry into a
// geometry collection.
//
// Complexity: O(R² · V) for R rings of ≤ V vertices; R is tiny for
// slice intersections (a handful of islands per slab).
func (PlanarEngine) Parts(g geom.Polygonal) []geom.Polygon {
	if g == nil {
		return nil
	}
	var rings [][]geom.Point
	for _, p := range g.Polygons() {
		for _, r := range p {
			if len(r) >= 3 && ringArea(r) != 0 {
				rings = append(rings, r)
			}
		}
	}
	switch len(rings) {
	case 0:
		return nil
	case 1:
		return []geom.Polygon{{rings[0]}}
	}

	depth := make([]int, len(rings))
	for i := range rings {
		for j := range rings {
			if i != j && pointInRing(rings[i][0], rings[j]) {
				depth[i]++
			}
		}
	}

	// Outer rings first, so holes have a part to attach to.
	partOf := make(map[int]int, len(rings))
	var parts []geom.Polygon
	for i, r := range rings {
		if depth[i]%2 == 0 {
			partOf[i] = len(parts)
			parts = append(parts, geom.Polygon{r})
		}
	}
	for i, r := range rings {
		if depth[i]%2 == 0 {
			continue
		}
		best, bestArea := -1, math.Inf(1)
		for j := range rings {
			if depth[j]%2 != 0 || !pointInRing(r[0], rings[j]) {
				continue
			}
			if a := math.Abs(ringArea(rings[j])); a < bestArea {
				best, bestArea = j, a
			}
		}
		if best >= 0 {
			k := partOf[best]
			parts[k] = append(parts[k], r)
		}
	}
	return parts
}

// ringArea returns the signed shoelace area of a closed ring.
func ringArea(r []geom.Point) float64 {
	var s float64
	for i := range r {
		j := (i + 1) % len(r)
		s += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return s / 2
}

// pointInRing reports whether pt lies strictly inside ring, by the
// even-odd rule with a horizontal ray.
func pointInRing(pt geom.Point, ring []geom.Point) bool {
	in := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}
	return in
}
