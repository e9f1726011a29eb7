package oracle_test

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarea/oracle"
)

// quad builds an axis-aligned rectangle ring.
func quad(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

// TestPlanarEngine_Area verifies absolute area on simple and degenerate
// geometry.
func TestPlanarEngine_Area(t *testing.T) {
	eng := oracle.PlanarEngine{}

	assert.InDelta(t, 100, eng.Area(quad(0, 0, 10, 10)), 1e-9, "10×10 square")
	assert.Equal(t, 0.0, eng.Area(nil), "nil geometry measures 0")
	assert.Equal(t, 0.0, eng.Area(geom.Polygon{}), "empty polygon measures 0")

	// Collapsed ring: zero area, no panic.
	degenerate := geom.Polygon{{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}}}
	assert.Equal(t, 0.0, eng.Area(degenerate), "zero-area ring measures 0")
}

// TestPlanarEngine_Intersect verifies clipping, empty overlap, and nil
// operands.
func TestPlanarEngine_Intersect(t *testing.T) {
	eng := oracle.PlanarEngine{}
	square := quad(0, 0, 10, 10)

	half := eng.Intersect(square, quad(0, 0, 5, 10))
	assert.InDelta(t, 50, eng.Area(half), 1e-6, "left half of the square")

	disjoint := eng.Intersect(square, quad(20, 20, 30, 30))
	assert.Equal(t, 0.0, eng.Area(disjoint), "disjoint clip is empty")

	assert.Equal(t, 0.0, eng.Area(eng.Intersect(nil, square)), "nil subject")
	assert.Equal(t, 0.0, eng.Area(eng.Intersect(square, nil)), "nil clip")
}

// TestPlanarEngine_BoundsCentroid checks bbox and centroid of a square.
func TestPlanarEngine_BoundsCentroid(t *testing.T) {
	eng := oracle.PlanarEngine{}
	square := quad(2, 4, 12, 14)

	b := eng.Bounds(square)
	require.NotNil(t, b)
	assert.Equal(t, 2.0, b.Min.X)
	assert.Equal(t, 4.0, b.Min.Y)
	assert.Equal(t, 12.0, b.Max.X)
	assert.Equal(t, 14.0, b.Max.Y)

	c := eng.Centroid(square)
	assert.InDelta(t, 7, c.X, 1e-9)
	assert.InDelta(t, 9, c.Y, 1e-9)
}

// TestPlanarEngine_Parts covers island decomposition: disjoint outer
// rings split apart, hole rings stay attached to their island.
func TestPlanarEngine_Parts(t *testing.T) {
	eng := oracle.PlanarEngine{}

	t.Run("TwoIslands", func(t *testing.T) {
		two := geom.Polygon{
			{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
			{{X: 10, Y: 0}, {X: 14, Y: 0}, {X: 14, Y: 4}, {X: 10, Y: 4}},
		}
		parts := eng.Parts(two)
		require.Len(t, parts, 2, "disjoint outers become separate islands")
		assert.Len(t, parts[0], 1)
		assert.Len(t, parts[1], 1)
	})

	t.Run("IslandWithHole", func(t *testing.T) {
		holed := geom.Polygon{
			{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}},
		}
		parts := eng.Parts(holed)
		require.Len(t, parts, 1, "a hole does not start a new island")
		assert.Len(t, parts[0], 2, "hole ring stays with its outer ring")
	})

	t.Run("IslandPlusHoledIsland", func(t *testing.T) {
		mixed := geom.Polygon{
			{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}},
			{{X: 20, Y: 0}, {X: 24, Y: 0}, {X: 24, Y: 4}, {X: 20, Y: 4}},
		}
		parts := eng.Parts(mixed)
		require.Len(t, parts, 2)
		rings := len(parts[0]) + len(parts[1])
		assert.Equal(t, 3, rings, "all rings accounted for")
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, eng.Parts(nil))
		assert.Nil(t, eng.Parts(geom.Polygon{}))
	})
}
