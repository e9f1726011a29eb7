package partition

import (
	"math"

	"github.com/ctessum/geom"
)

// VerticalSlab returns the axis-aligned rectangle spanning the full
// Y-extent of b, bounded in X by [xLo, xHi].
func VerticalSlab(xLo, xHi float64, b *geom.Bounds) geom.Polygon {
	return rectangle(xLo, b.Min.Y, xHi, b.Max.Y)
}

// HorizontalSlab returns the axis-aligned rectangle spanning the full
// X-extent of b, bounded in Y by [yLo, yHi].
func HorizontalSlab(yLo, yHi float64, b *geom.Bounds) geom.Polygon {
	return rectangle(b.Min.X, yLo, b.Max.X, yHi)
}

// GridCell returns the axis-aligned rectangle [xLo,xHi]×[yLo,yHi].
func GridCell(xLo, xHi, yLo, yHi float64) geom.Polygon {
	return rectangle(xLo, yLo, xHi, yHi)
}

// Wedge returns a fan polygon with apex at center, bounded by the rays
// at angLo and angHi (degrees, counter-clockwise from east) and an arc
// of the given radius. The arc carries at least one vertex per 2° of
// span and never fewer than 10; the radius must exceed the source
// polygon's extent so the wedge covers it fully (the dispatcher uses
// twice the bounding-box diagonal).
func Wedge(center geom.Point, radius, angLo, angHi float64) geom.Polygon {
	span := angHi - angLo
	n := int(span / 2)
	if n < 10 {
		n = 10
	}
	ring := make([]geom.Point, 0, n+2)
	ring = append(ring, center)
	for i := 0; i <= n; i++ {
		a := (angLo + span*float64(i)/float64(n)) * math.Pi / 180
		ring = append(ring, geom.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return geom.Polygon{ring}
}

func rectangle(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}}
}
