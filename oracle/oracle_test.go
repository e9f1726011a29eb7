package oracle_test

import (
	"errors"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarea/oracle"
)

// doublingReprojector is a stub Reprojector whose "projection" scales
// coordinates by 2, so reprojected areas are exactly 4× the raw ones.
// It lets the oracle's frame logic be tested without a projection
// backend.
type doublingReprojector struct {
	geographic bool
	fail       bool
}

func (r doublingReprojector) IsGeographic(oracle.Frame) bool { return r.geographic }

func (doublingReprojector) SuggestProjectedFrame(geom.Point) oracle.Frame {
	return "stub-projected"
}

func (r doublingReprojector) Reproject(g geom.Polygonal, _, _ oracle.Frame) (geom.Polygonal, error) {
	if r.fail {
		return nil, errors.New("stub: transform failed")
	}
	var out geom.Polygon
	for _, p := range g.Polygons() {
		for _, ring := range p {
			scaled := make([]geom.Point, len(ring))
			for i, pt := range ring {
				scaled[i] = geom.Point{X: 2 * pt.X, Y: 2 * pt.Y}
			}
			out = append(out, scaled)
		}
	}
	return out, nil
}

// TestAreaOracle_PlanarFrame measures directly when the frame is planar.
func TestAreaOracle_PlanarFrame(t *testing.T) {
	o := oracle.NewPlanar()
	assert.InDelta(t, 100, o.Area(quad(0, 0, 10, 10)), 1e-9)
	assert.Equal(t, oracle.FrameNone, o.MeasurementFrame())
}

// TestAreaOracle_GeographicFrame resolves a measurement frame once and
// reprojects every measurement through it.
func TestAreaOracle_GeographicFrame(t *testing.T) {
	square := quad(0, 0, 10, 10)
	o := oracle.New(nil, doublingReprojector{geographic: true}, "stub-geographic", square)

	require.Equal(t, oracle.Frame("stub-projected"), o.MeasurementFrame())
	assert.InDelta(t, 400, o.Area(square), 1e-9, "area measured after the ×2 transform")
}

// TestAreaOracle_ReprojectionFailureFallsBack measures in the raw frame
// when the transform fails, instead of erroring out.
func TestAreaOracle_ReprojectionFailsBack(t *testing.T) {
	square := quad(0, 0, 10, 10)
	o := oracle.New(nil, doublingReprojector{geographic: true, fail: true}, "stub-geographic", square)

	assert.InDelta(t, 100, o.Area(square), 1e-9, "raw-frame fallback")
}

// TestAreaOracle_NilAndEmpty never panics and measures 0.
func TestAreaOracle_NilAndEmpty(t *testing.T) {
	o := oracle.NewPlanar()
	assert.Equal(t, 0.0, o.Area(nil))
	assert.Equal(t, 0.0, o.Area(geom.Polygon{}))
	assert.Equal(t, 0.0, o.Area(o.Intersect(nil, nil)))
}

// TestAreaOracle_Passthroughs delegate to the engine unchanged.
func TestAreaOracle_Passthroughs(t *testing.T) {
	o := oracle.NewPlanar()
	square := quad(0, 0, 10, 10)

	assert.InDelta(t, 50, o.Area(o.Intersect(square, quad(5, 0, 15, 10))), 1e-6)
	assert.Equal(t, 10.0, o.Bounds(square).Max.X)
	assert.InDelta(t, 5, o.Centroid(square).X, 1e-9)
	assert.Len(t, o.Parts(square), 1)
}
