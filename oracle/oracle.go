package oracle

import "github.com/ctessum/geom"

// AreaOracle answers "how big is this geometry?" in square planar
// units regardless of the working frame, and exposes the engine
// operations the partition solver needs, so the solver has a single
// collaborator.
//
// Measurement policy:
//
//   - Planar working frame (FrameNone or any projected frame):
//     measure directly.
//   - Geographic working frame: reproject into the measurement frame
//     resolved once from the source centroid (stable across every
//     slice of one request), then measure. A failed transform falls
//     back to measuring in the raw frame.
type AreaOracle struct {
	eng     Engine
	reproj  Reprojector
	frame   Frame
	measure Frame // resolved measurement frame; FrameNone = direct
}

// New builds an AreaOracle for geometry expressed in frame. The
// measurement frame is resolved from src's centroid when frame is
// geographic. A nil engine or reprojector selects the defaults
// (PlanarEngine, Proj4Reprojector).
func New(eng Engine, reproj Reprojector, frame Frame, src geom.Polygonal) *AreaOracle {
	if eng == nil {
		eng = PlanarEngine{}
	}
	if reproj == nil {
		reproj = Proj4Reprojector{}
	}
	o := &AreaOracle{eng: eng, reproj: reproj, frame: frame, measure: FrameNone}
	if src != nil && reproj.IsGeographic(frame) {
		o.measure = reproj.SuggestProjectedFrame(eng.Centroid(src))
	}
	return o
}

// NewPlanar builds an AreaOracle for geometry already in planar map
// units, backed by the default engine.
func NewPlanar() *AreaOracle {
	return &AreaOracle{eng: PlanarEngine{}, reproj: Proj4Reprojector{}, frame: FrameNone, measure: FrameNone}
}

// Area measures g in square planar units, reprojecting first when the
// working frame is geographic. Returns 0 for nil/empty input.
func (o *AreaOracle) Area(g geom.Polygonal) float64 {
	if g == nil {
		return 0
	}
	if o.measure == FrameNone {
		return o.eng.Area(g)
	}
	pg, err := o.reproj.Reproject(g, o.frame, o.measure)
	if err != nil {
		return o.eng.Area(g)
	}
	return o.eng.Area(pg)
}

// Intersect clips a by b in the working frame.
func (o *AreaOracle) Intersect(a, b geom.Polygonal) geom.Polygonal {
	return o.eng.Intersect(a, b)
}

// Bounds returns g's bounding box in the working frame.
func (o *AreaOracle) Bounds(g geom.Polygonal) *geom.Bounds {
	return o.eng.Bounds(g)
}

// Centroid returns g's centroid in the working frame.
func (o *AreaOracle) Centroid(g geom.Polygonal) geom.Point {
	return o.eng.Centroid(g)
}

// Parts splits g into islands.
func (o *AreaOracle) Parts(g geom.Polygonal) []geom.Polygon {
	return o.eng.Parts(g)
}

// MeasurementFrame reports the frame areas are measured in; FrameNone
// means the working frame itself.
func (o *AreaOracle) MeasurementFrame() Frame {
	return o.measure
}
