package oracle

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// FrameWGS84 is the usual geographic working frame: degrees of
// longitude/latitude on the WGS84 ellipsoid.
const FrameWGS84 Frame = "+proj=longlat +datum=WGS84 +no_defs"

// frameWorldEqualArea is the fallback measurement frame when no
// UTM-like zone fits the centroid: a world Albers equal-area cone with
// wide standard parallels. Albers is the only equal-area projection the
// backend can build a transformer for.
const frameWorldEqualArea Frame = "+proj=aea +lat_1=-60 +lat_2=60 +lat_0=0 +lon_0=0 +datum=WGS84 +units=m +no_defs"

// Reprojector decides whether a frame needs reprojection before areas
// are meaningful, suggests a locally accurate planar frame, and
// performs the transform.
type Reprojector interface {
	// IsGeographic reports whether frame is in angular units.
	IsGeographic(frame Frame) bool
	// SuggestProjectedFrame picks a planar frame suited to geometry
	// centered at the given geographic point.
	SuggestProjectedFrame(centroid geom.Point) Frame
	// Reproject transforms g between the two frames.
	Reproject(g geom.Polygonal, from, to Frame) (geom.Polygonal, error)
}

// Proj4Reprojector implements Reprojector on ctessum/geom/proj, the
// proj4-style projection backend.
type Proj4Reprojector struct{}

// IsGeographic reports whether frame parses to a longlat projection.
// FrameNone and unparsable frames are treated as planar.
func (Proj4Reprojector) IsGeographic(frame Frame) bool {
	if frame == FrameNone {
		return false
	}
	sr, err := proj.Parse(string(frame))
	if err != nil {
		return false
	}
	return sr.Name == "longlat"
}

// SuggestProjectedFrame derives a UTM-like zone from the centroid:
// zone = ⌊(lon+180)/6⌋+1, southern hemisphere offset when lat < 0.
// Centroids outside the valid longitude range fall back to a world
// equal-area frame.
func (Proj4Reprojector) SuggestProjectedFrame(centroid geom.Point) Frame {
	if centroid.X < -180 || centroid.X > 180 {
		return frameWorldEqualArea
	}
	zone := int((centroid.X+180)/6) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	south := ""
	if centroid.Y < 0 {
		south = " +south"
	}
	return Frame(fmt.Sprintf("+proj=utm +zone=%d%s +datum=WGS84 +units=m +no_defs", zone, south))
}

// Reproject transforms g from one frame to the other. Both frames must
// parse (ErrBadFrame otherwise), and the transformed geometry must
// remain polygonal (ErrNotPolygonal otherwise).
func (Proj4Reprojector) Reproject(g geom.Polygonal, from, to Frame) (geom.Polygonal, error) {
	src, err := proj.Parse(string(from))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadFrame, from, err)
	}
	dst, err := proj.Parse(string(to))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadFrame, to, err)
	}
	ct, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %q→%q: %v", ErrBadFrame, from, to, err)
	}
	out, err := g.Transform(ct)
	if err != nil {
		return nil, err
	}
	pg, ok := out.(geom.Polygonal)
	if !ok {
		return nil, ErrNotPolygonal
	}
	return pg, nil
}
