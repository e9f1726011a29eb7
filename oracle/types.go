// File: oracle/types.go
// Core types and sentinel errors for the area-measurement layer.
package oracle

import "errors"

// Sentinel errors for oracle operations.
var (
	// ErrBadFrame indicates a reference-frame definition that the
	// projection backend cannot parse.
	ErrBadFrame = errors.New("oracle: unparsable reference frame")

	// ErrNotPolygonal indicates a reprojection that produced output the
	// engine cannot treat as polygonal geometry.
	ErrNotPolygonal = errors.New("oracle: reprojected geometry is not polygonal")
)

// Frame is an opaque reference-frame identifier. Its value is a proj4
// definition string, e.g. "+proj=longlat +datum=WGS84 +no_defs".
// FrameNone marks geometry that is already in planar map units and
// needs no reprojection before measuring.
type Frame string

// FrameNone is the zero Frame: planar working units, measure directly.
const FrameNone Frame = ""
