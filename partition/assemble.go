package partition

import (
	"github.com/ctessum/geom"

	"github.com/katalvlaran/lvlarea/oracle"
)

// assembleStrips turns a resolved boundary sequence into output parts:
// one final intersection per interval, split into islands.
func assembleStrips(src geom.Polygonal, o *oracle.AreaOracle, bounds []float64, build SliceBuilder, sliver float64, cancel func() bool) ([]Part, error) {
	var parts []Part
	for i := 0; i+1 < len(bounds); i++ {
		if cancel != nil && cancel() {
			return nil, ErrCanceled
		}
		g := o.Intersect(src, build(bounds[i], bounds[i+1]))
		parts = appendIslands(parts, o, g, sliver, i, -1, -1)
	}
	return parts, nil
}

// appendIslands decomposes a slice intersection into connected
// components and appends one Part per island, all inheriting the same
// slice tag. Islands at or below the sliver threshold are dropped.
func appendIslands(parts []Part, o *oracle.AreaOracle, g geom.Polygonal, sliver float64, slice, row, col int) []Part {
	for _, island := range o.Parts(g) {
		if o.Area(island) <= sliver {
			continue
		}
		parts = append(parts, Part{Geom: island, Slice: slice, Row: row, Col: col})
	}
	return parts
}
