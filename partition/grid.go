package partition

import (
	"github.com/ctessum/geom"

	"github.com/katalvlaran/lvlarea/oracle"
)

// partitionGrid drives the rows × columns method as two sequential
// passes of the generic solver.
//
// A simultaneous 2-D equal-area solve has no monotonic single-variable
// reduction, so the decomposition is hierarchical: R row boundaries
// are solved first along Y (each row targeting total/R) and held
// fixed; then each resolved row band becomes an independent 1-D
// problem along X, its C column boundaries targeting rowArea/C and
// scoped to the row's own intersection and X-extent. Rows or cells
// whose intersection with the source is empty are dropped, which is
// expected for concave or multi-part sources.
func partitionGrid(src geom.Polygonal, o *oracle.AreaOracle, opts Options, total float64) (Result, error) {
	b := o.Bounds(src)
	sliver := total * opts.SliverFrac

	rowTarget := total / float64(opts.Rows)
	rowBuild := func(prev, cand float64) geom.Polygon { return HorizontalSlab(prev, cand, b) }
	rowCfg := SolverConfig{
		Target:   rowTarget,
		AreaTol:  rowTarget * opts.AreaToleranceFrac,
		CoordTol: (b.Max.Y - b.Min.Y) * opts.CoordToleranceFrac,
		MaxIter:  opts.MaxIterations,
		Cancel:   opts.Cancel,
	}
	ySlices, warns, err := solveSequence(src, o, b.Min.Y, b.Max.Y, opts.Rows, rowBuild, rowCfg, -1)
	if err != nil {
		return Result{}, err
	}

	var parts []Part
	for r := 0; r < opts.Rows; r++ {
		if opts.Cancel != nil && opts.Cancel() {
			return Result{}, ErrCanceled
		}
		rowGeom := o.Intersect(src, rowBuild(ySlices[r], ySlices[r+1]))
		rowArea := o.Area(rowGeom)
		if rowArea <= 0 {
			continue
		}

		rb := o.Bounds(rowGeom)
		yLo, yHi := ySlices[r], ySlices[r+1]
		colBuild := func(prev, cand float64) geom.Polygon { return GridCell(prev, cand, yLo, yHi) }
		colTarget := rowArea / float64(opts.Cols)
		colCfg := SolverConfig{
			Target:   colTarget,
			AreaTol:  colTarget * opts.AreaToleranceFrac,
			CoordTol: (rb.Max.X - rb.Min.X) * opts.CoordToleranceFrac,
			MaxIter:  opts.MaxIterations,
			Cancel:   opts.Cancel,
		}
		xSlices, colWarns, err := solveSequence(rowGeom, o, rb.Min.X, rb.Max.X, opts.Cols, colBuild, colCfg, r)
		if err != nil {
			return Result{}, err
		}
		warns = append(warns, colWarns...)

		for c := 0; c < opts.Cols; c++ {
			cell := o.Intersect(rowGeom, colBuild(xSlices[c], xSlices[c+1]))
			parts = appendIslands(parts, o, cell, sliver, r*opts.Cols+c, r, c)
		}
	}
	return Result{Parts: parts, Warnings: warns}, nil
}
