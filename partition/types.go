// File: partition/types.go
// Core types, options, and sentinel errors for equal-area partitioning.
package partition

import (
	"errors"

	"github.com/ctessum/geom"
)

// Sentinel errors for partition operations.
var (
	// ErrInvalidGeometry indicates a nil or empty source polygon, or one
	// whose measured area is not positive.
	ErrInvalidGeometry = errors.New("partition: source polygon is empty or has non-positive area")

	// ErrDegenerateCount indicates a strip/radial request with count < 2.
	ErrDegenerateCount = errors.New("partition: division count must be at least 2")

	// ErrDegenerateGrid indicates a grid request with rows < 1 or cols < 1.
	ErrDegenerateGrid = errors.New("partition: grid needs at least one row and one column")

	// ErrUnknownMethod indicates an unrecognised Method value.
	ErrUnknownMethod = errors.New("partition: unknown division method")

	// ErrBadTolerance indicates a non-positive tolerance, iteration cap,
	// or negative sliver fraction.
	ErrBadTolerance = errors.New("partition: tolerances and iteration cap must be positive")

	// ErrCanceled indicates the Cancel hook aborted the request.
	ErrCanceled = errors.New("partition: request canceled")
)

// Method selects the division strategy.
type Method int

const (
	// MethodVertical slices the polygon into parallel vertical stripes.
	MethodVertical Method = iota
	// MethodHorizontal slices the polygon into parallel horizontal stripes.
	MethodHorizontal
	// MethodRadial slices the polygon into cake wedges around its centroid.
	MethodRadial
	// MethodGrid slices the polygon into rows × columns equal-area cells.
	MethodGrid
)

// Options configures a partition request.
//
// Count applies to MethodVertical/MethodHorizontal/MethodRadial and
// must be ≥ 2. Rows/Cols apply to MethodGrid and must be ≥ 1.
//
// Tolerances (defaults in parentheses):
//   - AreaToleranceFrac (1e-6) — a boundary converges when the slice
//     area is within target×AreaToleranceFrac of the target share.
//   - CoordToleranceFrac (1e-10) — bisection stops when the search
//     interval shrinks below extent×CoordToleranceFrac on linear axes.
//   - AngleTolerance (1e-4) — fixed interval floor, in degrees, for the
//     radial method's angular axis.
//   - MaxIterations (100) — hard bisection cap; exhaustion yields a
//     best-effort boundary plus a ConvergenceWarning, never an error.
//   - SliverFrac (1e-12) — islands with area ≤ total×SliverFrac are
//     dropped during assembly (floating-point intersection noise).
//
// Cancel, when non-nil, is polled between bisection iterations and
// between boundary solves; returning true aborts with ErrCanceled.
type Options struct {
	Method Method
	Count  int
	Rows   int
	Cols   int

	AreaToleranceFrac  float64
	CoordToleranceFrac float64
	AngleTolerance     float64
	MaxIterations      int
	SliverFrac         float64

	Cancel func() bool
}

// Option is a functional option for configuring a partition request.
type Option func(*Options)

// WithMethod selects the division strategy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithCount sets the number of divisions for strip/radial methods.
func WithCount(n int) Option {
	return func(o *Options) { o.Count = n }
}

// WithGrid selects MethodGrid with the given rows × columns layout.
func WithGrid(rows, cols int) Option {
	return func(o *Options) {
		o.Method = MethodGrid
		o.Rows = rows
		o.Cols = cols
	}
}

// WithAreaToleranceFrac overrides the relative area tolerance.
func WithAreaToleranceFrac(f float64) Option {
	return func(o *Options) { o.AreaToleranceFrac = f }
}

// WithCoordToleranceFrac overrides the relative coordinate tolerance.
func WithCoordToleranceFrac(f float64) Option {
	return func(o *Options) { o.CoordToleranceFrac = f }
}

// WithAngleTolerance overrides the angular interval floor, in degrees.
func WithAngleTolerance(deg float64) Option {
	return func(o *Options) { o.AngleTolerance = deg }
}

// WithMaxIterations overrides the hard bisection cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithSliverFrac overrides the sliver-dropping fraction.
func WithSliverFrac(f float64) Option {
	return func(o *Options) { o.SliverFrac = f }
}

// WithCancel installs an abort hook.
func WithCancel(cancel func() bool) Option {
	return func(o *Options) { o.Cancel = cancel }
}

// DefaultOptions returns Options with the documented defaults:
// MethodVertical, Count=2, Rows=Cols=2, AreaToleranceFrac=1e-6,
// CoordToleranceFrac=1e-10, AngleTolerance=1e-4°, MaxIterations=100,
// SliverFrac=1e-12, no cancellation.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Method:             MethodVertical,
		Count:              2,
		Rows:               2,
		Cols:               2,
		AreaToleranceFrac:  1e-6,
		CoordToleranceFrac: 1e-10,
		AngleTolerance:     1e-4,
		MaxIterations:      100,
		SliverFrac:         1e-12,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// validate rejects degenerate requests before any solving begins.
func (o Options) validate() error {
	switch o.Method {
	case MethodVertical, MethodHorizontal, MethodRadial:
		if o.Count < 2 {
			return ErrDegenerateCount
		}
	case MethodGrid:
		if o.Rows < 1 || o.Cols < 1 {
			return ErrDegenerateGrid
		}
	default:
		return ErrUnknownMethod
	}
	if o.AreaToleranceFrac <= 0 || o.CoordToleranceFrac <= 0 ||
		o.AngleTolerance <= 0 || o.MaxIterations < 1 || o.SliverFrac < 0 {
		return ErrBadTolerance
	}
	return nil
}

// Part is one output polygon, tagged with its originating slice index.
// A slice that meets a concave or multi-part source in several places
// produces one Part per island, all sharing the same Slice index.
// Row/Col identify the grid cell for MethodGrid and are -1 otherwise.
type Part struct {
	Geom  geom.Polygon
	Slice int
	Row   int
	Col   int
}

// ConvergenceWarning records a boundary solve that exhausted
// MaxIterations before meeting the area tolerance. The best-effort
// boundary is still used; the warning is attached to the Result.
type ConvergenceWarning struct {
	// Slice is the boundary index (1-based within its axis) that failed
	// to converge.
	Slice int
	// Row is the grid row the solve belonged to, or -1 outside grids.
	Row int
	// Gap is |sliceArea − targetArea| at cap exhaustion.
	Gap float64
}

// Result is the outcome of a partition request.
// Invariant: Σ Area(Parts[i]) ≈ Area(source) within cumulative
// tolerance; len(Parts) ≥ requested count for valid convex input, and
// may exceed it when islands split.
type Result struct {
	Parts    []Part
	Warnings []ConvergenceWarning
}
