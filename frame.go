package ilda

import "slices"

// OutputPoint is a single point of the output stream: a normalized
// position and the color the laser shows while at it.
type OutputPoint struct {
	Pos   Point
	Color RGBA
}

// Stats holds counters derived by the last call to Frame.Update.
type Stats struct {
	// PointCountOriginal is the total number of vertices across all
	// original paths, excluding blanks and end repeats.
	PointCountOriginal int

	// PointCountProcessed is the same count after processing.
	PointCountProcessed int

	// TotalLength is the summed perimeter of the smoothed and simplified
	// paths. Only measured when TargetPointCount is enabled.
	TotalLength float64

	// PathLengths holds the perimeter of each path, index-aligned with
	// the paths of the frame. Empty unless TargetPointCount is enabled.
	PathLengths []float64

	// Spacing is the resampling spacing used by the last pass, either
	// derived from TargetPointCount or taken from Config.Path.Spacing.
	Spacing float64
}

// Frame is a single laser frame holding multiple paths in normalized
// (0..1, 0..1) coordinates.
//
// Paths are added with AddPath, AddPolyline or AddShape and then turned
// into a stream of output points by Update. Update must be called
// explicitly after any geometry or configuration change.
//
// A Frame is not safe for concurrent use.
type Frame struct {
	config Config
	stats  Stats

	original  []*Polyline
	processed []*Polyline
	colors    []RGBA
	points    []OutputPoint
}

// NewFrame creates an empty frame.
func NewFrame(opts ...Option) *Frame {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Frame{config: o.config}
}

// Config returns the current configuration.
func (f *Frame) Config() Config {
	return f.config
}

// SetConfig replaces the configuration. Paths added afterwards take the
// new output color; everything else applies on the next Update.
func (f *Frame) SetConfig(c Config) {
	f.config = c
}

// Stats returns the counters of the last Update.
func (f *Frame) Stats() Stats {
	s := f.stats
	s.PathLengths = slices.Clone(s.PathLengths)
	return s
}

// Len returns the number of paths.
func (f *Frame) Len() int {
	return len(f.original)
}

// AddPath appends a new open path with the given vertices and returns it.
// The returned polyline may be modified until the next Update.
func (f *Frame) AddPath(pts ...Point) *Polyline {
	return f.add(NewPolyline(pts...))
}

// AddPolyline appends a copy of p and returns the stored copy.
func (f *Frame) AddPolyline(p *Polyline) *Polyline {
	return f.add(p.Clone())
}

// AddShape flattens every subpath of s with the given tolerance and
// appends the resulting polylines, returning them in subpath order.
func (f *Frame) AddShape(s *Shape, tolerance float64) []*Polyline {
	polys := s.Polylines(tolerance)
	added := make([]*Polyline, len(polys))
	for i, p := range polys {
		added[i] = f.add(p)
	}
	return added
}

func (f *Frame) add(p *Polyline) *Polyline {
	f.original = append(f.original, p)
	f.colors = append(f.colors, f.config.Output.Color)
	return p
}

// Path returns the original path at index i.
// It panics if i is out of range.
func (f *Frame) Path(i int) *Polyline {
	return f.original[i]
}

// ProcessedPath returns the processed path at index i as produced by the
// last Update. It panics if i is out of range or Update has not run since
// the path was added.
func (f *Frame) ProcessedPath(i int) *Polyline {
	return f.processed[i]
}

// PathColor returns the color assigned to path i.
func (f *Frame) PathColor(i int) RGBA {
	return f.colors[i]
}

// LastPath returns the most recently added path, adding an empty one if
// the frame has no paths.
func (f *Frame) LastPath() *Polyline {
	if len(f.original) == 0 {
		f.AddPath()
	}
	return f.original[len(f.original)-1]
}

// Clear removes all paths and derived data.
func (f *Frame) Clear() {
	f.original = nil
	f.processed = nil
	f.colors = nil
	f.points = nil
	f.stats = Stats{}
}

// Points returns the output stream built by the last Update.
// The returned slice must not be modified.
func (f *Frame) Points() []OutputPoint {
	return f.points
}

// PointCount returns the number of points in the output stream.
func (f *Frame) PointCount() int {
	return len(f.points)
}

// Update runs a full processing pass: the paths are processed, the stats
// recomputed and the output stream rebuilt from scratch. Calling Update
// twice without changes produces identical results.
func (f *Frame) Update() {
	f.processed, f.stats = processPaths(f.original, f.config.Path)
	f.points = assemblePoints(f.processed, f.colors, f.config.Output)

	Logger().Debug("ilda: frame updated",
		"paths", len(f.original),
		"points_original", f.stats.PointCountOriginal,
		"points_processed", f.stats.PointCountProcessed,
		"spacing", f.stats.Spacing,
		"output_points", len(f.points))
}
