// Package ilda prepares vector paths for output to a galvo-based laser
// projector.
//
// # Overview
//
// A [Frame] holds a set of 2D paths (polylines) in normalized
// (0..1, 0..1) coordinates. [Frame.Update] turns them into a flat,
// time-ordered sequence of colored points suitable for streaming to laser
// scanning hardware, inserting the blanking and dwell repetitions the
// mirrors need to settle between paths.
//
// # Quick Start
//
//	import "github.com/gogpu/ilda"
//
//	f := ilda.NewFrame()
//	f.AddPath(ilda.Pt(0.1, 0.1), ilda.Pt(0.9, 0.1), ilda.Pt(0.5, 0.9))
//
//	s := ilda.NewShape()
//	s.Circle(0.5, 0.5, 0.3)
//	f.AddShape(s, 0.001)
//
//	f.Update()
//	for _, p := range f.Points() {
//	    send(p.Pos, p.Color)
//	}
//
// # Processing Pass
//
// Update processes each path in a fixed order:
//   - smoothing (Config.Path.SmoothAmount)
//   - simplification (Config.Path.OptimizeTolerance)
//   - resampling to a uniform arc-length spacing, either set directly
//     (Config.Path.Spacing) or derived from the total length of the frame
//     and Config.Path.TargetPointCount
//
// Each output point is then flipped, scaled about the frame centre, offset
// and finally capped or wrapped into the unit square.
//
// # Output Stream
//
// For every non-empty path the stream holds BlankCount transparent copies
// of the start point, EndCount colored copies of it, the path vertices,
// EndCount colored copies of the end point and BlankCount transparent
// copies of it. Paths are never reordered.
//
// # Concurrency
//
// A Frame is not safe for concurrent use. Guard the whole Update together
// with any mutation if frames are shared between goroutines.
package ilda
