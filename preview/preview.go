// Package preview renders ilda frames to images for on-screen checks.
//
// It only reads the public accessors of a Frame: processed paths and
// their colors for RenderPaths, the output stream for RenderStream.
package preview

import (
	"image/color"
	"strconv"

	"github.com/gogpu/ilda"
)

// Options controls the rendered image.
type Options struct {
	Width, Height int
	Background    color.Color
	LineWidth     float64 // in pixels
	PointSize     float64 // in pixels
}

// DefaultOptions returns 512x512 on black, 2px lines and 5px points.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Background: color.Black,
		LineWidth:  2,
		PointSize:  5,
	}
}

// RenderPaths draws the processed paths of f as selected by its
// Config.Draw flags. Update must have been called.
func RenderPaths(f *ilda.Frame, opts Options) *Canvas {
	c := NewCanvas(opts.Width, opts.Height, opts.Background)
	m := ilda.Scale(float64(opts.Width), float64(opts.Height))
	draw := f.Config().Draw

	for i := 0; i < f.Len(); i++ {
		p := f.ProcessedPath(i)
		col := f.PathColor(i)
		pts := make([]ilda.Point, p.Len())
		for j, v := range p.Points {
			pts[j] = m.TransformPoint(v)
		}

		if draw.Lines {
			for j := 1; j < len(pts); j++ {
				c.Line(pts[j-1], pts[j], opts.LineWidth, col)
			}
			if p.Closed && len(pts) > 1 {
				c.Line(pts[len(pts)-1], pts[0], opts.LineWidth, col)
			}
		}
		if draw.Points {
			for _, v := range pts {
				c.Dot(v, opts.PointSize, col)
			}
		}
		if draw.PointNumbers {
			for j, v := range pts {
				c.Label(v.Add(ilda.Pt(opts.PointSize, -opts.PointSize)), strconv.Itoa(j), col)
			}
		}
	}

	ilda.Logger().Debug("preview: rendered paths", "paths", f.Len(), "width", opts.Width, "height", opts.Height)
	return c
}

// RenderStream draws the output stream of f as the laser would trace it:
// a segment is drawn towards every visible point in that point's color,
// blanked moves are left out. Update must have been called.
func RenderStream(f *ilda.Frame, opts Options) *Canvas {
	c := NewCanvas(opts.Width, opts.Height, opts.Background)
	m := ilda.Scale(float64(opts.Width), float64(opts.Height))

	points := f.Points()
	for i := 1; i < len(points); i++ {
		to := points[i]
		if to.Color.A == 0 {
			continue
		}
		c.Line(m.TransformPoint(points[i-1].Pos), m.TransformPoint(to.Pos), opts.LineWidth, to.Color)
	}

	ilda.Logger().Debug("preview: rendered stream", "points", len(points))
	return c
}
