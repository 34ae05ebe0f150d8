package ilda

import "math"

var frameCenter = Pt(0.5, 0.5)

// TransformPoint maps a normalized point to its output position.
// The steps run in a fixed order: flip, scale about the frame centre,
// offset, then cap or wrap each axis into [0, 1].
func TransformPoint(p Point, cfg OutputConfig) Point {
	t := cfg.Transform

	if t.FlipX {
		p.X = 1 - p.X
	}
	if t.FlipY {
		p.Y = 1 - p.Y
	}

	if !t.Scale.IsZero() {
		p = p.Sub(frameCenter).MulPoint(t.Scale).Add(frameCenter)
	}

	p = p.Add(t.Offset)

	p.X = capOrWrap(p.X, cfg.DoCapX)
	p.Y = capOrWrap(p.Y, cfg.DoCapY)
	return p
}

// capOrWrap brings v into [0, 1], either by clamping or by wrapping it
// periodically. Values already in range are returned unchanged.
func capOrWrap(v float64, doCap bool) float64 {
	switch {
	case v < 0:
		if doCap {
			return 0
		}
		return 1 + v - math.Ceil(v)
	case v > 1:
		if doCap {
			return 1
		}
		return v - math.Floor(v)
	}
	return v
}

// TransformPoint maps p with the frame's current output configuration.
func (f *Frame) TransformPoint(p Point) Point {
	return TransformPoint(p, f.config.Output)
}
