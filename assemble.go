package ilda

// blank is the color of laser-off points.
var blank = RGBA{R: 0, G: 0, B: 0, A: 0}

// assemblePoints builds the output stream for the processed paths.
// Every non-empty path of n vertices contributes 2*BlankCount +
// 2*EndCount + n points: blanked and visible dwell at its start, the
// transformed vertices, then visible and blanked dwell at its end.
// Paths are emitted in order and empty paths are skipped.
func assemblePoints(paths []*Polyline, colors []RGBA, cfg OutputConfig) []OutputPoint {
	size := 0
	for _, p := range paths {
		if n := p.Len(); n > 0 {
			size += n + 2*max(cfg.BlankCount, 0) + 2*max(cfg.EndCount, 0)
		}
	}

	points := make([]OutputPoint, 0, size)
	for i, p := range paths {
		if p.Len() == 0 {
			continue
		}
		color := colors[i]
		start := TransformPoint(p.First(), cfg)
		end := TransformPoint(p.Last(), cfg)

		points = repeat(points, start, blank, cfg.BlankCount)
		points = repeat(points, start, color, cfg.EndCount)
		for _, v := range p.Points {
			points = append(points, OutputPoint{Pos: TransformPoint(v, cfg), Color: color})
		}
		points = repeat(points, end, color, cfg.EndCount)
		points = repeat(points, end, blank, cfg.BlankCount)
	}
	return points
}

// repeat appends n copies of the point. n <= 0 appends nothing.
func repeat(points []OutputPoint, pos Point, color RGBA, n int) []OutputPoint {
	for range n {
		points = append(points, OutputPoint{Pos: pos, Color: color})
	}
	return points
}
