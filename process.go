package ilda

// processPaths runs the path stages over every original path, in order:
// smoothing, simplification, length measurement, spacing derivation and
// resampling. The originals are never modified. The returned slice is
// index-aligned with paths; empty paths stay empty.
func processPaths(paths []*Polyline, cfg PathConfig) ([]*Polyline, Stats) {
	var stats Stats
	measure := cfg.TargetPointCount > 0
	if measure {
		stats.PathLengths = make([]float64, len(paths))
	}

	processed := make([]*Polyline, len(paths))
	for i, p := range paths {
		w := p.Clone()
		if w.Len() > 0 {
			if cfg.SmoothAmount > 0 {
				w = w.Smoothed(cfg.SmoothAmount)
			}
			if cfg.OptimizeTolerance > 0 {
				w = w.Simplified(cfg.OptimizeTolerance)
			}
			if measure {
				l := w.Perimeter()
				stats.PathLengths[i] = l
				stats.TotalLength += l
			}
		}
		processed[i] = w
	}

	// A single spacing for every path: the total point count only
	// approximates TargetPointCount.
	stats.Spacing = cfg.Spacing
	if measure && stats.TotalLength > 0 {
		stats.Spacing = stats.TotalLength / float64(cfg.TargetPointCount)
	}

	if stats.Spacing > 0 {
		for i, p := range processed {
			processed[i] = p.ResampledBySpacing(stats.Spacing)
		}
	}

	for i := range paths {
		stats.PointCountOriginal += paths[i].Len()
		stats.PointCountProcessed += processed[i].Len()
	}
	return processed, stats
}
