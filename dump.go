package ilda

import (
	"fmt"
	"strings"
)

// Dump returns a human-readable listing of the configuration and the
// stats of the last Update. The format is for diagnostics only.
func (f *Frame) Dump() string {
	var b strings.Builder
	c := f.config

	b.WriteString("params:\n")
	field(&b, "path.smoothAmount", c.Path.SmoothAmount)
	field(&b, "path.optimizeTolerance", c.Path.OptimizeTolerance)
	field(&b, "path.targetPointCount", c.Path.TargetPointCount)
	field(&b, "path.spacing", c.Path.Spacing)

	field(&b, "draw.lines", c.Draw.Lines)
	field(&b, "draw.points", c.Draw.Points)
	field(&b, "draw.pointNumbers", c.Draw.PointNumbers)

	field(&b, "output.color", c.Output.Color)
	field(&b, "output.blankCount", c.Output.BlankCount)
	field(&b, "output.endCount", c.Output.EndCount)
	field(&b, "output.doCapX", c.Output.DoCapX)
	field(&b, "output.doCapY", c.Output.DoCapY)
	field(&b, "output.transform.doFlipX", c.Output.Transform.FlipX)
	field(&b, "output.transform.doFlipY", c.Output.Transform.FlipY)
	field(&b, "output.transform.offset", c.Output.Transform.Offset)
	field(&b, "output.transform.scale", c.Output.Transform.Scale)

	b.WriteString("\nstats:\n")
	field(&b, "stats.paths", f.Len())
	field(&b, "stats.pointCountOrig", f.stats.PointCountOriginal)
	field(&b, "stats.pointCountProcessed", f.stats.PointCountProcessed)
	field(&b, "stats.totalLength", f.stats.TotalLength)
	field(&b, "stats.spacing", f.stats.Spacing)
	field(&b, "stats.outputPoints", len(f.points))
	return b.String()
}

func field(b *strings.Builder, name string, v any) {
	fmt.Fprintf(b, "%s : %v\n", name, v)
}
