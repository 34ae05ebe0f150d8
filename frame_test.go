package ilda

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rawConfig disables every processing stage so paths pass through as-is.
func rawConfig(blank, end int) Config {
	c := DefaultConfig()
	c.Path.SmoothAmount = 0
	c.Path.OptimizeTolerance = 0
	c.Path.TargetPointCount = 0
	c.Path.Spacing = 0
	c.Output.BlankCount = blank
	c.Output.EndCount = end
	return c
}

func TestFrame_UnitSquare(t *testing.T) {
	f := NewFrame(WithConfig(rawConfig(2, 1)))
	f.AddPath(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1))
	f.Update()

	if diff := cmp.Diff(f.Path(0).Points, f.ProcessedPath(0).Points); diff != "" {
		t.Errorf("processed path changed (-orig +processed):\n%s", diff)
	}

	on := func(x, y float64) OutputPoint { return OutputPoint{Pos: Pt(x, y), Color: White} }
	off := func(x, y float64) OutputPoint { return OutputPoint{Pos: Pt(x, y), Color: Transparent} }
	want := []OutputPoint{
		off(0, 0), off(0, 0),
		on(0, 0),
		on(0, 0), on(1, 0), on(1, 1), on(0, 1),
		on(0, 1),
		off(0, 1), off(0, 1),
	}
	if diff := cmp.Diff(want, f.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}

	s := f.Stats()
	if s.PointCountOriginal != 4 || s.PointCountProcessed != 4 {
		t.Errorf("Stats() = %+v, want 4 original and 4 processed points", s)
	}
}

func TestFrame_UpdateIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path.SmoothAmount = 3
	cfg.Path.OptimizeTolerance = 0.001
	cfg.Path.TargetPointCount = 200
	cfg.Output.Transform.Scale = Pt(0.8, 1.2)
	cfg.Output.Transform.Offset = Pt(0.3, -0.4)

	f := NewFrame(WithConfig(cfg))
	s := NewShape()
	s.Circle(0.5, 0.5, 0.4)
	f.AddShape(s, 0.001)
	f.AddPath(Pt(0.1, 0.1), Pt(0.9, 0.2), Pt(0.4, 0.8))

	f.Update()
	firstPoints := append([]OutputPoint(nil), f.Points()...)
	firstStats := f.Stats()
	firstProcessed := f.ProcessedPath(0).Clone()

	f.Update()
	if diff := cmp.Diff(firstPoints, f.Points()); diff != "" {
		t.Errorf("second Update changed points (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(firstStats, f.Stats()); diff != "" {
		t.Errorf("second Update changed stats (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(firstProcessed, f.ProcessedPath(0)); diff != "" {
		t.Errorf("second Update changed processed path (-first +second):\n%s", diff)
	}
}

func TestFrame_IndexAlignment(t *testing.T) {
	configs := map[string]Config{
		"raw":     rawConfig(3, 2),
		"default": DefaultConfig(),
		"smooth": func() Config {
			c := DefaultConfig()
			c.Path.SmoothAmount = 4
			c.Path.OptimizeTolerance = 0.01
			return c
		}(),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			f := NewFrame(WithConfig(cfg))
			f.AddPath()
			f.AddPath(Pt(0.1, 0.1), Pt(0.5, 0.5))
			f.AddPath(Pt(0.3, 0.3))
			f.AddPath()
			f.AddPath(Pt(0.9, 0.9), Pt(0.1, 0.9), Pt(0.5, 0.1))
			f.Update()

			if f.Len() != 5 {
				t.Fatalf("Len() = %d, want 5", f.Len())
			}
			for i := 0; i < f.Len(); i++ {
				orig, proc := f.Path(i), f.ProcessedPath(i)
				if orig.Len() == 0 && proc.Len() != 0 {
					t.Errorf("path %d: empty original has %d processed points", i, proc.Len())
				}
				if orig.Len() > 0 && proc.Len() == 0 {
					t.Errorf("path %d: non-empty original processed to nothing", i)
				}
				_ = f.PathColor(i)
			}
			if l := f.Stats().PathLengths; l != nil && len(l) != f.Len() {
				t.Errorf("len(PathLengths) = %d, want %d", len(l), f.Len())
			}
		})
	}
}

func TestFrame_PointCountLaw(t *testing.T) {
	tests := []struct {
		name       string
		blank, end int
		paths      [][]Point
	}{
		{"no dwell", 0, 0, [][]Point{{Pt(0.1, 0.1), Pt(0.2, 0.2)}}},
		{"blank only", 5, 0, [][]Point{{Pt(0.1, 0.1), Pt(0.2, 0.2), Pt(0.3, 0.1)}}},
		{"end only", 0, 4, [][]Point{{Pt(0.5, 0.5)}}},
		{"both", 3, 2, [][]Point{{Pt(0.1, 0.1)}, {}, {Pt(0.2, 0.2), Pt(0.4, 0.4), Pt(0.6, 0.2), Pt(0.8, 0.4)}}},
		{"negative counts", -2, -1, [][]Point{{Pt(0.1, 0.1), Pt(0.2, 0.2)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(WithConfig(rawConfig(tt.blank, tt.end)))
			want := 0
			for _, pts := range tt.paths {
				f.AddPath(pts...)
				if len(pts) > 0 {
					want += 2*max(tt.blank, 0) + 2*max(tt.end, 0) + len(pts)
				}
			}
			f.Update()
			if got := f.PointCount(); got != want {
				t.Errorf("PointCount() = %d, want %d", got, want)
			}
		})
	}
}

func TestFrame_BlankAlpha(t *testing.T) {
	cfg := rawConfig(4, 3)
	cfg.Output.Color = RGBA2(0.2, 0.4, 0.6, 0.8)
	f := NewFrame(WithConfig(cfg))
	f.AddPath(Pt(0.1, 0.2), Pt(0.3, 0.4), Pt(0.5, 0.6))
	f.Update()

	pts := f.Points()
	n := 3
	for i, p := range pts {
		isBlank := i < 4 || i >= len(pts)-4
		switch {
		case isBlank && p.Color != Transparent:
			t.Errorf("point %d: color = %v, want transparent", i, p.Color)
		case !isBlank && p.Color != cfg.Output.Color:
			t.Errorf("point %d: color = %v, want %v", i, p.Color, cfg.Output.Color)
		}
	}
	if len(pts) != 2*4+2*3+n {
		t.Errorf("len(Points()) = %d", len(pts))
	}
}

func TestFrame_OrderPreserved(t *testing.T) {
	f := NewFrame(WithConfig(rawConfig(1, 0)))
	colors := []RGBA{Red, Green, Blue}
	for i, c := range colors {
		cfg := f.Config()
		cfg.Output.Color = c
		f.SetConfig(cfg)
		x := 0.9 - 0.3*float64(i)
		f.AddPath(Pt(x, 0.5), Pt(x, 0.6))
	}
	f.Update()

	// Each path emits blank, 2 vertices, blank.
	pts := f.Points()
	for i, c := range colors {
		seg := pts[i*4 : i*4+4]
		if seg[1].Color != c || seg[2].Color != c {
			t.Errorf("segment %d colors = %v, %v, want %v", i, seg[1].Color, seg[2].Color, c)
		}
		if want := f.TransformPoint(f.Path(i).First()); seg[1].Pos != want {
			t.Errorf("segment %d starts at %v, want %v", i, seg[1].Pos, want)
		}
	}
}

func TestFrame_ColorCapturedAtAdd(t *testing.T) {
	f := NewFrame(WithColor(Red))
	f.AddPath(Pt(0.1, 0.1))

	cfg := f.Config()
	cfg.Output.Color = Blue
	f.SetConfig(cfg)
	f.AddPath(Pt(0.2, 0.2))

	if got := f.PathColor(0); got != Red {
		t.Errorf("PathColor(0) = %v, want red", got)
	}
	if got := f.PathColor(1); got != Blue {
		t.Errorf("PathColor(1) = %v, want blue", got)
	}
}

func TestFrame_OriginalsUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path.SmoothAmount = 5
	cfg.Path.OptimizeTolerance = 0.05
	cfg.Path.TargetPointCount = 50
	f := NewFrame(WithConfig(cfg))

	orig := []Point{Pt(0.1, 0.1), Pt(0.2, 0.4), Pt(0.3, 0.1), Pt(0.4, 0.4), Pt(0.5, 0.1)}
	f.AddPath(orig...)
	f.Update()

	if diff := cmp.Diff(orig, f.Path(0).Points); diff != "" {
		t.Errorf("original path mutated (-want +got):\n%s", diff)
	}
}

func TestFrame_MutableHandle(t *testing.T) {
	f := NewFrame(WithConfig(rawConfig(0, 0)))
	p := f.AddPath()
	p.LineTo(0.25, 0.25)
	p.Add(Pt(0.75, 0.75))
	f.Update()

	if got := f.PointCount(); got != 2 {
		t.Errorf("PointCount() = %d, want 2", got)
	}
}

func TestFrame_LastPath(t *testing.T) {
	f := NewFrame()
	p := f.LastPath()
	if f.Len() != 1 || p.Len() != 0 {
		t.Fatalf("LastPath on empty frame: Len() = %d, path len %d", f.Len(), p.Len())
	}
	q := f.AddPath(Pt(0.5, 0.5))
	if f.LastPath() != q {
		t.Error("LastPath() did not return the newest path")
	}
}

func TestFrame_Clear(t *testing.T) {
	f := NewFrame()
	f.AddPath(Pt(0.1, 0.1), Pt(0.9, 0.9))
	f.Update()
	f.Clear()

	if f.Len() != 0 || f.PointCount() != 0 {
		t.Errorf("after Clear: Len() = %d, PointCount() = %d", f.Len(), f.PointCount())
	}
	if diff := cmp.Diff(Stats{}, f.Stats()); diff != "" {
		t.Errorf("Stats() after Clear mismatch (-want +got):\n%s", diff)
	}
	f.Update()
	if f.PointCount() != 0 {
		t.Errorf("Update after Clear produced %d points", f.PointCount())
	}
}

func TestFrame_StatsCopy(t *testing.T) {
	f := NewFrame()
	f.AddPath(Pt(0, 0), Pt(1, 0))
	f.Update()

	s := f.Stats()
	s.PathLengths[0] = 42
	if got := f.Stats().PathLengths[0]; got != 1 {
		t.Errorf("PathLengths[0] = %v after caller write, want 1", got)
	}
}

func TestFrame_ConfigAppliesOnUpdate(t *testing.T) {
	f := NewFrame(WithConfig(rawConfig(0, 0)))
	f.AddPath(Pt(0.5, 0.5))
	f.Update()

	cfg := f.Config()
	cfg.Output.BlankCount = 10
	f.SetConfig(cfg)
	if got := f.PointCount(); got != 1 {
		t.Errorf("PointCount() before Update = %d, want 1", got)
	}
	f.Update()
	if got := f.PointCount(); got != 21 {
		t.Errorf("PointCount() after Update = %d, want 21", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Path.TargetPointCount != 500 {
		t.Errorf("TargetPointCount = %d, want 500", c.Path.TargetPointCount)
	}
	if c.Output.BlankCount != 30 || c.Output.EndCount != 30 {
		t.Errorf("BlankCount, EndCount = %d, %d, want 30, 30", c.Output.BlankCount, c.Output.EndCount)
	}
	if c.Output.Color != White {
		t.Errorf("Color = %v, want white", c.Output.Color)
	}
	if c.Output.Transform.Scale != Pt(1, 1) {
		t.Errorf("Scale = %v, want 1, 1", c.Output.Transform.Scale)
	}
	if !c.Draw.Lines || !c.Draw.Points || c.Draw.PointNumbers {
		t.Errorf("Draw = %+v", c.Draw)
	}
}
