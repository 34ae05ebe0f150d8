package ilda

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShape_RectanglePolyline(t *testing.T) {
	s := NewShape()
	s.Rectangle(0.125, 0.25, 0.5, 0.25)

	polys := s.Polylines(0.001)
	if len(polys) != 1 {
		t.Fatalf("len(Polylines()) = %d, want 1", len(polys))
	}
	want := &Polyline{
		Points: []Point{Pt(0.125, 0.25), Pt(0.625, 0.25), Pt(0.625, 0.5), Pt(0.125, 0.5)},
		Closed: true,
	}
	if diff := cmp.Diff(want, polys[0]); diff != "" {
		t.Errorf("rectangle mismatch (-want +got):\n%s", diff)
	}
}

func TestShape_CircleFlattening(t *testing.T) {
	const r = 0.4
	s := NewShape()
	s.Circle(0.5, 0.5, r)

	for _, tol := range []float64{0.01, 0.001} {
		polys := s.Polylines(tol)
		if len(polys) != 1 || !polys[0].Closed {
			t.Fatalf("tol %v: want one closed polyline, got %d", tol, len(polys))
		}
		p := polys[0]
		if p.Len() < 8 {
			t.Errorf("tol %v: only %d vertices", tol, p.Len())
		}
		for _, v := range p.Points {
			if d := math.Abs(v.Distance(Pt(0.5, 0.5)) - r); d > 0.001 {
				t.Errorf("tol %v: vertex %v is %v off the circle", tol, v, d)
				break
			}
		}
	}

	coarse := s.Polylines(0.01)[0].Len()
	fine := s.Polylines(0.0001)[0].Len()
	if fine <= coarse {
		t.Errorf("finer tolerance gave %d vertices, coarse %d", fine, coarse)
	}
}

func TestShape_Subpaths(t *testing.T) {
	s := NewShape()
	s.MoveTo(0, 0)
	s.LineTo(1, 0)
	s.MoveTo(0, 1)
	s.QuadraticTo(0.5, 0.5, 1, 1)
	s.Close()
	s.LineTo(0.5, 0.5)

	polys := s.Polylines(0.01)
	if len(polys) != 3 {
		t.Fatalf("len(Polylines()) = %d, want 3", len(polys))
	}
	if polys[0].Closed || polys[0].Len() != 2 {
		t.Errorf("first subpath = %+v", polys[0])
	}
	if !polys[1].Closed || polys[1].Last() != Pt(1, 1) {
		t.Errorf("second subpath = %+v", polys[1])
	}
	// Drawing after Close starts from the subpath start.
	if diff := cmp.Diff([]Point{Pt(0, 1), Pt(0.5, 0.5)}, polys[2].Points); diff != "" {
		t.Errorf("third subpath mismatch (-want +got):\n%s", diff)
	}
}

func TestShape_FitUnit(t *testing.T) {
	s := NewShape()
	s.Rectangle(100, 50, 200, 100)

	fit := s.FitUnit(0.1)
	b := fit.Bounds()
	if !approxPoint(b.Min, Pt(0.1, 0.3)) || !approxPoint(b.Max, Pt(0.9, 0.7)) {
		t.Errorf("FitUnit bounds = %+v, want (0.1, 0.3)-(0.9, 0.7)", b)
	}

	empty := NewShape().FitUnit(0.1)
	if len(empty.Elements()) != 0 {
		t.Errorf("empty FitUnit has %d elements", len(empty.Elements()))
	}
}

func TestFrame_AddShape(t *testing.T) {
	f := NewFrame(WithConfig(rawConfig(0, 0)))
	s := NewShape()
	s.Rectangle(0.2, 0.2, 0.6, 0.6)
	s.MoveTo(0.1, 0.9)
	s.LineTo(0.9, 0.9)

	added := f.AddShape(s, 0.001)
	if len(added) != 2 || f.Len() != 2 {
		t.Fatalf("AddShape added %d paths, frame has %d", len(added), f.Len())
	}
	if added[0] != f.Path(0) || added[1] != f.Path(1) {
		t.Error("AddShape did not return the stored paths")
	}
	f.Update()
	if got := f.PointCount(); got != 6 {
		t.Errorf("PointCount() = %d, want 6", got)
	}
}

func TestMatrix_Multiply(t *testing.T) {
	m := Translate(1, 2).Multiply(Scale(2, 3))
	if got := m.TransformPoint(Pt(1, 1)); got != Pt(3, 5) {
		t.Errorf("TransformPoint() = %v, want 3, 5", got)
	}
	if !Identity().Multiply(Identity()).IsIdentity() {
		t.Error("identity product is not identity")
	}
}

func TestShape_TransformIdentity(t *testing.T) {
	s := NewShape()
	s.MoveTo(0.1, 0.2)
	s.QuadraticTo(0.5, 0.9, 0.8, 0.2)
	s.Close()

	got := s.Transform(Identity())
	if got == s {
		t.Fatal("Transform(Identity()) returned the receiver")
	}
	if diff := cmp.Diff(s.Elements(), got.Elements()); diff != "" {
		t.Errorf("Transform(Identity()) mismatch (-want +got):\n%s", diff)
	}

	got.LineTo(0.3, 0.3)
	if len(s.Elements()) != 3 {
		t.Errorf("source shape changed: %d elements", len(s.Elements()))
	}
}
