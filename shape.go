package ilda

import (
	"math"
	"slices"
)

// ShapeElement represents a single element in a shape.
type ShapeElement interface {
	isShapeElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isShapeElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isShapeElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isShapeElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isShapeElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isShapeElement() {}

// Shape is a vector outline made of lines and Bezier curves. It is a
// convenience for building frame paths; Frame.AddShape flattens each
// subpath into one polyline.
type Shape struct {
	elements []ShapeElement
	start    Point
	current  Point
}

// NewShape creates a new empty shape.
func NewShape() *Shape {
	return &Shape{
		elements: make([]ShapeElement, 0, 16),
	}
}

// MoveTo starts a new subpath.
func (s *Shape) MoveTo(x, y float64) {
	pt := Pt(x, y)
	s.elements = append(s.elements, MoveTo{Point: pt})
	s.start = pt
	s.current = pt
}

// LineTo draws a line to a point.
func (s *Shape) LineTo(x, y float64) {
	pt := Pt(x, y)
	s.elements = append(s.elements, LineTo{Point: pt})
	s.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (s *Shape) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	s.elements = append(s.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	s.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (s *Shape) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	s.elements = append(s.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	s.current = pt
}

// Close closes the current subpath.
func (s *Shape) Close() {
	s.elements = append(s.elements, Close{})
	s.current = s.start
}

// Elements returns the shape elements.
func (s *Shape) Elements() []ShapeElement {
	return s.elements
}

// Rectangle adds a closed rectangle subpath.
func (s *Shape) Rectangle(x, y, w, h float64) {
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.Close()
}

// Circle adds a closed circle subpath using cubic Bezier curves.
func (s *Shape) Circle(cx, cy, r float64) {
	s.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed ellipse subpath.
func (s *Shape) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	s.MoveTo(cx+rx, cy)
	s.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	s.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	s.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	s.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	s.Close()
}

// Transform returns a copy of the shape with m applied to every point.
func (s *Shape) Transform(m Matrix) *Shape {
	if m.IsIdentity() {
		c := *s
		c.elements = slices.Clone(s.elements)
		return &c
	}
	result := NewShape()
	for _, elem := range s.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the bounding box of all points and control points.
// It contains the shape but is not necessarily tight around curves.
func (s *Shape) Bounds() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		r = r.expand(pt)
	}
	for _, elem := range s.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return r
}

// FitUnit returns a copy of the shape uniformly scaled and centred so its
// bounds fit the unit square, leaving margin on every side.
func (s *Shape) FitUnit(margin float64) *Shape {
	b := s.Bounds()
	size := math.Max(b.Width(), b.Height())
	if size == 0 {
		return s.Transform(Identity())
	}
	k := (1 - 2*margin) / size
	center := b.Min.Lerp(b.Max, 0.5)
	m := Translate(0.5, 0.5).Multiply(Scale(k, k)).Multiply(Translate(-center.X, -center.Y))
	return s.Transform(m)
}

// Polylines flattens the shape into one polyline per subpath. Curves are
// subdivided until they deviate less than tolerance from their chords;
// tolerance <= 0 uses 0.001. Closed subpaths produce closed polylines
// without repeating the start vertex.
func (s *Shape) Polylines(tolerance float64) []*Polyline {
	if tolerance <= 0 {
		tolerance = 0.001
	}
	tolSq := tolerance * tolerance

	var polys []*Polyline
	var cur *Polyline
	var current Point
	emit := func(pt Point) {
		cur.Points = append(cur.Points, pt)
	}
	begin := func(pt Point) {
		cur = NewPolyline(pt)
		polys = append(polys, cur)
	}

	for _, elem := range s.elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)
			current = e.Point
			continue
		case Close:
			if cur != nil {
				if n := len(cur.Points); n > 1 && cur.Points[n-1] == cur.Points[0] {
					cur.Points = cur.Points[:n-1]
				}
				cur.Closed = true
				current = cur.Points[0]
				cur = nil
			}
			continue
		}

		if cur == nil {
			begin(current)
		}
		switch e := elem.(type) {
		case LineTo:
			emit(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(QuadBez{P0: current, P1: e.Control, P2: e.Point}, tolSq, emit)
			current = e.Point
		case CubicTo:
			flattenCubic(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, tolSq, emit)
			current = e.Point
		}
	}
	return polys
}
