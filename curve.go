package ilda

import "math"

// Rect represents an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// expand grows the rectangle to include pt.
func (r Rect) expand(pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, pt.X), Y: math.Min(r.Min.Y, pt.Y)},
		Max: Point{X: math.Max(r.Max.X, pt.X), Y: math.Max(r.Max.Y, pt.Y)},
	}
}

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// flatness returns the squared flatness metric of the cubic, scaled by 16
// relative to the squared distance of the control points from the chord.
func (c CubicBez) flatness() float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y

	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// flattenQuad emits the end points of a polyline approximating q,
// excluding q.P0.
func flattenQuad(q QuadBez, toleranceSq float64, fn func(pt Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Sub(mid).LengthSquared() <= toleranceSq {
		fn(q.P2)
		return
	}
	q1, q2 := q.Subdivide()
	flattenQuad(q1, toleranceSq, fn)
	flattenQuad(q2, toleranceSq, fn)
}

// flattenCubic emits the end points of a polyline approximating c,
// excluding c.P0.
func flattenCubic(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	if c.flatness() <= toleranceSq*16 {
		fn(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubic(c1, toleranceSq, fn)
	flattenCubic(c2, toleranceSq, fn)
}
