package ilda

// Polyline is an ordered sequence of vertices in normalized frame space.
// A Polyline may be empty. Closed polylines have an implicit segment from
// the last vertex back to the first.
type Polyline struct {
	Points []Point
	Closed bool
}

// NewPolyline creates an open polyline from the given vertices.
func NewPolyline(pts ...Point) *Polyline {
	p := &Polyline{Points: make([]Point, 0, len(pts))}
	p.Points = append(p.Points, pts...)
	return p
}

// Add appends vertices to the polyline.
func (p *Polyline) Add(pts ...Point) {
	p.Points = append(p.Points, pts...)
}

// LineTo appends a single vertex.
func (p *Polyline) LineTo(x, y float64) {
	p.Points = append(p.Points, Pt(x, y))
}

// Close marks the polyline as closed.
func (p *Polyline) Close() {
	p.Closed = true
}

// Len returns the number of vertices.
func (p *Polyline) Len() int {
	return len(p.Points)
}

// First returns the first vertex. It panics on an empty polyline.
func (p *Polyline) First() Point {
	return p.Points[0]
}

// Last returns the last vertex. It panics on an empty polyline.
func (p *Polyline) Last() Point {
	return p.Points[len(p.Points)-1]
}

// Clone creates a deep copy of the polyline.
func (p *Polyline) Clone() *Polyline {
	result := &Polyline{Closed: p.Closed}
	if p.Points != nil {
		result.Points = make([]Point, len(p.Points))
		copy(result.Points, p.Points)
	}
	return result
}
