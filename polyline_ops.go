package ilda

import (
	"math"
	"sort"
)

// Polyline operations used by the processing pass: smoothing,
// simplification, perimeter measurement and arc-length resampling.
// All operations return a new polyline and leave the receiver untouched.

// Smoothed returns a copy of the polyline where every vertex is replaced
// by a weighted average of its neighbours within window vertices on each
// side. Weights fall off linearly from 1 at the vertex itself. Closed
// polylines wrap around; open polylines only use the neighbours that exist.
// The vertex count is preserved.
func (p *Polyline) Smoothed(window int) *Polyline {
	out := p.Clone()
	n := len(p.Points)
	if window <= 1 || n == 0 {
		return out
	}

	weights := make([]float64, window)
	for j := range weights {
		weights[j] = 1 - float64(j)/float64(window)
	}

	for i := 0; i < n; i++ {
		sum := 1.0
		acc := p.Points[i]
		for j := 1; j < window; j++ {
			var cur Point
			left, right := i-j, i+j
			if left < 0 && p.Closed {
				left += n
			}
			if left >= 0 {
				cur = cur.Add(p.Points[left])
				sum += weights[j]
			}
			if right >= n && p.Closed {
				right -= n
			}
			if right < n {
				cur = cur.Add(p.Points[right])
				sum += weights[j]
			}
			acc = acc.Add(cur.Mul(weights[j]))
		}
		out.Points[i] = acc.Div(sum)
	}
	return out
}

// Simplified returns a copy of the polyline with vertices removed that lie
// within tolerance of the simplified curve (Ramer-Douglas-Peucker).
// The first and last vertices are always kept, so the vertex count never
// grows.
func (p *Polyline) Simplified(tolerance float64) *Polyline {
	n := len(p.Points)
	if tolerance <= 0 || n < 3 {
		return p.Clone()
	}

	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true

	type span struct{ first, last int }
	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist, index := 0.0, -1
		for i := s.first + 1; i < s.last; i++ {
			d := segmentDistance(p.Points[i], p.Points[s.first], p.Points[s.last])
			if d > maxDist {
				maxDist, index = d, i
			}
		}
		if index >= 0 && maxDist > tolerance {
			keep[index] = true
			stack = append(stack, span{s.first, index}, span{index, s.last})
		}
	}

	out := &Polyline{Closed: p.Closed, Points: make([]Point, 0, n)}
	for i, k := range keep {
		if k {
			out.Points = append(out.Points, p.Points[i])
		}
	}
	return out
}

// segmentDistance returns the distance from pt to the segment a-b.
func segmentDistance(pt, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return pt.Distance(a.Lerp(b, t))
}

// Perimeter returns the sum of the distances between consecutive vertices,
// including the closing segment of a closed polyline. Polylines with fewer
// than two vertices have zero perimeter.
func (p *Polyline) Perimeter() float64 {
	var length float64
	for i := 1; i < len(p.Points); i++ {
		length += p.Points[i-1].Distance(p.Points[i])
	}
	if p.Closed && len(p.Points) > 1 {
		length += p.Points[len(p.Points)-1].Distance(p.Points[0])
	}
	return length
}

// PointAtLength returns the point at arc length l along the polyline.
// l is clamped to [0, Perimeter()]. It panics on an empty polyline.
func (p *Polyline) PointAtLength(l float64) Point {
	verts := p.vertices()
	return pointAtLength(verts, cumulativeLengths(verts), l)
}

// ResampledBySpacing returns a polyline whose vertices are spaced spacing
// apart along the arc length of p, starting at the first vertex. An open
// polyline always ends exactly on its last vertex; a closed one stops
// short of returning to its start. A spacing <= 0 or an empty polyline
// yields an unchanged copy.
func (p *Polyline) ResampledBySpacing(spacing float64) *Polyline {
	if spacing <= 0 || len(p.Points) == 0 {
		return p.Clone()
	}

	verts := p.vertices()
	cum := cumulativeLengths(verts)
	total := cum[len(cum)-1]

	out := &Polyline{Closed: p.Closed}
	for i := 0; ; i++ {
		l := float64(i) * spacing
		if l > total || (p.Closed && i > 0 && l >= total) {
			break
		}
		out.Points = append(out.Points, pointAtLength(verts, cum, l))
	}
	if !p.Closed {
		out.Points[len(out.Points)-1] = p.Points[len(p.Points)-1]
	}
	return out
}

// vertices returns the vertex list walked by arc-length operations,
// repeating the first vertex at the end of a closed polyline.
func (p *Polyline) vertices() []Point {
	if !p.Closed || len(p.Points) < 2 {
		return p.Points
	}
	verts := make([]Point, len(p.Points)+1)
	copy(verts, p.Points)
	verts[len(p.Points)] = p.Points[0]
	return verts
}

// cumulativeLengths returns the arc length at every vertex.
func cumulativeLengths(verts []Point) []float64 {
	cum := make([]float64, len(verts))
	for i := 1; i < len(verts); i++ {
		cum[i] = cum[i-1] + verts[i-1].Distance(verts[i])
	}
	return cum
}

func pointAtLength(verts []Point, cum []float64, l float64) Point {
	last := len(verts) - 1
	if l <= 0 || last == 0 {
		return verts[0]
	}
	if l >= cum[last] {
		return verts[last]
	}
	// First vertex at or beyond l; always >= 1 here.
	k := sort.Search(len(cum), func(i int) bool { return cum[i] >= l })
	seg := cum[k] - cum[k-1]
	if seg == 0 {
		return verts[k]
	}
	return verts[k-1].Lerp(verts[k], (l-cum[k-1])/seg)
}
