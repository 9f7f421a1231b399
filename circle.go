package splinker

import "iter"

// Kappa is the distance of the control points of a quarter-circle cubic Bézier from
// its end points, relative to the radius.
const Kappa = 0.5522847498307936

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies inside or on the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() <= c.Radius*c.Radius
}

// Start returns the point where [Circle.Segments] begins: the rightmost point of the
// circle.
func (c Circle) Start() Point {
	return Pt(c.Center.X+c.Radius, c.Center.Y)
}

// Segments approximates the circle with four cubic quarter arcs, starting and ending at
// [Circle.Start] and sweeping towards positive y first.
func (c Circle) Segments() iter.Seq[CubicSegment] {
	return func(yield func(CubicSegment) bool) {
		x, y := c.Center.X, c.Center.Y
		r := c.Radius
		k := Kappa * r
		a0 := Pt(x+r, y)
		a1 := Pt(x, y+r)
		a2 := Pt(x-r, y)
		a3 := Pt(x, y-r)
		_ = yield(CubicSegment{Pt(a0.X, a0.Y+k), Pt(a1.X+k, a1.Y), a1}) &&
			yield(CubicSegment{Pt(a1.X-k, a1.Y), Pt(a2.X, a2.Y+k), a2}) &&
			yield(CubicSegment{Pt(a2.X, a2.Y-k), Pt(a3.X-k, a3.Y), a3}) &&
			yield(CubicSegment{Pt(a3.X+k, a3.Y), Pt(a0.X, a0.Y-k), a0})
	}
}

// PathElements returns the drawing commands for the circle: a move to
// [Circle.Start], four cubic arcs and a close.
func (c Circle) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(c.Start())) {
			return
		}
		for seg := range c.Segments() {
			if !yield(seg.PathElement()) {
				return
			}
		}
		yield(ClosePath())
	}
}
