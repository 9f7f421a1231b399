package splinker

import "iter"

// Rect is an axis-aligned rectangle. Its edges belong to it.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns a rectangle of the given width and height centered on
// center.
func NewRectFromCenter(center Point, width, height float64) Rect {
	return Rect{
		X0: center.X - 0.5*width,
		Y0: center.Y - 0.5*height,
		X1: center.X + 0.5*width,
		Y1: center.Y + 0.5*height,
	}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside or on the edges of r.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// BoundingBox returns the smallest rectangle enclosing pts, or false if pts is empty.
func BoundingBox(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r, true
}

// PathElements returns the outline of the rectangle, starting at (X0, Y0).
func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}
