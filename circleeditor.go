package splinker

import (
	"iter"
	"slices"
)

// DefaultCircleRadius is the radius of circles fitted from samples too small to
// measure one.
const DefaultCircleRadius = 100.0

// CircleEditor edits a circle described by exactly two control points: the center and
// a point on the circumference.
type CircleEditor struct{}

var _ PointEditor = CircleEditor{}

func (CircleEditor) pointEditor() {}

func (CircleEditor) Name() string { return CircleEditorName }

func (CircleEditor) MaxPoints() int { return 2 }

func (CircleEditor) DefaultClosed() bool { return true }

// circle returns the circle described by pts, or false if pts doesn't describe one.
func (CircleEditor) circle(pts []Point) (Circle, bool) {
	if len(pts) < 2 {
		return Circle{}, false
	}
	r := pts[1].Distance(pts[0])
	if r == 0 {
		return Circle{}, false
	}
	return Circle{Center: pts[0], Radius: r}, true
}

// AddPoint sets the center first, then the radius point. Once both exist, further
// points are ignored.
func (CircleEditor) AddPoint(pts []Point, p Point, closed bool) []Point {
	if len(pts) >= 2 {
		return slices.Clone(pts[:2])
	}
	return append(slices.Clone(pts), p)
}

// RemovePoint discards the whole circle: neither point means anything without the
// other.
func (CircleEditor) RemovePoint(pts []Point, idx int) []Point {
	return nil
}

// EditPoint moves one of the points. Moving the center translates the radius point
// along with it, preserving radius and angle.
func (CircleEditor) EditPoint(pts []Point, idx int, p Point) []Point {
	switch {
	case len(pts) == 0:
		return nil
	case len(pts) == 1:
		if idx == 0 {
			return []Point{p}
		}
		return slices.Clone(pts)
	}
	center, rim := pts[0], pts[1]
	switch idx {
	case 0:
		return []Point{p, rim.Translate(p.Sub(center))}
	case 1:
		return []Point{center, p}
	default:
		return slices.Clone(pts)
	}
}

// Segments returns four quarter arcs approximating the circle, starting on the
// rightmost point of the circle. It yields nothing for fewer than two points or a zero
// radius.
func (e CircleEditor) Segments(pts []Point, closed bool) iter.Seq[CubicSegment] {
	c, ok := e.circle(pts)
	if !ok {
		return func(func(CubicSegment) bool) {}
	}
	return c.Segments()
}

// PathElements returns the drawing commands of the circle. The circle is always
// closed, whatever closed says.
func (e CircleEditor) PathElements(pts []Point, closed bool) iter.Seq[PathElement] {
	c, ok := e.circle(pts)
	if !ok {
		return func(func(PathElement) bool) {}
	}
	return c.PathElements()
}

// FitFromSample fits a circle centered on the mean of sample, with the mean distance
// to that center as its radius. Samples with fewer than two points get
// [DefaultCircleRadius].
func (CircleEditor) FitFromSample(sample []Point, closed bool) []Point {
	n := len(sample)
	if n == 0 {
		return []Point{{}, Pt(DefaultCircleRadius, 0)}
	}
	var sum Vec2
	for _, p := range sample {
		sum = sum.Add(Vec2(p))
	}
	center := Point(sum.Div(float64(n)))
	if n == 1 {
		return []Point{center, Pt(center.X+DefaultCircleRadius, center.Y)}
	}
	var r float64
	for _, p := range sample {
		r += p.Distance(center)
	}
	r /= float64(n)
	return []Point{center, Pt(center.X+r, center.Y)}
}

// Interpolate returns n points around the circle. Without a circle to walk, the center
// alone is returned.
func (e CircleEditor) Interpolate(pts []Point, closed bool, n int) []Point {
	if _, ok := e.circle(pts); !ok {
		if len(pts) == 0 {
			return nil
		}
		return []Point{pts[0]}
	}
	return sampleElements(e.PathElements(pts, closed), n)
}
