package splinker

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Nearest returns the squared distance from pt to the closest point on the line, and
// the parameter of that point. The parameter is clamped to [0, 1]. A zero-length line
// projects everything onto P0.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Project returns the point on the line closest to pt.
func (l Line) Project(pt Point) Point {
	_, t := l.Nearest(pt)
	switch t {
	case 0:
		return l.P0
	case 1:
		return l.P1
	default:
		return l.Eval(t)
	}
}
