package splinker

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (cb CubicBez) Start() Point { return cb.P0 }
func (cb CubicBez) End() Point   { return cb.P3 }

// CubicSegment is one piece of a piecewise cubic curve, expressed relative to the end
// of the previous piece: the two control points and the end point. It is the argument
// list of a CubicTo drawing command.
type CubicSegment struct {
	C1 Point
	C2 Point
	P2 Point
}

// From returns the full cubic Bézier for the segment when it starts at p0.
func (seg CubicSegment) From(p0 Point) CubicBez {
	return CubicBez{p0, seg.C1, seg.C2, seg.P2}
}

func (seg CubicSegment) PathElement() PathElement {
	return CubicTo(seg.C1, seg.C2, seg.P2)
}
