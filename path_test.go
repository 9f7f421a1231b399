package splinker

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestPathClosedInvariant(t *testing.T) {
	if p := NewPath(nil, square[:2], true); p.Closed() {
		t.Error("two-point path is closed")
	}
	if p := NewPath(nil, square, true); !p.Closed() {
		t.Error("square isn't closed")
	}

	p := NewPath(nil, square[:3], true)
	p.RemovePoint(0)
	if p.Closed() {
		t.Error("path stayed closed after dropping to two points")
	}
	if p.SetClosed(true) {
		t.Error("closed a two-point path")
	}
	if !p.SetClosed(false) {
		t.Error("failed to open an open path")
	}

	rng := rand.New(rand.NewPCG(3, 4))
	for _, e := range []PointEditor{CatmullRomEditor{}, CircleEditor{}} {
		p := NewPath(e, nil, false)
		for range 500 {
			switch rng.IntN(4) {
			case 0:
				p.AddPoint(Pt(rng.Float64()*100, rng.Float64()*100))
			case 1:
				p.RemovePoint(rng.IntN(p.Len() + 1))
			case 2:
				p.SetClosed(rng.IntN(2) == 0)
			case 3:
				p.EditPoint(rng.IntN(p.Len()+1), Pt(rng.Float64()*100, rng.Float64()*100))
			}
			if p.Closed() && p.Len() < 3 {
				t.Fatalf("%s path with %d points is closed", e.Name(), p.Len())
			}
		}
	}
}

func TestPathAddPoint(t *testing.T) {
	p := NewPath(nil, nil, false)
	for i, pt := range square {
		idx, ok := p.AddPoint(pt)
		if !ok || idx != i {
			t.Fatalf("AddPoint(%v) = (%d, %t), want (%d, true)", pt, idx, ok, i)
		}
	}
	if !p.SetClosed(true) {
		t.Fatal("failed to close square")
	}
	idx, ok := p.AddPoint(Pt(5, -1))
	if !ok || idx != 1 {
		t.Errorf("AddPoint on closed path = (%d, %t), want (1, true)", idx, ok)
	}
	diff(t, []Point{Pt(0, 0), Pt(5, -1), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, p.Points())

	c := NewPath(CircleEditor{}, nil, false)
	c.AddPoint(Pt(0, 0))
	c.AddPoint(Pt(10, 0))
	if idx, ok := c.AddPoint(Pt(20, 0)); ok {
		t.Errorf("third circle point was added at %d", idx)
	}
	diff(t, 2, c.Len())
}

func TestPathInsertConvex(t *testing.T) {
	p := NewPath(nil, square, false)
	if _, ok := p.InsertConvex(Pt(5, -5)); ok {
		t.Error("convex insertion into open path succeeded")
	}
	p.SetClosed(true)
	idx, ok := p.InsertConvex(Pt(5, -5))
	if !ok || idx != 1 {
		t.Fatalf("InsertConvex = (%d, %t), want (1, true)", idx, ok)
	}
	pt, err := p.Point(1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(5, -5), pt)
}

func TestPathPoint(t *testing.T) {
	p := NewPath(nil, square, false)
	pt, err := p.Point(2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(10, 10), pt)
	for _, i := range []int{-1, 4} {
		if _, err := p.Point(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Point(%d): got error %v, want ErrIndexOutOfRange", i, err)
		}
	}

	pts := p.Points()
	pts[0] = Pt(-1, -1)
	if pt, _ := p.Point(0); pt != Pt(0, 0) {
		t.Error("Points shares memory with the path")
	}
}

func TestPathNotifications(t *testing.T) {
	p := NewPath(nil, nil, false)
	var got []Change
	unsubscribe := p.Subscribe(func(c Change) { got = append(got, c) })

	p.AddPoint(Pt(0, 0))
	p.AddPoint(Pt(10, 0))
	p.EditPoint(0, Pt(0, 0))
	p.EditPoint(5, Pt(0, 0))
	p.RemovePoint(5)
	p.SetClosed(true)
	p.AddPoint(Pt(10, 10))
	p.SetClosed(true)
	p.SetClosed(true)
	p.Clear()
	p.Clear()
	diff(t, []Change{PointsChanged, PointsChanged, PointsChanged, PointsChanged, PointsChanged}, got)

	unsubscribe()
	p.AddPoint(Pt(1, 1))
	diff(t, 5, len(got))
}

func TestPathSetPointEditor(t *testing.T) {
	ring := regularPolygon(12, Pt(50, 50), 20, 0, true)
	p := NewPath(nil, ring, true)
	var n int
	p.Subscribe(func(Change) { n++ })

	p.SetPointEditor(CircleEditor{})
	if p.Editor().Name() != CircleEditorName {
		t.Fatalf("got editor %q", p.Editor().Name())
	}
	if p.Len() != 2 || p.Closed() {
		t.Fatalf("got %d points, closed %t; want 2 points, open", p.Len(), p.Closed())
	}
	pts := p.Points()
	diff(t, Pt(50, 50), pts[0], approx(1))
	if r := pts[1].Distance(pts[0]); r < 18 || r > 22 {
		t.Errorf("got radius %v, want about 20", r)
	}

	p.SetPointEditor(CatmullRomEditor{})
	if p.Len() != MaxFitPoints || !p.Closed() {
		t.Errorf("got %d points, closed %t; want %d points, closed", p.Len(), p.Closed(), MaxFitPoints)
	}
	diff(t, 2, n)

	line := NewPath(nil, []Point{Pt(0, 0), Pt(10, 0)}, false)
	line.SetPointEditor(CircleEditor{})
	pts = line.Points()
	diff(t, Pt(5, 0), pts[0], approx(1e-9))
	diff(t, Pt(7.5, 0), pts[1], approx(0.1))

	// Open catmull-rom paths stay open.
	open := NewPath(nil, ring, false)
	open.SetPointEditor(CatmullRomEditor{})
	if open.Closed() {
		t.Error("open path got closed by conversion")
	}
}

func TestPathPathElements(t *testing.T) {
	if els := NewPath(nil, nil, false).PathElements(); len(els) != 0 {
		t.Errorf("got %v for empty path", els)
	}
	diff(t, BezPath{MoveTo(Pt(1, 2))}, NewPath(nil, []Point{Pt(1, 2)}, false).PathElements())
	diff(t, BezPath{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))}, NewPath(nil, []Point{Pt(1, 2), Pt(3, 4)}, false).PathElements())

	p := NewPath(nil, square, true)
	if segs := p.Segments(); len(segs) != 4 {
		t.Errorf("got %d segments, want 4", len(segs))
	}
	els := p.PathElements()
	diff(t, MoveTo(Pt(0, 0)), els[0])
	diff(t, ClosePath(), els[len(els)-1])
}

func TestPathClosestPoint(t *testing.T) {
	diff(t, Pt(3, 5), NewPath(nil, nil, false).ClosestPoint(Pt(3, 5)))
	diff(t, Pt(1, 1), NewPath(nil, []Point{Pt(1, 1)}, false).ClosestPoint(Pt(3, 5)))

	line := NewPath(nil, []Point{Pt(0, 0), Pt(10, 0)}, false)
	diff(t, Pt(3, 0), line.ClosestPoint(Pt(3, 5)), approx(1e-9))
	diff(t, Pt(10, 0), line.ClosestPoint(Pt(20, 5)), approx(1e-9))

	// The closed Catmull-Rom square bulges out to y = -1.25 between its first two
	// points.
	p := NewPath(nil, square, true)
	diff(t, Pt(5, -1.25), p.ClosestPoint(Pt(5, -3)), approx(0.01))
}

func TestPathHitTesting(t *testing.T) {
	p := NewPath(nil, square, false)
	if i, ok := p.IndexAt(Pt(9, 9), 0); !ok || i != 2 {
		t.Errorf("IndexAt = (%d, %t), want (2, true)", i, ok)
	}
	if _, ok := p.IndexAt(Pt(5, 5), 2); ok {
		t.Error("hit a point at the center")
	}

	if i, ok := p.NearEndpoint(Pt(0, 11), 1); !ok || i != 3 {
		t.Errorf("NearEndpoint = (%d, %t), want (3, true)", i, ok)
	}
	if i, ok := p.NearEndpoint(Pt(0, 5), 4); !ok || i != 0 {
		t.Errorf("NearEndpoint = (%d, %t), want (0, true)", i, ok)
	}
	if _, ok := p.NearEndpoint(Pt(10, 10), 1); ok {
		t.Error("middle point counted as an endpoint")
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath(nil, square, true)
	p.SetParam("tension", 0.5)
	var n int
	p.Subscribe(func(Change) { n++ })

	c := p.Clone()
	c.EditPoint(0, Pt(-5, -5))
	c.SetParam("tension", 1)
	diff(t, square, p.Points())
	diff(t, map[string]float64{"tension": 0.5}, p.Params())
	diff(t, 0, n)
	if !c.Closed() {
		t.Error("clone isn't closed")
	}
}
