package splinker

import (
	"slices"
	"testing"
)

var square = []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}

func TestCatmullRomAddPoint(t *testing.T) {
	var e CatmullRomEditor
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(5, -1)}, e.AddPoint(square, Pt(5, -1), false))
	diff(t, []Point{Pt(0, 0), Pt(5, -1), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, e.AddPoint(square, Pt(5, -1), true))
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(-1, 5)}, e.AddPoint(square, Pt(-1, 5), true))
	// Equidistant from every edge; the wrap-around edge is last and wins.
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(5, 5)}, e.AddPoint(square, Pt(5, 5), true))
	diff(t, []Point{Pt(1, 1)}, e.AddPoint(nil, Pt(1, 1), true))
	diff(t, []Point{Pt(1, 1), Pt(2, 2)}, e.AddPoint([]Point{Pt(1, 1)}, Pt(2, 2), true))

	if !slices.Equal(square, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}) {
		t.Error("AddPoint modified its input")
	}
}

func TestCatmullRomRemoveEdit(t *testing.T) {
	var e CatmullRomEditor
	diff(t, []Point{Pt(0, 0), Pt(10, 10), Pt(0, 10)}, e.RemovePoint(square, 1))
	diff(t, square, e.RemovePoint(square, 4))
	diff(t, square, e.RemovePoint(square, -1))
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(7, 7), Pt(0, 10)}, e.EditPoint(square, 2, Pt(7, 7)))
	diff(t, square, e.EditPoint(square, 9, Pt(7, 7)))

	out := e.EditPoint(square, 0, Pt(3, 3))
	out[1] = Pt(-1, -1)
	if square[0] != Pt(0, 0) || square[1] != Pt(10, 0) {
		t.Error("EditPoint shares memory with its input")
	}
}

func TestCatmullRomSegments(t *testing.T) {
	var e CatmullRomEditor
	collect := func(pts []Point, closed bool) []CubicSegment {
		return slices.Collect(e.Segments(pts, closed))
	}

	if segs := collect(nil, false); len(segs) != 0 {
		t.Errorf("got %d segments for no points", len(segs))
	}
	if segs := collect([]Point{Pt(0, 0)}, true); len(segs) != 0 {
		t.Errorf("got %d segments for one point", len(segs))
	}
	if segs := collect([]Point{Pt(0, 0), Pt(1, 0)}, false); len(segs) != 0 {
		t.Errorf("got %d segments for an open line", len(segs))
	}

	want := []CubicSegment{
		{Pt(10.0/6, 0), Pt(10-20.0/6, 0), Pt(10, 0)},
		{Pt(10+20.0/6, 0), Pt(20-10.0/6, 0), Pt(20, 0)},
	}
	diff(t, want, collect([]Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}, false), approx(1e-12))

	segs := collect(square, true)
	if len(segs) != len(square) {
		t.Fatalf("got %d segments for closed square, want %d", len(segs), len(square))
	}
	diff(t, CubicSegment{Pt(10.0/6, -10.0/6), Pt(10-10.0/6, -10.0/6), Pt(10, 0)}, segs[0], approx(1e-12))
	for i, seg := range segs {
		diff(t, square[(i+1)%len(square)], seg.P2)
	}
}

func TestCatmullRomPathElements(t *testing.T) {
	var e CatmullRomEditor
	collect := func(pts []Point, closed bool) []PathElementKind {
		var kinds []PathElementKind
		for el := range e.PathElements(pts, closed) {
			kinds = append(kinds, el.Kind)
		}
		return kinds
	}

	diff(t, []PathElementKind(nil), collect(nil, false))
	diff(t, []PathElementKind{MoveToKind}, collect([]Point{Pt(1, 1)}, false))
	diff(t, []PathElementKind{MoveToKind}, collect([]Point{Pt(1, 1)}, true))
	diff(t, []PathElementKind{MoveToKind, LineToKind}, collect([]Point{Pt(1, 1), Pt(2, 2)}, false))
	diff(t, []PathElementKind{MoveToKind, CubicToKind, CubicToKind}, collect(square[:3], false))
	diff(t, []PathElementKind{MoveToKind, CubicToKind, CubicToKind, CubicToKind, ClosePathKind}, collect(square[:3], true))

	els := slices.Collect(e.PathElements([]Point{Pt(1, 1), Pt(2, 2)}, false))
	diff(t, []PathElement{MoveTo(Pt(1, 1)), LineTo(Pt(2, 2))}, els)
}

func TestCatmullRomFitFromSample(t *testing.T) {
	var e CatmullRomEditor
	sample := make([]Point, 100)
	for i := range sample {
		sample[i] = Pt(float64(i), 0)
	}
	want := []Point{Pt(0, 0), Pt(14, 0), Pt(28, 0), Pt(42, 0), Pt(57, 0), Pt(71, 0), Pt(85, 0), Pt(99, 0)}
	diff(t, want, e.FitFromSample(sample, false))
	diff(t, sample[:5], e.FitFromSample(sample[:5], false))
	diff(t, sample[:MaxFitPoints], e.FitFromSample(sample[:MaxFitPoints], true))
}

func TestCatmullRomInterpolate(t *testing.T) {
	var e CatmullRomEditor

	diff(t, []Point(nil), e.Interpolate(nil, false, 10))
	diff(t, []Point{Pt(3, 4)}, e.Interpolate([]Point{Pt(3, 4)}, false, 10))
	diff(t, []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0)},
		e.Interpolate([]Point{Pt(0, 0), Pt(4, 0)}, false, 5))

	line := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)}
	for _, n := range []int{2, 10, 37, 100} {
		pts := e.Interpolate(line, false, n)
		if len(pts) != n {
			t.Fatalf("got %d points, want %d", len(pts), n)
		}
		diff(t, line[0], pts[0])
		diff(t, line[3], pts[n-1], approx(1e-12))
		for _, pt := range pts {
			if pt.Y != 0 || pt.X < 0 || pt.X > 30 {
				t.Errorf("sample %v lies off the line", pt)
			}
		}
	}
	if pts := e.Interpolate(line, false, 0); len(pts) != DefaultSampleCount {
		t.Errorf("got %d points, want %d", len(pts), DefaultSampleCount)
	}

	pts := e.Interpolate(square, true, 41)
	if len(pts) != 41 {
		t.Fatalf("got %d points, want 41", len(pts))
	}
	diff(t, square[0], pts[0])
	diff(t, square[0], pts[40], approx(1e-12))
	// Every segment gets ten samples, so control points are hit exactly.
	diff(t, square[1], pts[10], approx(1e-12))
	diff(t, square[2], pts[20], approx(1e-12))
	diff(t, square[3], pts[30], approx(1e-12))
}
