package splinker

import (
	"iter"
	"math"
)

// DefaultSampleCount is the number of points used when resampling a path, and the
// sample count used by Interpolate when asked for a non-positive count.
const DefaultSampleCount = 100

// A PointEditor turns a list of control points into curve geometry and defines how the
// points react to structural edits.
//
// Editors are stateless. Every method takes the control points and the closed flag
// explicitly and returns a freshly allocated result; inputs are never modified.
//
// The set of editors is closed; see [CatmullRomEditor] and [CircleEditor].
type PointEditor interface {
	// Name returns the registry name of the editor.
	Name() string
	// MaxPoints returns the largest number of control points the editor supports, or 0
	// if unbounded.
	MaxPoints() int
	// DefaultClosed reports whether a path fitted by this editor starts out closed.
	DefaultClosed() bool

	AddPoint(pts []Point, p Point, closed bool) []Point
	RemovePoint(pts []Point, idx int) []Point
	EditPoint(pts []Point, idx int, p Point) []Point

	// Segments returns the cubic pieces of the curve. The first piece starts at the
	// point of the first MoveTo returned by PathElements.
	Segments(pts []Point, closed bool) iter.Seq[CubicSegment]
	// PathElements returns the drawing commands for the curve.
	PathElements(pts []Point, closed bool) iter.Seq[PathElement]
	// FitFromSample returns control points that approximate the polyline sample.
	FitFromSample(sample []Point, closed bool) []Point
	// Interpolate returns n points spread along the curve.
	Interpolate(pts []Point, closed bool, n int) []Point

	pointEditor()
}

// controlPathElements is the drawing command stream shared by editors whose curves pass
// through their control points: nothing for no points, a lone move for one point, a
// straight line for two points of an open path, and cubics otherwise.
func controlPathElements(pts []Point, closed bool, segs iter.Seq[CubicSegment]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		n := len(pts)
		if n == 0 {
			return
		}
		if !yield(MoveTo(pts[0])) || n == 1 {
			return
		}
		if n == 2 && !closed {
			yield(LineTo(pts[1]))
			return
		}
		for seg := range segs {
			if !yield(seg.PathElement()) {
				return
			}
		}
		if closed {
			yield(ClosePath())
		}
	}
}

// piece is a line or cubic drawn by an element stream. Lines only use P0 and P3.
type piece struct {
	line  bool
	cubic CubicBez
}

func (p piece) eval(t float64) Point {
	if p.line {
		return Line{p.cubic.P0, p.cubic.P3}.Eval(t)
	}
	return p.cubic.Eval(t)
}

// flattenPieces collects the lines and cubics drawn by a stream of path elements. A
// ClosePath contributes a closing line only when the subpath doesn't already end at its
// start.
func flattenPieces(els iter.Seq[PathElement]) (start Point, pieces []piece, ok bool) {
	var cur, subpath Point
	for el := range els {
		switch el.Kind {
		case MoveToKind:
			if !ok {
				start = el.P0
				ok = true
			}
			cur, subpath = el.P0, el.P0
		case LineToKind:
			pieces = append(pieces, piece{line: true, cubic: CubicBez{P0: cur, P3: el.P0}})
			cur = el.P0
		case CubicToKind:
			pieces = append(pieces, piece{cubic: CubicBez{cur, el.P0, el.P1, el.P2}})
			cur = el.P2
		case ClosePathKind:
			if cur != subpath {
				pieces = append(pieces, piece{line: true, cubic: CubicBez{P0: cur, P3: subpath}})
			}
			cur = subpath
		}
	}
	return start, pieces, ok
}

// sampleElements returns n points spread evenly in parameter space over the pieces
// drawn by els, including both end points. Each piece gets the same share of samples
// regardless of its length. A stream that draws nothing yields its starting point.
func sampleElements(els iter.Seq[PathElement], n int) []Point {
	if n <= 0 {
		n = DefaultSampleCount
	}
	start, pieces, ok := flattenPieces(els)
	if !ok {
		return nil
	}
	if len(pieces) == 0 || n == 1 {
		return []Point{start}
	}
	m := len(pieces)
	out := make([]Point, n)
	for i := range out {
		u := float64(i) * float64(m) / float64(n-1)
		k := min(int(math.Floor(u)), m-1)
		out[i] = pieces[k].eval(u - float64(k))
	}
	return out
}

// nearestEdge returns the index i of the edge from pts[i] to pts[(i+1)%len(pts)] that
// lies closest to p, wrap-around edge included. Ties go to the later edge.
func nearestEdge(pts []Point, p Point) int {
	n := len(pts)
	best := 0
	bestD2 := math.Inf(1)
	for i := range n {
		d2, _ := Line{pts[i], pts[(i+1)%n]}.Nearest(p)
		if d2 <= bestD2 {
			best, bestD2 = i, d2
		}
	}
	return best
}
