package splinker

import (
	"iter"
	"slices"
)

// MaxFitPoints is the number of control points a Catmull-Rom path fitted from a sample
// is reduced to.
const MaxFitPoints = 8

// CatmullRomEditor edits freeform paths through an unbounded number of control points,
// drawn as a Catmull-Rom spline converted to cubic Béziers.
type CatmullRomEditor struct{}

var _ PointEditor = CatmullRomEditor{}

func (CatmullRomEditor) pointEditor() {}

func (CatmullRomEditor) Name() string { return CatmullRomEditorName }

func (CatmullRomEditor) MaxPoints() int { return 0 }

func (CatmullRomEditor) DefaultClosed() bool { return false }

// AddPoint appends p to open paths and to closed paths with fewer than two points.
// Otherwise p is inserted into the edge of the closed polygon nearest to it, ties going
// to the later edge.
func (CatmullRomEditor) AddPoint(pts []Point, p Point, closed bool) []Point {
	if !closed || len(pts) < 2 {
		return append(slices.Clone(pts), p)
	}
	i := nearestEdge(pts, p)
	return slices.Insert(slices.Clone(pts), i+1, p)
}

// RemovePoint removes the point at idx. Out of range indices leave the points unchanged.
func (CatmullRomEditor) RemovePoint(pts []Point, idx int) []Point {
	if idx < 0 || idx >= len(pts) {
		return slices.Clone(pts)
	}
	return slices.Delete(slices.Clone(pts), idx, idx+1)
}

// EditPoint moves the point at idx to p. Out of range indices leave the points unchanged.
func (CatmullRomEditor) EditPoint(pts []Point, idx int, p Point) []Point {
	out := slices.Clone(pts)
	if idx >= 0 && idx < len(out) {
		out[idx] = p
	}
	return out
}

// Segments returns one cubic per pair of consecutive control points, plus the closing
// pair for closed paths. Fewer than two points, or two points of an open path, produce
// no segments.
//
// The tangent at each control point is derived from its neighbors. Open paths repeat
// their end points as phantom neighbors; closed paths wrap around.
func (CatmullRomEditor) Segments(pts []Point, closed bool) iter.Seq[CubicSegment] {
	return func(yield func(CubicSegment) bool) {
		n := len(pts)
		if n < 2 || (n == 2 && !closed) {
			return
		}
		var p []Point
		if closed {
			p = make([]Point, 0, n+3)
			p = append(p, pts[n-1])
			p = append(p, pts...)
			p = append(p, pts[0], pts[1])
		} else {
			p = make([]Point, 0, n+2)
			p = append(p, pts[0])
			p = append(p, pts...)
			p = append(p, pts[n-1])
		}
		for i := 1; i < len(p)-2; i++ {
			p0, p1, p2, p3 := p[i-1], p[i], p[i+1], p[i+2]
			seg := CubicSegment{
				C1: p1.Translate(p2.Sub(p0).Div(6)),
				C2: p2.Translate(p3.Sub(p1).Div(-6)),
				P2: p2,
			}
			if !yield(seg) {
				return
			}
		}
	}
}

func (e CatmullRomEditor) PathElements(pts []Point, closed bool) iter.Seq[PathElement] {
	return controlPathElements(pts, closed, e.Segments(pts, closed))
}

// FitFromSample picks [MaxFitPoints] points of sample, evenly spaced by index and
// including both ends. Samples that are already short enough are returned as is.
func (CatmullRomEditor) FitFromSample(sample []Point, closed bool) []Point {
	n := len(sample)
	if n <= MaxFitPoints {
		return slices.Clone(sample)
	}
	out := make([]Point, MaxFitPoints)
	for i := range out {
		j := roundIndex(i*(n-1), MaxFitPoints-1)
		out[i] = sample[j]
	}
	return out
}

func (e CatmullRomEditor) Interpolate(pts []Point, closed bool, n int) []Point {
	return sampleElements(e.PathElements(pts, closed), n)
}

// roundIndex returns num/den rounded to the nearest integer, halves rounding up.
func roundIndex(num, den int) int {
	return (2*num + den) / (2 * den)
}
