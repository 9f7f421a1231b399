package splinker

import (
	"log/slog"
	"math"
	"slices"
)

// InsertConvex inserts p into the closed polygon pts so that a convex polygon stays
// convex. It returns the new polygon and whether a point was inserted.
//
// Among the edges where p can be inserted without breaking convexity, the one whose
// perimeter grows least is chosen; ties go to the lowest edge index. If no edge
// qualifies, p is replaced by its projection onto the nearest edge, which lies on the
// boundary and so keeps the polygon convex; ties again go to the lowest edge index.
//
// Polygons with fewer than three points or zero area are left unchanged.
func InsertConvex(pts []Point, p Point) ([]Point, bool) {
	out, _, ok := insertConvex(pts, p)
	return out, ok
}

// insertConvex is InsertConvex, additionally returning the index of the inserted point.
func insertConvex(pts []Point, p Point) (out []Point, idx int, ok bool) {
	if len(pts) < 3 {
		return slices.Clone(pts), -1, false
	}
	sgn := orientationSign(pts)
	if sgn == 0 {
		Logger().Debug("convex insertion into degenerate polygon", slog.Int("points", len(pts)))
		return slices.Clone(pts), -1, false
	}

	if i, ok := bestConvexEdge(pts, p, sgn); ok {
		return slices.Insert(slices.Clone(pts), i+1, p), i + 1, true
	}

	i, q := nearestProjection(pts, p)
	Logger().Debug("convex insertion fell back to projection",
		slog.String("point", p.String()), slog.String("projected", q.String()), slog.Int("edge", i))
	return slices.Insert(slices.Clone(pts), i+1, q), i + 1, true
}

// orientationSign returns 1 for counter-clockwise polygons (positive shoelace area), -1
// for clockwise ones and 0 for degenerate ones.
func orientationSign(pts []Point) int {
	a := signedArea(pts)
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// convexEdgeOK reports whether inserting p between pts[i] and pts[i+1] keeps every
// turn around the new vertex in the polygon's direction.
func convexEdgeOK(pts []Point, i int, p Point, sgn int) bool {
	n := len(pts)
	prev := pts[(i-1+n)%n]
	a := pts[i]
	b := pts[(i+1)%n]
	next := pts[(i+2)%n]
	o1 := orientation(prev, a, p)
	o2 := orientation(a, p, b)
	o3 := orientation(p, b, next)
	if sgn > 0 {
		return o1 >= 0 && o2 >= 0 && o3 >= 0
	}
	return o1 <= 0 && o2 <= 0 && o3 <= 0
}

// bestConvexEdge returns the convexity-preserving edge with the smallest perimeter
// increase.
func bestConvexEdge(pts []Point, p Point, sgn int) (int, bool) {
	n := len(pts)
	best := -1
	bestDelta := math.Inf(1)
	for i := range n {
		if !convexEdgeOK(pts, i, p, sgn) {
			continue
		}
		a, b := pts[i], pts[(i+1)%n]
		delta := a.Distance(p) + p.Distance(b) - a.Distance(b)
		if delta < bestDelta {
			best, bestDelta = i, delta
		}
	}
	return best, best >= 0
}

// nearestProjection returns the edge closest to p and the projection of p onto it.
func nearestProjection(pts []Point, p Point) (int, Point) {
	n := len(pts)
	best := 0
	bestD2 := math.Inf(1)
	var bestQ Point
	for i := range n {
		q := Line{pts[i], pts[(i+1)%n]}.Project(p)
		if d2 := q.DistanceSquared(p); d2 < bestD2 {
			best, bestD2, bestQ = i, d2, q
		}
	}
	return best, bestQ
}
