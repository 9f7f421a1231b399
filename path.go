package splinker

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
)

const (
	// DefaultClosestSamples is the number of curve samples searched by
	// [Path.ClosestPoint].
	DefaultClosestSamples = 200
	// DefaultHitRadius is the hit radius used by [Path.IndexAt] and [Path.NearEndpoint]
	// when given a non-positive radius.
	DefaultHitRadius = 8.0
)

// Path is an editable sequence of control points, open or closed, whose curve is
// defined by a [PointEditor].
//
// A path is closed only while it has at least three control points; every mutation
// reopens a path that drops below that. Paths notify their subscribers with
// [PointsChanged] after every mutation that changed something.
//
// Paths are created with [NewPath] and must not be copied; use [Path.Clone].
type Path struct {
	notifier

	points []Point
	closed bool
	editor PointEditor
	// params is reserved for per-path settings and only stored.
	params map[string]float64
}

// NewPath returns a path with the given editor, points and closed flag. A nil editor
// means [CatmullRomEditor]. closed is ignored for fewer than three points.
func NewPath(editor PointEditor, pts []Point, closed bool) *Path {
	if editor == nil {
		editor = CatmullRomEditor{}
	}
	return &Path{
		points: slices.Clone(pts),
		closed: closed && len(pts) >= 3,
		editor: editor,
		params: map[string]float64{},
	}
}

func (p *Path) Editor() PointEditor { return p.editor }

func (p *Path) Closed() bool { return p.closed }

func (p *Path) Len() int { return len(p.points) }

// Points returns a copy of the control points.
func (p *Path) Points() []Point { return slices.Clone(p.points) }

// Point returns the control point at index i.
func (p *Path) Point(i int) (Point, error) {
	if i < 0 || i >= len(p.points) {
		return Point{}, fmt.Errorf("point %d of %d: %w", i, len(p.points), ErrIndexOutOfRange)
	}
	return p.points[i], nil
}

// Params returns a copy of the path's parameters.
func (p *Path) Params() map[string]float64 { return maps.Clone(p.params) }

func (p *Path) SetParam(key string, v float64) {
	if p.params == nil {
		p.params = map[string]float64{}
	}
	p.params[key] = v
}

// setPoints replaces the control points, reopens the path if it became too short to be
// closed and notifies subscribers if anything changed.
func (p *Path) setPoints(pts []Point) bool {
	wasClosed := p.closed
	changed := !slices.Equal(p.points, pts)
	p.points = pts
	p.closed = p.closed && len(pts) >= 3
	if changed || wasClosed != p.closed {
		p.notify(PointsChanged)
		return true
	}
	return false
}

// SetClosed opens or closes the path. Closing fails for paths with fewer than three
// points. It reports whether the path now has the requested state.
func (p *Path) SetClosed(closed bool) bool {
	if closed && len(p.points) < 3 {
		return false
	}
	if p.closed != closed {
		p.closed = closed
		p.notify(PointsChanged)
	}
	return true
}

// AddPoint adds pt through the editor and returns the index the point ended up at. It
// returns false if the editor ignored the point.
func (p *Path) AddPoint(pt Point) (int, bool) {
	old := p.points
	pts := p.editor.AddPoint(old, pt, p.closed)
	idx := insertedIndex(old, pts)
	if idx < 0 {
		Logger().Debug("point ignored by editor",
			slog.String("editor", p.editor.Name()), slog.String("point", pt.String()))
		return -1, false
	}
	p.setPoints(pts)
	return idx, true
}

// RemovePoint removes the control point at i through the editor. It reports whether
// the path changed.
func (p *Path) RemovePoint(i int) bool {
	if i < 0 || i >= len(p.points) {
		Logger().Debug("remove point out of range", slog.Int("index", i), slog.Int("len", len(p.points)))
		return false
	}
	return p.setPoints(p.editor.RemovePoint(p.points, i))
}

// EditPoint moves the control point at i to pt through the editor. It reports whether
// the path changed.
func (p *Path) EditPoint(i int, pt Point) bool {
	if i < 0 || i >= len(p.points) {
		Logger().Debug("edit point out of range", slog.Int("index", i), slog.Int("len", len(p.points)))
		return false
	}
	return p.setPoints(p.editor.EditPoint(p.points, i, pt))
}

// InsertConvex inserts pt into a closed path so that a convex control polygon stays
// convex; see [InsertConvex]. It returns the index of the inserted point, which may be
// a projection of pt onto the polygon rather than pt itself. It returns false for open
// paths and degenerate polygons.
func (p *Path) InsertConvex(pt Point) (int, bool) {
	if !p.closed {
		return -1, false
	}
	pts, idx, ok := insertConvex(p.points, pt)
	if !ok {
		return -1, false
	}
	p.setPoints(pts)
	return idx, true
}

// Clear removes all points and parameters and opens the path.
func (p *Path) Clear() {
	changed := len(p.points) > 0 || p.closed
	p.points = nil
	p.closed = false
	clear(p.params)
	if changed {
		p.notify(PointsChanged)
	}
}

// SetPointEditor converts the path to another editor. The current curve is sampled at
// [DefaultSampleCount] points and the new editor fits its control points to the sample.
//
// The converted path is closed if the new editor draws closed curves by default or the
// old curve was closed, as long as it has at least three control points.
func (p *Path) SetPointEditor(e PointEditor) {
	if e == nil {
		e = CatmullRomEditor{}
	}
	wasClosed := p.closed || (p.editor.DefaultClosed() && len(p.points) >= 2)
	sample := p.editor.Interpolate(p.points, p.closed, DefaultSampleCount)
	pts := e.FitFromSample(sample, wasClosed)

	Logger().Debug("converting path",
		slog.String("from", p.editor.Name()), slog.String("to", e.Name()),
		slog.Int("points", len(p.points)), slog.Int("fitted", len(pts)))

	p.editor = e
	p.points = pts
	p.closed = (e.DefaultClosed() || wasClosed) && len(pts) >= 3
	p.notify(PointsChanged)
}

// Segments returns the cubic pieces of the path's curve.
func (p *Path) Segments() []CubicSegment {
	return slices.Collect(p.editor.Segments(p.points, p.closed))
}

// PathElements returns the drawing commands for the path's curve.
func (p *Path) PathElements() BezPath {
	return slices.Collect(p.editor.PathElements(p.points, p.closed))
}

// SVG returns the path's curve as SVG path data.
func (p *Path) SVG(opts SVGOptions) string {
	return SVG(p.editor.PathElements(p.points, p.closed), opts)
}

// Interpolate returns n points spread along the path's curve. Non-positive n means
// [DefaultSampleCount].
func (p *Path) Interpolate(n int) []Point {
	return p.editor.Interpolate(p.points, p.closed, n)
}

// ClosestPoint returns the point on the path's curve nearest to target, measured on a
// polyline of [DefaultClosestSamples] samples. A path without points returns target.
func (p *Path) ClosestPoint(target Point) Point {
	samples := p.Interpolate(DefaultClosestSamples)
	switch len(samples) {
	case 0:
		return target
	case 1:
		return samples[0]
	}
	n := len(samples) - 1
	if p.closed {
		n++
	}
	best := samples[0]
	bestD2 := math.Inf(1)
	for i := range n {
		l := Line{samples[i], samples[(i+1)%len(samples)]}
		if d2, _ := l.Nearest(target); d2 < bestD2 {
			best, bestD2 = l.Project(target), d2
		}
	}
	return best
}

// IndexAt returns the index of the first control point within radius of pos. A
// non-positive radius means [DefaultHitRadius].
func (p *Path) IndexAt(pos Point, radius float64) (int, bool) {
	if radius <= 0 {
		radius = DefaultHitRadius
	}
	r2 := radius * radius
	for i, pt := range p.points {
		if pt.DistanceSquared(pos) <= r2 {
			return i, true
		}
	}
	return -1, false
}

// NearEndpoint returns the index of the first or last control point if pos lies within
// one and a half times radius of it, the first point taking precedence. A non-positive
// radius means [DefaultHitRadius].
func (p *Path) NearEndpoint(pos Point, radius float64) (int, bool) {
	if radius <= 0 {
		radius = DefaultHitRadius
	}
	r := 1.5 * radius
	r2 := r * r
	n := len(p.points)
	switch {
	case n == 0:
		return -1, false
	case p.points[0].DistanceSquared(pos) <= r2:
		return 0, true
	case n >= 2 && p.points[n-1].DistanceSquared(pos) <= r2:
		return n - 1, true
	default:
		return -1, false
	}
}

// Bounds returns the bounding box of the control points, or false for an empty path.
func (p *Path) Bounds() (Rect, bool) {
	return BoundingBox(p.points)
}

// Clone returns a deep copy of the path without its subscribers.
func (p *Path) Clone() *Path {
	return &Path{
		points: slices.Clone(p.points),
		closed: p.closed,
		editor: p.editor,
		params: maps.Clone(p.params),
	}
}

// insertedIndex returns the index of the single point that pts has in addition to old,
// or -1 if pts isn't old plus one point.
func insertedIndex(old, pts []Point) int {
	if len(pts) != len(old)+1 {
		return -1
	}
	for i := range old {
		if old[i] != pts[i] {
			return i
		}
	}
	return len(old)
}
