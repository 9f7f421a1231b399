package splinker

import "log/slog"

const (
	// DefaultLayerName is the name given to layers created without one.
	DefaultLayerName = "Overlay"
	// DefaultStopCount is the number of stops [Layer.Sample] produces when asked for a
	// non-positive count.
	DefaultStopCount = 64
)

// Stop is a color stop of the palette a layer describes. Pos runs from 0 at the start of
// the path to 1 at its end. OK is false where the path leaves the gradient.
type Stop struct {
	Pos   float64
	Color Color
	OK    bool
}

// Layer pairs a gradient with a path drawn on it. All colors are derived from the two
// on demand.
//
// Layers notify subscribers with [GradientChanged] when the gradient is replaced and
// forward the [PointsChanged] notifications of their path.
type Layer struct {
	notifier

	name     string
	gradient Gradient
	path     *Path
}

// NewLayer returns a layer that takes ownership of path. A nil gradient means
// [DefaultWheelGradient], a nil path an empty Catmull-Rom path and an empty name
// [DefaultLayerName].
func NewLayer(name string, g Gradient, path *Path) *Layer {
	if name == "" {
		name = DefaultLayerName
	}
	if g == nil {
		g = DefaultWheelGradient()
	}
	if path == nil {
		path = NewPath(nil, nil, false)
	}
	l := &Layer{
		name:     name,
		gradient: g,
		path:     path,
	}
	path.Subscribe(l.notify)
	return l
}

func (l *Layer) Name() string { return l.name }

func (l *Layer) SetName(name string) { l.name = name }

func (l *Layer) Gradient() Gradient { return l.gradient }

// Path returns the layer's path. Edits made through it are reported by the layer.
func (l *Layer) Path() *Path { return l.path }

// SetGradient replaces the layer's gradient. The path is left where it is, even if
// parts of it now lie outside the gradient. A nil gradient is ignored.
func (l *Layer) SetGradient(g Gradient) {
	if g == nil {
		return
	}
	l.gradient = g
	l.notify(GradientChanged)
}

func (l *Layer) ContainsPoint(pt Point) bool {
	return l.gradient.ContainsPoint(pt)
}

func (l *Layer) ColorAt(pt Point) (Color, bool) {
	return l.gradient.ColorAt(pt)
}

// PointColors returns the color under each control point.
func (l *Layer) PointColors() (colors []Color, ok []bool) {
	return ColorsAt(l.gradient, l.path.points)
}

// AddPointAt adds a control point at pt, returning its index. Points outside the
// gradient are rejected. On closed paths the point is inserted so as to keep a convex
// control polygon convex.
func (l *Layer) AddPointAt(pt Point) (int, bool) {
	if !l.gradient.ContainsPoint(pt) {
		Logger().Debug("point outside gradient", slog.String("layer", l.name), slog.String("point", pt.String()))
		return -1, false
	}
	if l.path.Closed() {
		if i, ok := l.path.InsertConvex(pt); ok {
			return i, true
		}
	}
	return l.path.AddPoint(pt)
}

// MovePointAt moves control point i to pt. Targets outside the gradient are rejected.
func (l *Layer) MovePointAt(i int, pt Point) bool {
	if !l.gradient.ContainsPoint(pt) {
		return false
	}
	return l.path.EditPoint(i, pt)
}

// MovePointToColor moves control point i to where the gradient shows c. It returns
// false if the gradient can't show c or i names no point.
func (l *Layer) MovePointToColor(i int, c Color) bool {
	if i < 0 || i >= l.path.Len() {
		return false
	}
	pt, ok := l.gradient.PointAt(c)
	if !ok {
		return false
	}
	return l.path.EditPoint(i, pt)
}

// Sample returns n color stops spread evenly along the path. Non-positive n means
// [DefaultStopCount]. It returns false if the path is too short to span a palette.
func (l *Layer) Sample(n int) ([]Stop, bool) {
	if n <= 0 {
		n = DefaultStopCount
	}
	samples := l.path.Interpolate(n)
	if len(samples) < 2 {
		return nil, false
	}
	colors, ok := ColorsAt(l.gradient, samples)
	stops := make([]Stop, len(samples))
	last := float64(len(samples) - 1)
	for i := range stops {
		stops[i] = Stop{Pos: float64(i) / last, Color: colors[i], OK: ok[i]}
	}
	return stops, true
}

// Clone returns a copy of the layer with a deep copy of its path. Gradients are
// immutable and shared.
func (l *Layer) Clone() *Layer {
	return NewLayer(l.name, l.gradient, l.path.Clone())
}
