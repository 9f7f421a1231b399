package splinker

import (
	"iter"
	"log/slog"
)

// SquareGradient is a value/saturation square with fixed hue and alpha.
//
// Value grows from 0 on the left edge to 255 on the right edge, saturation from 0 on the
// top edge to 255 on the bottom edge.
type SquareGradient struct {
	center Point
	size   float64
	hue    int
	alpha  int
	bounds Rect
}

var _ Gradient = SquareGradient{}

// NewSquareGradient returns an axis-aligned square of side length size centered on
// center. hue is clamped to [UndefinedHue, 359] and alpha to [0, 255].
func NewSquareGradient(center Point, size float64, hue, alpha int) SquareGradient {
	return SquareGradient{
		center: center,
		size:   size,
		hue:    min(max(hue, UndefinedHue), 359),
		alpha:  clampByte(alpha),
		bounds: NewRectFromCenter(center, size, size),
	}
}

// DefaultSquareGradient returns an opaque red square with the default geometry.
func DefaultSquareGradient() SquareGradient {
	return NewSquareGradient(DefaultCenter, DefaultExtent, 0, 255)
}

func (SquareGradient) gradient() {}

func (SquareGradient) Kind() string { return SquareGradientKind }

func (g SquareGradient) Center() Point { return g.center }

func (g SquareGradient) Size() float64 { return g.size }

func (g SquareGradient) Hue() int { return g.hue }

func (g SquareGradient) Alpha() int { return g.alpha }

func (g SquareGradient) Bounds() Rect { return g.bounds }

// Outline returns the drawing commands for the border of the square.
func (g SquareGradient) Outline() iter.Seq[PathElement] { return g.bounds.PathElements() }

// ContainsPoint reports whether pt lies inside or on the square. Squares with a
// non-positive size contain nothing.
func (g SquareGradient) ContainsPoint(pt Point) bool {
	if g.size <= 0 {
		return false
	}
	return g.bounds.Contains(pt)
}

func (g SquareGradient) ColorAt(pt Point) (Color, bool) {
	if !g.ContainsPoint(pt) {
		return Color{}, false
	}
	tx := (pt.X - g.bounds.X0) / g.size
	ty := (pt.Y - g.bounds.Y0) / g.size
	v := roundByte(255 * min(max(tx, 0), 1))
	s := roundByte(255 * min(max(ty, 0), 1))
	return HSV(g.hue, s, v, g.alpha), true
}

// PointAt returns the point in the square whose color is c. It returns false if c's hue
// or alpha differ from the square's, or if its saturation or value are out of range.
func (g SquareGradient) PointAt(c Color) (Point, bool) {
	if g.size <= 0 {
		return Point{}, false
	}
	if c.H != g.hue || c.A != g.alpha {
		Logger().Debug("color not on square",
			slog.String("color", c.String()), slog.Int("hue", g.hue), slog.Int("alpha", g.alpha))
		return Point{}, false
	}
	if !inByteRange(c.S) || !inByteRange(c.V) {
		return Point{}, false
	}

	// Clamp so that full value/saturation land exactly on the far edges.
	x := min(g.bounds.X0+float64(c.V)/255*g.size, g.bounds.X1)
	y := min(g.bounds.Y0+float64(c.S)/255*g.size, g.bounds.Y1)
	pt := Pt(x, y)
	if !g.ContainsPoint(pt) {
		return Point{}, false
	}
	return pt, true
}

func (g SquareGradient) Record() GradientRecord {
	return GradientRecord{
		Kind:   SquareGradientKind,
		Center: g.center,
		Size:   g.size,
		Hue:    g.hue,
		Alpha:  g.alpha,
	}
}
