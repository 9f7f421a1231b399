package splinker

import (
	"iter"
	"log/slog"
	"math"
)

// rimEpsilon is the relative slack allowed when testing points on the rim of a wheel, so
// that points computed from full saturation survive floating point rounding.
const rimEpsilon = 1e-9

// WheelGradient is a hue/saturation wheel with fixed value and alpha.
//
// Hue is the angle of a point around the center in degrees, with 0° along the positive
// x axis and increasing towards positive y. Saturation grows linearly from 0 at the
// center to 255 on the rim.
type WheelGradient struct {
	center Point
	radius float64
	value  int
	alpha  int
}

var _ Gradient = WheelGradient{}

// NewWheelGradient returns a wheel centered on center. value and alpha are clamped to
// [0, 255].
func NewWheelGradient(center Point, radius float64, value, alpha int) WheelGradient {
	return WheelGradient{
		center: center,
		radius: radius,
		value:  clampByte(value),
		alpha:  clampByte(alpha),
	}
}

// DefaultWheelGradient returns a fully bright, opaque wheel with the default geometry.
func DefaultWheelGradient() WheelGradient {
	return NewWheelGradient(DefaultCenter, DefaultExtent, 255, 255)
}

func (WheelGradient) gradient() {}

func (WheelGradient) Kind() string { return WheelGradientKind }

func (g WheelGradient) Center() Point { return g.center }

func (g WheelGradient) Radius() float64 { return g.radius }

// Value returns the fixed value channel of every color on the wheel.
func (g WheelGradient) Value() int { return g.value }

// Alpha returns the fixed alpha channel of every color on the wheel.
func (g WheelGradient) Alpha() int { return g.alpha }

func (g WheelGradient) Bounds() Rect {
	return NewRectFromCenter(g.center, 2*g.radius, 2*g.radius)
}

// Outline returns the drawing commands for the rim of the wheel. Wheels with a
// non-positive radius have no outline.
func (g WheelGradient) Outline() iter.Seq[PathElement] {
	if g.radius <= 0 {
		return func(func(PathElement) bool) {}
	}
	return Circle{Center: g.center, Radius: g.radius}.PathElements()
}

// ContainsPoint reports whether pt lies inside or on the wheel.
func (g WheelGradient) ContainsPoint(pt Point) bool {
	r2 := g.radius * g.radius
	return pt.DistanceSquared(g.center) <= r2+r2*rimEpsilon
}

// ColorAt returns the color at pt. It returns false outside the wheel and for wheels
// with a non-positive radius.
func (g WheelGradient) ColorAt(pt Point) (Color, bool) {
	if g.radius <= 0 || !g.ContainsPoint(pt) {
		return Color{}, false
	}
	d := pt.Sub(g.center)
	deg := d.Angle() * 180 / math.Pi
	hue := int(math.Round(deg)) % 360
	if hue < 0 {
		hue += 360
	}
	sat := roundByte(255 * d.Hypot() / g.radius)
	return HSV(hue, sat, g.value, g.alpha), true
}

// PointAt returns the point on the wheel whose color is c. Achromatic colors with an
// undefined hue are placed along the 0° axis.
//
// It returns false if c's value or alpha differ from the wheel's, or if its saturation
// is out of range.
func (g WheelGradient) PointAt(c Color) (Point, bool) {
	if g.radius <= 0 {
		return Point{}, false
	}
	if c.V != g.value || c.A != g.alpha {
		Logger().Debug("color not on wheel",
			slog.String("color", c.String()), slog.Int("value", g.value), slog.Int("alpha", g.alpha))
		return Point{}, false
	}
	if !inByteRange(c.S) {
		return Point{}, false
	}

	r := float64(c.S) / 255 * g.radius
	var th float64
	if c.H >= 0 {
		th = float64(c.H%360) * math.Pi / 180
	}
	pt := g.center.Translate(VecFromAngle(th).Mul(r))
	if !g.ContainsPoint(pt) {
		return Point{}, false
	}
	return pt, true
}

func (g WheelGradient) Record() GradientRecord {
	return GradientRecord{
		Kind:   WheelGradientKind,
		Center: g.center,
		Size:   g.radius,
		Value:  g.value,
		Alpha:  g.alpha,
	}
}
