package splinker

import (
	"iter"
	"math"
)

// Default geometry of a freshly created gradient.
var DefaultCenter = Pt(300, 300)

const DefaultExtent = 298.0

// A Gradient maps a bounded region of the plane onto a subspace of HSV colors, and
// back.
//
// ColorAt returns a color only for points for which ContainsPoint is true. PointAt is a
// partial inverse of ColorAt: for every color it accepts, ColorAt(PointAt(c)) == c up to
// the channel resolution of the gradient. It rejects colors whose fixed channels differ
// from the gradient's configuration.
//
// The set of gradients is closed; see [WheelGradient] and [SquareGradient].
type Gradient interface {
	// Kind returns the registry name of the gradient's type.
	Kind() string
	ContainsPoint(pt Point) bool
	ColorAt(pt Point) (Color, bool)
	PointAt(c Color) (Point, bool)
	// Bounds returns the smallest rectangle enclosing the gradient's region.
	Bounds() Rect
	// Outline returns the drawing commands for the border of the gradient's region.
	Outline() iter.Seq[PathElement]
	// Record returns the gradient's constructor parameters.
	Record() GradientRecord

	gradient()
}

// ColorsAt returns the color under each point. ok[i] is false where pts[i] has no color.
func ColorsAt(g Gradient, pts []Point) (colors []Color, ok []bool) {
	colors = make([]Color, len(pts))
	ok = make([]bool, len(pts))
	for i, pt := range pts {
		colors[i], ok[i] = g.ColorAt(pt)
	}
	return colors, ok
}

func roundByte(f float64) int {
	return clampByte(int(math.Round(f)))
}
