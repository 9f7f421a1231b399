package splinker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and therefore points and vectors, with an absolute tolerance.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// cmpGradients allows comparing gradients, whose fields are unexported.
var cmpGradients = cmp.AllowUnexported(WheelGradient{}, SquareGradient{})

// isConvex reports whether every turn of the closed polygon pts goes in the direction
// of its orientation, allowing turns within eps of straight.
func isConvex(pts []Point, eps float64) bool {
	n := len(pts)
	sgn := float64(orientationSign(pts))
	if n < 3 || sgn == 0 {
		return false
	}
	for i := range n {
		if sgn*orientation(pts[i], pts[(i+1)%n], pts[(i+2)%n]) < -eps {
			return false
		}
	}
	return true
}
