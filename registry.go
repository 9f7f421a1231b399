package splinker

import (
	"fmt"
	"maps"
	"slices"
)

// Registry names of the editors and gradients. They are part of the persisted format
// and must not change.
const (
	CatmullRomEditorName = "catmull-rom"
	CircleEditorName     = "circle"

	WheelGradientKind  = "hsv-wheel"
	SquareGradientKind = "hsv-square"
)

var editorFactories = map[string]func() PointEditor{
	CatmullRomEditorName: func() PointEditor { return CatmullRomEditor{} },
	CircleEditorName:     func() PointEditor { return CircleEditor{} },
}

var gradientFactories = map[string]func(GradientRecord) Gradient{
	WheelGradientKind: func(rec GradientRecord) Gradient {
		return NewWheelGradient(rec.Center, rec.Size, rec.Value, rec.Alpha)
	},
	SquareGradientKind: func(rec GradientRecord) Gradient {
		return NewSquareGradient(rec.Center, rec.Size, rec.Hue, rec.Alpha)
	},
}

// EditorNames returns the names of all point editors, sorted.
func EditorNames() []string {
	return slices.Sorted(maps.Keys(editorFactories))
}

// NewEditor returns the point editor registered under name.
func NewEditor(name string) (PointEditor, error) {
	f, ok := editorFactories[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEditor)
	}
	return f(), nil
}

// GradientKinds returns the kinds of all gradients, sorted.
func GradientKinds() []string {
	return slices.Sorted(maps.Keys(gradientFactories))
}

// GradientFromRecord constructs the gradient described by rec.
func GradientFromRecord(rec GradientRecord) (Gradient, error) {
	f, ok := gradientFactories[rec.Kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", rec.Kind, ErrUnknownGradient)
	}
	return f(rec), nil
}
