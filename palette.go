package splinker

import (
	"fmt"
	"slices"
)

// Palette is an ordered list of layers, one of which is active.
type Palette struct {
	name   string
	layers []*Layer
	// active is -1 exactly when there are no layers.
	active int
}

// NewPalette returns a palette of the given layers with the first one active.
func NewPalette(name string, layers ...*Layer) *Palette {
	pal := &Palette{
		name:   name,
		layers: slices.Clone(layers),
		active: -1,
	}
	if len(layers) > 0 {
		pal.active = 0
	}
	return pal
}

func (pal *Palette) Name() string { return pal.name }

func (pal *Palette) SetName(name string) { pal.name = name }

func (pal *Palette) Len() int { return len(pal.layers) }

// Layers returns the layers in order.
func (pal *Palette) Layers() []*Layer { return slices.Clone(pal.layers) }

// ActiveIndex returns the index of the active layer, or -1 if there are no layers.
func (pal *Palette) ActiveIndex() int { return pal.active }

func (pal *Palette) Layer(i int) (*Layer, error) {
	if i < 0 || i >= len(pal.layers) {
		return nil, fmt.Errorf("layer %d of %d: %w", i, len(pal.layers), ErrIndexOutOfRange)
	}
	return pal.layers[i], nil
}

// LayerByName returns the first layer called name.
func (pal *Palette) LayerByName(name string) (*Layer, error) {
	for _, l := range pal.layers {
		if l.name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrLayerNotFound)
}

func (pal *Palette) Active() (*Layer, error) {
	if pal.active < 0 {
		return nil, fmt.Errorf("no active layer: %w", ErrIndexOutOfRange)
	}
	return pal.layers[pal.active], nil
}

func (pal *Palette) SetActive(i int) error {
	if i < 0 || i >= len(pal.layers) {
		return fmt.Errorf("layer %d of %d: %w", i, len(pal.layers), ErrIndexOutOfRange)
	}
	pal.active = i
	return nil
}

func (pal *Palette) SetLayerName(i int, name string) error {
	l, err := pal.Layer(i)
	if err != nil {
		return err
	}
	l.SetName(name)
	return nil
}

// Add appends l and returns its index. The first layer added becomes active.
func (pal *Palette) Add(l *Layer) int {
	pal.layers = append(pal.layers, l)
	if pal.active < 0 {
		pal.active = 0
	}
	return len(pal.layers) - 1
}

// Remove deletes layer i. It reports false if i names no layer. The active index stays
// put unless it falls off the end.
func (pal *Palette) Remove(i int) bool {
	if i < 0 || i >= len(pal.layers) {
		return false
	}
	pal.layers = slices.Delete(pal.layers, i, i+1)
	if pal.active >= len(pal.layers) {
		pal.active = len(pal.layers) - 1
	}
	return true
}

// Duplicate appends a copy of layer i, named after it with a " Copy" suffix, and
// returns the copy's index. The copy gets its own path but shares the gradient.
func (pal *Palette) Duplicate(i int) (int, error) {
	l, err := pal.Layer(i)
	if err != nil {
		return -1, err
	}
	dup := l.Clone()
	if l.name == "" {
		dup.SetName("Layer Copy")
	} else {
		dup.SetName(l.name + " Copy")
	}
	return pal.Add(dup), nil
}

// ContainsPoint reports whether pt lies on the active layer's gradient.
func (pal *Palette) ContainsPoint(pt Point) bool {
	l, err := pal.Active()
	if err != nil {
		return false
	}
	return l.ContainsPoint(pt)
}
