package splinker

import (
	"encoding/json"
	"fmt"
	"maps"
)

// The record types describe the persisted form of the model. They contain only plain
// data and marshal to JSON; points are written as [x, y] pairs.

// MarshalJSON encodes the point as a two-element array.
func (pt Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{pt.X, pt.Y})
}

// UnmarshalJSON decodes a point from a two-element array.
func (pt *Point) UnmarshalJSON(b []byte) error {
	var xy [2]float64
	if err := json.Unmarshal(b, &xy); err != nil {
		return fmt.Errorf("decoding point: %w", err)
	}
	*pt = Pt(xy[0], xy[1])
	return nil
}

// GradientRecord holds a gradient's kind and constructor parameters. Size is the radius
// of wheels and the side length of squares. Value is only used by wheels, Hue only by
// squares.
type GradientRecord struct {
	Kind   string  `json:"kind"`
	Center Point   `json:"center"`
	Size   float64 `json:"size"`
	Value  int     `json:"value"`
	Hue    int     `json:"hue"`
	Alpha  int     `json:"alpha"`
}

type PathRecord struct {
	Points []Point            `json:"points"`
	Closed bool               `json:"closed"`
	Params map[string]float64 `json:"params,omitempty"`
	Editor string             `json:"editor"`
}

type LayerRecord struct {
	Name     string         `json:"name"`
	Gradient GradientRecord `json:"gradient"`
	Path     PathRecord     `json:"path"`
}

type PaletteRecord struct {
	Name        string        `json:"name"`
	ActiveIndex int           `json:"active_idx"`
	Layers      []LayerRecord `json:"layers"`
}

func (p *Path) Record() PathRecord {
	return PathRecord{
		Points: p.Points(),
		Closed: p.closed,
		Params: p.Params(),
		Editor: p.editor.Name(),
	}
}

// PathFromRecord reconstructs a path. The closed flag is dropped for fewer than three
// points.
func PathFromRecord(rec PathRecord) (*Path, error) {
	e, err := NewEditor(rec.Editor)
	if err != nil {
		return nil, fmt.Errorf("decoding path: %w", err)
	}
	p := NewPath(e, rec.Points, rec.Closed)
	maps.Copy(p.params, rec.Params)
	return p, nil
}

func (l *Layer) Record() LayerRecord {
	return LayerRecord{
		Name:     l.name,
		Gradient: l.gradient.Record(),
		Path:     l.path.Record(),
	}
}

func LayerFromRecord(rec LayerRecord) (*Layer, error) {
	g, err := GradientFromRecord(rec.Gradient)
	if err != nil {
		return nil, fmt.Errorf("decoding layer %q: %w", rec.Name, err)
	}
	p, err := PathFromRecord(rec.Path)
	if err != nil {
		return nil, fmt.Errorf("decoding layer %q: %w", rec.Name, err)
	}
	return NewLayer(rec.Name, g, p), nil
}

func (pal *Palette) Record() PaletteRecord {
	rec := PaletteRecord{
		Name:        pal.name,
		ActiveIndex: pal.active,
		Layers:      make([]LayerRecord, len(pal.layers)),
	}
	for i, l := range pal.layers {
		rec.Layers[i] = l.Record()
	}
	return rec
}

// PaletteFromRecord reconstructs a palette. An active index that names no layer
// selects the first layer, if any.
func PaletteFromRecord(rec PaletteRecord) (*Palette, error) {
	layers := make([]*Layer, len(rec.Layers))
	for i, lr := range rec.Layers {
		l, err := LayerFromRecord(lr)
		if err != nil {
			return nil, fmt.Errorf("decoding palette %q: %w", rec.Name, err)
		}
		layers[i] = l
	}
	pal := NewPalette(rec.Name, layers...)
	if rec.ActiveIndex >= 0 && rec.ActiveIndex < len(layers) {
		pal.active = rec.ActiveIndex
	}
	return pal, nil
}
