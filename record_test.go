package splinker

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointJSON(t *testing.T) {
	b, err := json.Marshal(Pt(1.5, -2))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "[1.5,-2]", string(b))

	var pt Point
	if err := json.Unmarshal([]byte("[3, 4]"), &pt); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(3, 4), pt)
	if err := json.Unmarshal([]byte(`{"x": 3}`), &pt); err == nil {
		t.Error("decoded a point from an object")
	}
}

func TestPathRecordJSON(t *testing.T) {
	p := NewPath(CircleEditor{}, []Point{Pt(0, 0), Pt(10, 0)}, false)
	b, err := json.Marshal(p.Record())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, `{"points":[[0,0],[10,0]],"closed":false,"editor":"circle"}`, string(b))
}

func TestPaletteRecordRoundTrip(t *testing.T) {
	wheel := NewLayer("wheel", NewWheelGradient(Pt(100, 100), 50, 200, 128),
		NewPath(nil, []Point{Pt(90, 90), Pt(110, 90), Pt(110, 110)}, true))
	wheel.Path().SetParam("tension", 0.5)
	sq := NewLayer("square", NewSquareGradient(Pt(0, 0), 20, 42, 255),
		NewPath(CircleEditor{}, []Point{Pt(0, 0), Pt(5, 0)}, false))
	pal := NewPalette("test", wheel, sq)
	pal.SetActive(1)

	rec := pal.Record()
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"active_idx":1`, `"kind":"hsv-wheel"`, `"kind":"hsv-square"`, `"editor":"catmull-rom"`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("%s missing from %s", key, b)
		}
	}

	var decoded PaletteRecord
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatal(err)
	}
	// Empty parameter maps are omitted from the JSON.
	diff(t, rec, decoded, cmpopts.EquateEmpty())

	got, err := PaletteFromRecord(decoded)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, rec, got.Record(), cmpopts.EquateEmpty())
	diff(t, 1, got.ActiveIndex())
	l, _ := got.Layer(0)
	diff(t, wheel.Gradient(), l.Gradient(), cmpGradients)
	if !l.Path().Closed() {
		t.Error("decoded path isn't closed")
	}
}

func TestRecordDecodingErrors(t *testing.T) {
	if _, err := PathFromRecord(PathRecord{Editor: "bezier"}); !errors.Is(err, ErrUnknownEditor) {
		t.Errorf("got error %v, want ErrUnknownEditor", err)
	}
	rec := LayerRecord{Name: "x", Gradient: GradientRecord{Kind: "hsl-triangle"}, Path: PathRecord{Editor: CatmullRomEditorName}}
	if _, err := LayerFromRecord(rec); !errors.Is(err, ErrUnknownGradient) {
		t.Errorf("got error %v, want ErrUnknownGradient", err)
	}
	if _, err := PaletteFromRecord(PaletteRecord{Layers: []LayerRecord{rec}}); !errors.Is(err, ErrUnknownGradient) {
		t.Errorf("got error %v, want ErrUnknownGradient", err)
	}

	// Closed flags and active indices that can't hold are repaired.
	p, err := PathFromRecord(PathRecord{Points: []Point{Pt(0, 0), Pt(1, 1)}, Closed: true, Editor: CatmullRomEditorName})
	if err != nil {
		t.Fatal(err)
	}
	if p.Closed() {
		t.Error("two-point path decoded as closed")
	}
	pal, err := PaletteFromRecord(PaletteRecord{ActiveIndex: 7, Layers: []LayerRecord{{
		Gradient: DefaultWheelGradient().Record(),
		Path:     PathRecord{Editor: CatmullRomEditorName},
	}}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, pal.ActiveIndex())
}
