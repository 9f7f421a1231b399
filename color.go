package splinker

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// UndefinedHue is the hue of achromatic colors whose hue carries no information.
const UndefinedHue = -1

// Color is an HSV color with alpha, using 8-bit integer channels: H is in [0, 359] or
// [UndefinedHue], S, V and A are in [0, 255].
//
// Colors are values. The channels are stored exactly as given to [HSV], so
// HSV(h, s, v, a).HSVA() always returns (h, s, v, a).
type Color struct {
	H int
	S int
	V int
	A int
}

var _ color.Color = Color{}

// HSV returns the color with the given hue, saturation, value and alpha.
func HSV(h, s, v, a int) Color {
	return Color{H: h, S: s, V: v, A: a}
}

// RGB returns the color with the given red, green, blue and alpha components, converted
// to HSV.
func RGB(r, g, b, a uint8) Color {
	h, s, v := rgbToHSV(r, g, b)
	return Color{H: h, S: s, V: v, A: int(a)}
}

// ColorFromStd converts any [color.Color] to a Color.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B, n.A)
}

// Channel is an optionally specified color channel.
type Channel struct {
	Value int
	Set   bool
}

// Ch returns a set channel with value v.
func Ch(v int) Channel {
	return Channel{Value: v, Set: true}
}

// ColorSpec describes a color by either its HSV or its RGB channels, plus an optional
// alpha that defaults to 255. Exactly one of the two triples must be fully set.
type ColorSpec struct {
	H, S, V Channel
	R, G, B Channel
	A       Channel
}

// NewColor builds a color from spec. It returns an error wrapping [ErrInvalidColorSpec]
// if the spec mixes HSV and RGB channels, sets only part of a triple, or has a channel
// out of range.
func NewColor(spec ColorSpec) (Color, error) {
	hsvSet := countSet(spec.H, spec.S, spec.V)
	rgbSet := countSet(spec.R, spec.G, spec.B)
	switch {
	case hsvSet > 0 && rgbSet > 0:
		return Color{}, fmt.Errorf("%w: both HSV and RGB channels given", ErrInvalidColorSpec)
	case hsvSet == 0 && rgbSet == 0:
		return Color{}, fmt.Errorf("%w: no channels given", ErrInvalidColorSpec)
	case hsvSet > 0 && hsvSet < 3:
		return Color{}, fmt.Errorf("%w: all of h, s and v must be set", ErrInvalidColorSpec)
	case rgbSet > 0 && rgbSet < 3:
		return Color{}, fmt.Errorf("%w: all of r, g and b must be set", ErrInvalidColorSpec)
	}

	a := 255
	if spec.A.Set {
		a = spec.A.Value
	}
	if !inByteRange(a) {
		return Color{}, fmt.Errorf("%w: alpha %d out of range", ErrInvalidColorSpec, a)
	}

	if hsvSet == 3 {
		h, s, v := spec.H.Value, spec.S.Value, spec.V.Value
		if h < UndefinedHue || h > 359 {
			return Color{}, fmt.Errorf("%w: hue %d out of range", ErrInvalidColorSpec, h)
		}
		if !inByteRange(s) || !inByteRange(v) {
			return Color{}, fmt.Errorf("%w: saturation/value (%d, %d) out of range", ErrInvalidColorSpec, s, v)
		}
		return HSV(h, s, v, a), nil
	}

	r, g, b := spec.R.Value, spec.G.Value, spec.B.Value
	if !inByteRange(r) || !inByteRange(g) || !inByteRange(b) {
		return Color{}, fmt.Errorf("%w: rgb (%d, %d, %d) out of range", ErrInvalidColorSpec, r, g, b)
	}
	return RGB(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// ParseColor parses a color written as #rgb, #rgba, #rrggbb, #rrggbbaa or as an SVG
// color keyword such as "tomato".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	nc, ok := colornames.Map[s]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColorSpec, s)
	}
	return ColorFromStd(nc), nil
}

func parseHex(hex string) (Color, error) {
	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return Color{}, fmt.Errorf("%w: malformed hex color %q", ErrInvalidColorSpec, "#"+hex)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*digits < len(hex); i++ {
		n, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: malformed hex color %q", ErrInvalidColorSpec, "#"+hex)
		}
		if digits == 1 {
			n *= 17
		}
		ch[i] = uint8(n)
	}
	return RGB(ch[0], ch[1], ch[2], ch[3]), nil
}

// HSVA returns the channels exactly as stored.
func (c Color) HSVA() (h, s, v, a int) {
	return c.H, c.S, c.V, c.A
}

// IsAchromatic reports whether the hue of c carries no information.
func (c Color) IsAchromatic() bool {
	return c.H < 0 || c.S == 0 || c.V == 0
}

// ToRGB converts c to 8-bit red, green and blue components using the six-sector
// formula. Colors with an undefined hue become gray with all components equal to V.
func (c Color) ToRGB() (r, g, b uint8) {
	if c.H < 0 {
		v := clampByte(c.V)
		return uint8(v), uint8(v), uint8(v)
	}

	h := float64(c.H) / 60
	s := float64(clampByte(c.S)) / 255
	v := float64(clampByte(c.V)) / 255

	i := int(h) % 6
	f := h - math.Floor(h)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var rf, gf, bf float64
	switch i {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return unitToByte(rf), unitToByte(gf), unitToByte(bf)
}

// NRGBA returns c as a non-premultiplied standard library color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.ToRGB()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clampByte(c.A))}
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("hsva(%d, %d, %d, %d)", c.H, c.S, c.V, c.A)
}

// rgbToHSV converts 8-bit RGB to HSV with h in [0, 359] and s, v in [0, 255].
// Achromatic inputs get hue 0.
func rgbToHSV(r, g, b uint8) (h, s, v int) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	cmax := max(rf, gf, bf)
	cmin := min(rf, gf, bf)
	delta := cmax - cmin

	var hDeg float64
	switch {
	case delta == 0:
		hDeg = 0
	case cmax == rf:
		hDeg = 60 * math.Mod((gf-bf)/delta, 6)
		if hDeg < 0 {
			hDeg += 360
		}
	case cmax == gf:
		hDeg = 60 * ((bf-rf)/delta + 2)
	default:
		hDeg = 60 * ((rf-gf)/delta + 4)
	}

	var sf float64
	if cmax != 0 {
		sf = delta / cmax
	}

	h = int(math.Round(hDeg)) % 360
	s = int(math.Round(sf * 255))
	v = int(math.Round(cmax * 255))

	// Rounding can push values just past the edges.
	h = min(max(h, 0), 359)
	s = clampByte(s)
	v = clampByte(v)
	return h, s, v
}

func countSet(chs ...Channel) int {
	var n int
	for _, ch := range chs {
		if ch.Set {
			n++
		}
	}
	return n
}

func inByteRange(v int) bool { return v >= 0 && v <= 255 }

func clampByte(v int) int { return min(max(v, 0), 255) }

func unitToByte(f float64) uint8 {
	return uint8(clampByte(int(math.Round(f * 255))))
}
