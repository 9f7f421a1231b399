package splinker

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a path, as consumed by a renderer.
//
// A valid sequence has a MoveTo at the beginning. For MoveTo and LineTo, P0 is the
// target. For CubicTo, P0 and P1 are the control points and P2 is the end point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

// BezPath is a materialized sequence of path elements.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a [MoveTo] element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a [LineTo] element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a [CubicTo] element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a [ClosePath] element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// SVG converts the path to a string of SVG path commands.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as SVG path commands to w.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}
