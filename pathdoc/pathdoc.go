// Package pathdoc stores polyline paths as TOML documents.
//
// A document looks like this:
//
//	start = [10.0, 20.0]
//	closed = false
//	normalized_extent = [0.0, 0.0]
//	offset = [0.0, 0.0]
//	thickness = 2.0
//
//	[[segment]]
//	kind = 'move'
//	point = [0.0, 0.0]
//
//	[[segment]]
//	kind = 'quad'
//	point = [100.0, 0.0]
//	controls = [[50.0, -40.0]]
//
// Segment points are relative to start. normalized_extent and offset are
// derived from the segments; they are written for readers of the file and
// recomputed when a document is loaded.
//
// The same document can be stored as YAML with [EncodeYAML] and
// [DecodeYAML]. There the segment list is called segments.
package pathdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/polyline"
)

// ErrInvalidDocument is returned when a document doesn't describe a valid
// path.
var ErrInvalidDocument = errors.New("pathdoc: invalid document")

// Point is a position stored as an [x, y] array.
type Point [2]float64

func pointOf(pt polyline.Point) Point {
	return Point{pt.X, pt.Y}
}

func (pt Point) point() polyline.Point {
	return polyline.Pt(pt[0], pt[1])
}

func (pt Point) finite() bool {
	for _, v := range pt {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Document is the TOML representation of a path.
type Document struct {
	Start            Point     `toml:"start" yaml:"start"`
	Closed           bool      `toml:"closed" yaml:"closed"`
	NormalizedExtent Point     `toml:"normalized_extent" yaml:"normalized_extent"`
	Offset           Point     `toml:"offset" yaml:"offset"`
	Thickness        float64   `toml:"thickness" yaml:"thickness"`
	Segments         []Segment `toml:"segment" yaml:"segments"`
}

// Segment is the TOML representation of one segment. Kinds are stored by
// name. Only the controls a kind uses are stored.
type Segment struct {
	Kind         polyline.SegmentKind `toml:"kind" yaml:"kind"`
	Point        Point                `toml:"point" yaml:"point,flow"`
	Controls     []Point              `toml:"controls,omitempty" yaml:"controls,omitempty,flow"`
	Weight       float64              `toml:"weight,omitempty" yaml:"weight,omitempty"`
	Param        float64              `toml:"param,omitempty" yaml:"param,omitempty"`
	QuadrantHint float64              `toml:"quadrant_hint,omitempty" yaml:"quadrant_hint,omitempty"`
}

// FromPath returns the document for p.
func FromPath(p *polyline.Path) Document {
	doc := Document{
		Start:            pointOf(p.Start),
		Closed:           p.Closed,
		NormalizedExtent: Point{p.NormalizedExtent.X, p.NormalizedExtent.Y},
		Offset:           Point{p.Offset.X, p.Offset.Y},
		Thickness:        p.Thickness,
		Segments:         make([]Segment, len(p.Segments)),
	}
	for i, seg := range p.Segments {
		s := Segment{
			Kind:         seg.Kind,
			Point:        pointOf(seg.Point),
			Weight:       seg.Weight,
			Param:        seg.Param,
			QuadrantHint: seg.QuadrantHint,
		}
		for _, c := range seg.Controls[:seg.ControlCount()] {
			s.Controls = append(s.Controls, pointOf(c))
		}
		doc.Segments[i] = s
	}
	return doc
}

// Path validates the document and builds the path it describes.
func (doc Document) Path() (*polyline.Path, error) {
	n := len(doc.Segments)
	switch {
	case n == 0:
		return nil, fmt.Errorf("%w: no segments", ErrInvalidDocument)
	case n > polyline.MaxSegments:
		return nil, fmt.Errorf("%w: %d segments, at most %d allowed", ErrInvalidDocument, n, polyline.MaxSegments)
	case !doc.Segments[0].Kind.IsMove():
		return nil, fmt.Errorf("%w: first segment is %v, not a move", ErrInvalidDocument, doc.Segments[0].Kind)
	case doc.Segments[0].Point != (Point{}):
		return nil, fmt.Errorf("%w: first segment is at %v, not the origin", ErrInvalidDocument, doc.Segments[0].Point)
	case !doc.Start.finite():
		return nil, fmt.Errorf("%w: start is not finite", ErrInvalidDocument)
	case doc.Thickness < 0 || math.IsNaN(doc.Thickness) || math.IsInf(doc.Thickness, 0):
		return nil, fmt.Errorf("%w: invalid thickness %g", ErrInvalidDocument, doc.Thickness)
	}

	p := &polyline.Path{
		Start:     doc.Start.point(),
		Closed:    doc.Closed,
		Thickness: doc.Thickness,
		Segments:  make([]polyline.Segment, n),
	}
	for i, s := range doc.Segments {
		seg, err := s.segment()
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		p.Segments[i] = seg
	}
	if p.Closed {
		if n < 3 {
			return nil, fmt.Errorf("%w: closed path with %d segments", ErrInvalidDocument, n)
		}
		if last := doc.Segments[n-1].Point; last != doc.Segments[0].Point {
			return nil, fmt.Errorf("%w: closed path ends at %v, not at its start", ErrInvalidDocument, last)
		}
	}
	p.RecomputeFrame()
	return p, nil
}

func (s Segment) segment() (polyline.Segment, error) {
	if _, err := s.Kind.MarshalText(); err != nil {
		return polyline.Segment{}, fmt.Errorf("%w: missing or invalid kind", ErrInvalidDocument)
	}
	seg := polyline.Segment{
		Kind:         s.Kind,
		Point:        s.Point.point(),
		Weight:       s.Weight,
		Param:        s.Param,
		QuadrantHint: s.QuadrantHint,
	}
	if want := seg.ControlCount(); len(s.Controls) != want {
		return polyline.Segment{}, fmt.Errorf("%w: %v needs %d controls, got %d", ErrInvalidDocument, s.Kind, want, len(s.Controls))
	}
	if !s.Point.finite() {
		return polyline.Segment{}, fmt.Errorf("%w: point is not finite", ErrInvalidDocument)
	}
	for i, c := range s.Controls {
		if !c.finite() {
			return polyline.Segment{}, fmt.Errorf("%w: control %d is not finite", ErrInvalidDocument, i)
		}
		seg.Controls[i] = c.point()
	}
	for _, v := range []float64{s.Weight, s.Param, s.QuadrantHint} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return polyline.Segment{}, fmt.Errorf("%w: parameter is not finite", ErrInvalidDocument)
		}
	}
	return seg, nil
}

// Encode writes p to w as a TOML document.
func Encode(w io.Writer, p *polyline.Path) error {
	if err := toml.NewEncoder(w).Encode(FromPath(p)); err != nil {
		return fmt.Errorf("pathdoc: encoding path: %w", err)
	}
	return nil
}

// Decode reads a TOML document from r and returns its path. Unknown keys are
// an error.
func Decode(r io.Reader) (*polyline.Path, error) {
	var doc Document
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("pathdoc: decoding document: %w", err)
	}
	return doc.load("toml")
}

func (doc Document) load(format string) (*polyline.Path, error) {
	p, err := doc.Path()
	if err != nil {
		return nil, err
	}
	polyline.Logger().Debug("pathdoc: decoded path", "format", format, "segments", p.Len(), "closed", p.Closed)
	return p, nil
}

// Marshal returns p as a TOML document.
func Marshal(p *polyline.Path) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a TOML document and returns its path.
func Unmarshal(b []byte) (*polyline.Path, error) {
	return Decode(bytes.NewReader(b))
}
