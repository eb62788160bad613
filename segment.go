package polyline

import (
	"fmt"
	"math"
)

// SegmentKind tags the curve family of a [Segment].
type SegmentKind int

const (
	// LineKind draws a straight line from the previous point.
	LineKind SegmentKind = iota + 1
	// MoveToKind lifts the pen. Segment 0 of every path is a MoveTo.
	MoveToKind
	// MoveToNewSubpathKind lifts the pen and starts a new subpath.
	MoveToNewSubpathKind
	// QuadraticBezierKind uses Controls[0] as its control point.
	QuadraticBezierKind
	// CubicBezierKind uses Controls[0] and Controls[1] as its control points.
	CubicBezierKind
	// NurbsKind starts a rational B-spline. The curve's control points are
	// the previous point, this segment's point and the points of the
	// NurbsContinuation segments that follow it. QuadrantHint is the degree.
	NurbsKind
	NurbsContinuationKind
	// SplineKind is like NurbsKind with all weights equal to 1.
	SplineKind
	SplineContinuationKind
	// ParabolaKind bends the chord into a parabola. Param is the apex height
	// and QuadrantHint the apex's lateral offset along the chord.
	ParabolaKind
	// EllipticalArc3PtKind is an elliptical arc through Controls[0]. Weight
	// is the ellipse rotation in degrees and Param the ratio of its x and y
	// semi-axes.
	EllipticalArc3PtKind
	// ArcLineKind is a circular arc over the chord. |Param| is the sagitta;
	// its sign picks the side.
	ArcLineKind
	// EllipseKind is a quarter ellipse. Param is the rotation of the
	// ellipse's axes in radians and QuadrantHint the [Quadrant] the arc
	// occupies.
	EllipseKind
)

var kindNames = [...]string{
	LineKind:               "line",
	MoveToKind:             "move",
	MoveToNewSubpathKind:   "move-subpath",
	QuadraticBezierKind:    "quad",
	CubicBezierKind:        "cubic",
	NurbsKind:              "nurbs",
	NurbsContinuationKind:  "nurbs-cont",
	SplineKind:             "spline",
	SplineContinuationKind: "spline-cont",
	ParabolaKind:           "parabola",
	EllipticalArc3PtKind:   "arc3",
	ArcLineKind:            "arcline",
	EllipseKind:            "ellipse",
}

func (k SegmentKind) String() string {
	if k < LineKind || int(k) >= len(kindNames) {
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k SegmentKind) MarshalText() ([]byte, error) {
	if k < LineKind || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("polyline: invalid segment kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SegmentKind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name != "" && name == string(b) {
			*k = SegmentKind(i)
			return nil
		}
	}
	return fmt.Errorf("polyline: unknown segment kind %q", b)
}

// IsMove reports whether the kind lifts the pen.
func (k SegmentKind) IsMove() bool {
	return k == MoveToKind || k == MoveToNewSubpathKind
}

// continuation returns the continuation kind that extends a run started by
// k, or 0 if k doesn't start a run.
func (k SegmentKind) continuation() SegmentKind {
	switch k {
	case NurbsKind:
		return NurbsContinuationKind
	case SplineKind:
		return SplineContinuationKind
	default:
		return 0
	}
}

// Segment is one edge of a [Path]. Point and Controls are relative to the
// path's start point.
type Segment struct {
	Kind     SegmentKind
	Point    Point
	Controls [2]Point
	// Weight is the rotation in degrees for 3-point arcs and the control
	// weight for NURBS segments.
	Weight float64
	Param  float64
	// QuadrantHint tells apart curves that share the same Param. It is a
	// Quadrant for quarter ellipses, the apex offset for parabolas and the
	// degree for NURBS and spline headers.
	QuadrantHint float64
}

// MoveTo returns a segment that moves the pen to pt.
func MoveTo(pt Point) Segment {
	return Segment{Kind: MoveToKind, Point: pt}
}

// LineTo returns a straight segment ending at pt.
func LineTo(pt Point) Segment {
	return Segment{Kind: LineKind, Point: pt}
}

// QuadTo returns a quadratic Bézier segment.
func QuadTo(ctrl, pt Point) Segment {
	return Segment{Kind: QuadraticBezierKind, Point: pt, Controls: [2]Point{ctrl}}
}

// CubicTo returns a cubic Bézier segment.
func CubicTo(ctrl0, ctrl1, pt Point) Segment {
	return Segment{Kind: CubicBezierKind, Point: pt, Controls: [2]Point{ctrl0, ctrl1}}
}

// ParabolaTo returns a parabolic segment whose apex sits height units off
// the chord, shifted by offset along it.
func ParabolaTo(pt Point, height, offset float64) Segment {
	return Segment{Kind: ParabolaKind, Point: pt, Param: height, QuadrantHint: offset}
}

// ArcLineTo returns a circular arc segment with the signed sagitta param.
func ArcLineTo(pt Point, param float64) Segment {
	return Segment{Kind: ArcLineKind, Point: pt, Param: param}
}

// ArcThrough returns an elliptical arc that passes through through. rotation
// is in degrees.
func ArcThrough(through, pt Point, rotation, eccentricity float64) Segment {
	return Segment{
		Kind:     EllipticalArc3PtKind,
		Point:    pt,
		Controls: [2]Point{through},
		Weight:   rotation,
		Param:    eccentricity,
	}
}

// QuarterTo returns a quarter ellipse segment with axes rotated by angle.
func QuarterTo(pt Point, angle float64, q Quadrant) Segment {
	return Segment{Kind: EllipseKind, Point: pt, Param: angle, QuadrantHint: float64(q)}
}

// NurbsTo returns a NURBS run through the given control points. The first
// control point of the curve is the previous point of the path. weights may
// be nil; missing weights are 1.
func NurbsTo(degree int, pts []Point, weights []float64) []Segment {
	return bsplineRun(NurbsKind, degree, pts, weights)
}

// SplineTo returns a non-rational B-spline run. See [NurbsTo].
func SplineTo(degree int, pts []Point) []Segment {
	return bsplineRun(SplineKind, degree, pts, nil)
}

func bsplineRun(kind SegmentKind, degree int, pts []Point, weights []float64) []Segment {
	segs := make([]Segment, len(pts))
	for i, pt := range pts {
		seg := Segment{Kind: kind.continuation(), Point: pt, Weight: 1}
		if i < len(weights) {
			seg.Weight = weights[i]
		}
		if i == 0 {
			seg.Kind = kind
			seg.QuadrantHint = float64(degree)
		}
		segs[i] = seg
	}
	return segs
}

// Quadrant returns QuadrantHint as a Quadrant.
func (s Segment) Quadrant() Quadrant {
	q := int(math.Round(s.QuadrantHint)) % 4
	if q < 0 {
		q += 4
	}
	return Quadrant(q)
}

// ControlCount returns how many entries of Controls the segment's kind uses.
func (s Segment) ControlCount() int {
	switch s.Kind {
	case QuadraticBezierKind, EllipticalArc3PtKind:
		return 1
	case CubicBezierKind:
		return 2
	default:
		return 0
	}
}

// mapPoints replaces Point and the used Controls with f applied to them.
func (s *Segment) mapPoints(f func(Point) Point) {
	s.Point = f(s.Point)
	for i, n := 0, s.ControlCount(); i < n; i++ {
		s.Controls[i] = f(s.Controls[i])
	}
}

func (s *Segment) translate(v Vec2) {
	s.mapPoints(func(pt Point) Point { return pt.Translate(v) })
}
