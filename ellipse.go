package polyline

import (
	"fmt"
	"math"
)

const (
	minArcOrientation = 1e-9
	// verticalSlope is the |dx| below which a handle direction counts as
	// vertical.
	verticalSlope = 0.001
	minQuarterChord = 1
)

// ThreePointArc is an elliptical arc from P0 to P2 that passes through P1.
//
// The ellipse's axes are rotated by Rotation radians, and its x semi-axis is
// Eccentricity times its y semi-axis. A non-positive eccentricity means a
// circle.
type ThreePointArc struct {
	P0, P1, P2   Point
	Rotation     float64
	Eccentricity float64
}

func threePointArcOf(pen Point, seg Segment) ThreePointArc {
	return ThreePointArc{
		P0:           pen,
		P1:           seg.Controls[0],
		P2:           seg.Point,
		Rotation:     seg.Weight * math.Pi / 180,
		Eccentricity: seg.Param,
	}
}

// Arc solves for the ellipse through the three points. It reports false if
// the through point coincides with an endpoint or the points are collinear.
func (ta ThreePointArc) Arc() (Arc, bool) {
	const eps = 1e-9
	if ta.P1.DistanceSquared(ta.P0) < eps || ta.P1.DistanceSquared(ta.P2) < eps {
		return Arc{}, false
	}
	dir := orientation(ta.P0, ta.P1, ta.P2)
	if math.Abs(dir) < minArcOrientation {
		return Arc{}, false
	}
	e := ta.Eccentricity
	if e <= 0 {
		e = 1
	}

	// In a frame rotated back by Rotation and squeezed by 1/e along x, the
	// ellipse is a circle through the three points.
	toCircle := Rotate(-ta.Rotation).ThenScale(1/e, 1)
	q0 := ta.P0.Transform(toCircle)
	q1 := ta.P1.Transform(toCircle)
	q2 := ta.P2.Transform(toCircle)
	m01 := q0.Midpoint(q1)
	m12 := q1.Midpoint(q2)
	b01 := Line{m01, m01.Translate(q1.Sub(q0).Perp())}
	b12 := Line{m12, m12.Translate(q2.Sub(q1).Perp())}
	center, ok := b01.CrossingPoint(b12)
	if !ok {
		return Arc{}, false
	}
	r := center.Distance(q0)

	a0 := q0.Sub(center).Angle()
	a2 := q2.Sub(center).Angle()
	// Scaling by a positive factor and rotating keep the orientation, so the
	// winding of the input points decides the direction of the sweep.
	sweep := positiveAngle(a2 - a0)
	if dir < 0 {
		sweep -= 2 * math.Pi
	}
	return Arc{
		Center:     center.Transform(toCircle.Invert()),
		Radii:      Vec2{e * r, r},
		StartAngle: a0,
		SweepAngle: sweep,
		XRotation:  ta.Rotation,
	}, true
}

// Points samples n points from P0 to P2.
func (ta ThreePointArc) Points(n int) ([]Point, bool) {
	a, ok := ta.Arc()
	if !ok {
		return nil, false
	}
	out := a.Points(n)
	out[0] = ta.P0
	out[len(out)-1] = ta.P2
	return out, true
}

// Quadrant names the quarter of an ellipse, relative to its center, that a
// quarter arc occupies. Directions are for a y-down space.
type Quadrant int

const (
	QuadrantTopLeft Quadrant = iota
	QuadrantBottomLeft
	QuadrantBottomRight
	QuadrantTopRight
)

func (q Quadrant) String() string {
	switch q {
	case QuadrantTopLeft:
		return "TopLeft"
	case QuadrantBottomLeft:
		return "BottomLeft"
	case QuadrantBottomRight:
		return "BottomRight"
	case QuadrantTopRight:
		return "TopRight"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// ClassifyQuadrant returns the quadrant occupied by a quarter arc from p0 to
// p1 whose ellipse axes are rotated by angle and whose center lies on the
// axis through p0.
func ClassifyQuadrant(p0, p1 Point, angle float64) Quadrant {
	v := rotatePt(p1.Sub(p0), -angle)
	if v.X > 0 {
		if v.Y > 0 {
			return QuadrantBottomLeft
		}
		return QuadrantTopLeft
	}
	if v.Y > 0 {
		return QuadrantBottomRight
	}
	return QuadrantTopRight
}

// QuarterArc is a quarter of an ellipse from P0 to P1 whose axes are rotated
// by Angle radians.
//
// P0 and P1 span a rectangle in the rotated frame. The ellipse is centered
// on one of its two free corners, which gives two arcs bulging in opposite
// directions; Quadrant picks one.
type QuarterArc struct {
	P0, P1   Point
	Angle    float64
	Quadrant Quadrant
}

func quarterArcOf(pen Point, seg Segment) QuarterArc {
	return QuarterArc{P0: pen, P1: seg.Point, Angle: seg.Param, Quadrant: seg.Quadrant()}
}

// Center returns the ellipse center, which serves as the arc's handle.
func (qa QuarterArc) Center() Point {
	v := rotatePt(qa.P1.Sub(qa.P0), -qa.Angle)
	c := Vec2{v.X, 0}
	if ClassifyQuadrant(qa.P0, qa.P1, qa.Angle) != qa.Quadrant {
		c = Vec2{0, v.Y}
	}
	return qa.P0.Translate(rotatePt(c, qa.Angle))
}

// Arc converts qa into an [Arc]. It reports false if either axis is zero.
func (qa QuarterArc) Arc() (Arc, bool) {
	const eps = 1e-9
	v := rotatePt(qa.P1.Sub(qa.P0), -qa.Angle)
	if math.Abs(v.X) < eps || math.Abs(v.Y) < eps {
		return Arc{}, false
	}
	a := Arc{
		Center:    qa.Center(),
		Radii:     Vec2{math.Abs(v.X), math.Abs(v.Y)},
		XRotation: qa.Angle,
	}
	a0 := a.angleOf(qa.P0)
	a.StartAngle = a0
	a.SweepAngle = sweepWithin(a0, a.angleOf(qa.P1))
	return a, true
}

// Points samples n points from P0 to P1.
func (qa QuarterArc) Points(n int) ([]Point, bool) {
	a, ok := qa.Arc()
	if !ok {
		return nil, false
	}
	out := a.Points(n)
	out[0] = qa.P0
	out[len(out)-1] = qa.P1
	return out, true
}

// SetCenter derives Angle and Quadrant from a handle at pt. The axis through
// P0 points at pt; the quadrant follows from where P1 lies in that frame.
func (qa *QuarterArc) SetCenter(pt Point) bool {
	if qa.P0.Distance(qa.P1) < minQuarterChord {
		return false
	}
	d := pt.Sub(qa.P0)
	if math.Abs(d.X) < verticalSlope {
		qa.Angle = math.Pi / 2
	} else {
		qa.Angle = math.Atan(d.Y / d.X)
	}
	qa.Quadrant = ClassifyQuadrant(qa.P0, qa.P1, qa.Angle)
	return true
}
