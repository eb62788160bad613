package polyline

import "math"

const (
	// MinArcCurve and MaxArcCurve bound the sagitta set by dragging an
	// arc-line's handle.
	MinArcCurve = 1
	MaxArcCurve = 500

	minArcChord = 1e-9
)

// ChordArc is a circular arc from P0 to P1 whose midpoint sits Curve units
// off the chord. Reversed arcs bulge to the chord's [Vec2.Perp] side, others
// to the opposite side.
type ChordArc struct {
	P0, P1   Point
	Curve    float64
	Reversed bool
}

// chordArcOf builds the arc for a segment. The sign of the segment's param
// encodes the side.
func chordArcOf(pen Point, seg Segment) ChordArc {
	return ChordArc{
		P0:       pen,
		P1:       seg.Point,
		Curve:    math.Abs(seg.Param),
		Reversed: seg.Param >= 0,
	}
}

// Param returns the signed curvature scalar stored in a segment.
func (c ChordArc) Param() float64 {
	if c.Reversed {
		return c.Curve
	}
	return -c.Curve
}

func (c ChordArc) side() float64 {
	if c.Reversed {
		return 1
	}
	return -1
}

// normal returns the unit normal of the chord, or false for a zero-length
// chord.
func (c ChordArc) normal() (Vec2, bool) {
	d := c.P1.Sub(c.P0)
	l := d.Hypot()
	if l < minArcChord {
		return Vec2{}, false
	}
	return d.Perp().Mul(1 / l), true
}

// Apex returns the arc's midpoint, which serves as its handle. For a
// degenerate chord it is P0.
func (c ChordArc) Apex() Point {
	n, ok := c.normal()
	if !ok {
		return c.P0
	}
	return c.P0.Midpoint(c.P1).Translate(n.Mul(c.side() * c.Curve))
}

// RadiusCenter returns the radius and center of the arc's circle.
func (c ChordArc) RadiusCenter() (float64, Point, bool) {
	n, ok := c.normal()
	if !ok || c.Curve <= 0 {
		return 0, Point{}, false
	}
	h := c.P0.Distance(c.P1) / 2
	s := c.Curve
	r := (h*h + s*s) / (2 * s)
	// The center is r away from the apex, towards the chord. For arcs
	// taller than their radius it ends up past the chord.
	center := c.P0.Midpoint(c.P1).Translate(n.Mul(c.side() * (s - r)))
	return r, center, true
}

// Arc converts c into an [Arc].
func (c ChordArc) Arc() (Arc, bool) {
	r, center, ok := c.RadiusCenter()
	if !ok {
		return Arc{}, false
	}
	a := Arc{Center: center, Radii: Vec2{r, r}}
	a0 := a.angleOf(c.P0)
	a1 := a.angleOf(c.P1)
	am := a.angleOf(c.Apex())
	a.StartAngle = a0
	a.SweepAngle = sweepThrough(a0, a1, am)
	return a, true
}

// Points samples n points from P0 to P1.
func (c ChordArc) Points(n int) ([]Point, bool) {
	a, ok := c.Arc()
	if !ok {
		return nil, false
	}
	out := a.Points(n)
	out[0] = c.P0
	out[len(out)-1] = c.P1
	return out, true
}

// ModifyByPoint makes the arc pass through pt's projection onto the chord's
// normal. The resulting sagitta is clamped to [MinArcCurve, MaxArcCurve].
func (c *ChordArc) ModifyByPoint(pt Point) bool {
	n, ok := c.normal()
	if !ok {
		return false
	}
	s := n.Dot(pt.Sub(c.P0.Midpoint(c.P1)))
	c.Reversed = s >= 0
	c.Curve = min(max(math.Abs(s), MinArcCurve), MaxArcCurve)
	return true
}
