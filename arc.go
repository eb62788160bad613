package polyline

import (
	"math"
)

// Arc is a section of an ellipse. A circular arc has equal radii.
//
// Angles are in radians and follow the same convention as [Rotate]: positive
// sweeps turn clockwise in a y-down space.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// Eval returns the point at t ∈ [0, 1] along the sweep.
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+t*a.SweepAngle))
}

// Points samples n points from the start to the end of the arc, both
// included. n is raised to 2 if smaller.
func (a Arc) Points(n int) []Point {
	return evalEven(n, a.Eval)
}

// angleOf returns the ellipse angle at which pt lies, as seen from the center
// in the ellipse's unrotated frame.
func (a Arc) angleOf(pt Point) float64 {
	v := rotatePt(pt.Sub(a.Center), -a.XRotation)
	return math.Atan2(v.Y/a.Radii.Y, v.X/a.Radii.X)
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// angle, and returns a point on the ellipse relative to its center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// positiveAngle maps th into [0, 2π).
func positiveAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// sweepThrough returns the signed sweep from a0 to a1 that passes through
// am.
func sweepThrough(a0, a1, am float64) float64 {
	d1 := positiveAngle(a1 - a0)
	dm := positiveAngle(am - a0)
	if dm <= d1 {
		return d1
	}
	return d1 - 2*math.Pi
}

// sweepWithin returns the sweep from a0 to a1 with the smaller magnitude.
func sweepWithin(a0, a1 float64) float64 {
	d := positiveAngle(a1 - a0)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
