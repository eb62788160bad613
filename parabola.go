package polyline

import "math"

const (
	// parabolaOffsetSteps is the number of apex offset steps per unit.
	parabolaOffsetSteps = 6
	minParabolaChord   = 1
	minParabolaHeight  = 1
)

// Parabola is a parabolic arc over the chord from P0 to P1.
//
// In a frame centered on the chord's midpoint with the x axis along the
// chord, the apex lies at (Offset, Height). Positive heights bulge towards
// the chord's [Vec2.Perp] side.
type Parabola struct {
	P0, P1 Point
	Height float64
	Offset float64
}

func parabolaOf(pen Point, seg Segment) Parabola {
	return Parabola{P0: pen, P1: seg.Point, Height: seg.Param, Offset: seg.QuadrantHint}
}

// frame returns the transform from the chord's horizontal frame back to the
// chord's actual orientation.
func (pb Parabola) frame() (Affine, bool) {
	if pb.P0.Distance(pb.P1) < minParabolaChord {
		return Affine{}, false
	}
	return RotateAbout(pb.P1.Sub(pb.P0).Angle(), pb.P0.Midpoint(pb.P1)), true
}

// Points samples n points from P0 to P1. It reports false if the chord or
// the height are too small to bend, in which case the caller should draw the
// chord.
func (pb Parabola) Points(n int) ([]Point, bool) {
	aff, ok := pb.frame()
	if !ok || math.Abs(pb.Height) < minParabolaHeight {
		return nil, false
	}
	mid := pb.P0.Midpoint(pb.P1)
	half := pb.P0.Distance(pb.P1) / 2
	out := evalEven(n, func(t float64) Point {
		// s runs from -1 to 1. The curve is y = a·x² around the apex, sheared
		// so that the apex sits Offset along the chord.
		s := 2*t - 1
		k := 1 - s*s
		return Pt(mid.X+s*half+pb.Offset*k, mid.Y+pb.Height*k)
	})
	transformPoints(out, aff)
	out[0] = pb.P0
	out[len(out)-1] = pb.P1
	return out, true
}

// Apex returns the handle position: the point of the curve halfway along
// its parameter.
func (pb Parabola) Apex() (Point, bool) {
	aff, ok := pb.frame()
	if !ok {
		return Point{}, false
	}
	mid := pb.P0.Midpoint(pb.P1)
	return Pt(mid.X+pb.Offset, mid.Y+pb.Height).Transform(aff), true
}

// SetApex solves Height and Offset so that the apex lies at pt. The offset
// is rounded to multiples of 1/6.
func (pb *Parabola) SetApex(pt Point) bool {
	aff, ok := pb.frame()
	if !ok {
		return false
	}
	mid := pb.P0.Midpoint(pb.P1)
	local := pt.Transform(aff.Invert()).Sub(mid)
	pb.Height = local.Y
	pb.Offset = math.Round(local.X*parabolaOffsetSteps) / parabolaOffsetSteps
	return true
}
