package polyline

import (
	"math"
)

// FlipAxis selects the mirror axes of [Path.Flip].
type FlipAxis int

const (
	// FlipHorizontal mirrors left and right.
	FlipHorizontal FlipAxis = 1 << iota
	// FlipVertical mirrors top and bottom.
	FlipVertical
)

// Scale scales the path by (sx, sy) about Start. A scale of (1, 1) does
// nothing.
func (p *Path) Scale(sx, sy float64) {
	p.ScaleAbout(p.Start, sx, sy)
}

// ScaleAbout scales the path by (sx, sy) about origin.
//
// Parabolas, arc-lines and quarter ellipses are not scaled point by point.
// Their handles are scaled instead and the segment parameters solved again,
// so the curves keep their character.
func (p *Path) ScaleAbout(origin Point, sx, sy float64) {
	if sx == 1 && sy == 1 {
		return
	}
	if sx == 0 || sy == 0 {
		Logger().Warn("polyline: ignoring zero scale", "sx", sx, "sy", sy)
		return
	}
	hs := p.captureHandles(func(seg Segment) bool {
		switch seg.Kind {
		case ParabolaKind, EllipseKind:
			return true
		case ArcLineKind:
			return seg.Param != 0
		default:
			return false
		}
	})
	aff := ScaleAbout(sx, sy, origin)
	p.transformModel(aff)
	hs.restore(p, aff)
	p.clearCache()
	p.RecomputeFrame()
}

// Rotate rotates the path by angle radians about pivot. Positive angles turn
// clockwise in a y-down space.
func (p *Path) Rotate(angle float64, pivot Point) {
	p.transformModel(RotateAbout(angle, pivot))
	deg := angle * 180 / math.Pi
	for i := range p.Segments {
		seg := &p.Segments[i]
		switch seg.Kind {
		case EllipseKind:
			seg.Param += angle
		case EllipticalArc3PtKind:
			seg.Weight = normalizeDegrees(seg.Weight + deg)
		}
	}
	p.clearCache()
	p.RecomputeFrame()
}

// Flip mirrors the path about the center lines of its frame. Flipping twice
// on the same axis restores the path.
func (p *Path) Flip(axis FlipAxis) {
	c := p.Frame.Center()
	aff := Identity
	if axis&FlipHorizontal != 0 {
		aff = Reflect(c, Vec2{0, 1}).Mul(aff)
	}
	if axis&FlipVertical != 0 {
		aff = Reflect(c, Vec2{1, 0}).Mul(aff)
	}
	if aff == Identity {
		return
	}
	hs := p.captureHandles(func(seg Segment) bool {
		return seg.Kind == EllipseKind
	})
	p.transformModel(aff)
	if aff.IsReflection() {
		for i := range p.Segments {
			seg := &p.Segments[i]
			switch seg.Kind {
			case ArcLineKind, ParabolaKind:
				// The apex offset along the chord is unchanged.
				seg.Param = -seg.Param
			case EllipticalArc3PtKind:
				seg.Weight = normalizeDegrees(360 - seg.Weight)
			}
		}
	}
	hs.restore(p, aff)
	p.clearCache()
	p.RecomputeFrame()
}

// transformModel applies aff to the unscaled document position of every
// segment point. Start becomes the transformed position of segment 0, which
// is then the origin.
func (p *Path) transformModel(aff Affine) {
	if len(p.Segments) == 0 {
		p.Start = p.Start.Transform(aff)
		return
	}
	start := p.Start
	origin := p.model(p.Segments[0].Point).Transform(aff)
	for i := range p.Segments {
		p.Segments[i].mapPoints(func(q Point) Point {
			return Point(start.Translate(Vec2(q)).Transform(aff).Sub(origin))
		})
	}
	p.Start = origin
}

// normalizeDegrees maps deg into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
