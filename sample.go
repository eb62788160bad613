package polyline

import (
	"fmt"
)

// Sample returns the path as a dense sequence of document positions.
//
// density is the number of points per curved segment; straight segments
// contribute exactly their end point. Some curve families return more points
// than requested to keep their shape. If frameRelative is set, positions are
// relative to the frame's origin.
//
// Degenerate curves are drawn as their chord. Sample never fails.
func (p *Path) Sample(density int, frameRelative bool) []Point {
	pts, _ := p.SampleIndexed(density, frameRelative)
	return pts
}

// SampleIndexed is like Sample but also returns, for every segment, the index
// of the last point it produced. Segments that produce no points of their
// own, such as all but the last segment of a NURBS run, share the index of
// the point before them.
func (p *Path) SampleIndexed(density int, frameRelative bool) ([]Point, []int) {
	segs := p.Segments
	if len(segs) == 0 {
		return nil, nil
	}
	density = max(density, 2)

	pts := make([]Point, 1, len(segs)+density)
	pts[0] = segs[0].Point
	ends := make([]int, len(segs))
	for i := 1; i < len(segs); {
		curve, next := p.evalSegment(i, density)
		pts = append(pts, curve[1:]...)
		for j := i; j < next-1; j++ {
			ends[j] = ends[i-1]
		}
		ends[next-1] = len(pts) - 1
		i = next
	}

	aff := p.localToDoc()
	if frameRelative {
		aff = aff.ThenTranslate(Vec2(p.Frame.Origin()).Negate())
	}
	transformPoints(pts, aff)
	return pts, ends
}

// evalSegment samples segment i in segment coordinates. The returned points
// start at the previous segment's end point. next is the index of the first
// segment not consumed.
func (p *Path) evalSegment(i, density int) (pts []Point, next int) {
	seg := p.Segments[i]
	pen := p.Segments[i-1].Point
	chord := []Point{pen, seg.Point}

	var ok bool
	switch seg.Kind {
	case LineKind, MoveToKind, MoveToNewSubpathKind:
		return chord, i + 1
	case NurbsContinuationKind, SplineContinuationKind:
		// A continuation without a header.
		return chord, i + 1
	case QuadraticBezierKind:
		q := QuadBez{pen, seg.Controls[0], seg.Point}
		if q.IsDegenerate(degenerateEpsilon) {
			break
		}
		return evalEven(density, q.Eval), i + 1
	case CubicBezierKind:
		c := CubicBez{pen, seg.Controls[0], seg.Controls[1], seg.Point}
		if c.IsDegenerate(degenerateEpsilon) {
			break
		}
		return evalEven(density, c.Eval), i + 1
	case NurbsKind, SplineKind:
		pts, next, ok = p.evalBspline(i, density)
		if ok {
			return pts, next
		}
		// The whole run collapses onto its last point.
		return []Point{pen, p.Segments[next-1].Point}, next
	case ParabolaKind:
		pts, ok = parabolaOf(pen, seg).Points(density)
	case EllipticalArc3PtKind:
		pts, ok = threePointArcOf(pen, seg).Points(density)
	case ArcLineKind:
		if seg.Param == 0 {
			return chord, i + 1
		}
		pts, ok = chordArcOf(pen, seg).Points((density + 1) / 2)
	case EllipseKind:
		pts, ok = quarterArcOf(pen, seg).Points(density)
	default:
		panic(fmt.Sprintf("unhandled segment kind %v", seg.Kind))
	}
	if ok {
		return pts, i + 1
	}
	Logger().Debug("polyline: degenerate segment drawn as chord", "index", i, "kind", seg.Kind)
	return chord, i + 1
}

// degenerateEpsilon is the distance under which control points coincide.
const degenerateEpsilon = 1e-9
