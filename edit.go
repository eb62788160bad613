package polyline

import (
	"math"
	"slices"
)

// PathEnd names one of the two free endpoints of an open path.
type PathEnd int

const (
	// HeadEnd is the path's first point.
	HeadEnd PathEnd = iota + 1
	// TailEnd is the path's last point.
	TailEnd
)

// AddCorner splits the segment under pt into two, inserting a new corner.
// It returns the index of the new segment.
//
// The corner is placed on the segment's chord for straight segments and for
// the first and last segment of an open path, so the insertion keeps the
// visual direction of the shape. Start and End are unchanged.
//
// AddCorner fails with ErrCapacityExceeded if the path is full and with
// ErrNoHit if pt misses the path. In both cases the path is unchanged.
func (p *Path) AddCorner(pt Point) (int, error) {
	if len(p.Segments) >= MaxSegments {
		Logger().Warn("polyline: corner rejected", "segments", len(p.Segments))
		return -1, ErrCapacityExceeded
	}
	i, ok := p.Hit(pt, p.Thickness)
	if !ok {
		return -1, ErrNoHit
	}
	seg := p.Segments[i]
	pen := p.Segments[i-1].Point
	q := pt.Transform(p.localToDoc().Invert())

	endSegment := !p.Closed && (i == 1 || i == len(p.Segments)-1)
	if seg.Kind == LineKind || endSegment {
		q = snapToChord(pen, seg.Point, q)
	}

	corner := LineTo(q)
	switch seg.Kind {
	case NurbsContinuationKind, SplineContinuationKind:
		// Inside a run the corner becomes another control point.
		corner.Kind = seg.Kind
		corner.Weight = 1
	case ParabolaKind, ArcLineKind:
		corner.Kind = seg.Kind
	}
	p.Segments = slices.Insert(p.Segments, i, corner)
	p.reclassify(i + 1)
	p.clearCache()
	p.RecomputeFrame()
	return i, nil
}

// snapToChord returns the point of the chord from p0 to p1 closest to q.
func snapToChord(p0, p1, q Point) Point {
	chord := Line{p0, p1}
	_, t := chord.Nearest(q)
	return chord.Eval(t)
}

// UpdateSegmentLength changes the length of segment i to length, keeping its
// direction.
//
// The last segment moves the path's end; on an open path the end is welded
// to the start if it lands on it. The first segment of an open path moves
// the start instead. Interior segments move their own end point.
func (p *Path) UpdateSegmentLength(i int, length float64) error {
	n := len(p.Segments)
	if i < 1 || i >= n {
		return ErrInvalidIndex
	}
	if !(length > 0) {
		return ErrInvalidLength
	}
	// Lengths are measured in drawn units. Closed paths stretch their
	// segment coordinates by s.
	s, _ := p.sampleScale()
	a := Point(Vec2(p.Segments[i-1].Point).MulVec(s))
	b := Point(Vec2(p.Segments[i].Point).MulVec(s))
	dir := b.Sub(a)
	if dir.Hypot() < degenerateEpsilon {
		dir = VecFromAngle(p.fallbackAngle(i))
	} else {
		dir = dir.Normalize()
	}
	unscale := p.localToDoc().Mul(Scale(1/s.X, 1/s.Y))

	switch {
	case i == n-1:
		p.AdjustLineEnd(a.Translate(dir.Mul(length)).Transform(unscale))
		if !p.Closed {
			if weld, ok := p.CloseTarget(p.End(), TailEnd); ok {
				p.AdjustLineEnd(weld)
				return p.Close()
			}
		}
	case !p.Closed && i == 1:
		p.AdjustLineStart(b.Translate(dir.Mul(-length)).Transform(unscale))
	default:
		end := a.Translate(dir.Mul(length))
		p.Segments[i].Point = Pt(end.X/s.X, end.Y/s.Y)
		p.reclassify(i)
		p.reclassify(i + 1)
		p.invalidate(i)
		p.RecomputeFrame()
	}
	return nil
}

// fallbackAngle returns a direction for segment i when its endpoints
// coincide: perpendicular to the previous segment, or along the x axis.
func (p *Path) fallbackAngle(i int) float64 {
	if i >= 2 {
		d := p.Segments[i-1].Point.Sub(p.Segments[i-2].Point)
		if d.Hypot() > degenerateEpsilon {
			return d.Angle() + math.Pi/2
		}
	}
	return 0
}

// AdjustLineStart moves the path's first point to pt, a document position,
// keeping every other point in place. On a closed path the last point moves
// along with it.
func (p *Path) AdjustLineStart(pt Point) {
	if len(p.Segments) == 0 {
		return
	}
	q := pt.Transform(p.localToDoc().Invert())
	p.shiftOrigin(q.Sub(p.Segments[0].Point))
	p.reclassify(1)
	p.reclassify(len(p.Segments) - 1)
	p.clearCache()
	p.RecomputeFrame()
}

// AdjustLineEnd moves the path's last point to pt, a document position. On a
// closed path the last point is the first point, see AdjustLineStart.
func (p *Path) AdjustLineEnd(pt Point) {
	n := len(p.Segments)
	if n < 2 {
		return
	}
	if p.Closed {
		p.AdjustLineStart(pt)
		return
	}
	p.Segments[n-1].Point = pt.Transform(p.localToDoc().Invert())
	p.reclassify(n - 1)
	p.invalidate(n - 1)
	p.RecomputeFrame()
}

// shiftOrigin moves the segment origin by v in segment coordinates without
// moving any other point. The closing point of a closed path stays on the
// origin.
func (p *Path) shiftOrigin(v Vec2) {
	if v.IsZero() {
		return
	}
	n := len(p.Segments)
	p.Start = p.Start.Translate(v)
	for i := 1; i < n; i++ {
		seg := &p.Segments[i]
		closing := p.Closed && i == n-1
		seg.translate(v.Negate())
		if closing {
			seg.Point = p.Segments[0].Point
		}
	}
}

// reclassify recomputes the quadrant of a quarter ellipse whose end points
// moved.
func (p *Path) reclassify(i int) {
	if i < 1 || i >= len(p.Segments) {
		return
	}
	seg := &p.Segments[i]
	if seg.Kind != EllipseKind {
		return
	}
	seg.QuadrantHint = float64(ClassifyQuadrant(p.Segments[i-1].Point, seg.Point, seg.Param))
}

// CloseTarget reports whether dragged, the new position of the given free
// endpoint of an open path, lands on the path's other free endpoint. If it
// does, it returns that endpoint so the caller can weld the two and Close
// the path. Paths with three or fewer segments are never closed this way.
func (p *Path) CloseTarget(dragged Point, end PathEnd) (Point, bool) {
	n := len(p.Segments)
	if p.Closed || n <= 3 {
		return Point{}, false
	}
	toDoc := p.localToDoc()
	var other Point
	switch end {
	case HeadEnd:
		other = p.Segments[n-1].Point.Transform(toDoc)
	case TailEnd:
		other = p.Segments[0].Point.Transform(toDoc)
	default:
		return Point{}, false
	}
	if dragged.Distance(other) > p.Thickness/2+HitSlop {
		return Point{}, false
	}
	return other, true
}

// Close welds the last point onto the first and marks the path closed.
func (p *Path) Close() error {
	n := len(p.Segments)
	if n < 3 {
		return ErrTooShort
	}
	if p.Closed {
		return nil
	}
	p.Segments[n-1].Point = p.Segments[0].Point
	p.Closed = true
	p.reclassify(n - 1)
	p.clearCache()
	p.RecomputeFrame()
	return nil
}

// SetSegmentAngle turns segment i about its first point so that it points
// in direction angle, in radians, keeping its length.
func (p *Path) SetSegmentAngle(i int, angle float64) error {
	n := len(p.Segments)
	if i < 1 || i >= n {
		return ErrInvalidIndex
	}
	a := p.Segments[i-1].Point
	length := a.Distance(p.Segments[i].Point)
	end := a.Translate(VecFromAngle(angle).Mul(length))
	if i == n-1 {
		p.AdjustLineEnd(end.Transform(p.localToDoc()))
		return nil
	}
	p.Segments[i].Point = end
	p.reclassify(i)
	p.reclassify(i + 1)
	p.invalidate(i)
	p.RecomputeFrame()
	return nil
}

// MoveSegment moves both end points of segment i along the segment's normal
// by the normal component of delta.
func (p *Path) MoveSegment(i int, delta Vec2) error {
	n := len(p.Segments)
	if i < 1 || i >= n {
		return ErrInvalidIndex
	}
	d := p.Segments[i].Point.Sub(p.Segments[i-1].Point)
	if d.Hypot() < degenerateEpsilon {
		return ErrInvalidLength
	}
	normal := d.Perp().Normalize()
	v := normal.Mul(normal.Dot(delta))
	p.moveVertex(i, v)
	p.moveVertex(i-1, v)
	for _, j := range []int{i - 1, i, i + 1} {
		p.reclassify(j)
	}
	p.clearCache()
	p.RecomputeFrame()
	return nil
}

// moveVertex moves the end point of segment k by v in segment coordinates.
func (p *Path) moveVertex(k int, v Vec2) {
	n := len(p.Segments)
	if k == 0 || (p.Closed && k == n-1) {
		p.shiftOrigin(v)
		return
	}
	p.Segments[k].Point = p.Segments[k].Point.Translate(v)
}

// IsRightAngle reports whether the corner at the end of segment i is within
// tolerance degrees of a right angle. Corners at the free ends of an open
// path are never right angles.
func (p *Path) IsRightAngle(i int, tolerance float64) bool {
	n := len(p.Segments)
	if i < 0 || i >= n {
		return false
	}
	prev, next := i-1, i+1
	if prev < 0 {
		if !p.Closed {
			return false
		}
		prev = n - 2
	}
	if next > n-1 {
		if !p.Closed {
			return false
		}
		next = 1
	}
	segs := p.Segments
	a1 := segs[i].Point.Sub(segs[prev].Point).Angle()
	a2 := segs[next].Point.Sub(segs[i].Point).Angle()
	d := normalizeDegrees((a1 - a2) * 180 / math.Pi)
	return math.Abs(90-d) <= tolerance || math.Abs(270-d) <= tolerance
}

// SegmentLength returns the chord length of segment i in drawn units.
func (p *Path) SegmentLength(i int) (float64, bool) {
	if i < 1 || i >= len(p.Segments) {
		return 0, false
	}
	toDoc := p.localToDoc()
	a := p.Segments[i-1].Point.Transform(toDoc)
	b := p.Segments[i].Point.Transform(toDoc)
	return a.Distance(b), true
}

// Length returns the length of the drawn path, sampled at MaxDensity.
func (p *Path) Length() float64 {
	pts, ends := p.SampleIndexed(MaxDensity, false)
	l := 0.0
	seg := 1
	for j := 0; j+1 < len(pts); j++ {
		for seg < len(ends) && j >= ends[seg] {
			seg++
		}
		if seg < len(ends) && p.Segments[seg].Kind.IsMove() {
			continue
		}
		l += pts[j].Distance(pts[j+1])
	}
	return l
}
