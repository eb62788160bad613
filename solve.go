package polyline

// HandlePoint returns the document position of the drag handle of segment i.
//
// Parabolas expose their apex, arc-lines the midpoint of the arc, quarter
// ellipses their center and 3-point arcs their through point. Other kinds,
// and out-of-range indices, have no handle.
func (p *Path) HandlePoint(i int) (Point, bool) {
	q, ok := p.handleLocal(i)
	if !ok {
		return Point{}, false
	}
	return q.Transform(p.localToDoc()), true
}

// SetHandlePoint updates segment i so that its handle lies at pt, a document
// position. It reports false and leaves the path unchanged if the segment has
// no handle or its chord is too short to solve.
func (p *Path) SetHandlePoint(i int, pt Point) bool {
	q := pt.Transform(p.localToDoc().Invert())
	if !p.setHandleLocal(i, q) {
		return false
	}
	p.invalidate(i)
	p.RecomputeFrame()
	return true
}

// handleLocal returns the handle of segment i in segment coordinates.
func (p *Path) handleLocal(i int) (Point, bool) {
	if i < 1 || i >= len(p.Segments) {
		return Point{}, false
	}
	seg := p.Segments[i]
	pen := p.Segments[i-1].Point
	switch seg.Kind {
	case ParabolaKind:
		return parabolaOf(pen, seg).Apex()
	case ArcLineKind:
		return chordArcOf(pen, seg).Apex(), true
	case EllipseKind:
		return quarterArcOf(pen, seg).Center(), true
	case EllipticalArc3PtKind:
		return seg.Controls[0], true
	case LineKind, MoveToKind, MoveToNewSubpathKind,
		QuadraticBezierKind, CubicBezierKind,
		NurbsKind, NurbsContinuationKind, SplineKind, SplineContinuationKind:
		return Point{}, false
	default:
		return Point{}, false
	}
}

// setHandleLocal solves segment i's parameters from a handle at q, given in
// segment coordinates. It does not recompute the frame.
func (p *Path) setHandleLocal(i int, q Point) bool {
	if i < 1 || i >= len(p.Segments) {
		return false
	}
	seg := &p.Segments[i]
	pen := p.Segments[i-1].Point
	switch seg.Kind {
	case ParabolaKind:
		pb := parabolaOf(pen, *seg)
		if !pb.SetApex(q) {
			return false
		}
		seg.Param = pb.Height
		seg.QuadrantHint = pb.Offset
	case ArcLineKind:
		ca := chordArcOf(pen, *seg)
		if !ca.ModifyByPoint(q) {
			return false
		}
		seg.Param = ca.Param()
	case EllipseKind:
		qa := quarterArcOf(pen, *seg)
		if !qa.SetCenter(q) {
			return false
		}
		seg.Param = qa.Angle
		seg.QuadrantHint = float64(qa.Quadrant)
	case EllipticalArc3PtKind:
		seg.Controls[0] = q
	default:
		return false
	}
	return true
}

// handles maps segment indices to handle positions in unscaled document
// space, captured before a transform.
type handles map[int]Point

// captureHandles records the handles of all segments for which keep
// reports true.
func (p *Path) captureHandles(keep func(Segment) bool) handles {
	hs := handles{}
	for i := 1; i < len(p.Segments); i++ {
		if !keep(p.Segments[i]) {
			continue
		}
		if q, ok := p.handleLocal(i); ok {
			hs[i] = p.model(q)
		}
	}
	return hs
}

// restore applies aff to the captured handles and re-solves their segments
// against the transformed path.
func (hs handles) restore(p *Path, aff Affine) {
	for i, h := range hs {
		q := Point(h.Transform(aff).Sub(p.Start))
		if !p.setHandleLocal(i, q) {
			Logger().Debug("polyline: handle could not be re-solved", "index", i, "kind", p.Segments[i].Kind)
		}
	}
}
