package polyline

import (
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
)

const (
	// MaxSegments is the largest number of segments a path may hold,
	// including the leading MoveTo.
	MaxSegments = 500
	// MaxDensity is the number of points sampled per curved segment when
	// computing frames and hit testing.
	MaxDensity = 100
	// MaxSamples bounds the number of points one render may request. Callers
	// are expected to stay below it; Sample does not truncate.
	MaxSamples = MaxSegments * MaxDensity

	minFrameSize = 1
)

// Path is an ordered list of heterogeneous segments starting at Start.
//
// Segment 0 is the pen origin and is normally (0, 0). For a closed path the
// last segment ends on segment 0 again.
//
// A Path has a single writer. Mutating methods must not run concurrently
// with any other method on the same Path.
type Path struct {
	// Start is the document position of the segment coordinate origin.
	Start    Point
	Segments []Segment
	Closed   bool
	// NormalizedExtent is the size of the segment coordinate space of a
	// closed path. Together with Inside it maps segment coordinates to the
	// drawn outline. It is zero for open paths.
	NormalizedExtent Vec2
	// Offset is Start relative to the frame origin.
	Offset Vec2
	// Thickness is the stroke width used for the inset frame, hit tolerance
	// and endpoint snapping.
	Thickness float64

	// Frame is the bounding box of the sampled path, at least 1 unit on each
	// axis. Inside is Frame shrunk by half the thickness for closed paths
	// and equal to Frame otherwise. Both are derived by RecomputeFrame.
	Frame  Rect
	Inside Rect

	cache basisCache
}

// NewPath returns an open path consisting of the pen origin at start.
func NewPath(start Point) *Path {
	p := &Path{
		Start:    start,
		Segments: []Segment{MoveTo(Point{})},
	}
	p.RecomputeFrame()
	return p
}

// Len returns the number of segments, including the leading MoveTo.
func (p *Path) Len() int {
	return len(p.Segments)
}

// End returns the document position of the last segment's end point.
func (p *Path) End() Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Start.Translate(Vec2(p.Segments[len(p.Segments)-1].Point))
}

// Segment returns segment i.
func (p *Path) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(p.Segments) {
		return Segment{}, false
	}
	return p.Segments[i], true
}

// Clone returns a deep copy of p suitable for undo snapshots. The basis cache
// is not copied.
func (p *Path) Clone() *Path {
	c := new(Path)
	if err := copier.CopyWithOption(c, p, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("polyline: cloning path: %s", err))
	}
	return c
}

// Append adds segments to the end of the path. It fails with
// ErrCapacityExceeded, leaving the path unchanged, if the result would hold
// more than MaxSegments segments.
func (p *Path) Append(segs ...Segment) error {
	if len(p.Segments)+len(segs) > MaxSegments {
		Logger().Warn("polyline: append rejected", "segments", len(p.Segments), "adding", len(segs))
		return ErrCapacityExceeded
	}
	p.Segments = append(p.Segments, segs...)
	p.clearCache()
	p.RecomputeFrame()
	return nil
}

// SetSegment replaces segment i.
func (p *Path) SetSegment(i int, seg Segment) error {
	if i < 0 || i >= len(p.Segments) {
		return ErrInvalidIndex
	}
	p.Segments[i] = seg
	p.invalidate(i)
	p.RecomputeFrame()
	return nil
}

// RemoveSegment deletes segment i, joining its neighbours. The origin and
// the closing segment of a closed path can't be removed.
func (p *Path) RemoveSegment(i int) error {
	n := len(p.Segments)
	if i < 1 || i >= n || (p.Closed && i == n-1) {
		return ErrInvalidIndex
	}
	p.Segments = slices.Delete(p.Segments, i, i+1)
	p.clearCache()
	p.RecomputeFrame()
	return nil
}

// localToDoc returns the transform from segment coordinates to the document
// positions Sample reports.
func (p *Path) localToDoc() Affine {
	if s, ok := p.sampleScale(); ok {
		return Translate(p.Offset).ThenScale(s.X, s.Y).ThenTranslate(Vec2(p.Inside.Origin()))
	}
	return Translate(Vec2(p.Start))
}

// sampleScale returns the factors by which a closed path's segment
// coordinates are stretched to fill Inside.
func (p *Path) sampleScale() (Vec2, bool) {
	if !p.Closed || p.NormalizedExtent.X <= 0 || p.NormalizedExtent.Y <= 0 {
		return Vec2{1, 1}, false
	}
	return Vec2{
		X: max(p.Inside.Width(), minFrameSize) / p.NormalizedExtent.X,
		Y: max(p.Inside.Height(), minFrameSize) / p.NormalizedExtent.Y,
	}, true
}

// model returns the unscaled document position of a segment coordinate.
func (p *Path) model(q Point) Point {
	return p.Start.Translate(Vec2(q))
}

// RecomputeFrame derives Frame, Inside and, for closed paths,
// NormalizedExtent and Offset from the sampled path. Every mutating method
// calls it; call it yourself after editing fields directly.
func (p *Path) RecomputeFrame() {
	p.NormalizedExtent = Vec2{}
	pts := p.Sample(MaxDensity, false)
	if len(pts) == 0 {
		pts = []Point{p.Start}
	}
	frame := BoundingRect(pts).AtLeast(minFrameSize)
	p.Frame = frame
	p.Inside = frame
	p.Offset = p.Start.Sub(frame.Origin())
	if !p.Closed {
		return
	}
	p.NormalizedExtent = frame.Size()
	if p.Thickness > 0 {
		p.Inside = insetFrame(frame, p.Thickness/2)
	}
}

// insetFrame shrinks r by d on every side, keeping at least minFrameSize per
// axis around the center.
func insetFrame(r Rect, d float64) Rect {
	in := r.Inflate(-d, -d)
	c := r.Center()
	if in.Width() < minFrameSize {
		in.X0, in.X1 = c.X-minFrameSize/2, c.X+minFrameSize/2
	}
	if in.Height() < minFrameSize {
		in.Y0, in.Y1 = c.Y-minFrameSize/2, c.Y+minFrameSize/2
	}
	return in
}
