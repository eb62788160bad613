package polyline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// openPath builds an open path at start through the given segment points,
// which are relative to start.
func openPath(t *testing.T, start Point, segs ...Segment) *Path {
	t.Helper()
	p := NewPath(start)
	if err := p.Append(segs...); err != nil {
		t.Fatal(err)
	}
	return p
}

// lines returns a LineTo segment per point.
func lines(pts ...Point) []Segment {
	out := make([]Segment, len(pts))
	for i, pt := range pts {
		out[i] = LineTo(pt)
	}
	return out
}

// docPoints returns the document position of every segment end point.
func docPoints(p *Path) []Point {
	toDoc := p.localToDoc()
	out := make([]Point, len(p.Segments))
	for i, seg := range p.Segments {
		out[i] = seg.Point.Transform(toDoc)
	}
	return out
}
