package polyline

import (
	"testing"
)

func TestHitTolerance(t *testing.T) {
	p := openPath(t, Pt(0, 0), LineTo(Pt(100, 0)))
	if i, ok := p.Hit(Pt(50, 1), 4); !ok || i != 1 {
		t.Errorf("got (%d, %t), want (1, true)", i, ok)
	}
	if i, ok := p.Hit(Pt(50, 10), 4); ok {
		t.Errorf("got hit on segment %d, want none", i)
	}
	// The boundary is thickness/2 + HitSlop.
	if _, ok := p.Hit(Pt(50, 5), 4); !ok {
		t.Error("missed a point on the boundary")
	}
	if _, ok := p.Hit(Pt(50, 5.01), 4); ok {
		t.Error("hit a point past the boundary")
	}
}

func TestHitSegments(t *testing.T) {
	p := openPath(t, Pt(10, 10),
		LineTo(Pt(100, 0)),
		ArcLineTo(Pt(100, 100), 30),
		MoveTo(Pt(0, 100)),
		LineTo(Pt(0, 50)),
	)
	tests := []struct {
		pt   Point
		want int
	}{
		{Pt(60, 10), 1},
		// Apex of the arc, 30 units left of its chord.
		{Pt(80, 60), 2},
		{Pt(10, 80), 4},
		// Pen moves are never hit.
		{Pt(60, 110), -1},
		{Pt(500, 500), -1},
	}
	for _, tt := range tests {
		got, ok := p.Hit(tt.pt, 2)
		if !ok {
			got = -1
		}
		if got != tt.want {
			t.Errorf("Hit(%v) = %d, want %d", tt.pt, got, tt.want)
		}
	}
}

func TestHitNurbsRun(t *testing.T) {
	p := openPath(t, Pt(0, 0), LineTo(Pt(10, 0)))
	if err := p.Append(SplineTo(2, []Point{Pt(50, 0), Pt(90, 0), Pt(130, 0)})...); err != nil {
		t.Fatal(err)
	}
	// Any point along the run reports its last segment.
	for _, x := range []float64{20, 70, 120} {
		if i, ok := p.Hit(Pt(x, 1), 0); !ok || i != 4 {
			t.Errorf("Hit(%g) = (%d, %t), want (4, true)", x, i, ok)
		}
	}
}

func TestHitEmpty(t *testing.T) {
	if _, ok := NewPath(Pt(0, 0)).Hit(Pt(0, 0), 10); ok {
		t.Error("hit a path without segments")
	}
}
