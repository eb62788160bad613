package polyline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	type result struct {
		DistSq, T float64
	}
	tests := []struct {
		pt   Point
		want result
	}{
		{Pt(5, 3), result{9, 0.5}},
		{Pt(-4, 3), result{25, 0}},
		{Pt(13, 4), result{25, 1}},
	}
	for _, tt := range tests {
		d, u := l.Nearest(tt.pt)
		diff(t, tt.want, result{d, u}, cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestLineCrossingPoint(t *testing.T) {
	h := Line{Pt(0, 0), Pt(100, 0)}
	v := Line{Pt(10, -10), Pt(10, 10)}
	pt, ok := h.CrossingPoint(v)
	if !ok {
		t.Fatal("expected lines to cross")
	}
	assertNear(t, pt, Pt(10, 0), 1e-9)

	if _, ok := h.CrossingPoint(Line{Pt(0, 5), Pt(50, 5)}); ok {
		t.Error("parallel lines cross")
	}
}

func TestLineLength(t *testing.T) {
	l := Line{Pt(0, 0), Pt(1, 1)}
	if d := math.Abs(l.Length() - math.Sqrt2); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
	if a := l.Angle(); math.Abs(a-math.Pi/4) > 1e-12 {
		t.Errorf("got angle %g, want %g", a, math.Pi/4)
	}
}
