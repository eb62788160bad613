package polyline

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, 0).Sub(Pt(1, 4)))
	diff(t, Pt(5, 5), Pt(0, 10).Midpoint(Pt(10, 0)))
	diff(t, Pt(7, 3), Pt(3, 2).ScaleAbout(Pt(1, 1), 3, 2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointNonFinite(t *testing.T) {
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("NaN point isn't NaN")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("infinite point isn't infinite")
	}
	if Pt(1, 2).IsNaN() || Pt(1, 2).IsInf() {
		t.Error("finite point isn't finite")
	}
}

func TestOrientation(t *testing.T) {
	if o := orientation(Pt(0, 0), Pt(50, 50), Pt(100, 0)); o >= 0 {
		t.Errorf("got %v, want negative", o)
	}
	if o := orientation(Pt(0, 0), Pt(50, -50), Pt(100, 0)); o <= 0 {
		t.Errorf("got %v, want positive", o)
	}
	if o := orientation(Pt(0, 0), Pt(50, 0), Pt(100, 0)); o != 0 {
		t.Errorf("got %v, want 0", o)
	}
}

func TestVecPerp(t *testing.T) {
	diff(t, Vec(0, 1), Vec(1, 0).Perp())
	assertNear(t, Point(VecFromAngle(math.Pi/2)), Pt(0, 1), 1e-12)
}
