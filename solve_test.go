package polyline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParabolaRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 0.7, math.Pi / 2, 2.5} {
		end := Point(VecFromAngle(angle).Mul(100))
		p := openPath(t, Pt(10, 10), ParabolaTo(end, 20, 5))
		h, ok := p.HandlePoint(1)
		if !ok {
			t.Fatal("parabola has no handle")
		}
		p.Segments[1].Param = 0
		p.Segments[1].QuadrantHint = 0
		if !p.SetHandlePoint(1, h) {
			t.Fatal("couldn't solve parabola")
		}
		seg := p.Segments[1]
		if d := math.Abs(seg.Param - 20); d > 1.0/6 {
			t.Errorf("angle %g: got height %g, want 20", angle, seg.Param)
		}
		if seg.QuadrantHint != 5 {
			t.Errorf("angle %g: got offset %g, want 5", angle, seg.QuadrantHint)
		}
	}
}

func TestParabolaShape(t *testing.T) {
	pb := Parabola{P0: Pt(0, 0), P1: Pt(100, 0), Height: 20}
	pts, ok := pb.Points(101)
	if !ok {
		t.Fatal("parabola didn't sample")
	}
	assertNear(t, pts[50], Pt(50, 20), 1e-9)
	assertNear(t, pts[0], Pt(0, 0), 0)
	assertNear(t, pts[100], Pt(100, 0), 0)

	pb.Offset = 10
	apex, _ := pb.Apex()
	assertNear(t, apex, Pt(60, 20), 1e-9)

	if pb.SetApex(Pt(50.05, -30)); pb.Offset != 0 || pb.Height != -30 {
		t.Errorf("got offset %g and height %g, want 0 and -30", pb.Offset, pb.Height)
	}
	short := Parabola{P0: Pt(0, 0), P1: Pt(0.5, 0), Height: 10}
	if _, ok := short.Points(10); ok {
		t.Error("sampled a parabola over a too short chord")
	}
}

func TestArcLineHandle(t *testing.T) {
	p := openPath(t, Pt(0, 0), ArcLineTo(Pt(100, 0), 20))
	h, _ := p.HandlePoint(1)
	assertNear(t, h, Pt(50, 20), 1e-9)

	tests := []struct {
		handle Point
		want   float64
	}{
		{Pt(50, 20), 20},
		{Pt(30, -30), -30},
		{Pt(50, 1000), MaxArcCurve},
		{Pt(50, 0.2), MinArcCurve},
		{Pt(50, -0.2), -MinArcCurve},
	}
	for _, tt := range tests {
		if !p.SetHandlePoint(1, tt.handle) {
			t.Fatalf("couldn't solve arc for %v", tt.handle)
		}
		diff(t, tt.want, p.Segments[1].Param, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestChordArcGeometry(t *testing.T) {
	c := ChordArc{P0: Pt(0, 0), P1: Pt(100, 0), Curve: 20, Reversed: true}
	r, center, ok := c.RadiusCenter()
	if !ok {
		t.Fatal("no circle")
	}
	diff(t, 72.5, r, cmpopts.EquateApprox(0, 1e-9))
	assertNear(t, center, Pt(50, -52.5), 1e-9)

	pts, _ := c.Points(51)
	for _, pt := range pts {
		if d := math.Abs(pt.Distance(center) - r); d > 1e-9 {
			t.Fatalf("%v is %g off the circle", pt, d)
		}
		if pt.Y < -1e-9 {
			t.Fatalf("%v is on the wrong side of the chord", pt)
		}
	}
	assertNear(t, pts[25], Pt(50, 20), 1e-9)

	// Taller than wide: the arc sweeps more than half a circle.
	tall := ChordArc{P0: Pt(0, 0), P1: Pt(20, 0), Curve: 40}
	a, _ := tall.Arc()
	if math.Abs(a.SweepAngle) <= math.Pi {
		t.Errorf("got sweep %g, want more than π", a.SweepAngle)
	}
	assertNear(t, a.Eval(0.5), tall.Apex(), 1e-9)
	assertNear(t, tall.Apex(), Pt(10, -40), 1e-9)
}

func TestClassifyQuadrant(t *testing.T) {
	tests := []struct {
		p1    Point
		angle float64
		want  Quadrant
	}{
		{Pt(10, 10), 0, QuadrantBottomLeft},
		{Pt(10, -10), 0, QuadrantTopLeft},
		{Pt(-10, 10), 0, QuadrantBottomRight},
		{Pt(-10, -10), 0, QuadrantTopRight},
		// Rotating the axes by a quarter turn moves every case on by one.
		{Pt(10, 10), math.Pi / 2, QuadrantTopLeft},
		{Pt(-10, 10), math.Pi / 2, QuadrantBottomLeft},
	}
	for _, tt := range tests {
		if got := ClassifyQuadrant(Pt(0, 0), tt.p1, tt.angle); got != tt.want {
			t.Errorf("ClassifyQuadrant(%v, %g) = %v, want %v", tt.p1, tt.angle, got, tt.want)
		}
	}
}

func TestQuarterArc(t *testing.T) {
	qa := QuarterArc{P0: Pt(0, 0), P1: Pt(10, 10), Quadrant: QuadrantBottomLeft}
	assertNear(t, qa.Center(), Pt(10, 0), 1e-12)
	pts, ok := qa.Points(9)
	if !ok {
		t.Fatal("quarter arc didn't sample")
	}
	for _, pt := range pts {
		if d := math.Abs(pt.Distance(Pt(10, 0)) - 10); d > 1e-9 {
			t.Fatalf("%v is %g off the circle", pt, d)
		}
	}
	// The other quarter bulges the other way.
	qa.Quadrant = QuadrantTopRight
	assertNear(t, qa.Center(), Pt(0, 10), 1e-12)

	p := openPath(t, Pt(0, 0), QuarterTo(Pt(10, 10), 0, QuadrantBottomLeft))
	if !p.SetHandlePoint(1, Pt(0, 10)) {
		t.Fatal("couldn't solve quarter arc")
	}
	seg := p.Segments[1]
	diff(t, math.Pi/2, seg.Param)
	diff(t, QuadrantTopLeft, seg.Quadrant())
	h, _ := p.HandlePoint(1)
	assertNear(t, h, Pt(0, 10), 1e-9)
}

func TestThreePointArc(t *testing.T) {
	ta := ThreePointArc{P0: Pt(0, 0), P1: Pt(50, 50), P2: Pt(100, 0), Eccentricity: 1}
	a, ok := ta.Arc()
	if !ok {
		t.Fatal("no arc")
	}
	assertNear(t, a.Center, Pt(50, 0), 1e-9)
	diff(t, -math.Pi, a.SweepAngle, cmpopts.EquateApprox(0, 1e-9))
	assertNear(t, a.Eval(0.5), Pt(50, 50), 1e-9)

	// Mirrored through point, mirrored sweep.
	ta.P1 = Pt(50, -50)
	a, _ = ta.Arc()
	diff(t, math.Pi, a.SweepAngle, cmpopts.EquateApprox(0, 1e-9))

	// A rotated ellipse still passes through all three points.
	ta = ThreePointArc{P0: Pt(0, 0), P1: Pt(40, 30), P2: Pt(100, 10), Rotation: 0.5, Eccentricity: 2}
	pts, ok := ta.Points(2000)
	if !ok {
		t.Fatal("no arc")
	}
	best := math.Inf(1)
	for _, pt := range pts {
		best = min(best, pt.Distance(ta.P1))
	}
	if best > 0.5 {
		t.Errorf("arc misses its through point by %g", best)
	}
}

func TestHandleKinds(t *testing.T) {
	p := openPath(t, Pt(0, 0), everyKind()...)
	for i, seg := range p.Segments {
		_, ok := p.HandlePoint(i)
		want := false
		switch seg.Kind {
		case ParabolaKind, ArcLineKind, EllipseKind, EllipticalArc3PtKind:
			want = true
		}
		if ok != want {
			t.Errorf("segment %d (%v): got handle %t, want %t", i, seg.Kind, ok, want)
		}
	}
	if _, ok := p.HandlePoint(-1); ok {
		t.Error("negative index has a handle")
	}

	// The through point of a 3-point arc is its handle.
	i := 12
	if p.Segments[i].Kind != EllipticalArc3PtKind {
		t.Fatalf("segment %d is %v", i, p.Segments[i].Kind)
	}
	if !p.SetHandlePoint(i, Pt(320, 25)) {
		t.Fatal("couldn't move through point")
	}
	diff(t, Pt(320, 25), p.Segments[i].Controls[0])
	if p.SetHandlePoint(1, Pt(0, 0)) {
		t.Error("moved the handle of a line")
	}
}
