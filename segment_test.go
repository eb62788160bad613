package polyline

import (
	"testing"
)

func TestSegmentKindText(t *testing.T) {
	for k := LineKind; k <= EllipseKind; k++ {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got SegmentKind
		if err := got.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("%q round-tripped to %v, want %v", b, got, k)
		}
	}

	var k SegmentKind
	if err := k.UnmarshalText([]byte("hyperbola")); err == nil {
		t.Error("unmarshaled an unknown kind")
	}
	if _, err := SegmentKind(0).MarshalText(); err == nil {
		t.Error("marshaled the zero kind")
	}
	diff(t, "SegmentKind(99)", SegmentKind(99).String())
}

func TestSegmentTranslate(t *testing.T) {
	seg := CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3))
	seg.translate(Vec(10, 0))
	diff(t, CubicTo(Pt(11, 1), Pt(12, 2), Pt(13, 3)), seg)

	// Unused controls stay put.
	seg = LineTo(Pt(1, 1))
	seg.Controls[0] = Pt(7, 7)
	seg.translate(Vec(10, 0))
	diff(t, Pt(7, 7), seg.Controls[0])
}

func TestBsplineRun(t *testing.T) {
	segs := NurbsTo(2, []Point{Pt(1, 0), Pt(2, 0), Pt(3, 0)}, []float64{2})
	want := []Segment{
		{Kind: NurbsKind, Point: Pt(1, 0), Weight: 2, QuadrantHint: 2},
		{Kind: NurbsContinuationKind, Point: Pt(2, 0), Weight: 1},
		{Kind: NurbsContinuationKind, Point: Pt(3, 0), Weight: 1},
	}
	diff(t, want, segs)
}

func TestQuadrantHint(t *testing.T) {
	diff(t, QuadrantTopRight, Segment{QuadrantHint: -1}.Quadrant())
	diff(t, QuadrantBottomLeft, Segment{QuadrantHint: 5}.Quadrant())
}
