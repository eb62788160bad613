package polyline

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// IsDegenerate reports whether all control points coincide within eps.
func (q QuadBez) IsDegenerate(eps float64) bool {
	e2 := eps * eps
	return q.P0.DistanceSquared(q.P1) <= e2 && q.P0.DistanceSquared(q.P2) <= e2
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// IsDegenerate reports whether all control points coincide within eps.
func (cb CubicBez) IsDegenerate(eps float64) bool {
	e2 := eps * eps
	return cb.P0.DistanceSquared(cb.P1) <= e2 &&
		cb.P0.DistanceSquared(cb.P2) <= e2 &&
		cb.P0.DistanceSquared(cb.P3) <= e2
}

// evalEven evaluates a curve at n evenly spaced parameters in [0, 1],
// including both ends.
func evalEven(n int, eval func(t float64) Point) []Point {
	n = max(n, 2)
	out := make([]Point, n)
	step := 1.0 / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = eval(float64(i) * step)
	}
	// Pin the end exactly.
	out[n-1] = eval(1)
	return out
}
