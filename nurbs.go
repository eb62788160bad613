package polyline

import "math"

const (
	// knotEpsilon replaces zero knot intervals in the Cox–de Boor recursion.
	knotEpsilon = 1e-11
	// knotResolution is the granularity knots are floored to.
	knotResolution = 1e4
	// bsplineSegmentLength is the control polygon length that earns one
	// extra sample.
	bsplineSegmentLength = 8
	defaultBsplineDegree = 3
)

// basisEntry holds the rational basis of one NURBS or spline run, evaluated
// at count evenly spaced parameters. rows[k][i] is the weight of control
// point i at sample k.
type basisEntry struct {
	count int
	// end is one past the last segment of the run.
	end  int
	rows [][]float64
}

// basisCache maps the index of a run's first segment to its basis.
type basisCache map[int]*basisEntry

func (p *Path) clearCache() {
	clear(p.cache)
}

// invalidate drops cached data that depends on segment i.
func (p *Path) invalidate(i int) {
	for start, e := range p.cache {
		if i >= start && i < e.end {
			delete(p.cache, start)
		}
	}
}

// bspline describes one NURBS or spline run.
type bspline struct {
	ctrl    []Point
	weights []float64
	knots   []float64
	order   int
}

// runEnd returns one past the last segment of the run that starts at i.
func (p *Path) runEnd(i int) int {
	cont := p.Segments[i].Kind.continuation()
	j := i + 1
	for j < len(p.Segments) && p.Segments[j].Kind == cont {
		j++
	}
	return j
}

// bsplineAt builds the run starting at header i and returns it together with
// the index one past its last segment.
func (p *Path) bsplineAt(i int) (bspline, int) {
	end := p.runEnd(i)
	header := p.Segments[i]
	rational := header.Kind == NurbsKind

	n := end - i + 1
	b := bspline{
		ctrl:    make([]Point, 0, n),
		weights: make([]float64, 0, n),
	}
	b.ctrl = append(b.ctrl, p.Segments[i-1].Point)
	b.weights = append(b.weights, 1)
	for _, seg := range p.Segments[i:end] {
		b.ctrl = append(b.ctrl, seg.Point)
		w := 1.0
		if rational && seg.Weight > 0 {
			w = seg.Weight
		}
		b.weights = append(b.weights, w)
	}

	degree := int(header.QuadrantHint)
	if degree < 1 {
		degree = defaultBsplineDegree
	}
	degree = min(degree, n-1)
	b.order = degree + 1

	if header.Param > 0 {
		interior := make([]float64, 0, n-b.order)
		for _, seg := range p.Segments[i+1 : i+1+n-b.order] {
			interior = append(interior, seg.Param)
		}
		b.knots = explicitKnots(n, b.order, interior, header.Param)
	} else {
		b.knots = uniformKnots(n, b.order)
	}
	return b, end
}

// uniformKnots returns a clamped uniform knot vector on [0, 1] for n control
// points.
func uniformKnots(n, order int) []float64 {
	knots := make([]float64, n+order)
	spans := float64(n - order + 1)
	for i := range knots {
		switch {
		case i < order:
			knots[i] = 0
		case i >= n:
			knots[i] = 1
		default:
			knots[i] = floorKnot(float64(i-order+1) / spans)
		}
	}
	return knots
}

// explicitKnots returns a clamped knot vector whose interior knots are
// taken from interior, a non-decreasing sequence on [0, span].
func explicitKnots(n, order int, interior []float64, span float64) []float64 {
	knots := make([]float64, n+order)
	prev := 0.0
	for i := range knots {
		switch {
		case i < order:
			knots[i] = 0
		case i >= n:
			knots[i] = 1
		default:
			v := min(max(interior[i-order], prev), span)
			prev = v
			knots[i] = floorKnot(v / span)
		}
	}
	return knots
}

func floorKnot(v float64) float64 {
	return math.Floor(v*knotResolution) / knotResolution
}

// basis evaluates the n B-spline basis functions of the given order at u
// using the Cox–de Boor recursion.
func basis(u float64, knots []float64, n, order int) []float64 {
	m := len(knots) - 1
	nb := make([]float64, m)
	last := knots[m]
	for i := 0; i < m; i++ {
		if knots[i] <= u && u < knots[i+1] {
			nb[i] = 1
		}
	}
	if u >= last {
		// The domain is closed on the right; pick the last non-empty span.
		for i := m - 1; i >= 0; i-- {
			if knots[i] < knots[i+1] {
				nb[i] = 1
				break
			}
		}
	}
	for k := 2; k <= order; k++ {
		for i := 0; i+k <= m; i++ {
			d1 := knots[i+k-1] - knots[i]
			if d1 == 0 {
				d1 = knotEpsilon
			}
			d2 := knots[i+k] - knots[i+1]
			if d2 == 0 {
				d2 = knotEpsilon
			}
			nb[i] = (u-knots[i])/d1*nb[i] + (knots[i+k]-u)/d2*nb[i+1]
		}
	}
	return nb[:n]
}

// rows evaluates the rational basis at count evenly spaced parameters.
func (b bspline) rows(count int) [][]float64 {
	n := len(b.ctrl)
	rows := make([][]float64, count)
	for k := 0; k < count; k++ {
		u := float64(k) / float64(count-1)
		row := basis(u, b.knots, n, b.order)
		sum := 0.0
		for i := range row {
			row[i] *= b.weights[i]
			sum += row[i]
		}
		if sum == 0 {
			sum = knotEpsilon
		}
		for i := range row {
			row[i] /= sum
		}
		rows[k] = row
	}
	return rows
}

// polygonLength returns the length of the control polygon.
func (b bspline) polygonLength() float64 {
	l := 0.0
	for i := 1; i < len(b.ctrl); i++ {
		l += b.ctrl[i].Distance(b.ctrl[i-1])
	}
	return l
}

// evalBspline samples the run starting at header i. It returns the points,
// starting with the pen position, and the index one past the run.
func (p *Path) evalBspline(i, density int) ([]Point, int, bool) {
	b, end := p.bsplineAt(i)
	length := b.polygonLength()
	if length < 1 {
		return nil, end, false
	}
	count := max(density, int(length/bsplineSegmentLength))

	e := p.cache[i]
	if e == nil || e.count != count || e.end != end || len(e.rows) == 0 || len(e.rows[0]) != len(b.ctrl) {
		e = &basisEntry{count: count, end: end, rows: b.rows(count)}
		if p.cache == nil {
			p.cache = make(basisCache)
		}
		p.cache[i] = e
	}

	out := make([]Point, count)
	for k, row := range e.rows {
		var v Vec2
		for j, w := range row {
			v = v.Add(Vec2(b.ctrl[j]).Mul(w))
		}
		out[k] = Point(v)
	}
	out[0] = b.ctrl[0]
	out[count-1] = b.ctrl[len(b.ctrl)-1]
	return out, end, true
}
