package polyline

// HitSlop is added to half the stroke thickness when hit testing.
const HitSlop = 3

// Hit returns the index of the segment of the drawn path closest to pt, if
// pt lies within thickness/2 + HitSlop of it.
//
// The path is sampled at MaxDensity and every pair of consecutive samples is
// tested as a thick line. Pen moves are never hit.
func (p *Path) Hit(pt Point, thickness float64) (int, bool) {
	pts, ends := p.SampleIndexed(MaxDensity, false)
	if len(pts) < 2 {
		return -1, false
	}
	tol := thickness/2 + HitSlop
	best, bestDist := -1, tol*tol
	seg := 1
	for j := 0; j+1 < len(pts); j++ {
		// Pair j belongs to the first segment whose last sample is past j.
		for seg < len(ends) && j >= ends[seg] {
			seg++
		}
		if seg >= len(ends) {
			break
		}
		if p.Segments[seg].Kind.IsMove() {
			continue
		}
		d, _ := Line{pts[j], pts[j+1]}.Nearest(pt)
		if d < bestDist || (best < 0 && d <= bestDist) {
			best, bestDist = seg, d
		}
	}
	return best, best >= 0
}
