package polyline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Path.SVG] and [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the sampled path to a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p *Path) SVG(density int, frameRelative bool, opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, density, frameRelative, opts)
	return sb.String()
}

// WriteSVG samples the path like [Path.Sample] and writes the polyline as SVG
// path commands to w. Pen moves start a new subpath. Closed paths end in Z.
func (p *Path) WriteSVG(w io.Writer, density int, frameRelative bool, opts SVGOptions) error {
	pts, ends := p.SampleIndexed(density, frameRelative)
	if len(pts) == 0 {
		return nil
	}

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if n == 0 {
			// Drop the sign of negative zero.
			n = 0
		}
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			return "0"
		}
		return s
	}

	writef("M%s,%s", format(pts[0].X), format(pts[0].Y))
	for i := 1; i < len(ends); i++ {
		from, to := ends[i-1]+1, ends[i]
		if to < from {
			continue
		}
		if p.Segments[i].Kind.IsMove() {
			writef(" M%s,%s", format(pts[to].X), format(pts[to].Y))
			continue
		}
		for _, pt := range pts[from : to+1] {
			writef(" L%s,%s", format(pt.X), format(pt.Y))
		}
	}
	if p.Closed {
		writef(" Z")
	}
	return err
}
