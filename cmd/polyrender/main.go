// Command polyrender renders a path document as SVG or PNG.
//
// Usage:
//
//	polyrender [flags] -in path.toml -out path.svg
//
// Documents are TOML, or YAML when -in ends in .yaml or .yml. The output
// format follows the extension of -out. Standard output receives
// SVG. Transforms are applied in the order scale, rotate, flip.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/vector"

	"honnef.co/go/polyline"
	"honnef.co/go/polyline/pathdoc"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

type options struct {
	in, out   string
	density   int
	precision int
	scale     float64
	rotate    float64
	flip      string
	thickness float64
	fill      bool
	verbose   bool
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("polyrender: %s", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("polyrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", pipeName, "Source document")
	fs.StringVar(&opts.out, "out", pipeName, "Destination, .svg or .png")
	fs.IntVar(&opts.density, "density", 32, "Points per curved segment")
	fs.IntVar(&opts.precision, "precision", 3, "Maximum decimals in SVG coordinates")
	fs.Float64Var(&opts.scale, "scale", 1, "Uniform scale factor")
	fs.Float64Var(&opts.rotate, "rotate", 0, "Rotation in degrees about the frame center")
	fs.StringVar(&opts.flip, "flip", "", "Mirror axes: h, v or hv")
	fs.Float64Var(&opts.thickness, "thickness", -1, "Stroke thickness, negative keeps the document's")
	fs.BoolVar(&opts.fill, "fill", false, "Fill closed paths instead of stroking them (PNG only)")
	fs.BoolVar(&opts.verbose, "v", false, "Log to standard error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.density < 2 || opts.density > polyline.MaxDensity {
		return options{}, fmt.Errorf("density must be between 2 and %d", polyline.MaxDensity)
	}
	if opts.scale <= 0 {
		return options{}, fmt.Errorf("scale must be positive")
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.verbose {
		polyline.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer polyline.SetLogger(nil)
	}

	p, err := load(opts.in, stdin)
	if err != nil {
		return err
	}
	if err := apply(p, opts); err != nil {
		return err
	}

	if opts.out == pipeName {
		return writeSVG(stdout, p, opts)
	}
	var write func(io.Writer, *polyline.Path, options) error
	switch strings.ToLower(filepath.Ext(opts.out)) {
	case ".png":
		write = writePNG
	case ".svg":
		write = writeSVG
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(opts.out))
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	err = write(f, p, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func load(name string, stdin io.Reader) (*polyline.Path, error) {
	if name == pipeName {
		return pathdoc.Decode(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	decode := pathdoc.Decode
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		decode = pathdoc.DecodeYAML
	}
	p, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

func apply(p *polyline.Path, opts options) error {
	if opts.thickness >= 0 {
		p.Thickness = opts.thickness
		p.RecomputeFrame()
	}
	p.Scale(opts.scale, opts.scale)
	if opts.rotate != 0 {
		p.Rotate(opts.rotate*math.Pi/180, p.Frame.Center())
	}
	var axis polyline.FlipAxis
	switch opts.flip {
	case "":
	case "h":
		axis = polyline.FlipHorizontal
	case "v":
		axis = polyline.FlipVertical
	case "hv", "vh":
		axis = polyline.FlipHorizontal | polyline.FlipVertical
	default:
		return fmt.Errorf("invalid flip axis %q", opts.flip)
	}
	if axis != 0 {
		p.Flip(axis)
	}
	polyline.Logger().Info("polyrender: rendering", "segments", p.Len(), "frame", p.Frame)
	return nil
}

// margin is the room left around the frame for the stroke.
func margin(p *polyline.Path) float64 {
	if p.Closed {
		// Closed paths are already inset.
		return 0
	}
	return p.Thickness / 2
}

func writeSVG(w io.Writer, p *polyline.Path, opts options) error {
	bw := bufio.NewWriter(w)
	m := margin(p)
	box := p.Frame.Inflate(m, m)
	origin := box.Origin().Sub(p.Frame.Origin())
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+"\n",
		origin.X, origin.Y, box.Width(), box.Height())
	fmt.Fprintf(bw, `<path fill="none" stroke="black" stroke-width="%g" d="`, max(p.Thickness, 1))
	if err := p.WriteSVG(bw, opts.density, true, polyline.SVGOptions{MaxPrecision: opts.precision}); err != nil {
		return err
	}
	fmt.Fprint(bw, "\"/>\n</svg>\n")
	return bw.Flush()
}

func writePNG(w io.Writer, p *polyline.Path, opts options) error {
	img := rasterize(p, opts.density, opts.fill)
	return png.Encode(w, img)
}

// rasterize draws the path in black on white. Each sampled line is filled as
// a rectangle of the path's thickness.
func rasterize(p *polyline.Path, density int, fill bool) *image.RGBA {
	m := margin(p)
	width := int(math.Ceil(p.Frame.Width() + 2*m))
	height := int(math.Ceil(p.Frame.Height() + 2*m))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	pts, ends := p.SampleIndexed(density, true)
	if len(pts) == 0 {
		return dst
	}
	ras := vector.NewRasterizer(width, height)
	at := func(pt polyline.Point) (float32, float32) {
		return float32(pt.X + m), float32(pt.Y + m)
	}

	if fill && p.Closed {
		ras.MoveTo(at(pts[0]))
		for _, pt := range pts[1:] {
			ras.LineTo(at(pt))
		}
		ras.ClosePath()
		ras.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
		return dst
	}

	hw := max(p.Thickness, 1) / 2
	seg := 1
	for j := 0; j+1 < len(pts); j++ {
		for seg < len(ends) && j >= ends[seg] {
			seg++
		}
		if seg < len(ends) && p.Segments[seg].Kind.IsMove() {
			continue
		}
		a, b := pts[j], pts[j+1]
		d := b.Sub(a)
		if d.Hypot() == 0 {
			continue
		}
		n := d.Perp().Normalize().Mul(hw)
		ras.MoveTo(at(a.Translate(n)))
		ras.LineTo(at(b.Translate(n)))
		ras.LineTo(at(b.Translate(n.Negate())))
		ras.LineTo(at(a.Translate(n.Negate())))
		ras.ClosePath()
	}
	ras.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return dst
}
