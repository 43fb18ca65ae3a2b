package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"fractals/pkg/core"

	svg "github.com/ajstarks/svgo"
)

// SVGOptions controls the canvas of WriteSVG.
type SVGOptions struct {
	Width, Height int
	// Margin is the fraction of the geometry extent left blank on each side.
	Margin float64
	Stroke string
}

// DefaultSVGOptions returns an 800x800 canvas with black strokes.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 800, Height: 800, Margin: 0.05, Stroke: "black"}
}

// WriteSVG draws segments as lines, points as one-pixel dots and triangles as
// filled polygons. Pixel fields are not supported; use WritePNG.
func WriteSVG(w io.Writer, res core.Result, opts SVGOptions) error {
	if res.Kind == core.KindMandelbrot {
		return errors.Join(ErrUnsupported, errors.New("svg cannot hold a pixel field"))
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("export: canvas %dx%d must be positive", opts.Width, opts.Height)
	}
	vp := Fit(ResultBounds(res), opts.Width, opts.Height, opts.Margin)
	at := func(p core.Point) (int, int) {
		x, y := vp.Project(p)
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white")
	switch res.Kind {
	case core.KindKoch, core.KindTree:
		canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:1;fill:none", opts.Stroke))
		for _, s := range res.Segments {
			x1, y1 := at(s.Start)
			x2, y2 := at(s.End)
			canvas.Line(x1, y1, x2, y2)
		}
		canvas.Gend()
	case core.KindChaos:
		canvas.Gstyle(fmt.Sprintf("fill:%s", opts.Stroke))
		for _, p := range res.Points {
			x, y := at(p)
			canvas.Rect(x, y, 1, 1)
		}
		canvas.Gend()
	case core.KindSierpinski:
		for _, t := range res.Triangles {
			ax, ay := at(t.A)
			bx, by := at(t.B)
			cx, cy := at(t.C)
			canvas.Polygon([]int{ax, bx, cx}, []int{ay, by, cy}, "fill:"+Hex(PaletteColor(Palette, t.Color)))
		}
	}
	canvas.End()
	return nil
}
