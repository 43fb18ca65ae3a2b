package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"fractals/pkg/core"
)

func TestWritePNG(t *testing.T) {
	field := core.NewPixelField(3, 2, 4)
	field.Set(0, 0, 4) // bottom-left, inside the set
	field.Set(2, 1, 0) // top-right, escaped
	var buf bytes.Buffer
	if err := WritePNG(&buf, core.Result{Kind: core.KindMandelbrot, Field: field}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("image bounds %v", b)
	}
	if r, _, _, _ := img.At(0, 1).RGBA(); r != 0 {
		t.Fatalf("bottom-left pixel r=%d, want black", r)
	}
	if r, _, _, _ := img.At(2, 0).RGBA(); r != 0xffff {
		t.Fatalf("top-right pixel r=%d, want white", r)
	}
}

func TestWritePNGNeedsField(t *testing.T) {
	err := WritePNG(&bytes.Buffer{}, core.Result{Kind: core.KindTree, Segments: []core.Segment{{}}})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestWriteSVG(t *testing.T) {
	res := core.Result{Kind: core.KindKoch, Segments: []core.Segment{
		{Start: core.Point{X: 0, Y: 0}, End: core.Point{X: 1, Y: 0}},
		{Start: core.Point{X: 1, Y: 0}, End: core.Point{X: 0.5, Y: 1}},
	}}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, res, DefaultSVGOptions()); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "<?xml") || strings.Count(out, "<line") != 2 {
		t.Fatalf("unexpected svg:\n%s", out)
	}

	tris := core.Result{Kind: core.KindSierpinski, Triangles: []core.Triangle{{A: core.Point{}, B: core.Point{X: 1}, C: core.Point{Y: 1}, Color: 1}}}
	buf.Reset()
	if err := WriteSVG(&buf, tris, DefaultSVGOptions()); err != nil {
		t.Fatalf("WriteSVG triangles: %v", err)
	}
	if !strings.Contains(buf.String(), "<polygon") || !strings.Contains(buf.String(), "fill:#b2182b") {
		t.Fatalf("triangle svg missing polygon:\n%s", buf.String())
	}

	if err := WriteSVG(&buf, core.Result{Kind: core.KindMandelbrot, Field: core.NewPixelField(1, 1, 1)}, DefaultSVGOptions()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("field svg: err = %v", err)
	}
}

func TestViewportProject(t *testing.T) {
	vp := Viewport{View: core.Box(-1, 1, -1, 1), W: 200, H: 100}
	x, y := vp.Project(core.Point{X: -1, Y: 1})
	if x != 0 || y != 0 {
		t.Fatalf("top-left projects to (%v,%v)", x, y)
	}
	x, y = vp.Project(core.Point{X: 0, Y: 0})
	if x != 100 || y != 50 {
		t.Fatalf("centre projects to (%v,%v)", x, y)
	}
}

func TestPaletteColor(t *testing.T) {
	if got := PaletteColor(Palette, len(Palette)+1); got != Palette[1] {
		t.Fatalf("palette wrap = %v, want %v", got, Palette[1])
	}
	if got := PaletteColor(nil, 3); got != (color.RGBA{A: 0xff}) {
		t.Fatalf("empty palette = %v", got)
	}
	if got := Hex(Palette[1]); got != "#b2182b" {
		t.Fatalf("hex = %q", got)
	}
}
