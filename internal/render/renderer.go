//go:build ebiten

package render

import (
	"image/color"

	"fractals/pkg/core"
	"fractals/pkg/export"
	"fractals/pkg/player"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxBatchVertices keeps triangle batches within uint16 indices.
const maxBatchVertices = 3 * 21845

// Painter accumulates revealed primitives of a Playback onto a canvas so each
// frame only draws what was revealed since the previous one.
type Painter struct {
	w, h   int
	vp     export.Viewport
	canvas *ebiten.Image
	white  *ebiten.Image
	drawn  int

	fieldImg *ebiten.Image
	buf      []byte

	Background color.RGBA
	Ink        color.RGBA
}

// NewPainter allocates a w x h painter. Vector geometry is fitted to view.
func NewPainter(w, h int, view core.Bounds) *Painter {
	p := &Painter{
		w:          w,
		h:          h,
		vp:         export.Fit(view, w, h, 0.05),
		canvas:     ebiten.NewImage(w, h),
		white:      ebiten.NewImage(1, 1),
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Ink:        color.RGBA{G: 0x80, A: 0xff},
	}
	p.white.Fill(color.White)
	p.canvas.Fill(p.Background)
	return p
}

// Reset clears the canvas so the next Draw repaints from the first primitive.
func (p *Painter) Reset() {
	p.drawn = 0
	if p.fieldImg != nil {
		p.fieldImg.Dispose()
		p.fieldImg = nil
	}
	p.canvas.Fill(p.Background)
}

// Draw paints newly revealed primitives of pb and blits the canvas to dst.
func (p *Painter) Draw(dst *ebiten.Image, pb *player.Playback) {
	switch {
	case pb.Field != nil:
		p.drawField(pb)
	case pb.Segments != nil:
		p.drawSegments(pb.Segments.Played())
	case pb.Points != nil:
		p.drawPoints(pb.Points.Played())
	case pb.Triangles != nil:
		p.drawTriangles(pb.Triangles.Played())
	}
	dst.DrawImage(p.canvas, &ebiten.DrawImageOptions{})
}

func (p *Painter) drawField(pb *player.Playback) {
	rows := len(pb.Rows.Played())
	if rows == p.drawn && p.fieldImg != nil {
		return
	}
	f := pb.Field
	if p.fieldImg == nil {
		p.fieldImg = ebiten.NewImage(f.W, f.H)
		p.buf = make([]byte, 4*f.W*f.H)
	}
	fillFieldRGBA(p.buf, f, rows, p.Background)
	p.fieldImg.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.w)/float64(f.W), float64(p.h)/float64(f.H))
	p.canvas.DrawImage(p.fieldImg, op)
	p.drawn = rows
}

func (p *Painter) drawSegments(segs []core.Segment) {
	for _, s := range segs[p.drawn:] {
		x0, y0 := p.vp.Project(s.Start)
		x1, y1 := p.vp.Project(s.End)
		vector.StrokeLine(p.canvas, float32(x0), float32(y0), float32(x1), float32(y1), 1, p.Ink, false)
	}
	p.drawn = len(segs)
}

func (p *Painter) drawPoints(pts []core.Point) {
	for _, pt := range pts[p.drawn:] {
		x, y := p.vp.Project(pt)
		vector.DrawFilledRect(p.canvas, float32(x), float32(y), 1, 1, p.Ink, false)
	}
	p.drawn = len(pts)
}

func (p *Painter) drawTriangles(tris []core.Triangle) {
	pending := tris[p.drawn:]
	for len(pending) > 0 {
		n := min(len(pending), maxBatchVertices/3)
		vs := make([]ebiten.Vertex, 0, 3*n)
		is := make([]uint16, 0, 3*n)
		for _, t := range pending[:n] {
			c := export.PaletteColor(export.Palette, t.Color)
			for _, v := range [...]core.Point{t.A, t.B, t.C} {
				x, y := p.vp.Project(v)
				is = append(is, uint16(len(vs)))
				vs = append(vs, ebiten.Vertex{
					DstX:   float32(x),
					DstY:   float32(y),
					ColorR: float32(c.R) / 0xff,
					ColorG: float32(c.G) / 0xff,
					ColorB: float32(c.B) / 0xff,
					ColorA: float32(c.A) / 0xff,
				})
			}
		}
		p.canvas.DrawTriangles(vs, is, p.white, &ebiten.DrawTrianglesOptions{})
		pending = pending[n:]
	}
	p.drawn = len(tris)
}

// Size returns the dimensions of the canvas.
func (p *Painter) Size() (int, int) { return p.w, p.h }
