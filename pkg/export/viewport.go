package export

import "fractals/pkg/core"

// Viewport maps plane coordinates inside View onto a W x H pixel canvas with
// a top-left origin, flipping the y axis.
type Viewport struct {
	View core.Bounds
	W, H int
}

// Fit returns a viewport showing b plus a margin of the given fraction on
// every side. Degenerate bounds are widened to a unit square.
func Fit(b core.Bounds, w, h int, margin float64) Viewport {
	if b.Width() <= 0 {
		b.Min.X, b.Max.X = b.Min.X-0.5, b.Max.X+0.5
	}
	if b.Height() <= 0 {
		b.Min.Y, b.Max.Y = b.Min.Y-0.5, b.Max.Y+0.5
	}
	mx, my := b.Width()*margin, b.Height()*margin
	return Viewport{
		View: core.Box(b.Min.X-mx, b.Max.X+mx, b.Min.Y-my, b.Max.Y+my),
		W:    w,
		H:    h,
	}
}

// Project returns the pixel position of p.
func (v Viewport) Project(p core.Point) (float64, float64) {
	x := (p.X - v.View.Min.X) / v.View.Width() * float64(v.W)
	y := (v.View.Max.Y - p.Y) / v.View.Height() * float64(v.H)
	return x, y
}

// ResultBounds returns the extent of the geometry in res.
func ResultBounds(res core.Result) core.Bounds {
	switch res.Kind {
	case core.KindKoch, core.KindTree:
		return core.SegmentBounds(res.Segments)
	case core.KindChaos:
		return core.PointBounds(res.Points)
	case core.KindSierpinski:
		pts := make([]core.Point, 0, 3*len(res.Triangles))
		for _, t := range res.Triangles {
			pts = append(pts, t.A, t.B, t.C)
		}
		return core.PointBounds(pts)
	}
	return core.Bounds{}
}
