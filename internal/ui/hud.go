//go:build ebiten

package ui

import (
	"image/color"

	"fractals/pkg/core"
	"fractals/pkg/player"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	lineHeight   = 16
)

// HUD renders a read-only parameter panel to the right of the fractal view.
type HUD struct {
	gen   core.Generator
	width int
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD for the provided generator and panel width.
func NewHUD(gen core.Generator, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{gen: gen, width: width}
}

// Update refreshes the panel text from the playback progress.
func (h *HUD) Update(pb *player.Playback) {
	if h == nil || h.gen == nil {
		return
	}
	played, total := pb.Progress()
	h.lines = panelLines(h.gen.Kind(), h.gen.Parameters(), played, total)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight, clr)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}
