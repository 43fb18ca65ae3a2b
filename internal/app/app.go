//go:build ebiten

package app

import (
	"time"

	icore "fractals/internal/core"
	"fractals/internal/render"
	"fractals/internal/ui"
	"fractals/pkg/core"
	"fractals/pkg/export"
	"fractals/pkg/player"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// framePause is how long a finished frame stays on screen before the next
// one of a growth sequence starts.
const framePause = time.Second

// Game adapts a sequence of fractal results to the ebiten.Game interface,
// revealing each one primitive at a time.
type Game struct {
	results []core.Result
	frames  *player.Queue[core.Result]
	current *player.Playback

	painter *render.Painter
	hud     *ui.HUD
	clock   *icore.FixedStep

	size       int
	paused     bool
	tickOnce   bool
	finishedAt time.Time
}

// New constructs a Game playing results in order on a size x size canvas.
func New(gen core.Generator, results []core.Result, cfg *Config) *Game {
	view := core.Box(-1, 1, -1, 1)
	for _, r := range results {
		if r.Kind != core.KindMandelbrot && r.Len() > 0 {
			view = export.ResultBounds(r)
		}
	}
	g := &Game{
		results: results,
		painter: render.NewPainter(cfg.Size, cfg.Size, view),
		hud:     ui.NewHUD(gen, cfg.HUD),
		clock:   icore.NewFixedStep(cfg.Rate),
		size:    cfg.Size,
	}
	g.Reset()
	return g
}

// Reset restarts playback from the first frame.
func (g *Game) Reset() {
	g.frames = player.New(g.results)
	g.current = nil
	g.finishedAt = time.Time{}
	g.nextFrame()
}

func (g *Game) nextFrame() bool {
	res, ok := g.frames.Advance()
	if !ok {
		return false
	}
	g.current = player.FromResult(res)
	g.painter.Reset()
	return true
}

// Update handles per-frame logic and reveals the primitives that are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) && g.current != nil {
		played, total := g.current.Progress()
		g.current.Step(total - played)
	}

	due := g.clock.Due()
	if g.current == nil {
		return nil
	}
	switch {
	case g.tickOnce:
		g.current.Step(1)
		g.tickOnce = false
	case !g.paused:
		g.current.Step(due)
	}

	if g.current.Done() && !g.frames.Done() {
		if g.finishedAt.IsZero() {
			g.finishedAt = time.Now()
		} else if time.Since(g.finishedAt) >= framePause {
			g.finishedAt = time.Time{}
			g.nextFrame()
		}
	}
	g.hud.Update(g.current)
	return nil
}

// Draw renders the revealed part of the current frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.painter.Draw(screen, g.current)
	}
	g.hud.Draw(screen, g.size, g.size)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size + g.hud.Width(), g.size
}
