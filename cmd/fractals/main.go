//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"fractals/internal/app"
	"fractals/pkg/core"
	_ "fractals/pkg/fractals"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen, frames, err := app.Frames(context.Background(), core.Kind(cfg.Kind), cfg.Params, cfg.Grow)
	if err != nil {
		log.Fatalf("generate %s: %v", cfg.Kind, err)
	}
	log.Printf("generated %s: %d frame(s), %d primitives in the last", cfg.Kind, len(frames), frames[len(frames)-1].Len())

	game := app.New(gen, frames, cfg)

	ebiten.SetWindowTitle("fractals: " + cfg.Kind)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Size+cfg.HUD, cfg.Size)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
