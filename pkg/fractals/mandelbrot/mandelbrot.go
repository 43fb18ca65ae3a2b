// Package mandelbrot computes escape-time iteration fields over a region of
// the complex plane.
package mandelbrot

import (
	"context"

	"fractals/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Escape iterates z = z*z + c from z = 0 and returns the number of steps
// taken before |z| exceeds 2, or maxIter if it never does.
func Escape(c complex128, maxIter int) int {
	z := complex(0, 0)
	for i := 0; i < maxIter; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i
		}
		z = z*z + c
	}
	return maxIter
}

// Generate computes the iteration count of every pixel in cfg. Rows are
// spread across cfg.Workers goroutines and ctx is checked before each row, so
// a cancelled context aborts the run and its error is returned.
func Generate(ctx context.Context, cfg Config) (*core.PixelField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field := core.NewPixelField(cfg.Width, cfg.Height, cfg.MaxIter)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for y := 0; y < cfg.Height; y++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillRow(field, cfg, y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return field, nil
}

// fillRow writes row y. Rows never overlap so concurrent calls need no lock.
func fillRow(field *core.PixelField, cfg Config, y int) {
	for x := 0; x < cfg.Width; x++ {
		field.Set(x, y, Escape(cfg.Coord(x, y), cfg.MaxIter))
	}
}

type generator struct {
	cfg Config
}

// New validates cfg and wraps it as a core.Generator.
func New(cfg Config) (core.Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return generator{cfg: cfg}, nil
}

func (g generator) Kind() core.Kind { return core.KindMandelbrot }

func (g generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

func (g generator) Generate(ctx context.Context) (core.Result, error) {
	field, err := Generate(ctx, g.cfg)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Kind: core.KindMandelbrot, Field: field}, nil
}

func init() {
	core.Register(core.KindMandelbrot, func(cfg map[string]string) (core.Generator, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
