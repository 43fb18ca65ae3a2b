// Package chaos samples the Sierpinski attractor with the chaos game.
package chaos

import (
	"context"

	"fractals/pkg/core"
)

// Config holds parameters for the chaos game.
type Config struct {
	Vertices [3]core.Point
	Points   int
	Seed     int64

	// Start is the box the initial point is drawn from. It need not lie
	// inside the triangle, and no warm-up points are discarded, so the first
	// few emitted points may fall outside the attractor.
	Start core.Bounds
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Vertices: [3]core.Point{
			{X: -0.8, Y: -0.8},
			{X: 0.8, Y: -0.8},
			{X: 0.0, Y: 0.8},
		},
		Points: core.DefaultChaosCount,
		Seed:   42,
		Start:  core.Box(-0.8, 0.8, -0.8, 0.8),
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	r := core.NewMapReader(cfg)
	r.Point("v1", &c.Vertices[0])
	r.Point("v2", &c.Vertices[1])
	r.Point("v3", &c.Vertices[2])
	r.Int("n", &c.Points)
	r.Int64("seed", &c.Seed)
	r.Bounds("start_", &c.Start)
	return c, r.Err()
}

// Validate rejects negative or oversized point counts, degenerate triangles
// and empty start boxes.
func (c Config) Validate() error {
	if c.Points < 0 {
		return core.Invalidf("point count %d is negative", c.Points)
	}
	if c.Points > core.Limits.ChaosPoints {
		return core.Exhaustedf("point count %d exceeds ceiling %d", c.Points, core.Limits.ChaosPoints)
	}
	if err := core.CheckBounds("start box", c.Start); err != nil {
		return err
	}
	return core.CheckTriangle(c.Vertices[0], c.Vertices[1], c.Vertices[2])
}

// Parameters reports the configuration as a snapshot.
func (c Config) Parameters() core.ParameterSnapshot {
	var verts []core.Parameter
	verts = append(verts, core.PointParams("v1", "V1", c.Vertices[0])...)
	verts = append(verts, core.PointParams("v2", "V2", c.Vertices[1])...)
	verts = append(verts, core.PointParams("v3", "V3", c.Vertices[2])...)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Sampling",
			Params: []core.Parameter{
				core.IntParam("n", "Points", c.Points),
				core.Int64Param("seed", "Seed", c.Seed),
			},
		},
		{Name: "Vertices", Params: verts},
		{Name: "Start box", Params: core.BoundsParams("start_", c.Start)},
	}}
}

// Sample plays n rounds of the chaos game. The start point takes two draws
// (x, then y) from rng; each round takes one draw to pick a vertex, moves
// halfway towards it and emits the new position.
func Sample(vertices [3]core.Point, n int, start core.Bounds, rng *core.RNG) []core.Point {
	if n <= 0 {
		return []core.Point{}
	}
	p := core.Point{
		X: rng.Uniform(start.Min.X, start.Max.X),
		Y: rng.Uniform(start.Min.Y, start.Max.Y),
	}
	out := make([]core.Point, 0, n)
	for range n {
		p = core.Midpoint(p, vertices[rng.IntN(len(vertices))])
		out = append(out, p)
	}
	return out
}

// Generate returns cfg.Points samples. The same Config always yields the
// same points.
func Generate(cfg Config) ([]core.Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return Sample(cfg.Vertices, cfg.Points, cfg.Start, core.NewRNG(cfg.Seed)), nil
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

func (g generator) Kind() core.Kind { return core.KindChaos }

func (g generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

func (g generator) Generate(context.Context) (core.Result, error) {
	pts, err := Generate(g.cfg)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Kind: core.KindChaos, Points: pts}, nil
}

func init() {
	core.Register(core.KindChaos, func(cfg map[string]string) (core.Generator, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
