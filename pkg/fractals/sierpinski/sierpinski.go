// Package sierpinski builds the Sierpinski gasket by exact triangle
// subdivision.
package sierpinski

import (
	"context"

	"fractals/pkg/core"
)

// Config holds parameters for the gasket.
type Config struct {
	Depth    int
	Triangle [3]core.Point

	// PaletteSize is the number of colours the renderer cycles through. Every
	// triangle of one run carries Depth mod PaletteSize.
	PaletteSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Depth: 5,
		Triangle: [3]core.Point{
			{X: -0.8, Y: -0.8},
			{X: 0.8, Y: -0.8},
			{X: 0.0, Y: 0.8},
		},
		PaletteSize: 8,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	r := core.NewMapReader(cfg)
	r.Int("depth", &c.Depth)
	r.Point("p1", &c.Triangle[0])
	r.Point("p2", &c.Triangle[1])
	r.Point("p3", &c.Triangle[2])
	r.Int("palette", &c.PaletteSize)
	return c, r.Err()
}

// Validate rejects negative or oversized depths, degenerate triangles and
// empty palettes.
func (c Config) Validate() error {
	if err := core.CheckDepth("depth", c.Depth, core.Limits.SierpinskiDepth); err != nil {
		return err
	}
	if c.PaletteSize <= 0 {
		return core.Invalidf("palette size %d must be positive", c.PaletteSize)
	}
	return core.CheckTriangle(c.Triangle[0], c.Triangle[1], c.Triangle[2])
}

// Parameters reports the configuration as a snapshot.
func (c Config) Parameters() core.ParameterSnapshot {
	var tri []core.Parameter
	tri = append(tri, core.PointParams("p1", "P1", c.Triangle[0])...)
	tri = append(tri, core.PointParams("p2", "P2", c.Triangle[1])...)
	tri = append(tri, core.PointParams("p3", "P3", c.Triangle[2])...)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Gasket",
			Params: []core.Parameter{
				core.IntParam("depth", "Depth", c.Depth),
				core.IntParam("palette", "Palette size", c.PaletteSize),
			},
		},
		{Name: "Triangle", Params: tri},
	}}
}

// Subdivide appends the depth-level gasket inside triangle (a, b, c) to dst.
// Depth 0 emits the triangle itself; otherwise the three corner triangles
// (at a, then b, then c) are subdivided at depth-1 and the central inverted
// triangle is left out. Every emitted triangle is tagged with color, which
// the caller derives from its target depth rather than the local level.
func Subdivide(dst []core.Triangle, depth, color int, a, b, c core.Point) []core.Triangle {
	if depth <= 0 {
		return append(dst, core.Triangle{A: a, B: b, C: c, Color: color})
	}
	ab := core.Midpoint(a, b)
	bc := core.Midpoint(b, c)
	ca := core.Midpoint(c, a)
	dst = Subdivide(dst, depth-1, color, a, ab, ca)
	dst = Subdivide(dst, depth-1, color, ab, b, bc)
	return Subdivide(dst, depth-1, color, ca, bc, c)
}

// Generate returns the 3^Depth triangles of the gasket.
func Generate(cfg Config) ([]core.Triangle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return gasket(cfg, cfg.Depth), nil
}

// Progression returns the gasket at every depth from 0 to cfg.Depth, each
// coloured by its own target depth.
func Progression(cfg Config) ([][]core.Triangle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	frames := make([][]core.Triangle, 0, cfg.Depth+1)
	for d := 0; d <= cfg.Depth; d++ {
		frames = append(frames, gasket(cfg, d))
	}
	return frames, nil
}

func gasket(cfg Config, depth int) []core.Triangle {
	t := cfg.Triangle
	out := make([]core.Triangle, 0, pow3(depth))
	return Subdivide(out, depth, depth%cfg.PaletteSize, t[0], t[1], t[2])
}

func pow3(n int) int {
	p := 1
	for range n {
		p *= 3
	}
	return p
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

func (g generator) Kind() core.Kind { return core.KindSierpinski }

func (g generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

func (g generator) Generate(context.Context) (core.Result, error) {
	tris, err := Generate(g.cfg)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Kind: core.KindSierpinski, Triangles: tris}, nil
}

func init() {
	core.Register(core.KindSierpinski, func(cfg map[string]string) (core.Generator, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
