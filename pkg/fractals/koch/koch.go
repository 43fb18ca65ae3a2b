// Package koch generates Koch curves and the closed Koch snowflake.
package koch

import (
	"context"
	"math"

	"fractals/pkg/core"
)

// Config holds parameters for the snowflake.
type Config struct {
	Order int

	// Triangle lists the starting vertices. Each side is subdivided in the
	// order P1->P2, P2->P3, P3->P1 and the motif is raised on the left of the
	// direction of travel, so a clockwise triangle grows outward.
	Triangle [3]core.Point
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Order: core.DefaultKochOrder,
		Triangle: [3]core.Point{
			{X: -0.5, Y: -0.3},
			{X: 0.0, Y: 0.6},
			{X: 0.5, Y: -0.3},
		},
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	r := core.NewMapReader(cfg)
	r.Int("order", &c.Order)
	r.Point("p1", &c.Triangle[0])
	r.Point("p2", &c.Triangle[1])
	r.Point("p3", &c.Triangle[2])
	return c, r.Err()
}

// Validate rejects negative or oversized orders and degenerate triangles.
func (c Config) Validate() error {
	if err := core.CheckDepth("order", c.Order, core.Limits.KochOrder); err != nil {
		return err
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
		{Name: "Curve", Params: []core.Parameter{core.IntParam("order", "Order", c.Order)}},
		{Name: "Triangle", Params: tri},
	}}
}

var sin60, cos60 = math.Sincos(math.Pi / 3)

// Subdivide appends the order-n Koch curve from p1 to p2 to dst. Order 0 is
// the segment itself; every further order replaces each segment with four of
// a third its length, so the curve has 4^order segments.
func Subdivide(dst []core.Segment, order int, p1, p2 core.Point) []core.Segment {
	if order <= 0 {
		return append(dst, core.Segment{Start: p1, End: p2})
	}
	d := p2.Minus(p1)
	p3 := core.Lerp(p1, p2, 1.0/3)
	p4 := core.Lerp(p1, p2, 2.0/3)
	p5 := core.Point{
		X: p3.X + cos60*d.X/3 - sin60*d.Y/3,
		Y: p3.Y + sin60*d.X/3 + cos60*d.Y/3,
	}
	dst = Subdivide(dst, order-1, p1, p3)
	dst = Subdivide(dst, order-1, p3, p5)
	dst = Subdivide(dst, order-1, p5, p4)
	return Subdivide(dst, order-1, p4, p2)
}

// Snowflake returns the closed outline built from all three sides of the
// configured triangle, 3*4^order segments in drawing order.
func Snowflake(cfg Config) ([]core.Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return snowflake(cfg.Order, cfg.Triangle), nil
}

func snowflake(order int, t [3]core.Point) []core.Segment {
	segs := make([]core.Segment, 0, 3*pow4(order))
	segs = Subdivide(segs, order, t[0], t[1])
	segs = Subdivide(segs, order, t[1], t[2])
	return Subdivide(segs, order, t[2], t[0])
}

// Orders returns one snowflake outline per order from 0 up to cfg.Order, the
// frames of the classic "growing" animation.
func Orders(cfg Config) ([][]core.Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	frames := make([][]core.Segment, 0, cfg.Order+1)
	for n := 0; n <= cfg.Order; n++ {
		frames = append(frames, snowflake(n, cfg.Triangle))
	}
	return frames, nil
}

func pow4(n int) int { return 1 << (2 * n) }

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

func (g generator) Kind() core.Kind { return core.KindKoch }

func (g generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

func (g generator) Generate(context.Context) (core.Result, error) {
	segs, err := Snowflake(g.cfg)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Kind: core.KindKoch, Segments: segs}, nil
}

func init() {
	core.Register(core.KindKoch, func(cfg map[string]string) (core.Generator, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
