// Package tree grows recursive branching trees from a trunk segment.
package tree

import (
	"context"
	"math"

	"fractals/pkg/core"
)

// Config holds parameters for one tree or a mirrored pair.
type Config struct {
	Origin core.Point
	Length float64
	Angle  float64
	Depth  int

	// Ratio scales each child branch relative to its parent.
	Ratio float64
	// Delta is the angle each child turns away from its parent.
	Delta float64
	// Direction is +1 or -1 and multiplies Delta, mirroring the growth order.
	Direction int

	// Twin grows two trees Spacing to either side of Origin, the left one
	// with Direction -1 and the right one with +1.
	Twin    bool
	Spacing float64
}

// DefaultConfig returns the default single-tree configuration.
func DefaultConfig() Config {
	return Config{
		Origin:    core.Point{X: 0, Y: -0.8},
		Length:    0.5,
		Angle:     math.Pi / 2,
		Depth:     core.DefaultTreeDepth,
		Ratio:     0.67,
		Delta:     math.Pi / 6,
		Direction: 1,
	}
}

// DefaultTwinConfig returns the default mirrored pair, scaled to fit next to
// each other in the unit square.
func DefaultTwinConfig() Config {
	return Config{
		Origin:    core.Point{X: 0, Y: -0.4},
		Length:    0.2,
		Angle:     math.Pi / 2,
		Depth:     8,
		Ratio:     0.7,
		Delta:     math.Pi / 6,
		Direction: 1,
		Twin:      true,
		Spacing:   0.25,
	}
}

// FromMap populates a Config from a string map. "twin=1" switches the
// defaults to DefaultTwinConfig before the other keys are applied.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	twin := 0
	r := core.NewMapReader(cfg)
	r.Int("twin", &twin)
	if twin != 0 {
		c = DefaultTwinConfig()
	}
	r.Point("", &c.Origin)
	r.Float("length", &c.Length)
	r.Float("angle", &c.Angle)
	r.Int("depth", &c.Depth)
	r.Float("ratio", &c.Ratio)
	r.Float("delta", &c.Delta)
	r.Int("direction", &c.Direction)
	r.Float("spacing", &c.Spacing)
	return c, r.Err()
}

// Validate rejects configurations that would produce no meaningful tree or
// an unbounded number of branches.
func (c Config) Validate() error {
	if err := core.CheckDepth("depth", c.Depth, core.Limits.TreeDepth); err != nil {
		return err
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"x", c.Origin.X}, {"y", c.Origin.Y}, {"length", c.Length}, {"angle", c.Angle},
		{"ratio", c.Ratio}, {"delta", c.Delta}, {"spacing", c.Spacing},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return core.Invalidf("%s is not finite", v.name)
		}
	}
	if c.Length <= 0 {
		return core.Invalidf("initial branch length %g must be positive", c.Length)
	}
	if c.Ratio <= 0 {
		return core.Invalidf("length ratio %g must be positive", c.Ratio)
	}
	if c.Direction != 1 && c.Direction != -1 {
		return core.Invalidf("direction %d must be +1 or -1", c.Direction)
	}
	if c.Twin && c.Spacing <= 0 {
		return core.Invalidf("twin spacing %g must be positive", c.Spacing)
	}
	return nil
}

// Parameters reports the configuration as a snapshot.
func (c Config) Parameters() core.ParameterSnapshot {
	growth := []core.Parameter{
		core.IntParam("depth", "Depth", c.Depth),
		core.FloatParam("length", "Trunk length", c.Length),
		core.FloatParam("angle", "Trunk angle", c.Angle),
		core.FloatParam("ratio", "Length ratio", c.Ratio),
		core.FloatParam("delta", "Branch angle", c.Delta),
		core.IntParam("direction", "Direction", c.Direction),
	}
	layout := core.PointParams("", "Origin", c.Origin)
	if c.Twin {
		layout = append(layout, core.IntParam("twin", "Twin", 1), core.FloatParam("spacing", "Spacing", c.Spacing))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Growth", Params: growth},
		{Name: "Layout", Params: layout},
	}}
}

type branch struct {
	start  core.Point
	length float64
	angle  float64
	depth  int
}

// Branch appends the tree rooted at start to dst in pre-order: every branch
// precedes its two children, and the child turned by +delta*direction with
// its whole subtree precedes the one turned by -delta*direction. Depth 0
// appends nothing; depth d appends 2^d-1 segments. An explicit stack is used
// so deep trees do not grow the goroutine stack.
func Branch(dst []core.Segment, start core.Point, length, angle float64, depth int, ratio, delta float64, direction int) []core.Segment {
	turn := delta * float64(direction)
	stack := []branch{{start: start, length: length, angle: angle, depth: depth}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.depth <= 0 {
			continue
		}
		sin, cos := math.Sincos(b.angle)
		end := core.Point{X: b.start.X + b.length*cos, Y: b.start.Y + b.length*sin}
		dst = append(dst, core.Segment{Start: b.start, End: end})

		next := b.length * ratio
		stack = append(stack,
			branch{start: end, length: next, angle: b.angle - turn, depth: b.depth - 1},
			branch{start: end, length: next, angle: b.angle + turn, depth: b.depth - 1},
		)
	}
	return dst
}

// Generate returns the segments of the configured tree, or of the left then
// the right tree when cfg.Twin is set.
func Generate(cfg Config) ([]core.Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Twin {
		return grow(nil, cfg, cfg.Origin, cfg.Direction), nil
	}
	segs := make([]core.Segment, 0, 2*(1<<cfg.Depth-1))
	segs = grow(segs, cfg, core.Point{X: cfg.Origin.X - cfg.Spacing, Y: cfg.Origin.Y}, -1)
	return grow(segs, cfg, core.Point{X: cfg.Origin.X + cfg.Spacing, Y: cfg.Origin.Y}, 1), nil
}

func grow(dst []core.Segment, cfg Config, origin core.Point, direction int) []core.Segment {
	if dst == nil {
		dst = make([]core.Segment, 0, 1<<cfg.Depth-1)
	}
	return Branch(dst, origin, cfg.Length, cfg.Angle, cfg.Depth, cfg.Ratio, cfg.Delta, direction)
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

func (g generator) Kind() core.Kind { return core.KindTree }

func (g generator) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

func (g generator) Generate(context.Context) (core.Result, error) {
	segs, err := Generate(g.cfg)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Kind: core.KindTree, Segments: segs}, nil
}

func init() {
	core.Register(core.KindTree, func(cfg map[string]string) (core.Generator, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
