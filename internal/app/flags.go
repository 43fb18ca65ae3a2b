package app

import (
	"flag"
	"fmt"
	"strings"

	"fractals/pkg/core"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Kind   string
	Size   int
	Rate   int
	TPS    int
	Grow   bool
	HUD    int
	Params Params
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Kind: string(core.KindTree), Size: 800, Rate: 240, TPS: 60, HUD: 260, Params: Params{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Kind, "kind", c.Kind, "fractal to generate (chaos, koch, mandelbrot, sierpinski, tree)")
	fs.IntVar(&c.Size, "size", c.Size, "canvas width and height in pixels")
	fs.IntVar(&c.Rate, "rate", c.Rate, "primitives revealed per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Grow, "grow", c.Grow, "replay koch/sierpinski once per order up to the requested one")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
	fs.Var(c.Params, "p", "generator parameter as key=value (repeatable)")
}

// Params collects repeated key=value flags into a generator config map.
type Params map[string]string

// String implements flag.Value.
func (p Params) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

// Set implements flag.Value.
func (p Params) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("parameter %q is not key=value", s)
	}
	p[k] = v
	return nil
}
