package mandelbrot

import (
	"runtime"

	"fractals/pkg/core"
)

// Config holds parameters for the escape-time field.
type Config struct {
	Width   int
	Height  int
	MaxIter int
	Region  core.Bounds

	// Workers bounds the number of rows computed concurrently. Zero means
	// runtime.NumCPU().
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 800, MaxIter: core.DefaultMaxIter, Region: FullSet}
}

// FromMap populates a Config from a string map. A "region" key selects one
// of Regions before the individual bounds keys are applied.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if name, ok := cfg["region"]; ok {
		region, found := Regions[name]
		if !found {
			return c, core.Invalidf("unknown region %q", name)
		}
		c.Region = region
	}
	r := core.NewMapReader(cfg)
	r.Int("w", &c.Width)
	r.Int("h", &c.Height)
	r.Int("max_iter", &c.MaxIter)
	r.Bounds("", &c.Region)
	r.Int("workers", &c.Workers)
	return c, r.Err()
}

// Validate rejects configurations that cannot or should not be generated.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return core.Invalidf("resolution %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxIter <= 0 {
		return core.Invalidf("max_iter %d must be positive", c.MaxIter)
	}
	if c.Workers < 0 {
		return core.Invalidf("workers %d is negative", c.Workers)
	}
	if err := core.CheckBounds("region", c.Region); err != nil {
		return err
	}
	if c.MaxIter > core.Limits.MaxIter {
		return core.Exhaustedf("max_iter %d exceeds ceiling %d", c.MaxIter, core.Limits.MaxIter)
	}
	if int64(c.Width)*int64(c.Height) > int64(core.Limits.FieldPixels) {
		return core.Exhaustedf("resolution %dx%d exceeds %d pixels", c.Width, c.Height, core.Limits.FieldPixels)
	}
	return nil
}

// Coord maps pixel (x, y) to its point in the complex plane. Endpoints are
// inclusive: column 0 samples Min.X and column Width-1 samples Max.X; row 0
// samples Min.Y.
func (c Config) Coord(x, y int) complex128 {
	return complex(sample(c.Region.Min.X, c.Region.Max.X, x, c.Width), sample(c.Region.Min.Y, c.Region.Max.Y, y, c.Height))
}

func sample(lo, hi float64, i, n int) float64 {
	if n <= 1 {
		return lo
	}
	return lo + float64(i)*(hi-lo)/float64(n-1)
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Parameters reports the configuration as a snapshot.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Raster",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.IntParam("max_iter", "Max iterations", c.MaxIter),
			},
		},
		{Name: "Region", Params: core.BoundsParams("", c.Region)},
	}}
}
