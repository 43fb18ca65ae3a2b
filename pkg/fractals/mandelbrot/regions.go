package mandelbrot

import "fractals/pkg/core"

// Classic regions / landmarks in the Mandelbrot set.
var (
	// FullSet frames the whole set.
	FullSet = core.Box(-2.0, 1.0, -1.5, 1.5)

	// SeahorseValley has dense filaments and repeating "seahorse" curls.
	SeahorseValley = core.Box(-0.8, -0.7, 0.05, 0.15)

	// ElephantValley is the large bulb with trunk-like tendrils.
	ElephantValley = core.Box(-1.85, -1.75, -0.10, -0.02)

	// SpiralMinibrot is a small copy of the set with tight spiral arms.
	SpiralMinibrot = core.Box(-0.7435, -0.7420, 0.1310, 0.1325)

	// TripleSpiral has threefold symmetric spiral structure.
	TripleSpiral = core.Box(-0.7480, -0.7450, 0.0950, 0.0980)
)

// Regions maps the names accepted by the "region" config key to landmarks.
var Regions = map[string]core.Bounds{
	"full":     FullSet,
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"minibrot": SpiralMinibrot,
	"triple":   TripleSpiral,
}
