// Package fractals links every generator into the core registry. Import it
// for its side effects when selecting generators by core.Kind.
package fractals

import (
	_ "fractals/pkg/fractals/chaos"
	_ "fractals/pkg/fractals/koch"
	_ "fractals/pkg/fractals/mandelbrot"
	_ "fractals/pkg/fractals/sierpinski"
	_ "fractals/pkg/fractals/tree"
)
