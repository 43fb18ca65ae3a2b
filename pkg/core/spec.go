package core

import "math"

// Kind identifies one fractal family.
type Kind string

const (
	// KindMandelbrot is the escape-time iteration-count field.
	KindMandelbrot Kind = "mandelbrot"
	// KindKoch is the Koch snowflake outline.
	KindKoch Kind = "koch"
	// KindSierpinski is the exact Sierpinski gasket subdivision.
	KindSierpinski Kind = "sierpinski"
	// KindChaos is the chaos-game point cloud.
	KindChaos Kind = "chaos"
	// KindTree is the recursive branching tree.
	KindTree Kind = "tree"
)

// Documented defaults shared by the generators.
const (
	DefaultMaxIter    = 256
	DefaultKochOrder  = 4
	DefaultChaosCount = 5000
	DefaultTreeDepth  = 10
)

// Limits are the safety ceilings beyond which a request is rejected with
// ErrResourceExhausted. Output size grows exponentially with depth; Koch
// orders above 6 and tree depths above 12 are accepted but rarely useful.
var Limits = struct {
	KochOrder       int
	SierpinskiDepth int
	TreeDepth       int
	ChaosPoints     int
	FieldPixels     int
	MaxIter         int
}{
	KochOrder:       10,
	SierpinskiDepth: 12,
	TreeDepth:       20,
	ChaosPoints:     10_000_000,
	FieldPixels:     64 << 20,
	MaxIter:         1_000_000,
}

// minArea is the area below which a starting triangle counts as degenerate.
const minArea = 1e-12

// CheckDepth validates a recursion depth against a ceiling.
func CheckDepth(name string, depth, ceiling int) error {
	if depth < 0 {
		return Invalidf("%s %d is negative", name, depth)
	}
	if depth > ceiling {
		return Exhaustedf("%s %d exceeds ceiling %d", name, depth, ceiling)
	}
	return nil
}

// CheckTriangle rejects collinear or zero-area starting triangles and
// non-finite coordinates.
func CheckTriangle(a, b, c Point) error {
	for _, p := range [...]Point{a, b, c} {
		if !finite(p.X) || !finite(p.Y) {
			return Invalidf("triangle vertex %v is not finite", p)
		}
	}
	if math.Abs(signedArea(a, b, c)) < minArea {
		return Invalidf("triangle %v %v %v is degenerate", a, b, c)
	}
	return nil
}

// CheckBounds rejects empty or inverted regions.
func CheckBounds(name string, b Bounds) error {
	if !finite(b.Min.X) || !finite(b.Max.X) || !finite(b.Min.Y) || !finite(b.Max.Y) {
		return Invalidf("%s %v is not finite", name, b)
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		return Invalidf("%s %v is empty", name, b)
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
