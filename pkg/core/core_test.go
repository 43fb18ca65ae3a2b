package core

import (
	"errors"
	"math"
	"testing"
)

func TestIntensityFormula(t *testing.T) {
	cases := []struct {
		n, maxIter int
		want       uint8
	}{
		{0, 256, 255},
		{1, 256, 255},
		{2, 256, 254},
		{128, 256, 128},
		{256, 256, 0},
		{50, 100, 128},
		{1000, 1000, 0},
	}
	for _, tc := range cases {
		if got := Intensity(tc.n, tc.maxIter); got != tc.want {
			t.Fatalf("Intensity(%d, %d) = %d, want %d", tc.n, tc.maxIter, got, tc.want)
		}
	}
}

func TestPixelFieldFlipRows(t *testing.T) {
	f := NewPixelField(2, 3, 10)
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			f.Set(x, y, y*5)
		}
	}
	flipped := f.FlipRows()
	if flipped[0] != Intensity(10, 10) || flipped[4] != Intensity(0, 10) {
		t.Fatalf("flipped rows %v: expected top row to hold the last field row", flipped)
	}
	if f.Count(1, 2) != 10 {
		t.Fatalf("count at (1,2) = %d, want 10", f.Count(1, 2))
	}
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle{A: Point{X: 0, Y: 0}, B: Point{X: 4, Y: 0}, C: Point{X: 0, Y: 3}}
	if got := tri.Area(); got != 6 {
		t.Fatalf("area = %v, want 6", got)
	}
	if got := (Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 3, Y: 4}}).Length(); got != 5 {
		t.Fatalf("length = %v, want 5", got)
	}
}

func TestChecks(t *testing.T) {
	if err := CheckDepth("depth", -1, 5); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("negative depth: err = %v", err)
	}
	if err := CheckDepth("depth", 6, 5); !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("depth over ceiling: err = %v", err)
	}
	if err := CheckDepth("depth", 0, 5); err != nil {
		t.Fatalf("depth 0: unexpected err %v", err)
	}
	if err := CheckTriangle(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, Point{X: 2, Y: 2}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("collinear triangle: err = %v", err)
	}
	if err := CheckTriangle(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: math.NaN(), Y: 1}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("NaN triangle: err = %v", err)
	}
	if err := CheckBounds("region", Box(1, 1, 0, 1)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("empty bounds: err = %v", err)
	}
}

func TestMapReader(t *testing.T) {
	var (
		n     int
		seed  int64
		angle float64
		half  float64
		p     Point
	)
	r := NewMapReader(map[string]string{"n": "12", "seed": "-3", "angle": "30deg", "half": "0.5pi", "px": "1.5", "py": "-2"})
	r.Int("n", &n)
	r.Int64("seed", &seed)
	r.Float("angle", &angle)
	r.Float("half", &half)
	r.Point("p", &p)
	r.Int("missing", &n)
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if n != 12 || seed != -3 || p != (Point{X: 1.5, Y: -2}) {
		t.Fatalf("parsed n=%d seed=%d p=%v", n, seed, p)
	}
	if math.Abs(angle-math.Pi/6) > 1e-12 || math.Abs(half-math.Pi/2) > 1e-12 {
		t.Fatalf("angles parsed as %v and %v", angle, half)
	}

	r = NewMapReader(map[string]string{"n": "x", "m": "y"})
	r.Int("n", &n)
	r.Int("m", &n)
	if err := r.Err(); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("malformed value: err = %v", err)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 100; i++ {
		if x, y := a.Uniform(-1, 1), b.Uniform(-1, 1); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
		if v := a.IntN(3); v != b.IntN(3) || v < 0 || v > 2 {
			t.Fatalf("IntN draw %d out of sync or range: %d", i, v)
		}
	}
}

func TestResultLenFollowsKind(t *testing.T) {
	if n := (Result{Kind: KindTree}).Len(); n != 0 {
		t.Fatalf("empty tree len = %d", n)
	}
	if n := (Result{Kind: KindMandelbrot}).Len(); n != 0 {
		t.Fatalf("fieldless mandelbrot len = %d", n)
	}
	res := Result{Kind: KindChaos, Points: []Point{{X: 1}, {Y: 1}}, Segments: []Segment{{}}}
	if n := res.Len(); n != 2 {
		t.Fatalf("chaos len = %d, want 2", n)
	}
	if n := (Result{Kind: KindMandelbrot, Field: NewPixelField(4, 3, 1)}).Len(); n != 3 {
		t.Fatalf("field len = %d, want 3 rows", n)
	}
}

func TestBoundsHelpers(t *testing.T) {
	b := SegmentBounds([]Segment{{Start: Point{X: -1, Y: 2}, End: Point{X: 3, Y: -4}}})
	if b != Box(-1, 3, -4, 2) {
		t.Fatalf("segment bounds %v", b)
	}
	if b.Width() != 4 || b.Height() != 6 || !b.ContainsCoord(Point{X: 0, Y: 0}) {
		t.Fatalf("bounds %v: width %v height %v", b, b.Width(), b.Height())
	}
	if got := PointBounds(nil); got != (Bounds{}) {
		t.Fatalf("empty point bounds %v", got)
	}
	if got := Lerp(Point{X: 0, Y: 0}, Point{X: 4, Y: 8}, 0.25); got != (Point{X: 1, Y: 2}) {
		t.Fatalf("lerp = %v", got)
	}
	seen := map[Point]bool{Midpoint(Point{X: 0, Y: 0}, Point{X: 2, Y: 2}): true}
	if !seen[Point{X: 1, Y: 1}] {
		t.Fatal("midpoint is not usable as a map key")
	}
}
