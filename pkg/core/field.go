package core

// PixelField stores per-pixel escape counts in row-major order.
//
// Row 0 is the bottom edge of the sampled region (Min.Y) and column 0 its left
// edge (Min.X), so the buffer can be handed to renderers with a bottom-left
// origin unchanged. Raster consumers with a top-left origin use FlipRows.
type PixelField struct {
	W, H    int
	MaxIter int

	Counts    []int
	Intensity []uint8
}

// NewPixelField allocates a zeroed field of w*h cells.
func NewPixelField(w, h, maxIter int) *PixelField {
	return &PixelField{
		W:         w,
		H:         h,
		MaxIter:   maxIter,
		Counts:    make([]int, w*h),
		Intensity: make([]uint8, w*h),
	}
}

// Index returns the linear slice index for column x of row y.
func (f *PixelField) Index(x, y int) int { return y*f.W + x }

// Set stores an iteration count and its derived intensity.
func (f *PixelField) Set(x, y, n int) {
	i := f.Index(x, y)
	f.Counts[i] = n
	f.Intensity[i] = Intensity(n, f.MaxIter)
}

// Count returns the iteration count at (x, y).
func (f *PixelField) Count(x, y int) int { return f.Counts[f.Index(x, y)] }

// Row returns the intensities of row y without copying.
func (f *PixelField) Row(y int) []uint8 { return f.Intensity[y*f.W : (y+1)*f.W] }

// FlipRows returns a copy of the intensities with rows in top-to-bottom order,
// the layout expected by image.Gray and most raster APIs.
func (f *PixelField) FlipRows() []uint8 {
	out := make([]uint8, len(f.Intensity))
	for y := 0; y < f.H; y++ {
		copy(out[(f.H-1-y)*f.W:], f.Row(y))
	}
	return out
}

// Intensity maps an iteration count to a grey level: 255 - floor(n*255/maxIter).
// Points that never escape (n == maxIter) map to 0.
func Intensity(n, maxIter int) uint8 {
	if maxIter <= 0 {
		return 0
	}
	if n < 0 {
		n = 0
	}
	if n > maxIter {
		n = maxIter
	}
	return uint8(255 - n*255/maxIter)
}
