package render

import (
	"image/color"

	"fractals/pkg/core"
)

// fillFieldRGBA converts the first rows rows of a field into RGBA pixels in
// buf, flipping them so row 0 of the field lands on the bottom of the image.
// Rows not yet revealed are painted with hidden.
func fillFieldRGBA(buf []byte, f *core.PixelField, rows int, hidden color.RGBA) {
	for y := 0; y < f.H; y++ {
		dst := buf[(f.H-1-y)*f.W*4 : (f.H-y)*f.W*4]
		if y >= rows {
			for x := 0; x < f.W; x++ {
				base := x * 4
				dst[base+0] = hidden.R
				dst[base+1] = hidden.G
				dst[base+2] = hidden.B
				dst[base+3] = hidden.A
			}
			continue
		}
		for x, v := range f.Row(y) {
			base := x * 4
			dst[base+0] = v
			dst[base+1] = v
			dst[base+2] = v
			dst[base+3] = 0xff
		}
	}
}
