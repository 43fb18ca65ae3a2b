package export

import (
	"fmt"
	"image/color"
)

// Palette is cycled through by triangle colour index, both in SVG output and
// in the viewer.
var Palette = []color.RGBA{
	{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff},
	{R: 0xb2, G: 0x18, B: 0x2b, A: 0xff},
	{R: 0xef, G: 0x8a, B: 0x62, A: 0xff},
	{R: 0xfd, G: 0xdb, B: 0xc7, A: 0xff},
	{R: 0xd1, G: 0xe5, B: 0xf0, A: 0xff},
	{R: 0x67, G: 0xa9, B: 0xcf, A: 0xff},
	{R: 0x21, G: 0x66, B: 0xac, A: 0xff},
	{R: 0x4d, G: 0x92, B: 0x21, A: 0xff},
}

// PaletteColor returns the palette entry for a colour index. When the palette
// is empty opaque black is returned.
func PaletteColor(palette []color.RGBA, idx int) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{A: 0xff}
	}
	if idx < 0 {
		idx = -idx
	}
	return palette[idx%len(palette)]
}

// Hex formats c as an SVG "#rrggbb" colour.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
