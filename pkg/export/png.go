// Package export encodes generator output for files: pixel fields as PNG and
// vector geometry as SVG.
package export

import (
	"errors"
	"image"
	"image/png"
	"io"

	"fractals/pkg/core"
)

// ErrUnsupported is returned when a result has no payload the encoder can
// write.
var ErrUnsupported = errors.New("export: unsupported result")

// Gray converts a field to a grayscale image with a top-left origin.
func Gray(f *core.PixelField) *image.Gray {
	return &image.Gray{Pix: f.FlipRows(), Stride: f.W, Rect: image.Rect(0, 0, f.W, f.H)}
}

// WritePNG encodes the field intensities as a grayscale PNG.
func WritePNG(w io.Writer, res core.Result) error {
	if res.Field == nil {
		return errors.Join(ErrUnsupported, errors.New("png needs a pixel field"))
	}
	return png.Encode(w, Gray(res.Field))
}
