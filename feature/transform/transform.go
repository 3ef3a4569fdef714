package transform

import (
	"image"

	"github.com/disintegration/imaging"
)

// Transform decodes the source image and produces a raster exactly
// matching the spec's dimensions. The aspect ratio is preserved by
// filling: the image is scaled so its shorter dimension matches the
// target, then the longer dimension is center-cropped. Degenerate
// targets (1x1) produce a valid degenerate raster.
//
// The Linear filter is a triangle/bilinear resampler; the exact filter
// only affects visual fidelity, not the output geometry.
func Transform(source string, spec CropSpec) (*image.NRGBA, error) {
	src, err := imaging.Open(source)
	if err != nil {
		return nil, &DecodeError{Source: source, Err: err}
	}

	return imaging.Fill(src, spec.Width, spec.Height, imaging.Center, imaging.Linear), nil
}
