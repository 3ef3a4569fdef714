package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// CropSpec is one requested output geometry. Width and Height are
// both positive; that is validated when the spec is parsed at the
// configuration boundary, never re-checked inside the pipeline.
type CropSpec struct {
	Width  int
	Height int
}

// String renders the spec in the WIDTHxHEIGHT form it was parsed from.
func (s CropSpec) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseCropSpec parses a WIDTHxHEIGHT size string (e.g. "1920x1080").
func ParseCropSpec(raw string) (CropSpec, error) {
	parts := strings.Split(raw, "x")
	if len(parts) != 2 {
		return CropSpec{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT, e.g. 1920x1080", raw)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return CropSpec{}, fmt.Errorf("invalid width in size %q: %w", raw, err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return CropSpec{}, fmt.Errorf("invalid height in size %q: %w", raw, err)
	}

	if width <= 0 || height <= 0 {
		return CropSpec{}, fmt.Errorf("invalid size %q: dimensions must be positive", raw)
	}

	return CropSpec{Width: width, Height: height}, nil
}

// ParseCropSpecs parses an ordered list of size strings. Duplicates are
// permitted (they are wasteful, not wrong); order only determines
// iteration order.
func ParseCropSpecs(raw []string) ([]CropSpec, error) {
	specs := make([]CropSpec, 0, len(raw))
	for _, s := range raw {
		spec, err := ParseCropSpec(s)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
