package transform_test

import (
	"testing"

	"cutter/feature/transform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCropSpec(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		spec, err := transform.ParseCropSpec("1920x1080")
		require.NoError(t, err)
		assert.Equal(t, transform.CropSpec{Width: 1920, Height: 1080}, spec)
		assert.Equal(t, "1920x1080", spec.String())
	})

	t.Run("Rejected", func(t *testing.T) {
		for _, raw := range []string{"", "200", "200x", "x200", "200x200x200", "axb", "-1x200", "200x0"} {
			_, err := transform.ParseCropSpec(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestParseCropSpecs(t *testing.T) {
	t.Run("OrderPreserved", func(t *testing.T) {
		specs, err := transform.ParseCropSpecs([]string{"200x200", "400x400"})
		require.NoError(t, err)
		assert.Equal(t, []transform.CropSpec{{Width: 200, Height: 200}, {Width: 400, Height: 400}}, specs)
	})

	t.Run("OneBadEntryFailsAll", func(t *testing.T) {
		_, err := transform.ParseCropSpecs([]string{"200x200", "bogus"})
		assert.Error(t, err)
	})

	t.Run("DuplicatesPermitted", func(t *testing.T) {
		specs, err := transform.ParseCropSpecs([]string{"200x200", "200x200"})
		require.NoError(t, err)
		assert.Len(t, specs, 2)
	})
}
