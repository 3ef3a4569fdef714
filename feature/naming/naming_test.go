package naming_test

import (
	"fmt"
	"testing"

	"cutter/feature/naming"

	"github.com/stretchr/testify/assert"
)

func TestDerivePath(t *testing.T) {
	t.Run("ExactLayout", func(t *testing.T) {
		path := naming.DerivePath("a", 200, 200, "out", "jpg")
		assert.Equal(t, "out/a_200x200px_200w.jpg", path)
	})

	t.Run("NonSquare", func(t *testing.T) {
		path := naming.DerivePath("sunset", 1920, 1080, "/tmp/cutter", "jpg")
		assert.Equal(t, "/tmp/cutter/sunset_1920x1080px_1920w.jpg", path)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := naming.DerivePath("b", 400, 400, "out", "jpg")
		second := naming.DerivePath("b", 400, 400, "out", "jpg")
		assert.Equal(t, first, second)
	})

	t.Run("Injective", func(t *testing.T) {
		stems := []string{"a", "b", "c"}
		dims := [][2]int{{200, 200}, {400, 400}, {200, 400}, {400, 200}, {1, 1}}

		seen := make(map[string]string)
		for _, stem := range stems {
			for _, d := range dims {
				key := fmt.Sprintf("%s/%dx%d", stem, d[0], d[1])
				path := naming.DerivePath(stem, d[0], d[1], "out", "jpg")
				if prev, ok := seen[path]; ok {
					t.Fatalf("path %q produced by both %s and %s", path, prev, key)
				}
				seen[path] = key
			}
		}
	})
}

func TestUnderscorePolicy(t *testing.T) {
	policy := naming.UnderscorePolicy{}

	t.Run("RecognizesOwnOutput", func(t *testing.T) {
		// Fixed-point exclusion: everything DerivePath can produce must
		// be classified as a derivative.
		for _, d := range [][2]int{{200, 200}, {400, 400}, {1920, 1080}, {1, 1}} {
			path := naming.DerivePath("a", d[0], d[1], "out", "jpg")
			assert.True(t, policy.IsDerivative(path), path)
		}
	})

	t.Run("CleanNamesPass", func(t *testing.T) {
		assert.False(t, policy.IsDerivative("a.jpg"))
		assert.False(t, policy.IsDerivative("gallery/sunset.jpg"))
	})

	t.Run("UnderscoredSourcesAreMisclassified", func(t *testing.T) {
		// Documented coarseness of the heuristic: sources with
		// underscores in their own names get excluded too.
		assert.True(t, policy.IsDerivative("IMG_1234.jpg"))
	})

	t.Run("UnderscoreInDirectoryIgnored", func(t *testing.T) {
		assert.False(t, policy.IsDerivative("my_gallery/sunset.jpg"))
	})
}

func TestStem(t *testing.T) {
	assert.Equal(t, "a", naming.Stem("gallery/a.jpg"))
	assert.Equal(t, "sunset", naming.Stem("/tmp/cutter/sunset.jpeg"))
	assert.Equal(t, "noext", naming.Stem("noext"))
}
