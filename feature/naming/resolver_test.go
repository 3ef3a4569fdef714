package naming_test

import (
	"os"
	"path/filepath"
	"testing"

	"cutter/feature/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestResolve(t *testing.T) {
	policy := naming.UnderscorePolicy{}

	t.Run("ExcludesDerivatives", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.jpg")
		writeFile(t, dir, "b.jpg")
		writeFile(t, dir, "a_200x200px_200w.jpg")
		writeFile(t, dir, "b_400x400px_400w.jpg")

		files, err := naming.Resolve(dir, policy)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.jpg"),
			filepath.Join(dir, "b.jpg"),
		}, files)
	})

	t.Run("SkipsSubdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.jpg")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

		files, err := naming.Resolve(dir, policy)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("StableOrder", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"c.jpg", "a.jpg", "b.jpg"} {
			writeFile(t, dir, name)
		}

		first, err := naming.Resolve(dir, policy)
		require.NoError(t, err)
		second, err := naming.Resolve(dir, policy)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("OutputDirectoryIsNoOp", func(t *testing.T) {
		// Idempotence: a directory holding only pipeline output yields
		// zero sources.
		dir := t.TempDir()
		for _, stem := range []string{"a", "b", "c"} {
			for _, d := range [][2]int{{200, 200}, {400, 400}} {
				path := naming.DerivePath(stem, d[0], d[1], dir, "jpg")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
			}
		}

		files, err := naming.Resolve(dir, policy)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("MissingRootFails", func(t *testing.T) {
		_, err := naming.Resolve(filepath.Join(t.TempDir(), "absent"), policy)
		assert.Error(t, err)
	})
}
