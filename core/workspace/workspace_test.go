package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"cutter/core/workspace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	t.Run("CreatesMissingDirectory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "work")

		err := workspace.Prepare(dir, false)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("CleanRemovesPreviousContents", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "work")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		stale := filepath.Join(dir, "stale.jpg")
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

		err := workspace.Prepare(dir, true)
		require.NoError(t, err)

		_, err = os.Stat(stale)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(dir)
		assert.NoError(t, err)
	})

	t.Run("KeepsContentsWithoutClean", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "work")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		kept := filepath.Join(dir, "keep.jpg")
		require.NoError(t, os.WriteFile(kept, []byte("data"), 0o644))

		err := workspace.Prepare(dir, false)
		require.NoError(t, err)

		_, err = os.Stat(kept)
		assert.NoError(t, err)
	})
}
