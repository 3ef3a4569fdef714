package workspace

import (
	"fmt"
	"os"
)

// Prepare ensures dir exists before a phase runs. When clean is set and
// the directory already exists, its previous contents (typically output
// of an earlier run) are removed first.
func Prepare(dir string, clean bool) error {
	if clean {
		if _, err := os.Stat(dir); err == nil {
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("failed to clean working directory %s: %w", dir, err)
			}
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create working directory %s: %w", dir, err)
	}

	return nil
}
