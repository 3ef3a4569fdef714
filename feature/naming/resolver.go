package naming

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve enumerates the direct entries of root and returns the paths
// of candidate source files, excluding anything the policy recognizes
// as a previously generated derivative. Subdirectories are skipped
// (enumeration is non-recursive). The order is the directory iteration
// order and is stable within one call, so progress counts downstream
// are reproducible.
//
// Because every path DerivePath produces satisfies the policy, running
// Resolve over a directory containing only pipeline output yields an
// empty set; re-running a batch never re-ingests its own artifacts.
func Resolve(root string, policy Policy) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", root, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if policy.IsDerivative(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(root, entry.Name()))
	}

	return files, nil
}
