package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DerivePath builds the canonical path for one derived artifact. It is
// a pure function of its inputs: the same (stem, width, height) always
// yields the same path, and distinct dimension pairs never collide
// because both dimensions are embedded in the name.
//
// The layout <stem>_<w>x<h>px_<w>w.<ext> is interop-critical; existing
// remote galleries were produced with it and the fetch filter relies on
// recognizing it.
func DerivePath(stem string, width, height int, outputDir, ext string) string {
	name := fmt.Sprintf("%s_%dx%dpx_%dw.%s", stem, width, height, width, ext)
	return filepath.Join(outputDir, name)
}

// Policy decides whether a file name denotes a previously generated
// derivative. It exists as a single pluggable object so the weakness of
// the default heuristic stays isolated and overridable instead of being
// scattered across call sites.
type Policy interface {
	// IsDerivative reports whether name looks like pipeline output.
	IsDerivative(name string) bool
}

// UnderscorePolicy treats any file name containing an underscore as a
// derivative, since underscores delimit the size tokens DerivePath
// embeds. This is deliberately coarse: a source file that happens to
// contain an underscore in its own name is indistinguishable from a
// derivative and will be excluded from re-processing (camera naming
// schemes like IMG_1234.jpg fall into this trap). The coarseness is a
// known, intentional simplification, not a defect to fix silently.
type UnderscorePolicy struct{}

// IsDerivative implements Policy.
func (UnderscorePolicy) IsDerivative(name string) bool {
	return strings.Contains(filepath.Base(name), "_")
}

// Stem returns the file name without directory or extension, the source
// identity DerivePath keys on.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
