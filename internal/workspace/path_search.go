package workspace

import (
	"path/filepath"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
)

// FindFileUp looks for filename in startDir and each of its parents and
// returns the first match.
func FindFileUp(fs filesystem.FileSystem, startDir, filename string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		candidate := filepath.Join(dir, filename)
		if fs.Exists(candidate) && !fs.IsDir(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
