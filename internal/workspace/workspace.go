package workspace

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	gitignore "github.com/denormal/go-gitignore"
)

// Workspace is a directory tree searched for solution and project files.
type Workspace struct {
	fs               filesystem.FileSystem
	RootPath         string
	respectGitIgnore bool
}

// Option configures workspace behavior.
type Option func(*Workspace)

// WithGitIgnore controls whether the root .gitignore prunes enumeration.
// Enabled by default so bin/ and obj/ copies of project files are skipped.
func WithGitIgnore(enabled bool) Option {
	return func(w *Workspace) {
		w.respectGitIgnore = enabled
	}
}

// New creates a Workspace rooted at root.
func New(fs filesystem.FileSystem, root string, options ...Option) *Workspace {
	ws := &Workspace{
		fs:               fs,
		RootPath:         filepath.Clean(root),
		respectGitIgnore: true,
	}

	for _, option := range options {
		option(ws)
	}

	return ws
}

// Solutions returns the files directly inside the root whose extension
// matches ext (case-insensitive), sorted by name.
func (w *Workspace) Solutions(ext string) ([]string, error) {
	entries, err := w.fs.ReadDir(w.RootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", w.RootPath, err)
	}

	var solutions []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		solutions = append(solutions, filepath.Join(w.RootPath, entry.Name()))
	}

	sort.Strings(solutions)
	return solutions, nil
}

// ProjectFiles walks the tree and returns every file whose extension
// matches ext (case-insensitive), in lexical path order. Paths ignored by
// the root .gitignore are skipped.
func (w *Workspace) ProjectFiles(ext string) ([]string, error) {
	var ignore gitignore.GitIgnore
	if w.respectGitIgnore {
		loaded, err := w.loadRootGitIgnore()
		if err != nil {
			return nil, err
		}
		ignore = loaded
	}

	ignoredDirs := make(map[string]struct{})
	var files []string
	if err := w.fs.WalkDir(w.RootPath, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == w.RootPath {
			return nil
		}

		rel, relErr := filepath.Rel(w.RootPath, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		for ignoredDir := range ignoredDirs {
			if rel == ignoredDir || strings.HasPrefix(rel, ignoredDir+"/") {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if ignore != nil {
			if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
				if entry.IsDir() {
					ignoredDirs[rel] = struct{}{}
					return filepath.SkipDir
				}
				return nil
			}
		}

		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}

		files = append(files, path)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to enumerate %s files under %s: %w", ext, w.RootPath, err)
	}

	sort.Strings(files)
	return files, nil
}

func (w *Workspace) loadRootGitIgnore() (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(w.RootPath, ".gitignore")
	if !w.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := w.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), w.RootPath, nil), nil
}
