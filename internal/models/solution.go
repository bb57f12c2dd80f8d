package models

import (
	"path/filepath"
	"strings"
)

// ProjectPath is one member project declared by a solution.
type ProjectPath struct {
	// Include is the path exactly as declared in the solution file.
	Include string

	// ProjectFile is the resolved absolute path of the project file.
	ProjectFile string
}

// Solution is a parsed solution file. It is read-only after parsing and is
// shared by every project discovered through it.
type Solution struct {
	FilePath     string
	ProjectPaths []ProjectPath
}

// NewSolution creates a Solution, dropping members whose normalized path
// was already declared.
func NewSolution(filePath string, paths []ProjectPath) *Solution {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]ProjectPath, 0, len(paths))
	for _, p := range paths {
		key := NormalizePath(p.ProjectFile)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, p)
	}

	return &Solution{
		FilePath:     filePath,
		ProjectPaths: unique,
	}
}

// Name returns the solution file name without extension.
func (s *Solution) Name() string {
	base := filepath.Base(s.FilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Contains reports whether the solution declares the given project file.
func (s *Solution) Contains(projectFile string) bool {
	key := NormalizePath(projectFile)
	for _, p := range s.ProjectPaths {
		if NormalizePath(p.ProjectFile) == key {
			return true
		}
	}
	return false
}

// NormalizePath cleans a path and folds case so members that differ only by
// separator style or casing compare equal, as they do on Windows.
func NormalizePath(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	return strings.ToLower(filepath.ToSlash(filepath.Clean(path)))
}

// ResolveInclude turns an MSBuild include path, which may use backslashes,
// into a clean absolute path relative to baseDir.
func ResolveInclude(baseDir, include string) string {
	include = filepath.FromSlash(strings.ReplaceAll(include, "\\", "/"))
	if filepath.IsAbs(include) {
		return filepath.Clean(include)
	}
	return filepath.Join(baseDir, include)
}
