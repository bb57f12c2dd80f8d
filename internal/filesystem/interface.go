// Package filesystem abstracts the file operations used to discover, read,
// back up and rewrite project files, so that all of it can run against an
// in-memory tree in tests.
package filesystem

import (
	"io/fs"
)

// FileSystem is the set of operations the converter performs on disk.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces path. The parent directory must exist.
	WriteFile(path string, data []byte, perm fs.FileMode) error
	// Remove deletes a file or an empty directory.
	Remove(path string) error

	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	IsDir(path string) bool
	Getwd() (string, error)

	// WalkDir visits root and its descendants in lexical order.
	WalkDir(root string, fn fs.WalkDirFunc) error
}
