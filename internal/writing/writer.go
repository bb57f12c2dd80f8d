// Package writing renders converted projects back to disk.
package writing

import (
	"fmt"
	"log/slog"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

const (
	backupDirName  = "Backup"
	backupAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Result describes what Write did, or would do in a dry run.
type Result struct {
	Path      string
	Content   []byte
	BackupDir string
	Deleted   []string
	DryRun    bool
}

// ProjectWriter writes converted projects, backing up and removing the
// files the conversion replaces.
type ProjectWriter struct {
	fs          filesystem.FileSystem
	logger      *slog.Logger
	makeBackups bool
	dryRun      bool
	backupID    func() (string, error)
}

// Option configures a ProjectWriter.
type Option func(*ProjectWriter)

// WithBackups controls whether originals are copied into a Backup folder
// next to the project before being changed. On by default.
func WithBackups(enabled bool) Option {
	return func(w *ProjectWriter) {
		w.makeBackups = enabled
	}
}

// WithDryRun renders projects without touching the filesystem.
func WithDryRun(enabled bool) Option {
	return func(w *ProjectWriter) {
		w.dryRun = enabled
	}
}

// WithBackupID replaces the generator for the suffix used when a Backup
// folder already exists.
func WithBackupID(generate func() (string, error)) Option {
	return func(w *ProjectWriter) {
		w.backupID = generate
	}
}

// NewProjectWriter creates a ProjectWriter.
func NewProjectWriter(fs filesystem.FileSystem, logger *slog.Logger, options ...Option) *ProjectWriter {
	w := &ProjectWriter{
		fs:          fs,
		logger:      logger,
		makeBackups: true,
		backupID: func() (string, error) {
			return gonanoid.Generate(backupAlphabet, 8)
		},
	}
	for _, option := range options {
		option(w)
	}
	return w
}

// Write renders project over its source file and deletes the files the
// conversion made obsolete.
func (w *ProjectWriter) Write(project *models.Project) (*Result, error) {
	result := &Result{
		Path:    project.FilePath,
		Content: Render(project),
		DryRun:  w.dryRun,
	}

	if w.dryRun {
		result.Deleted = append(result.Deleted, project.Deletions...)
		w.logger.Info("Dry run, nothing written.", "project", project.Name())
		return result, nil
	}

	if w.makeBackups {
		dir, err := w.backup(project)
		if err != nil {
			return nil, err
		}
		result.BackupDir = dir
	}

	if err := w.fs.WriteFile(project.FilePath, result.Content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", project.FilePath, err)
	}

	for _, path := range project.Deletions {
		if !w.fs.Exists(path) {
			continue
		}
		if err := w.fs.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", path, err)
		}
		result.Deleted = append(result.Deleted, path)
	}

	w.logger.Info("Project converted.", "project", project.Name(), "path", project.FilePath, "deleted", len(result.Deleted))
	return result, nil
}

// backup copies the project file and every file scheduled for deletion into
// a fresh backup folder next to the project.
func (w *ProjectWriter) backup(project *models.Project) (string, error) {
	dir := filepath.Join(project.Dir(), backupDirName)
	if w.fs.Exists(dir) {
		id, err := w.backupID()
		if err != nil {
			return "", fmt.Errorf("failed to generate backup suffix: %w", err)
		}
		dir = filepath.Join(project.Dir(), backupDirName+"-"+id)
	}

	if err := w.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	files := append([]string{project.FilePath}, project.Deletions...)
	for _, path := range files {
		if !w.fs.Exists(path) {
			continue
		}
		data, err := w.fs.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s for backup: %w", path, err)
		}
		target := filepath.Join(dir, filepath.Base(path))
		if err := w.fs.WriteFile(target, data, 0644); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", path, err)
		}
	}

	w.logger.Debug("Backed up original files.", "project", project.Name(), "dir", dir)
	return dir, nil
}
