// Package converter resolves a conversion target (a solution, a project or
// a directory) into the projects it names and runs each one through the
// transformation pipeline on demand.
package converter

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	"github.com/DavidKarlas/CsprojToVs2017/internal/transforms"
	"github.com/DavidKarlas/CsprojToVs2017/internal/workspace"
)

// ProjectReader reads one legacy project file. An error means the file has
// nothing to convert.
type ProjectReader interface {
	Read(path string) (*models.Project, error)
}

// SolutionReader reads one solution file.
type SolutionReader interface {
	Read(path string) (*models.Solution, error)
}

// Converter dispatches conversion targets. It is not safe for concurrent
// use; projects are produced one at a time on the caller's goroutine.
type Converter struct {
	fs               filesystem.FileSystem
	projects         ProjectReader
	solutions        SolutionReader
	pipeline         *transforms.Pipeline
	extensions       models.ExtensionMap
	logger           *slog.Logger
	respectGitIgnore bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithGitIgnore controls whether directory targets skip paths ignored by the
// root .gitignore. It is on by default.
func WithGitIgnore(enabled bool) Option {
	return func(c *Converter) {
		c.respectGitIgnore = enabled
	}
}

// NewConverter creates a Converter.
func NewConverter(
	fs filesystem.FileSystem,
	projects ProjectReader,
	solutions SolutionReader,
	pipeline *transforms.Pipeline,
	extensions models.ExtensionMap,
	logger *slog.Logger,
	options ...Option,
) *Converter {
	c := &Converter{
		fs:               fs,
		projects:         projects,
		solutions:        solutions,
		pipeline:         pipeline,
		extensions:       extensions,
		logger:           logger,
		respectGitIgnore: true,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Convert returns the converted projects named by target. Nothing is read,
// logged or transformed until the sequence is ranged over, and breaking out
// of the range stops all further work. Usage errors are logged once at
// critical level and produce an empty sequence.
func (c *Converter) Convert(target string) iter.Seq[*models.Project] {
	return func(yield func(*models.Project) bool) {
		plan, err := c.Resolve(target)
		if err != nil {
			c.ReportUsage(err)
			return
		}
		for project := range plan.Projects() {
			if !yield(project) {
				return
			}
		}
	}
}

// ReportUsage logs err once at critical level, showing only the message of
// a *UsageError.
func (c *Converter) ReportUsage(err error) {
	var usage *UsageError
	if errors.As(err, &usage) {
		logging.Critical(c.logger, usage.Message, "target", usage.Target)
		return
	}
	logging.Critical(c.logger, err.Error())
}

// Resolve decides which project files target names without reading any of
// them. It returns a *UsageError for unsupported targets.
func (c *Converter) Resolve(target string) (*Plan, error) {
	path, err := c.absolute(target)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(path)
	switch {
	case ext == "" || c.fs.IsDir(path):
		return c.resolveDirectory(path)
	case c.extensions.IsSolution(ext):
		return c.resolveSolution(path)
	case c.extensions.IsProject(ext):
		return c.newPlan(path, nil, []string{path}), nil
	default:
		return nil, &UsageError{Target: target, Message: "Please specify a project or solution file."}
	}
}

func (c *Converter) absolute(target string) (string, error) {
	if target == "" {
		target = "."
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target), nil
	}
	wd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, target), nil
}

func (c *Converter) resolveSolution(path string) (*Plan, error) {
	solution, err := c.solutions.Read(path)
	if err != nil {
		return nil, &UsageError{Target: path, Message: "Please specify a readable solution file.", Err: err}
	}

	files := make([]string, 0, len(solution.ProjectPaths))
	for _, member := range solution.ProjectPaths {
		files = append(files, member.ProjectFile)
	}
	return c.newPlan(path, solution, files), nil
}

func (c *Converter) resolveDirectory(dir string) (*Plan, error) {
	if !c.fs.IsDir(dir) {
		return nil, &UsageError{Target: dir, Message: "Please specify a project or solution file."}
	}
	ws := workspace.New(c.fs, dir, workspace.WithGitIgnore(c.respectGitIgnore))

	solutions, err := ws.Solutions(c.extensions.SolutionExtension())
	if err != nil {
		return nil, &UsageError{Target: dir, Message: "Please specify a project or solution file.", Err: err}
	}
	if len(solutions) == 1 {
		return c.resolveSolution(solutions[0])
	}

	var files []string
	for _, ext := range c.extensions.ProjectExtensions() {
		found, err := ws.ProjectFiles(ext)
		if err != nil {
			return nil, &UsageError{Target: dir, Message: "Please specify a project file.", Err: err}
		}
		if len(found) > 1 {
			c.logger.Info(fmt.Sprintf("Multiple project files found under directory %s:", dir),
				"extension", ext, "files", strings.Join(found, ", "))
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, &UsageError{Target: dir, Message: "Please specify a project file.", Err: ErrNoProjectFiles}
	}
	return c.newPlan(dir, nil, files), nil
}

func (c *Converter) newPlan(target string, solution *models.Solution, files []string) *Plan {
	return &Plan{Target: target, Solution: solution, Files: files, converter: c}
}

// process reads, stamps and transforms one project file. It returns nil
// when the file is missing or holds nothing to convert.
func (c *Converter) process(path string, solution *models.Solution) *models.Project {
	if !c.fs.Exists(path) {
		c.logger.Error(fmt.Sprintf("File %s could not be found.", path))
		return nil
	}

	project, err := c.projects.Read(path)
	if err != nil || project == nil {
		c.logger.Debug("Skipping project.", "path", path, "reason", err)
		return nil
	}

	if lang, ok := c.extensions.Language(filepath.Ext(path)); ok {
		project.CodeFileExtension = lang
	}
	project.Solution = solution

	ctx := logging.WithLogger(context.Background(), c.logger.With("project", project.Name()))
	c.pipeline.Run(ctx, project)
	return project
}
