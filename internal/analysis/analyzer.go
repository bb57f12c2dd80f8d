// Package analysis inspects converted projects for problems the conversion
// could not fix on its own.
package analysis

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// Diagnostic codes.
const (
	CodeMissingProjectReference = "W001"
	CodeNoTargetFramework       = "W002"
	CodeUnresolvedHintPath      = "W003"
	CodeLeftoverPackagesConfig  = "W004"
)

// Diagnostic is a single finding for one project.
type Diagnostic struct {
	Code    string
	Message string
	Project string
	// Path is the file the finding is about, if any.
	Path string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Code, d.Project, d.Message)
}

// Analyzer checks converted projects against the filesystem.
type Analyzer struct {
	fs     filesystem.FileSystem
	logger *slog.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(fs filesystem.FileSystem, logger *slog.Logger) *Analyzer {
	return &Analyzer{fs: fs, logger: logger}
}

// Analyze returns the diagnostics for project in code order. Each finding
// is also logged as a warning.
func (a *Analyzer) Analyze(project *models.Project) []Diagnostic {
	var diags []Diagnostic
	add := func(code, path, format string, args ...any) {
		d := Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Project: project.Name(), Path: path}
		diags = append(diags, d)
		a.logger.Warn(d.Message, "code", d.Code, "project", d.Project)
	}

	for _, ref := range project.Items("ProjectReference") {
		include := ref.Attr("Include")
		if include == "" || strings.Contains(include, "$(") {
			continue
		}
		path := models.ResolveInclude(project.Dir(), include)
		if !a.fs.Exists(path) {
			add(CodeMissingProjectReference, path, "Referenced project %s does not exist.", include)
		}
	}

	if len(project.TargetFrameworks) == 0 &&
		project.Property("TargetFramework") == "" && project.Property("TargetFrameworks") == "" {
		add(CodeNoTargetFramework, project.FilePath, "No target framework could be determined.")
	}

	for _, ref := range project.Items("Reference") {
		hint := ref.ChildValue("HintPath")
		if hint == "" || strings.Contains(hint, "$(") {
			continue
		}
		path := models.ResolveInclude(project.Dir(), hint)
		if !a.fs.Exists(path) {
			add(CodeUnresolvedHintPath, path, "Reference %s points to missing file %s.", ref.Attr("Include"), hint)
		}
	}

	config := filepath.Join(project.Dir(), "packages.config")
	if a.fs.Exists(config) && !scheduled(project, config) {
		add(CodeLeftoverPackagesConfig, config, "packages.config is still present and will not be removed.")
	}

	return diags
}

func scheduled(project *models.Project, path string) bool {
	want := models.NormalizePath(path)
	for _, p := range project.Deletions {
		if models.NormalizePath(p) == want {
			return true
		}
	}
	return false
}
