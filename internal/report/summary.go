// Package report renders a summary of a conversion run.
package report

import (
	"github.com/DavidKarlas/CsprojToVs2017/internal/analysis"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	"github.com/DavidKarlas/CsprojToVs2017/internal/writing"
)

// ProjectSummary is the report line for one converted project.
type ProjectSummary struct {
	Name             string
	Path             string
	Language         string
	Solution         string
	TargetFrameworks []string
	Packages         int
	BackupDir        string
	Deleted          []string
	Diagnostics      []analysis.Diagnostic
}

// Summary is the data handed to report templates.
type Summary struct {
	DryRun   bool
	Projects []ProjectSummary
}

// Add records a converted project. result may be nil when nothing was
// written.
func (s *Summary) Add(project *models.Project, result *writing.Result, diags []analysis.Diagnostic) {
	ps := ProjectSummary{
		Name:             project.Name(),
		Path:             project.FilePath,
		Language:         project.CodeFileExtension,
		TargetFrameworks: append([]string(nil), project.TargetFrameworks...),
		Packages:         len(project.PackageReferences),
		Diagnostics:      diags,
	}
	if project.Solution != nil {
		ps.Solution = project.Solution.Name()
	}
	if result != nil {
		ps.BackupDir = result.BackupDir
		ps.Deleted = append([]string(nil), result.Deleted...)
		s.DryRun = s.DryRun || result.DryRun
	}
	s.Projects = append(s.Projects, ps)
}

// DiagnosticCount returns the number of diagnostics across all projects.
func (s *Summary) DiagnosticCount() int {
	n := 0
	for _, p := range s.Projects {
		n += len(p.Diagnostics)
	}
	return n
}
