package report

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/DavidKarlas/CsprojToVs2017/internal/analysis"
	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	"github.com/DavidKarlas/CsprojToVs2017/internal/writing"
)

func sampleSummary() *Summary {
	lib := models.NewProject("/repo/Lib/Lib.csproj")
	lib.CodeFileExtension = "cs"
	lib.TargetFrameworks = []string{"net472"}
	lib.PackageReferences = []models.PackageReference{{ID: "A", Version: "1.0.0"}, {ID: "B", Version: "2.0.0"}}
	lib.Solution = models.NewSolution("/repo/All.sln", nil)

	vb := models.NewProject("/repo/Vb/Vb.vbproj")
	vb.CodeFileExtension = "vb"

	summary := &Summary{}
	summary.Add(lib, &writing.Result{
		Path:      lib.FilePath,
		BackupDir: "/repo/Lib/Backup",
		Deleted:   []string{"/repo/Lib/packages.config"},
	}, nil)
	summary.Add(vb, nil, []analysis.Diagnostic{{
		Code:    analysis.CodeNoTargetFramework,
		Message: "No target framework could be determined.",
		Project: "Vb",
	}})
	return summary
}

func TestRender_DefaultTemplate(t *testing.T) {
	out, err := NewRenderer(filesystem.NewMockFileSystem()).Render("", sampleSummary())
	require.NoError(t, err)

	require.Equal(t, `Converted 2 projects.

Lib (CS) net472
  packages: 2
  solution: All
  backup: /repo/Lib/Backup
  deleted: /repo/Lib/packages.config

Vb (VB) no target framework
  packages: 0
  W002: No target framework could be determined.
`, out)
	snaps.MatchSnapshot(t, out)
}

func TestRender_DryRunHeader(t *testing.T) {
	summary := &Summary{}
	project := models.NewProject("/repo/Lib/Lib.csproj")
	project.CodeFileExtension = "cs"
	project.TargetFrameworks = []string{"net472", "net48"}
	summary.Add(project, &writing.Result{DryRun: true}, nil)

	out, err := NewRenderer(filesystem.NewMockFileSystem()).Render("", summary)
	require.NoError(t, err)
	require.Equal(t, `Dry run: no files were changed.
Converted 1 project.

Lib (CS) net472;net48
  packages: 0
`, out)
}

func TestRender_CustomTemplateIsCached(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/report.tmpl", []byte(`{{ range .Projects }}{{ .Name | lower }} {{ end }}{{ .DiagnosticCount }}`))
	renderer := NewRenderer(fs)

	for i := 0; i < 2; i++ {
		out, err := renderer.Render("/repo/report.tmpl", sampleSummary())
		require.NoError(t, err)
		require.Equal(t, "lib vb 1", out)
	}
	require.Equal(t, 1, fs.ReadCount("/repo/report.tmpl"))
}

func TestRender_Errors(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/repo/broken.tmpl", []byte(`{{ range .Projects }}`))
	renderer := NewRenderer(fs)

	_, err := renderer.Render("/repo/missing.tmpl", &Summary{})
	require.Error(t, err)

	_, err = renderer.Render("/repo/broken.tmpl", &Summary{})
	require.Error(t, err)
}
