package converter

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	"github.com/DavidKarlas/CsprojToVs2017/internal/reading"
	"github.com/DavidKarlas/CsprojToVs2017/internal/transforms"
	"github.com/DavidKarlas/CsprojToVs2017/internal/workspace"
	"github.com/DavidKarlas/CsprojToVs2017/internal/writing"
)

type harness struct {
	fs       *filesystem.MockFileSystem
	recorder *logging.Recorder
	runs     *int
	conv     *Converter
}

func newHarness(fs *filesystem.MockFileSystem) harness {
	recorder := logging.NewRecorder()
	logger := recorder.Logger()
	runs := 0
	counter := transforms.TransformationFunc(func(context.Context, *models.Project) { runs++ })

	extensions := models.DefaultExtensions()
	pipeline := transforms.NewPipeline(
		transforms.DefaultTransformations(transforms.DefaultOptions(), nil),
		transforms.WithPostDefault(counter),
	)
	conv := NewConverter(fs,
		reading.NewProjectReader(fs, logger),
		reading.NewSolutionReader(fs, extensions, logger),
		pipeline, extensions, logger)

	return harness{fs: fs, recorder: recorder, runs: &runs, conv: conv}
}

func names(projects []*models.Project) []string {
	var out []string
	for _, p := range projects {
		out = append(out, p.Name())
	}
	return out
}

func collect(c *Converter, target string) []*models.Project {
	var out []*models.Project
	for p := range c.Convert(target) {
		out = append(out, p)
	}
	return out
}

func TestConvert_DirectoryWithSingleSolutionMatchesSolution(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddSolution("All.sln", `src\A\A.csproj`, `src\B\B.csproj`).
		AddProject("src/A/A.csproj").
		AddProject("src/B/B.csproj").
		AddProject("tools/C/C.csproj").
		Build()

	fromDir := collect(newHarness(fs).conv, "/repo")
	fromSolution := collect(newHarness(fs).conv, "/repo/All.sln")

	require.Equal(t, []string{"A", "B"}, names(fromDir))
	require.Equal(t, names(fromSolution), names(fromDir))
	for i, p := range fromDir {
		require.NotNil(t, p.Solution)
		require.Equal(t, "/repo/All.sln", p.Solution.FilePath)
		require.Equal(t, string(writing.Render(fromSolution[i])), string(writing.Render(p)))
	}
}

func TestResolve_DottedDirectoryIsTreatedAsDirectory(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddSolution("My.App/All.sln", `src\A\A.csproj`).
		AddProject("My.App/src/A/A.csproj").
		Build()
	h := newHarness(fs)

	plan, err := h.conv.Resolve("/repo/My.App")
	require.NoError(t, err)
	require.NotNil(t, plan.Solution)
	require.Equal(t, "/repo/My.App/All.sln", plan.Solution.FilePath)
	require.Equal(t, []string{"A"}, names(collect(h.conv, "/repo/My.App")))
}

func TestConvert_SolutionWithMissingMemberContinues(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddSolution("All.sln", `A\A.csproj`, `Missing\Missing.csproj`, `C\C.csproj`).
		AddProject("A/A.csproj").
		AddProject("C/C.csproj").
		Build()
	h := newHarness(fs)

	projects := collect(h.conv, "All.sln")

	require.Equal(t, []string{"A", "C"}, names(projects))
	errs := h.recorder.AtLevel(slog.LevelError)
	require.Len(t, errs, 1)
	require.Equal(t, "File /repo/Missing/Missing.csproj could not be found.", errs[0].Message)

	var found int
	for _, r := range h.recorder.AtLevel(slog.LevelInfo) {
		if r.Message == "Project found" {
			found++
		}
	}
	require.Equal(t, 3, found)
}

func TestConvert_EmptyDirectoryReportsOnce(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/empty").AddFile("README.md", "# nothing").Build()
	h := newHarness(fs)

	projects := collect(h.conv, "/empty")

	require.Empty(t, projects)
	critical := h.recorder.AtLevel(logging.LevelCritical)
	require.Len(t, critical, 1)
	require.Equal(t, "Please specify a project file.", critical[0].Message)
	require.Equal(t, 0, *h.runs)

	_, err := h.conv.Resolve("/empty")
	require.True(t, errors.Is(err, ErrNoProjectFiles))
	var usage *UsageError
	require.True(t, errors.As(err, &usage))
}

func TestConvert_UnsupportedExtension(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").AddFile("notes.txt", "hello").Build()
	h := newHarness(fs)

	require.Empty(t, collect(h.conv, "/repo/notes.txt"))
	critical := h.recorder.AtLevel(logging.LevelCritical)
	require.Len(t, critical, 1)
	require.Equal(t, "Please specify a project or solution file.", critical[0].Message)
	require.Equal(t, 0, fs.TotalReads())
}

func TestConvert_IsLazy(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddSolution("All.sln", `A\A.csproj`, `B\B.csproj`, `C\C.csproj`).
		AddProject("A/A.csproj").
		AddProject("B/B.csproj").
		AddProject("C/C.csproj").
		Build()
	h := newHarness(fs)

	seq := h.conv.Convert("/repo/All.sln")
	require.Equal(t, 0, fs.TotalReads())
	require.Empty(t, h.recorder.Records())

	for project := range seq {
		require.Equal(t, "A", project.Name())
		break
	}

	require.Equal(t, 1, fs.ReadCount("/repo/A/A.csproj"))
	require.Equal(t, 0, fs.ReadCount("/repo/B/B.csproj"))
	require.Equal(t, 0, fs.ReadCount("/repo/C/C.csproj"))
	require.Equal(t, 1, *h.runs)
}

func TestConvert_SingleProjectStampsLanguage(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddProject("Lib/Lib.csproj").
		AddProjectWithContent("Vb/Vb.vbproj", workspace.LegacyProjectXML("")).
		Build()
	h := newHarness(fs)

	cs := collect(h.conv, "/repo/Lib/Lib.csproj")
	require.Len(t, cs, 1)
	require.Equal(t, "cs", cs[0].CodeFileExtension)
	require.Nil(t, cs[0].Solution)
	require.Equal(t, []string{"net472"}, cs[0].TargetFrameworks)

	vb := collect(h.conv, "/repo/Vb/Vb.VBPROJ")
	require.Empty(t, vb)
	require.Len(t, h.recorder.AtLevel(slog.LevelError), 1)

	vb = collect(h.conv, "/repo/Vb/Vb.vbproj")
	require.Len(t, vb, 1)
	require.Equal(t, "vb", vb[0].CodeFileExtension)
}

func TestConvert_DirectoryWithoutSolutionProcessesAllProjects(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddProject("src/A/A.csproj").
		AddProject("src/B/B.csproj").
		AddProjectWithContent("src/F/F.fsproj", workspace.LegacyProjectXML("")).
		AddProjectWithContent("src/Sdk/Sdk.csproj", `<Project Sdk="Microsoft.NET.Sdk"></Project>`).
		Build()
	h := newHarness(fs)

	projects := collect(h.conv, "/repo")

	require.Equal(t, []string{"A", "B", "F"}, names(projects))
	require.Equal(t, "fs", projects[2].CodeFileExtension)
	require.Empty(t, h.recorder.AtLevel(slog.LevelError))

	var ambiguity int
	for _, r := range h.recorder.AtLevel(slog.LevelInfo) {
		if r.Attrs["extension"] == ".csproj" {
			ambiguity++
		}
	}
	require.Equal(t, 1, ambiguity)
}

func TestResolve_MultipleSolutionsFallBackToProjects(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddSolution("One.sln", `A\A.csproj`).
		AddSolution("Two.sln", `A\A.csproj`).
		AddProject("A/A.csproj").
		Build()
	h := newHarness(fs)

	plan, err := h.conv.Resolve("/repo")
	require.NoError(t, err)
	require.Nil(t, plan.Solution)
	require.Equal(t, []string{"/repo/A/A.csproj"}, plan.Files)
	require.Equal(t, 0, fs.TotalReads())
}
