package reading

import (
	"testing"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	"github.com/DavidKarlas/CsprojToVs2017/internal/workspace"
	"github.com/stretchr/testify/require"
)

func TestSolutionReader_ReadsMembersInOrder(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src")
	wb.AddSolution("App.sln", "App/App.csproj", "Lib/Lib.vbproj", "Missing/Missing.fsproj")
	fs := wb.Build()

	reader := NewSolutionReader(fs, models.DefaultExtensions(), logging.Discard())
	solution, err := reader.Read("/src/App.sln")
	require.NoError(t, err)

	require.Equal(t, "App", solution.Name())
	require.Len(t, solution.ProjectPaths, 3)
	require.Equal(t, `App\App.csproj`, solution.ProjectPaths[0].Include)
	require.Equal(t, "/src/App/App.csproj", solution.ProjectPaths[0].ProjectFile)
	require.Equal(t, "/src/Lib/Lib.vbproj", solution.ProjectPaths[1].ProjectFile)
	require.Equal(t, "/src/Missing/Missing.fsproj", solution.ProjectPaths[2].ProjectFile)
}

func TestSolutionReader_SkipsFoldersAndDuplicates(t *testing.T) {
	text := "Microsoft Visual Studio Solution File, Format Version 12.00\r\n" +
		"Project(\"{2150E333-8FDC-42A3-9474-1A3956D46DE8}\") = \"src\", \"src\", \"{11111111-0000-0000-0000-000000000000}\"\r\nEndProject\r\n" +
		"Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"A\", \"src\\A\\A.csproj\", \"{22222222-0000-0000-0000-000000000000}\"\r\nEndProject\r\n" +
		"Project(\"{E24C65DC-7377-472B-9ABA-BC803B73C61A}\") = \"Web\", \"http://localhost/web\", \"{33333333-0000-0000-0000-000000000000}\"\r\nEndProject\r\n" +
		"Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"A\", \"src/a/A.csproj\", \"{44444444-0000-0000-0000-000000000000}\"\r\nEndProject\r\n"

	reader := NewSolutionReader(nil, models.DefaultExtensions(), logging.Discard())
	solution, err := reader.Parse("/repo/All.sln", []byte(text))
	require.NoError(t, err)
	require.Len(t, solution.ProjectPaths, 1)
	require.Equal(t, "/repo/src/A/A.csproj", solution.ProjectPaths[0].ProjectFile)
}

func TestSolutionReader_EmptySolution(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src")
	wb.AddSolution("Empty.sln")
	fs := wb.Build()

	solution, err := NewSolutionReader(fs, models.DefaultExtensions(), logging.Discard()).Read("/src/Empty.sln")
	require.NoError(t, err)
	require.Empty(t, solution.ProjectPaths)
}

func TestSolutionReader_RejectsNonSolution(t *testing.T) {
	reader := NewSolutionReader(nil, models.DefaultExtensions(), logging.Discard())
	_, err := reader.Parse("/src/x.sln", []byte("hello"))
	require.Error(t, err)
}

func TestSolutionReader_CachesByPath(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src")
	wb.AddSolution("App.sln", "App/App.csproj")
	fs := wb.Build()

	reader := NewSolutionReader(fs, models.DefaultExtensions(), logging.Discard())
	first, err := reader.Read("/src/App.sln")
	require.NoError(t, err)
	second, err := reader.Read("/src/App.sln")
	require.NoError(t, err)

	require.Same(t, first, second)
	require.Equal(t, 1, fs.ReadCount("/src/App.sln"))

	uncached := NewSolutionReader(fs, models.DefaultExtensions(), logging.Discard(), WithSolutionCacheSize(0))
	third, err := uncached.Read("/src/App.sln")
	require.NoError(t, err)
	require.NotSame(t, first, third)
}
