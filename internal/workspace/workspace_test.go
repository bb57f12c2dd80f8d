package workspace

import (
	"testing"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
)

func TestWorkspaceSolutions_TopLevelOnly(t *testing.T) {
	wb := NewWorkspaceBuilder("/src")
	wb.AddSolution("App.sln", "App/App.csproj")
	wb.AddSolution("nested/Other.sln")
	fs := wb.Build()

	ws := New(fs, "/src")
	solutions, err := ws.Solutions(".sln")
	if err != nil {
		t.Fatalf("Solutions() error = %v", err)
	}

	if len(solutions) != 1 || solutions[0] != "/src/App.sln" {
		t.Fatalf("unexpected solutions: %v", solutions)
	}
}

func TestWorkspaceProjectFiles_Recursive(t *testing.T) {
	wb := NewWorkspaceBuilder("/src")
	wb.AddProject("b/B.csproj")
	wb.AddProject("a/deep/A.CSPROJ")
	wb.AddProject("c/C.vbproj")
	fs := wb.Build()

	ws := New(fs, "/src")
	files, err := ws.ProjectFiles(".csproj")
	if err != nil {
		t.Fatalf("ProjectFiles() error = %v", err)
	}

	expected := []string{"/src/a/deep/A.CSPROJ", "/src/b/B.csproj"}
	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %v", len(expected), files)
	}
	for i := range expected {
		if files[i] != expected[i] {
			t.Fatalf("files[%d] = %s, want %s", i, files[i], expected[i])
		}
	}
}

func TestWorkspaceProjectFiles_HonorsGitIgnore(t *testing.T) {
	wb := NewWorkspaceBuilder("/src")
	wb.AddFile(".gitignore", "obj/\nbin/\n")
	wb.AddProject("App/App.csproj")
	wb.AddProject("App/obj/App.csproj")
	wb.AddProject("App/bin/Debug/App.csproj")
	fs := wb.Build()

	files, err := New(fs, "/src").ProjectFiles(".csproj")
	if err != nil {
		t.Fatalf("ProjectFiles() error = %v", err)
	}
	if len(files) != 1 || files[0] != "/src/App/App.csproj" {
		t.Fatalf("unexpected files: %v", files)
	}

	all, err := New(fs, "/src", WithGitIgnore(false)).ProjectFiles(".csproj")
	if err != nil {
		t.Fatalf("ProjectFiles() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 files without .gitignore, got %v", all)
	}
}

func TestWorkspaceProjectFiles_MissingRoot(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	if _, err := New(fs, "/missing").ProjectFiles(".csproj"); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestFindFileUp(t *testing.T) {
	wb := NewWorkspaceBuilder("/src")
	wb.AddFile(".csproj-migrate.hcl", "")
	wb.AddProject("a/b/B.csproj")
	fs := wb.Build()

	path, found := FindFileUp(fs, "/src/a/b", ".csproj-migrate.hcl")
	if !found || path != "/src/.csproj-migrate.hcl" {
		t.Fatalf("FindFileUp() = %q, %v", path, found)
	}

	if _, found := FindFileUp(fs, "/src/a/b", "nope.hcl"); found {
		t.Fatalf("expected no match")
	}
}
