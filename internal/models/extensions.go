package models

import "strings"

// ExtensionMap is the closed, read-only lookup from project file extensions
// to language markers, plus the solution extension. Build it once and pass
// it by value; it is never mutated.
type ExtensionMap struct {
	projects []extensionEntry
	solution string
}

type extensionEntry struct {
	extension string
	language  string
}

// DefaultExtensions returns the standard mapping: .csproj, .vbproj, .fsproj
// and .sln.
func DefaultExtensions() ExtensionMap {
	return ExtensionMap{
		projects: []extensionEntry{
			{extension: ".csproj", language: "cs"},
			{extension: ".vbproj", language: "vb"},
			{extension: ".fsproj", language: "fs"},
		},
		solution: ".sln",
	}
}

// Language returns the language marker for a project extension.
func (m ExtensionMap) Language(extension string) (string, bool) {
	for _, e := range m.projects {
		if strings.EqualFold(e.extension, extension) {
			return e.language, true
		}
	}
	return "", false
}

// IsProject reports whether extension marks a project file.
func (m ExtensionMap) IsProject(extension string) bool {
	_, ok := m.Language(extension)
	return ok
}

// IsSolution reports whether extension marks a solution file.
func (m ExtensionMap) IsSolution(extension string) bool {
	return m.solution != "" && strings.EqualFold(m.solution, extension)
}

// SolutionExtension returns the solution extension, e.g. ".sln".
func (m ExtensionMap) SolutionExtension() string {
	return m.solution
}

// ProjectExtensions returns the project extensions in declaration order.
func (m ExtensionMap) ProjectExtensions() []string {
	exts := make([]string, len(m.projects))
	for i, e := range m.projects {
		exts[i] = e.extension
	}
	return exts
}
