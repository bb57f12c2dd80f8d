package models

import (
	"path/filepath"
	"strings"
)

// Project is the in-memory form of one legacy project file. It is created by
// the reader, mutated in place by the transformation pipeline and then handed
// to the writer. A Project is never reused across conversions.
type Project struct {
	// FilePath is the absolute path of the source project file.
	FilePath string

	// CodeFileExtension is the language marker ("cs", "vb", "fs") stamped once
	// by the converter from the extension map.
	CodeFileExtension string

	// Solution is the solution this project was discovered through, or nil
	// when converted standalone. Lookup only, never mutated.
	Solution *Solution

	// ToolsVersion is the legacy ToolsVersion attribute, if any.
	ToolsVersion string

	// ProjectSdk is the SDK the converted project targets.
	ProjectSdk string

	PropertyGroups []*Element
	ItemGroups     []*Element
	Imports        []*Element
	Targets        []*Element

	// OtherElements holds top-level elements the converter does not model,
	// such as Choose or ProjectExtensions, in document order.
	OtherElements []*Element

	// TargetFrameworks holds canonical target framework monikers, e.g. net472.
	TargetFrameworks []string

	AppendTargetFrameworkToOutputPath bool

	// PackageReferences are the packages declared in packages.config.
	PackageReferences []PackageReference
	PackagesConfigPath string

	// AssemblyAttributes are read from AssemblyInfo; nil when none was found.
	AssemblyAttributes *AssemblyAttributes
	AssemblyInfoPath   string

	IsTestProject bool

	// Deletions lists files made obsolete by the conversion. The writer
	// removes them.
	Deletions []string
}

// NewProject creates an empty project for filePath.
func NewProject(filePath string) *Project {
	return &Project{
		FilePath:                          filePath,
		ProjectSdk:                        "Microsoft.NET.Sdk",
		AppendTargetFrameworkToOutputPath: true,
	}
}

// Name returns the project file name without extension.
func (p *Project) Name() string {
	base := filepath.Base(p.FilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileName returns the project file name including extension.
func (p *Project) FileName() string {
	return filepath.Base(p.FilePath)
}

// Dir returns the directory holding the project file.
func (p *Project) Dir() string {
	return filepath.Dir(p.FilePath)
}

// Property returns the value of the first unconditional property with the
// given name, searching property groups in order.
func (p *Project) Property(name string) string {
	for _, group := range p.PropertyGroups {
		if group.Condition() != "" {
			continue
		}
		for _, prop := range group.ChildrenNamed(name) {
			if prop.Condition() == "" {
				return prop.Value()
			}
		}
	}
	return ""
}

// PrimaryPropertyGroup returns the first unconditional property group,
// creating one at the front if there is none.
func (p *Project) PrimaryPropertyGroup() *Element {
	for _, group := range p.PropertyGroups {
		if group.Condition() == "" {
			return group
		}
	}
	group := NewElement("PropertyGroup")
	p.PropertyGroups = append([]*Element{group}, p.PropertyGroups...)
	return group
}

// SetProperty sets an unconditional property in the primary group, replacing
// an existing value there.
func (p *Project) SetProperty(name, value string) {
	group := p.PrimaryPropertyGroup()
	for _, prop := range group.ChildrenNamed(name) {
		if prop.Condition() == "" {
			prop.Text = value
			return
		}
	}
	group.Add(NewTextElement(name, value))
}

// RemoveProperty removes every declaration of name from every property group
// and returns how many were removed.
func (p *Project) RemoveProperty(name string) int {
	removed := 0
	for _, group := range p.PropertyGroups {
		removed += group.RemoveChildren(func(e *Element) bool { return e.Name == name })
	}
	return removed
}

// Items returns every element of itemType across all item groups, in order.
func (p *Project) Items(itemType string) []*Element {
	var items []*Element
	for _, group := range p.ItemGroups {
		items = append(items, group.ChildrenNamed(itemType)...)
	}
	return items
}

// RemoveItems removes matching elements of itemType from every item group.
// A nil match removes all elements of that type.
func (p *Project) RemoveItems(itemType string, match func(*Element) bool) int {
	removed := 0
	for _, group := range p.ItemGroups {
		removed += group.RemoveChildren(func(e *Element) bool {
			return e.Name == itemType && (match == nil || match(e))
		})
	}
	return removed
}

// PruneEmptyGroups drops item and property groups with no children.
func (p *Project) PruneEmptyGroups() {
	p.ItemGroups = pruneEmpty(p.ItemGroups)
	p.PropertyGroups = pruneEmpty(p.PropertyGroups)
}

func pruneEmpty(groups []*Element) []*Element {
	kept := groups[:0]
	for _, g := range groups {
		if len(g.Children) > 0 {
			kept = append(kept, g)
		}
	}
	return kept
}

// ScheduleDeletion records a file the writer should remove. Duplicates are
// ignored.
func (p *Project) ScheduleDeletion(path string) {
	for _, existing := range p.Deletions {
		if existing == path {
			return
		}
	}
	p.Deletions = append(p.Deletions, path)
}
