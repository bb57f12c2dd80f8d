package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
)

// WorkspaceBuilder helps create test source trees of legacy projects and
// solutions on a MockFileSystem.
type WorkspaceBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewWorkspaceBuilder creates a new WorkspaceBuilder
func NewWorkspaceBuilder(root string) *WorkspaceBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &WorkspaceBuilder{
		fs:   fs,
		root: root,
	}
}

// Path returns the absolute path of rel inside the workspace.
func (wb *WorkspaceBuilder) Path(rel string) string {
	return filepath.Join(wb.root, filepath.FromSlash(rel))
}

// AddProject adds a minimal legacy C# class library at rel.
func (wb *WorkspaceBuilder) AddProject(rel string) *WorkspaceBuilder {
	return wb.AddProjectWithContent(rel, LegacyProjectXML(""))
}

// AddProjectWithContent adds a project file with the given XML.
func (wb *WorkspaceBuilder) AddProjectWithContent(rel, content string) *WorkspaceBuilder {
	wb.fs.AddFile(wb.Path(rel), []byte(content))
	return wb
}

// AddFile adds an arbitrary file.
func (wb *WorkspaceBuilder) AddFile(rel, content string) *WorkspaceBuilder {
	wb.fs.AddFile(wb.Path(rel), []byte(content))
	return wb
}

// AddDir adds an empty directory.
func (wb *WorkspaceBuilder) AddDir(rel string) *WorkspaceBuilder {
	wb.fs.AddDir(wb.Path(rel))
	return wb
}

// AddSolution adds a solution at rel declaring members, given relative to
// the solution's directory with either separator. Members need not exist.
func (wb *WorkspaceBuilder) AddSolution(rel string, members ...string) *WorkspaceBuilder {
	wb.fs.AddFile(wb.Path(rel), []byte(SolutionText(members...)))
	return wb
}

// Build finalizes the workspace and returns the filesystem
func (wb *WorkspaceBuilder) Build() *filesystem.MockFileSystem {
	return wb.fs
}

// FileSystem returns the mock filesystem
func (wb *WorkspaceBuilder) FileSystem() *filesystem.MockFileSystem {
	return wb.fs
}

// SolutionText renders a Visual Studio solution declaring members.
func SolutionText(members ...string) string {
	var b strings.Builder
	b.WriteString("\ufeff\r\n")
	b.WriteString("Microsoft Visual Studio Solution File, Format Version 12.00\r\n")
	b.WriteString("# Visual Studio 15\r\n")
	b.WriteString("VisualStudioVersion = 15.0.26124.0\r\n")
	b.WriteString("MinimumVisualStudioVersion = 15.0.26124.0\r\n")
	for i, member := range members {
		member = strings.ReplaceAll(member, "/", "\\")
		name := strings.TrimSuffix(filepath.Base(strings.ReplaceAll(member, "\\", "/")), filepath.Ext(member))
		fmt.Fprintf(&b, "Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"%s\", \"%s\", \"{%08X-0000-0000-0000-000000000000}\"\r\n", name, member, i+1)
		b.WriteString("EndProject\r\n")
	}
	b.WriteString("Global\r\nEndGlobal\r\n")
	return b.String()
}

// LegacyProjectXML renders a pre-SDK C# class library. extra is inserted
// verbatim before the closing Project tag.
func LegacyProjectXML(extra string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="15.0" DefaultTargets="Build" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <Import Project="$(MSBuildExtensionsPath)\$(MSBuildToolsVersion)\Microsoft.Common.props" Condition="Exists('$(MSBuildExtensionsPath)\$(MSBuildToolsVersion)\Microsoft.Common.props')" />
  <PropertyGroup>
    <Configuration Condition=" '$(Configuration)' == '' ">Debug</Configuration>
    <Platform Condition=" '$(Platform)' == '' ">AnyCPU</Platform>
    <ProjectGuid>{3C3D6D43-1F5D-4B8E-9C55-0A1D1C4E2F11}</ProjectGuid>
    <OutputType>Library</OutputType>
    <RootNamespace>Sample</RootNamespace>
    <AssemblyName>Sample</AssemblyName>
    <TargetFrameworkVersion>v4.7.2</TargetFrameworkVersion>
    <FileAlignment>512</FileAlignment>
  </PropertyGroup>
  <ItemGroup>
    <Reference Include="System" />
    <Reference Include="System.Core" />
  </ItemGroup>
  <ItemGroup>
    <Compile Include="Class1.cs" />
    <Compile Include="Properties\AssemblyInfo.cs" />
  </ItemGroup>
` + extra + `  <Import Project="$(MSBuildToolsPath)\Microsoft.CSharp.targets" />
</Project>
`
}
