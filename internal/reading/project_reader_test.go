package reading

import (
	"errors"
	"testing"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/workspace"
	"github.com/stretchr/testify/require"
)

func TestProjectReader_ReadsLegacyProject(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src")
	wb.AddProject("Lib/Lib.csproj")
	wb.AddFile("Lib/Properties/AssemblyInfo.cs", `using System.Reflection;
[assembly: AssemblyTitle("Lib")]
[assembly: AssemblyCompany("Contoso")]
// [assembly: AssemblyProduct("commented")]
[assembly: AssemblyVersion("1.2.0.0")]
`)
	wb.AddFile("Lib/packages.config", `<?xml version="1.0" encoding="utf-8"?>
<packages>
  <package id="Newtonsoft.Json" version="12.0.3" targetFramework="net472" />
  <package id="StyleCop.Analyzers" version="1.1.118" targetFramework="net472" developmentDependency="true" />
</packages>`)
	fs := wb.Build()

	reader := NewProjectReader(fs, logging.Discard())
	project, err := reader.Read("/src/Lib/Lib.csproj")
	require.NoError(t, err)

	require.Equal(t, "Lib", project.Name())
	require.Equal(t, "15.0", project.ToolsVersion)
	require.Len(t, project.PropertyGroups, 1)
	require.Len(t, project.ItemGroups, 2)
	require.Len(t, project.Imports, 2)
	require.Equal(t, "v4.7.2", project.Property("TargetFrameworkVersion"))
	require.Equal(t, "", project.Property("Configuration"), "conditional property is not unconditional")

	require.Equal(t, "/src/Lib/packages.config", project.PackagesConfigPath)
	require.Len(t, project.PackageReferences, 2)
	require.Equal(t, "Newtonsoft.Json", project.PackageReferences[0].ID)
	require.True(t, project.PackageReferences[1].IsDevelopmentDependency)

	require.Equal(t, "/src/Lib/Properties/AssemblyInfo.cs", project.AssemblyInfoPath)
	require.Equal(t, "Lib", project.AssemblyAttributes.Title)
	require.Equal(t, "Contoso", project.AssemblyAttributes.Company)
	require.Equal(t, "", project.AssemblyAttributes.Product)
	require.Equal(t, "1.2.0.0", project.AssemblyAttributes.Version)
	require.False(t, project.IsTestProject)
}

func TestProjectReader_DetectsTestProject(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src")
	wb.AddProjectWithContent("Tests/Tests.csproj", `<Project ToolsVersion="15.0" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <ProjectTypeGuids>{3AC096D0-A1C2-E12C-1390-A8335801FDAB};{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}</ProjectTypeGuids>
  </PropertyGroup>
</Project>`)
	fs := wb.Build()

	project, err := NewProjectReader(fs, logging.Discard()).Read("/src/Tests/Tests.csproj")
	require.NoError(t, err)
	require.True(t, project.IsTestProject)
}

func TestProjectReader_RejectsSdkProject(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src")
	wb.AddProjectWithContent("New/New.csproj", `<Project Sdk="Microsoft.NET.Sdk"><PropertyGroup><TargetFramework>net8.0</TargetFramework></PropertyGroup></Project>`)
	fs := wb.Build()

	_, err := NewProjectReader(fs, logging.Discard()).Read("/src/New/New.csproj")
	require.True(t, errors.Is(err, ErrAlreadySdkStyle))
}

func TestProjectReader_RejectsInvalidXML(t *testing.T) {
	wb := workspace.NewWorkspaceBuilder("/src")
	wb.AddProjectWithContent("Bad/Bad.csproj", `<Project><PropertyGroup></Project>`)
	wb.AddProjectWithContent("Other/Other.csproj", `<Solution />`)
	fs := wb.Build()

	reader := NewProjectReader(fs, logging.Discard())
	_, err := reader.Read("/src/Bad/Bad.csproj")
	require.Error(t, err)

	_, err = reader.Read("/src/Other/Other.csproj")
	require.True(t, errors.Is(err, ErrNotAProject))
}

func TestParseAssemblyAttributes_VisualBasicAndFSharp(t *testing.T) {
	vb := ParseAssemblyAttributes(`<Assembly: AssemblyTitle("VbLib")>
' <Assembly: AssemblyCompany("ignored")>
<Assembly: AssemblyFileVersionAttribute("2.0.0.0")>`)
	require.Equal(t, "VbLib", vb.Title)
	require.Equal(t, "", vb.Company)
	require.Equal(t, "2.0.0.0", vb.FileVersion)

	fs := ParseAssemblyAttributes(`[<assembly: AssemblyDescription("F# library")>]`)
	require.Equal(t, "F# library", fs.Description)
}

func TestParseAssemblyAttributes_TracksUnmapped(t *testing.T) {
	attrs := ParseAssemblyAttributes(`[assembly: AssemblyTitle("Lib")]
[assembly: Guid("2f1c5a6e-0000-0000-0000-000000000000")]
[assembly: InternalsVisibleTo("Lib.Tests")]`)

	require.Equal(t, "Lib", attrs.Title)
	require.Equal(t, []string{"InternalsVisibleTo"}, attrs.Unmapped)
	require.False(t, attrs.IsEmpty())
}
