package transforms

import (
	"context"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

const (
	testSdkPackage        = "Microsoft.NET.Test.Sdk"
	testSdkVersion        = "17.8.0"
	msTestFrameworkPkg    = "MSTest.TestFramework"
	msTestAdapterPkg      = "MSTest.TestAdapter"
	msTestVersion         = "3.1.1"
	qualityToolsReference = "Microsoft.VisualStudio.QualityTools.UnitTestFramework"
)

// testAdapters maps a test framework package to the adapter package the SDK
// test host needs to discover its tests.
var testAdapters = []struct {
	framework string
	adapter   string
	version   string
}{
	{framework: msTestFrameworkPkg, adapter: msTestAdapterPkg, version: msTestVersion},
	{framework: "xunit", adapter: "xunit.runner.visualstudio", version: "2.5.3"},
	{framework: "NUnit", adapter: "NUnit3TestAdapter", version: "4.5.0"},
}

// TestProjectPackageReferenceTransformation adds the packages an SDK-style
// test project needs to run under "dotnet test".
type TestProjectPackageReferenceTransformation struct{}

func (t *TestProjectPackageReferenceTransformation) Transform(ctx context.Context, project *models.Project) {
	if !project.IsTestProject {
		return
	}

	removed := project.RemoveItems("Reference", func(e *models.Element) bool {
		return strings.HasPrefix(e.Attr("Include"), qualityToolsReference)
	})
	if removed > 0 {
		addPackage(project, models.PackageReference{ID: msTestFrameworkPkg, Version: msTestVersion})
		project.PruneEmptyGroups()
	}

	addPackage(project, models.PackageReference{ID: testSdkPackage, Version: testSdkVersion})
	for _, a := range testAdapters {
		if hasPackage(project, a.framework) {
			addPackage(project, models.PackageReference{ID: a.adapter, Version: a.version})
		}
	}

	logging.FromContext(ctx).Debug("Added test packages.", "project", project.Name())
}

func hasPackage(project *models.Project, id string) bool {
	for _, pkg := range project.PackageReferences {
		if strings.EqualFold(pkg.ID, id) {
			return true
		}
	}
	for _, item := range project.Items("PackageReference") {
		if strings.EqualFold(item.Attr("Include"), id) {
			return true
		}
	}
	return false
}

func addPackage(project *models.Project, pkg models.PackageReference) {
	if hasPackage(project, pkg.ID) {
		return
	}
	project.PackageReferences = append(project.PackageReferences, pkg)
}
