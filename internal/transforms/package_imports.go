package transforms

import (
	"context"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// RemovePackageImportsTransformation drops imports that NuGet restore or the
// SDK itself now provide, along with the NuGet guard target.
type RemovePackageImportsTransformation struct{}

var sdkImports = []string{
	`microsoft.common.props`,
	`microsoft.csharp.targets`,
	`microsoft.visualbasic.targets`,
	`microsoft.fsharp.targets`,
	`microsoft.testtools.targets`,
	`nuget.targets`,
}

var obsoleteTargets = map[string]bool{
	"EnsureNuGetPackageBuildImports": true,
}

func (t *RemovePackageImportsTransformation) Transform(_ context.Context, project *models.Project) {
	kept := project.Imports[:0]
	for _, imp := range project.Imports {
		if !isRedundantImport(imp.Attr("Project")) {
			kept = append(kept, imp)
		}
	}
	project.Imports = kept

	targets := project.Targets[:0]
	for _, target := range project.Targets {
		name := target.Attr("Name")
		if obsoleteTargets[name] {
			continue
		}
		if (name == "BeforeBuild" || name == "AfterBuild") && len(target.Children) == 0 {
			continue
		}
		targets = append(targets, target)
	}
	project.Targets = targets
}

func isRedundantImport(path string) bool {
	p := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))
	if strings.Contains(p, "/packages/") || strings.HasPrefix(p, "packages/") || strings.Contains(p, "$(solutiondir)packages") {
		return true
	}
	for _, name := range sdkImports {
		if strings.HasSuffix(p, "/"+name) || p == name {
			return true
		}
	}
	return false
}
