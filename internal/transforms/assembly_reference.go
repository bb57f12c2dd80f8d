package transforms

import (
	"context"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// AssemblyReferenceTransformation normalizes Reference and ProjectReference
// items. Framework references lose their strong-name suffix and redundant
// metadata; references whose HintPath points into a packages folder are
// left as they are for the package stages that follow.
type AssemblyReferenceTransformation struct{}

var redundantReferenceMetadata = map[string]bool{
	"SpecificVersion":         true,
	"Private":                 true,
	"RequiredTargetFramework": true,
}

var redundantProjectReferenceMetadata = map[string]bool{
	"Project": true,
	"Name":    true,
	"Package": true,
}

func (t *AssemblyReferenceTransformation) Transform(_ context.Context, project *models.Project) {
	for _, ref := range project.Items("Reference") {
		if IsPackageReference(ref) {
			continue
		}
		if ref.Child("HintPath") == nil {
			ref.SetAttr("Include", AssemblyShortName(ref.Attr("Include")))
			ref.RemoveChildren(func(e *models.Element) bool { return redundantReferenceMetadata[e.Name] })
		}
	}

	for _, ref := range project.Items("ProjectReference") {
		ref.RemoveChildren(func(e *models.Element) bool { return redundantProjectReferenceMetadata[e.Name] })
	}
}

// IsPackageReference reports whether a Reference item resolves into a NuGet
// packages folder.
func IsPackageReference(ref *models.Element) bool {
	hint := strings.ToLower(strings.ReplaceAll(ref.ChildValue("HintPath"), "\\", "/"))
	return strings.Contains(hint, "/packages/") || strings.HasPrefix(hint, "packages/")
}

// PackageFolder returns the package folder name of a package Reference,
// e.g. "Newtonsoft.Json.12.0.3" for "..\packages\Newtonsoft.Json.12.0.3\lib\...".
func PackageFolder(ref *models.Element) string {
	parts := strings.Split(strings.ReplaceAll(ref.ChildValue("HintPath"), "\\", "/"), "/")
	for i, part := range parts {
		if strings.EqualFold(part, "packages") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// AssemblyShortName strips version, culture and key information from an
// assembly name.
func AssemblyShortName(include string) string {
	if i := strings.Index(include, ","); i >= 0 {
		include = include[:i]
	}
	return strings.TrimSpace(include)
}
