package transforms

import (
	"context"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// DefaultAssemblyReferenceRemovalTransformation drops framework references
// that SDK-style .NET Framework projects receive implicitly.
type DefaultAssemblyReferenceRemovalTransformation struct{}

var implicitReferences = map[string]bool{
	"System":                           true,
	"System.Core":                      true,
	"System.Data":                      true,
	"System.Drawing":                   true,
	"System.IO.Compression.FileSystem": true,
	"System.Numerics":                  true,
	"System.Runtime.Serialization":     true,
	"System.Xml":                       true,
	"System.Xml.Linq":                  true,
}

var languageReferences = map[string]string{
	"Microsoft.CSharp":      "cs",
	"Microsoft.VisualBasic": "vb",
}

func (t *DefaultAssemblyReferenceRemovalTransformation) Transform(_ context.Context, project *models.Project) {
	removed := project.RemoveItems("Reference", func(ref *models.Element) bool {
		if len(ref.Children) > 0 || ref.Condition() != "" {
			return false
		}
		name := AssemblyShortName(ref.Attr("Include"))
		if implicitReferences[name] {
			return true
		}
		lang, ok := languageReferences[name]
		return ok && lang == project.CodeFileExtension
	})
	if removed > 0 {
		project.PruneEmptyGroups()
	}
}
