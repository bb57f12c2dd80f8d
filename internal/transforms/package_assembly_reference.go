package transforms

import (
	"context"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// RemovePackageAssemblyReferencesTransformation drops Reference items that a
// package from packages.config already provides.
type RemovePackageAssemblyReferencesTransformation struct{}

func (t *RemovePackageAssemblyReferencesTransformation) Transform(ctx context.Context, project *models.Project) {
	if len(project.PackageReferences) == 0 {
		return
	}

	removed := project.RemoveItems("Reference", func(ref *models.Element) bool {
		if !IsPackageReference(ref) {
			return false
		}
		folder := strings.ToLower(PackageFolder(ref))
		for _, pkg := range project.PackageReferences {
			id := strings.ToLower(pkg.ID)
			if folder == id || strings.HasPrefix(folder, id+".") {
				return true
			}
		}
		return false
	})
	if removed == 0 {
		return
	}

	project.PruneEmptyGroups()
	logging.FromContext(ctx).Debug("Removed package assembly references.", "project", project.Name(), "count", removed)
}
