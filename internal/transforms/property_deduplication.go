package transforms

import (
	"context"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// PropertyDeduplicationTransformation removes repeated unconditional
// declarations within a group (the last one wins in MSBuild) and
// conditional restatements of the unconditional value in effect where
// they appear.
//
// It expects target framework properties to be canonical already.
type PropertyDeduplicationTransformation struct{}

func (t *PropertyDeduplicationTransformation) Transform(_ context.Context, project *models.Project) {
	for _, group := range project.PropertyGroups {
		dropShadowed(group)
	}

	// effective holds the unconditional value in force at the current
	// point of the document.
	effective := make(map[string]string)
	for _, group := range project.PropertyGroups {
		conditional := group.Condition() != ""
		group.RemoveChildren(func(prop *models.Element) bool {
			if !conditional && prop.Condition() == "" {
				effective[prop.Name] = prop.Value()
				return false
			}
			if len(prop.Children) > 0 {
				return false
			}
			value, ok := effective[prop.Name]
			return ok && value == prop.Value()
		})
	}
	project.PruneEmptyGroups()
}

// dropShadowed keeps only the last unconditional declaration of each name.
func dropShadowed(group *models.Element) {
	if group.Condition() != "" {
		return
	}
	last := make(map[string]*models.Element)
	for _, prop := range group.Children {
		if prop.Condition() == "" {
			last[prop.Name] = prop
		}
	}
	group.RemoveChildren(func(prop *models.Element) bool {
		return prop.Condition() == "" && last[prop.Name] != prop
	})
}
