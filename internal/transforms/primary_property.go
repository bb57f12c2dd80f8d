package transforms

import (
	"context"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// PrimaryUnconditionalPropertyTransformation moves the first unconditional
// property group to the front so the converted file opens with it.
type PrimaryUnconditionalPropertyTransformation struct{}

func (t *PrimaryUnconditionalPropertyTransformation) Transform(_ context.Context, project *models.Project) {
	for i, group := range project.PropertyGroups {
		if group.Condition() != "" {
			continue
		}
		if i > 0 {
			copy(project.PropertyGroups[1:i+1], project.PropertyGroups[:i])
			project.PropertyGroups[0] = group
		}
		return
	}
}
