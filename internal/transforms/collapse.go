package transforms

import (
	"context"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// Collapse replaces every itemType item of project with one recursive
// wildcard item below basePath that is always copied to the output
// directory. Groups emptied by the removal are dropped; everything else
// keeps its place. Applying Collapse twice gives the same project as
// applying it once.
func Collapse(project *models.Project, itemType, basePath string) {
	kept := project.ItemGroups[:0]
	for _, group := range project.ItemGroups {
		removed := group.RemoveChildren(func(e *models.Element) bool { return e.Name == itemType })
		if removed > 0 && len(group.Children) == 0 {
			continue
		}
		kept = append(kept, group)
	}
	project.ItemGroups = kept

	item := models.NewElement(itemType).
		SetAttr("Include", WildcardInclude(basePath)).
		Add(models.NewTextElement("CopyToOutputDirectory", "Always"))
	project.ItemGroups = append(project.ItemGroups, models.NewElement("ItemGroup").Add(item))
}

// WildcardInclude returns the recursive include pattern for basePath,
// e.g. `Resources\**\*.*`.
func WildcardInclude(basePath string) string {
	base := strings.TrimRight(strings.ReplaceAll(basePath, "/", "\\"), "\\")
	return base + `\**\*.*`
}

// RuleScopedItemCollapseTransformation applies Collapse for every rule of
// its table that matches the project.
type RuleScopedItemCollapseTransformation struct {
	rules RuleTable
}

// NewRuleScopedItemCollapseTransformation creates the stage over a copy of
// rules.
func NewRuleScopedItemCollapseTransformation(rules RuleTable) *RuleScopedItemCollapseTransformation {
	return &RuleScopedItemCollapseTransformation{rules: append(RuleTable(nil), rules...)}
}

func (t *RuleScopedItemCollapseTransformation) Transform(ctx context.Context, project *models.Project) {
	for _, rule := range t.rules.Matching(project) {
		logging.FromContext(ctx).Debug("Collapsing items.", "project", project.Name(),
			"rule", rule.Name, "itemType", rule.ItemType, "basePath", rule.BasePath)
		Collapse(project, rule.ItemType, rule.BasePath)
	}
}
