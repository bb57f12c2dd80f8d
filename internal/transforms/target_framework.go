package transforms

import (
	"context"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// TargetFrameworkTransformation turns the legacy framework properties into
// canonical monikers and writes a single TargetFramework(s) property.
type TargetFrameworkTransformation struct {
	targetFrameworks                  []string
	appendTargetFrameworkToOutputPath bool
}

// NewTargetFrameworkTransformation creates the stage. A non-empty
// targetFrameworks overrides whatever the project declares.
func NewTargetFrameworkTransformation(targetFrameworks []string, appendTargetFrameworkToOutputPath bool) *TargetFrameworkTransformation {
	return &TargetFrameworkTransformation{
		targetFrameworks:                  append([]string(nil), targetFrameworks...),
		appendTargetFrameworkToOutputPath: appendTargetFrameworkToOutputPath,
	}
}

var legacyFrameworkProperties = []string{
	"TargetFrameworkVersion",
	"TargetFrameworkIdentifier",
	"TargetFramework",
	"TargetFrameworks",
}

func (t *TargetFrameworkTransformation) Transform(ctx context.Context, project *models.Project) {
	frameworks := t.targetFrameworks
	if len(frameworks) == 0 {
		frameworks = declaredFrameworks(project)
	}

	for _, name := range legacyFrameworkProperties {
		project.RemoveProperty(name)
	}
	project.PruneEmptyGroups()

	project.TargetFrameworks = append([]string(nil), frameworks...)
	switch len(frameworks) {
	case 0:
		logging.FromContext(ctx).Debug("No target framework found.", "project", project.Name())
	case 1:
		prependProperty(project, "TargetFramework", frameworks[0])
	default:
		prependProperty(project, "TargetFrameworks", strings.Join(frameworks, ";"))
	}

	if !t.appendTargetFrameworkToOutputPath {
		project.AppendTargetFrameworkToOutputPath = false
		project.SetProperty("AppendTargetFrameworkToOutputPath", "false")
	}
}

// prependProperty puts a property at the top of the primary group.
func prependProperty(project *models.Project, name, value string) {
	group := project.PrimaryPropertyGroup()
	group.Children = append([]*models.Element{models.NewTextElement(name, value)}, group.Children...)
}

// declaredFrameworks reads the frameworks a project already declares. SDK
// style properties win over TargetFrameworkVersion.
func declaredFrameworks(project *models.Project) []string {
	if len(project.TargetFrameworks) > 0 {
		return project.TargetFrameworks
	}
	if v := project.Property("TargetFrameworks"); v != "" {
		return splitList(v)
	}
	if v := project.Property("TargetFramework"); v != "" {
		return []string{v}
	}
	if v := project.Property("TargetFrameworkVersion"); v != "" {
		if moniker := FrameworkMoniker(project.Property("TargetFrameworkIdentifier"), v); moniker != "" {
			return []string{moniker}
		}
	}
	return nil
}

// FrameworkMoniker converts a legacy identifier and version pair into a
// target framework moniker, e.g. ("", "v4.7.2") -> "net472". It returns ""
// for versions it cannot read.
func FrameworkMoniker(identifier, version string) string {
	v := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(version), "v"), "V")
	if v == "" {
		return ""
	}
	for _, r := range v {
		if (r < '0' || r > '9') && r != '.' {
			return ""
		}
	}

	switch strings.ToLower(strings.TrimSpace(identifier)) {
	case ".netstandard":
		return "netstandard" + v
	case ".netcoreapp":
		return "netcoreapp" + v
	default:
		return "net" + strings.ReplaceAll(v, ".", "")
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
