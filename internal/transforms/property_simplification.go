package transforms

import (
	"context"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// PropertySimplificationTransformation drops properties the SDK already
// implies and properties left without a value.
type PropertySimplificationTransformation struct{}

var obsoleteProperties = map[string]bool{
	"ProjectGuid":             true,
	"ProjectTypeGuids":        true,
	"FileAlignment":           true,
	"SchemaVersion":           true,
	"ProductVersion":          true,
	"OldToolsVersion":         true,
	"UpgradeBackupLocation":   true,
	"TargetFrameworkProfile":  true,
	"NuGetPackageImportStamp": true,
	"AppDesignerFolder":       true,
	"VisualStudioVersion":     true,
	"VSToolsPath":             true,
	"ReferencePath":           true,
	"IsCodedUITest":           true,
	"TestProjectType":         true,
	"SccProjectName":          true,
	"SccLocalPath":            true,
	"SccAuxPath":              true,
	"SccProvider":             true,
	"ErrorReport":             true,
}

func (t *PropertySimplificationTransformation) Transform(_ context.Context, project *models.Project) {
	name := project.Name()
	for _, group := range project.PropertyGroups {
		groupCondition := group.Condition()
		group.RemoveChildren(func(prop *models.Element) bool {
			if obsoleteProperties[prop.Name] {
				return true
			}
			value := prop.Value()
			if value == "" && len(prop.Children) == 0 {
				return true
			}
			return isImpliedDefault(prop, value, groupCondition, name)
		})
	}
	project.PruneEmptyGroups()
}

// isImpliedDefault reports whether prop restates a value the SDK produces on
// its own.
func isImpliedDefault(prop *models.Element, value, groupCondition, projectName string) bool {
	switch prop.Name {
	case "RootNamespace", "AssemblyName":
		return groupCondition == "" && prop.Condition() == "" && value == projectName
	case "OutputType":
		return strings.EqualFold(value, "Library")
	case "WarningLevel":
		return value == "4"
	case "Configuration":
		return value == "Debug" && isUnsetCheck(prop.Condition(), "Configuration")
	case "Platform":
		return value == "AnyCPU" && isUnsetCheck(prop.Condition(), "Platform")
	case "OutputPath":
		return strings.EqualFold(value, `bin\Debug\`) || strings.EqualFold(value, `bin\Release\`)
	}
	return false
}

// isUnsetCheck matches the legacy " '$(Name)' == '' " default guard.
func isUnsetCheck(condition, name string) bool {
	c := strings.Join(strings.Fields(condition), "")
	return c == "'$("+name+")'==''"
}
