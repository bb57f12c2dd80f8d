package transforms

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// AssemblyAttributeTransformation moves AssemblyInfo attributes into
// project properties and schedules the source file for deletion. When the
// file must stay, because it was asked for or because it declares
// attributes with no property equivalent, it disables attribute generation
// instead.
type AssemblyAttributeTransformation struct {
	keepAssemblyInfo bool
}

// NewAssemblyAttributeTransformation creates the stage.
func NewAssemblyAttributeTransformation(keepAssemblyInfo bool) *AssemblyAttributeTransformation {
	return &AssemblyAttributeTransformation{keepAssemblyInfo: keepAssemblyInfo}
}

func (t *AssemblyAttributeTransformation) Transform(ctx context.Context, project *models.Project) {
	if project.AssemblyInfoPath == "" {
		return
	}
	logger := logging.FromContext(ctx)
	attrs := project.AssemblyAttributes

	if t.keepAssemblyInfo || !movable(attrs) {
		project.SetProperty("GenerateAssemblyInfo", "false")
		logger.Debug("Keeping AssemblyInfo.", "project", project.Name(), "path", project.AssemblyInfoPath)
		return
	}

	if attrs != nil {
		for _, p := range []struct{ name, value string }{
			{"AssemblyTitle", attrs.Title},
			{"Description", attrs.Description},
			{"Company", attrs.Company},
			{"Product", attrs.Product},
			{"Copyright", attrs.Copyright},
			{"AssemblyVersion", attrs.Version},
			{"FileVersion", attrs.FileVersion},
			{"InformationalVersion", attrs.InformationalVersion},
		} {
			if p.value != "" {
				project.SetProperty(p.name, p.value)
			}
		}
		if strings.Contains(attrs.Version, "*") || strings.Contains(attrs.FileVersion, "*") {
			project.SetProperty("Deterministic", "false")
		}
	}

	infoPath := models.NormalizePath(project.AssemblyInfoPath)
	project.RemoveItems("Compile", func(e *models.Element) bool {
		return models.NormalizePath(models.ResolveInclude(project.Dir(), attrIncludeOrUpdate(e))) == infoPath
	})
	project.PruneEmptyGroups()
	project.ScheduleDeletion(project.AssemblyInfoPath)

	logger.Debug("Moved assembly attributes into properties.", "project", project.Name(), "file", filepath.Base(project.AssemblyInfoPath))
}

// movable reports whether every declared attribute maps onto a property.
func movable(attrs *models.AssemblyAttributes) bool {
	if attrs == nil {
		return true
	}
	return len(attrs.Unmapped) == 0 && attrs.Trademark == "" && attrs.Culture == ""
}

func attrIncludeOrUpdate(e *models.Element) string {
	if v := e.Attr("Include"); v != "" {
		return v
	}
	return e.Attr("Update")
}
