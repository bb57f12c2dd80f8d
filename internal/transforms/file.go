package transforms

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// FileTransformation removes file items the SDK default globs already
// include. Items that carry metadata stay, with Include turned into Update
// so the glob and the explicit item do not collide. Items outside the
// project directory, conditional items, linked items and wildcard items
// are never touched.
type FileTransformation struct{}

func (t *FileTransformation) Transform(ctx context.Context, project *models.Project) {
	compileExt := "." + project.CodeFileExtension
	removed := 0

	for _, group := range project.ItemGroups {
		if group.Condition() != "" {
			continue
		}
		removed += group.RemoveChildren(func(item *models.Element) bool {
			if item.Name == "Folder" {
				return true
			}
			if !coveredByDefaultGlob(item, compileExt, project.CodeFileExtension == "fs") {
				return false
			}
			if len(item.Children) == 0 {
				return true
			}
			toUpdate(item)
			return false
		})
	}

	project.PruneEmptyGroups()
	if removed > 0 {
		logging.FromContext(ctx).Debug("Removed globbed file items.", "project", project.Name(), "count", removed)
	}
}

func coveredByDefaultGlob(item *models.Element, compileExt string, explicitCompile bool) bool {
	include := item.Attr("Include")
	if include == "" || item.Condition() != "" || item.Child("Link") != nil {
		return false
	}
	if !insideProject(include) {
		return false
	}

	ext := strings.ToLower(filepath.Ext(include))
	switch item.Name {
	case "Compile":
		return !explicitCompile && ext == compileExt
	case "EmbeddedResource":
		return ext == ".resx"
	case "None":
		return ext != compileExt && ext != ".resx" && !strings.EqualFold(filepath.Base(include), "packages.config")
	}
	return false
}

func insideProject(include string) bool {
	p := strings.ReplaceAll(include, "\\", "/")
	if strings.ContainsAny(p, "*?;$%@") {
		return false
	}
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") || (len(p) > 1 && p[1] == ':') {
		return false
	}
	clean := filepath.Clean(p)
	return clean != ".." && !strings.HasPrefix(clean, "../")
}

// toUpdate rewrites Include to Update in place, keeping attribute order.
func toUpdate(item *models.Element) {
	for i := range item.Attrs {
		if item.Attrs[i].Name == "Include" {
			item.Attrs[i].Name = "Update"
			return
		}
	}
}
