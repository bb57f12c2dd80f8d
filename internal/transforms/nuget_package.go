package transforms

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// NugetPackageTransformation turns the packages collected from
// packages.config (and added by earlier stages) into PackageReference items
// and schedules packages.config for deletion.
type NugetPackageTransformation struct{}

func (t *NugetPackageTransformation) Transform(ctx context.Context, project *models.Project) {
	packages := DeduplicatePackages(project.PackageReferences)
	project.PackageReferences = packages

	if len(packages) > 0 {
		group := models.NewElement("ItemGroup")
		for _, pkg := range packages {
			if hasPackageItem(project, pkg.ID) {
				continue
			}
			item := models.NewElement("PackageReference").
				SetAttr("Include", pkg.ID).
				SetAttr("Version", pkg.Version)
			if pkg.IsDevelopmentDependency {
				item.Add(models.NewTextElement("PrivateAssets", "all"))
			}
			group.Add(item)
		}
		if len(group.Children) > 0 {
			project.ItemGroups = append(project.ItemGroups, group)
		}
	}

	if project.PackagesConfigPath == "" {
		return
	}
	isConfig := func(e *models.Element) bool {
		return strings.EqualFold(filepath.Base(strings.ReplaceAll(e.Attr("Include"), "\\", "/")), "packages.config")
	}
	project.RemoveItems("None", isConfig)
	project.RemoveItems("Content", isConfig)
	project.PruneEmptyGroups()
	project.ScheduleDeletion(project.PackagesConfigPath)

	logging.FromContext(ctx).Debug("Converted packages.config.", "project", project.Name(), "packages", len(packages))
}

func hasPackageItem(project *models.Project, id string) bool {
	for _, item := range project.Items("PackageReference") {
		if strings.EqualFold(item.Attr("Include"), id) {
			return true
		}
	}
	return false
}

// DeduplicatePackages keeps one entry per package id (case-insensitive) at
// the position and spelling of its first occurrence, carrying the highest
// version seen.
func DeduplicatePackages(packages []models.PackageReference) []models.PackageReference {
	var out []models.PackageReference
	index := make(map[string]int)
	for _, pkg := range packages {
		key := strings.ToLower(pkg.ID)
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, pkg)
			continue
		}
		if CompareVersions(pkg.Version, out[i].Version) > 0 {
			id, dev := out[i].ID, out[i].IsDevelopmentDependency && pkg.IsDevelopmentDependency
			out[i] = pkg
			out[i].ID = id
			out[i].IsDevelopmentDependency = dev
		} else if !pkg.IsDevelopmentDependency {
			out[i].IsDevelopmentDependency = false
		}
	}
	return out
}

// CompareVersions orders NuGet version strings. Versions that are valid
// semantic versions are compared with semver rules; four-part and other
// legacy versions fall back to numeric comparison of dotted segments, with
// a prerelease suffix ranking below the release it precedes.
func CompareVersions(a, b string) int {
	va, vb := "v"+strings.TrimSpace(a), "v"+strings.TrimSpace(b)
	if semver.IsValid(va) && semver.IsValid(vb) {
		return semver.Compare(va, vb)
	}

	coreA, preA, _ := strings.Cut(strings.TrimSpace(a), "-")
	coreB, preB, _ := strings.Cut(strings.TrimSpace(b), "-")
	if c := compareSegments(coreA, coreB); c != 0 {
		return c
	}
	switch {
	case preA == preB:
		return 0
	case preA == "":
		return 1
	case preB == "":
		return -1
	}
	return strings.Compare(preA, preB)
}

func compareSegments(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(pa) || i < len(pb); i++ {
		sa, sb := "0", "0"
		if i < len(pa) {
			sa = pa[i]
		}
		if i < len(pb) {
			sb = pb[i]
		}
		na, errA := strconv.Atoi(sa)
		nb, errB := strconv.Atoi(sb)
		switch {
		case errA == nil && errB == nil && na != nb:
			if na < nb {
				return -1
			}
			return 1
		case (errA != nil || errB != nil) && sa != sb:
			return strings.Compare(sa, sb)
		}
	}
	return 0
}
