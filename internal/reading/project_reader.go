package reading

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

var (
	// ErrNotAProject is returned when the root element is not <Project>.
	ErrNotAProject = errors.New("root element is not <Project>")

	// ErrAlreadySdkStyle is returned for projects that already declare an Sdk.
	ErrAlreadySdkStyle = errors.New("project already uses the SDK format")
)

const testProjectTypeGUID = "{3AC096D0-A1C2-E12C-1390-A8335801FDAB}"

var testFrameworkPackages = []string{
	"MSTest.TestFramework",
	"xunit",
	"NUnit",
}

// ProjectReader parses legacy project files into models.Project.
type ProjectReader struct {
	fs       filesystem.FileSystem
	logger   *slog.Logger
	packages *PackagesConfigReader
}

// NewProjectReader creates a ProjectReader.
func NewProjectReader(fs filesystem.FileSystem, logger *slog.Logger) *ProjectReader {
	return &ProjectReader{
		fs:       fs,
		logger:   logger,
		packages: NewPackagesConfigReader(fs),
	}
}

// Read parses the project file at path along with its packages.config and
// AssemblyInfo source, when present. It returns an error when the file
// cannot be read or is not a legacy project; callers treat that as "nothing
// to convert".
func (r *ProjectReader) Read(path string) (*models.Project, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	root, err := parseElementTree(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if root.Name != "Project" {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAProject)
	}
	if root.Attr("Sdk") != "" {
		return nil, fmt.Errorf("%s: %w", path, ErrAlreadySdkStyle)
	}

	project := models.NewProject(path)
	project.ToolsVersion = root.Attr("ToolsVersion")

	for _, child := range root.Children {
		switch child.Name {
		case "PropertyGroup":
			project.PropertyGroups = append(project.PropertyGroups, child)
		case "ItemGroup":
			project.ItemGroups = append(project.ItemGroups, child)
		case "Import":
			project.Imports = append(project.Imports, child)
		case "Target":
			project.Targets = append(project.Targets, child)
		default:
			project.OtherElements = append(project.OtherElements, child)
		}
	}

	if err := r.readPackagesConfig(project); err != nil {
		return nil, err
	}
	r.readAssemblyInfo(project)
	project.IsTestProject = isTestProject(project)

	r.logger.Debug("Project read.", "path", path,
		"propertyGroups", len(project.PropertyGroups),
		"itemGroups", len(project.ItemGroups),
		"packages", len(project.PackageReferences))

	return project, nil
}

func (r *ProjectReader) readPackagesConfig(project *models.Project) error {
	configPath := filepath.Join(project.Dir(), "packages.config")
	for _, item := range append(project.Items("None"), project.Items("Content")...) {
		if strings.EqualFold(filepath.Base(strings.ReplaceAll(item.Attr("Include"), "\\", "/")), "packages.config") {
			configPath = models.ResolveInclude(project.Dir(), item.Attr("Include"))
			break
		}
	}

	if !r.fs.Exists(configPath) {
		return nil
	}

	packages, err := r.packages.Read(configPath)
	if err != nil {
		return fmt.Errorf("failed to read packages for %s: %w", project.FilePath, err)
	}

	project.PackagesConfigPath = configPath
	project.PackageReferences = packages
	return nil
}

func (r *ProjectReader) readAssemblyInfo(project *models.Project) {
	for _, item := range project.Items("Compile") {
		include := item.Attr("Include")
		name := filepath.Base(strings.ReplaceAll(include, "\\", "/"))
		if !strings.HasPrefix(strings.ToLower(name), "assemblyinfo.") {
			continue
		}

		path := models.ResolveInclude(project.Dir(), include)
		data, err := r.fs.ReadFile(path)
		if err != nil {
			r.logger.Debug("AssemblyInfo listed but not readable.", "path", path, "error", err)
			continue
		}

		project.AssemblyInfoPath = path
		project.AssemblyAttributes = ParseAssemblyAttributes(string(data))
		return
	}
}

func isTestProject(project *models.Project) bool {
	if strings.Contains(strings.ToUpper(project.Property("ProjectTypeGuids")), testProjectTypeGUID) {
		return true
	}

	for _, pkg := range project.PackageReferences {
		for _, name := range testFrameworkPackages {
			if strings.EqualFold(pkg.ID, name) {
				return true
			}
		}
	}

	for _, ref := range project.Items("Reference") {
		if strings.HasPrefix(ref.Attr("Include"), "Microsoft.VisualStudio.QualityTools.UnitTestFramework") {
			return true
		}
	}

	return false
}
