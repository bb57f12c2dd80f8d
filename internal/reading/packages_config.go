package reading

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

type packagesConfig struct {
	XMLName  xml.Name              `xml:"packages"`
	Packages []packagesConfigEntry `xml:"package"`
}

type packagesConfigEntry struct {
	ID                    string `xml:"id,attr"`
	Version               string `xml:"version,attr"`
	TargetFramework       string `xml:"targetFramework,attr,omitempty"`
	DevelopmentDependency string `xml:"developmentDependency,attr,omitempty"`
}

// PackagesConfigReader reads NuGet packages.config files.
type PackagesConfigReader struct {
	fs filesystem.FileSystem
}

// NewPackagesConfigReader creates a PackagesConfigReader.
func NewPackagesConfigReader(fs filesystem.FileSystem) *PackagesConfigReader {
	return &PackagesConfigReader{fs: fs}
}

// Read returns the packages declared in path, in declaration order.
func (r *PackagesConfigReader) Read(path string) ([]models.PackageReference, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read packages.config: %w", err)
	}

	var config packagesConfig
	if err := xml.Unmarshal(trimBOM(data), &config); err != nil {
		return nil, fmt.Errorf("failed to parse packages.config: %w", err)
	}

	refs := make([]models.PackageReference, 0, len(config.Packages))
	for _, p := range config.Packages {
		if strings.TrimSpace(p.ID) == "" {
			continue
		}
		refs = append(refs, models.PackageReference{
			ID:                      strings.TrimSpace(p.ID),
			Version:                 strings.TrimSpace(p.Version),
			TargetFramework:         strings.TrimSpace(p.TargetFramework),
			IsDevelopmentDependency: strings.EqualFold(p.DevelopmentDependency, "true"),
		})
	}

	return refs, nil
}
