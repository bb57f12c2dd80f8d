package models

// PackageReference is a NuGet package dependency.
type PackageReference struct {
	ID                      string
	Version                 string
	TargetFramework         string
	IsDevelopmentDependency bool
}

// AssemblyAttributes holds the assembly-level attributes declared in a
// legacy AssemblyInfo source file.
type AssemblyAttributes struct {
	Title                string
	Description          string
	Company              string
	Product              string
	Copyright            string
	Trademark            string
	Configuration        string
	Culture              string
	Version              string
	FileVersion          string
	InformationalVersion string

	// Unmapped names attributes with no SDK property equivalent, such as
	// InternalsVisibleTo. Their presence keeps the source file alive.
	Unmapped []string
}

// IsEmpty reports whether no attribute was found.
func (a *AssemblyAttributes) IsEmpty() bool {
	if a == nil {
		return true
	}
	return a.Title == "" && a.Description == "" && a.Company == "" &&
		a.Product == "" && a.Copyright == "" && a.Trademark == "" &&
		a.Configuration == "" && a.Culture == "" && a.Version == "" &&
		a.FileVersion == "" && a.InformationalVersion == "" && len(a.Unmapped) == 0
}
