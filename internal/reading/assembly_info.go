package reading

import (
	"regexp"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// Matches C# [assembly: X("...")], VB <Assembly: X("...")> and
// F# [<assembly: X("...")>] forms.
var assemblyAttributeRegex = regexp.MustCompile(`(?i)[\[<]<?\s*assembly\s*:\s*(?:System\.Reflection\.)?(\w+?)(?:Attribute)?\s*\(\s*@?"((?:[^"\\]|\\.)*)"\s*\)`)

// ParseAssemblyAttributes extracts string-valued assembly attributes from an
// AssemblyInfo source file. Commented-out lines are ignored.
func ParseAssemblyAttributes(source string) *models.AssemblyAttributes {
	attrs := &models.AssemblyAttributes{}

	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "'") {
			continue
		}

		for _, m := range assemblyAttributeRegex.FindAllStringSubmatch(trimmed, -1) {
			value := m[2]
			switch strings.ToLower(m[1]) {
			case "assemblytitle":
				attrs.Title = value
			case "assemblydescription":
				attrs.Description = value
			case "assemblycompany":
				attrs.Company = value
			case "assemblyproduct":
				attrs.Product = value
			case "assemblycopyright":
				attrs.Copyright = value
			case "assemblytrademark":
				attrs.Trademark = value
			case "assemblyconfiguration":
				attrs.Configuration = value
			case "assemblyculture":
				attrs.Culture = value
			case "assemblyversion":
				attrs.Version = value
			case "assemblyfileversion":
				attrs.FileVersion = value
			case "assemblyinformationalversion":
				attrs.InformationalVersion = value
			case "guid":
			default:
				attrs.Unmapped = append(attrs.Unmapped, m[1])
			}
		}
	}

	return attrs
}
