package writing

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

const indentUnit = "  "

// Render produces the SDK-style project document for project. Output
// depends only on the model, so rendering the same project twice gives the
// same bytes.
func Render(project *models.Project) []byte {
	var buf bytes.Buffer

	root := models.NewElement("Project").SetAttr("Sdk", project.ProjectSdk)
	writeOpen(&buf, root, false)
	buf.WriteString("\n")

	sections := [][]*models.Element{
		project.PropertyGroups,
		project.ItemGroups,
		project.Imports,
		project.Targets,
		project.OtherElements,
	}

	first := true
	for _, section := range sections {
		for _, el := range section {
			if !first {
				buf.WriteString("\n")
			}
			first = false
			writeElement(&buf, el, 1)
		}
	}

	buf.WriteString("</Project>\n")
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, el *models.Element, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	buf.WriteString(indent)

	switch {
	case len(el.Children) > 0:
		writeOpen(buf, el, false)
		buf.WriteString("\n")
		for _, child := range el.Children {
			writeElement(buf, child, depth+1)
		}
		buf.WriteString(indent)
		writeClose(buf, el)
	case el.Value() != "":
		writeOpen(buf, el, false)
		escape(buf, el.Value())
		writeClose(buf, el)
	default:
		writeOpen(buf, el, true)
	}
	buf.WriteString("\n")
}

func writeOpen(buf *bytes.Buffer, el *models.Element, selfClose bool) {
	buf.WriteString("<")
	buf.WriteString(el.Name)
	for _, a := range el.Attrs {
		buf.WriteString(" ")
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		escape(buf, a.Value)
		buf.WriteString(`"`)
	}
	if selfClose {
		buf.WriteString(" />")
		return
	}
	buf.WriteString(">")
}

func writeClose(buf *bytes.Buffer, el *models.Element) {
	buf.WriteString("</")
	buf.WriteString(el.Name)
	buf.WriteString(">")
}

// escape writes s with XML special characters replaced. MSBuild conditions
// use single quotes, which stay readable.
func escape(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	_ = xml.EscapeText(&tmp, []byte(s))
	buf.WriteString(strings.ReplaceAll(tmp.String(), "&#39;", "'"))
}
