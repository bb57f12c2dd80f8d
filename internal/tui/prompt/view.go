package prompt

import (
	"fmt"
	"path/filepath"
	"strings"

	huh "github.com/charmbracelet/huh"

	"github.com/DavidKarlas/CsprojToVs2017/internal/tui"
)

// Label shows file relative to root when it lies below it.
func Label(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return filepath.ToSlash(rel)
}

// Options builds one preselected option per file.
func Options(root string, files []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(files))
	for _, file := range files {
		opts = append(opts, huh.NewOption(Label(root, file), file).Selected(true))
	}
	return opts
}

// RenderSelection summarizes what the user picked.
func RenderSelection(root string, selected []string) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(fmt.Sprintf("Converting %d project(s):", len(selected))))
	b.WriteString("\n")
	for i, file := range selected {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, Label(root, file)))
	}

	return b.String()
}
