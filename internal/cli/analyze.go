package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DavidKarlas/CsprojToVs2017/internal/config"
	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/report"
	"github.com/DavidKarlas/CsprojToVs2017/internal/tui"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(fs filesystem.FileSystem, lookup config.LookupFunc, prompter Prompter) *cobra.Command {
	cmd := &MigrateCommand{fs: fs, lookup: lookup, prompter: prompter, mode: modeAnalyze}

	return &cobra.Command{
		Use:   "analyze [targets...]",
		Short: "Report problems the conversion cannot fix",
		Long: `Converts in memory and lists missing project references, unresolved
assembly hint paths, projects without a target framework and leftover
packages.config files.`,
		RunE: cmd.Run,
	}
}

func renderDiagnostics(summary *report.Summary) string {
	var b strings.Builder

	for _, project := range summary.Projects {
		for _, d := range project.Diagnostics {
			b.WriteString(tui.WarningStyle.Render(d.String()))
			b.WriteString("\n")
		}
	}

	count := summary.DiagnosticCount()
	if count == 0 {
		b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("✓ No problems found in %d project(s)", len(summary.Projects))))
	} else {
		b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("%d problem(s) in %d project(s)", count, len(summary.Projects))))
	}
	b.WriteString("\n")

	return b.String()
}
