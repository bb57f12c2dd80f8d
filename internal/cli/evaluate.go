package cli

import (
	"github.com/spf13/cobra"

	"github.com/DavidKarlas/CsprojToVs2017/internal/config"
	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
)

// NewEvaluateCommand creates the evaluate command, a migrate that never
// writes.
func NewEvaluateCommand(fs filesystem.FileSystem, lookup config.LookupFunc, prompter Prompter) *cobra.Command {
	cmd := &MigrateCommand{fs: fs, lookup: lookup, prompter: prompter, mode: modeEvaluate}

	return &cobra.Command{
		Use:   "evaluate [targets...]",
		Short: "Show what a conversion would do without writing",
		Long: `Runs the full conversion and prints the summary, but leaves every file
untouched. Useful before migrating a large solution.`,
		RunE: cmd.Run,
	}
}
