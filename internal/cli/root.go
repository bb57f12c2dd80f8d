package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DavidKarlas/CsprojToVs2017/internal/config"
	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/tui/prompt"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, lookup config.LookupFunc, prompter Prompter) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csproj-migrate [targets...]",
		Short: "Convert legacy .NET projects to the SDK format",
		Long: `A CLI tool for converting legacy .csproj, .vbproj and .fsproj files to
SDK-style projects.

Settings are read from CSPROJ_MIGRATE_* environment variables (and .env),
then from the nearest ` + config.FileName + `, then from flags.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `csproj-migrate migrate` when no subcommand is provided.
			return (&MigrateCommand{fs: fs, lookup: lookup, prompter: prompter, mode: modeMigrate}).Run(cmd, args)
		},
	}

	addConversionFlags(rootCmd)

	rootCmd.AddCommand(NewMigrateCommand(fs, lookup, prompter))
	rootCmd.AddCommand(NewEvaluateCommand(fs, lookup, prompter))
	rootCmd.AddCommand(NewAnalyzeCommand(fs, lookup, prompter))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs, os.LookupEnv, prompt.NewFlow())

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
