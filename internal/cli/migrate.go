package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavidKarlas/CsprojToVs2017/internal/config"
	"github.com/DavidKarlas/CsprojToVs2017/internal/converter"
	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/report"
	"github.com/DavidKarlas/CsprojToVs2017/internal/tui/prompt"
)

// ErrUsage is returned when at least one target could not be used. The
// reason has already been logged.
var ErrUsage = errors.New("invalid conversion target")

// Prompter asks the user to narrow down and confirm a conversion.
type Prompter interface {
	SelectProjects(root string, files []string) ([]string, error)
	Confirm(message string) (bool, error)
}

type mode int

const (
	modeMigrate mode = iota
	modeEvaluate
	modeAnalyze
)

// MigrateCommand converts targets and, unless evaluating or analyzing,
// writes the results.
type MigrateCommand struct {
	fs       filesystem.FileSystem
	lookup   config.LookupFunc
	prompter Prompter
	mode     mode
}

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(fs filesystem.FileSystem, lookup config.LookupFunc, prompter Prompter) *cobra.Command {
	cmd := &MigrateCommand{fs: fs, lookup: lookup, prompter: prompter, mode: modeMigrate}

	return &cobra.Command{
		Use:   "migrate [targets...]",
		Short: "Convert projects to the SDK format in place",
		Long: `Converts legacy projects to the SDK format and writes them back.

A target is a solution file, a project file or a directory. A directory
holding exactly one solution is treated as that solution; otherwise every
project file below it is converted. Without targets the current directory
is used.`,
		Example: `  # Convert every project of a solution
  csproj-migrate migrate MyApp.sln

  # Pick projects interactively and retarget them
  csproj-migrate migrate -i --target-frameworks "net472;netstandard2.0" src`,
		RunE: cmd.Run,
	}
}

// Run executes the command.
func (c *MigrateCommand) Run(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, c.fs, c.lookup)
	if err != nil {
		return err
	}

	targets := args
	if len(targets) == 0 {
		targets = []string{"."}
	}

	writer := s.writer(c.mode == modeEvaluate)
	summary := &report.Summary{DryRun: c.mode == modeEvaluate || s.opts.DryRun}
	usageFailed := false
	writeFailures := 0

	for _, target := range targets {
		plan, err := s.converter.Resolve(target)
		if err != nil {
			s.converter.ReportUsage(err)
			usageFailed = true
			continue
		}

		proceed, err := c.choose(cmd, s, plan)
		if err != nil {
			return err
		}
		if !proceed {
			continue
		}

		for project := range plan.Projects() {
			diags := s.analyzer.Analyze(project)
			if c.mode == modeAnalyze {
				summary.Add(project, nil, diags)
				continue
			}

			result, err := writer.Write(project)
			if err != nil {
				s.logger.Error("Failed to write project.", "project", project.Name(), "error", err)
				writeFailures++
				continue
			}
			summary.Add(project, result, diags)
		}
	}

	if err := c.output(cmd, s, summary); err != nil {
		return err
	}

	if usageFailed {
		return ErrUsage
	}
	if writeFailures > 0 {
		return fmt.Errorf("failed to write %d project(s)", writeFailures)
	}
	return nil
}

// choose narrows plan down interactively. It reports false when the user
// declined to convert anything.
func (c *MigrateCommand) choose(cmd *cobra.Command, s *session, plan *converter.Plan) (bool, error) {
	if interactive, _ := boolFlag(cmd, interactiveFlag); !interactive {
		return true, nil
	}
	if c.prompter == nil {
		return false, errors.New("interactive mode is not available")
	}

	root := s.root(plan)
	if len(plan.Files) > 1 {
		selected, err := c.prompter.SelectProjects(root, plan.Files)
		if err != nil {
			return false, err
		}
		if len(selected) == 0 {
			return false, nil
		}
		plan.Files = selected
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt.RenderSelection(root, plan.Files))

	if c.mode != modeMigrate || s.opts.DryRun {
		return true, nil
	}
	if yes, _ := boolFlag(cmd, yesFlag); yes {
		return true, nil
	}
	return c.prompter.Confirm(fmt.Sprintf("Convert %d project(s) in place?", len(plan.Files)))
}

func (c *MigrateCommand) output(cmd *cobra.Command, s *session, summary *report.Summary) error {
	if c.mode == modeAnalyze {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), renderDiagnostics(summary))
		return nil
	}

	out, err := report.NewRenderer(s.fs).Render(s.opts.ReportTemplate, summary)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
