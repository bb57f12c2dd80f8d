package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DavidKarlas/CsprojToVs2017/internal/config"
)

const (
	targetFrameworksFlag      = "target-frameworks"
	appendTargetFrameworkFlag = "append-target-framework"
	keepAssemblyInfoFlag      = "keep-assembly-info"
	noBackupFlag              = "no-backup"
	dryRunFlag                = "dry-run"
	noGitIgnoreFlag           = "no-gitignore"
	rulesFlag                 = "rules"
	configFlag                = "config"
	logLevelFlag              = "log-level"
	logFormatFlag             = "log-format"
	reportTemplateFlag        = "report-template"
	interactiveFlag           = "interactive"
	yesFlag                   = "yes"
)

func addConversionFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(targetFrameworksFlag, "", "Target frameworks to use instead of the declared ones, separated by ';' or ','")
	flags.Bool(appendTargetFrameworkFlag, true, "Append the target framework to the output path")
	flags.Bool(keepAssemblyInfoFlag, false, "Keep AssemblyInfo files instead of moving attributes into the project")
	flags.Bool(noBackupFlag, false, "Do not back up files before changing them")
	flags.Bool(dryRunFlag, false, "Convert without writing anything")
	flags.Bool(noGitIgnoreFlag, false, "Also search paths ignored by .gitignore when a directory is given")
	flags.String(rulesFlag, "", "HCL file with additional item collapse rules")
	flags.String(configFlag, "", "Configuration file (default: nearest "+config.FileName+")")
	flags.String(logLevelFlag, "", "Log level: debug, info, warn, error or critical")
	flags.String(logFormatFlag, "", "Log format: text or json")
	flags.String(reportTemplateFlag, "", "Go template used to render the summary")
	flags.BoolP(interactiveFlag, "i", false, "Choose the projects to convert interactively")
	flags.BoolP(yesFlag, "y", false, "Do not ask for confirmation in interactive mode")
}

// boolFlag returns the value of a boolean flag and whether it was set on
// the command line.
func boolFlag(cmd *cobra.Command, name string) (bool, bool) {
	if cmd == nil {
		return false, false
	}

	flag := cmd.Flag(name)
	if flag == nil {
		return false, false
	}

	enabled, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		return false, false
	}

	return enabled, flag.Changed
}

// stringFlag returns the value of a string flag if it was set on the
// command line.
func stringFlag(cmd *cobra.Command, name string) (string, bool) {
	if cmd == nil {
		return "", false
	}

	flag := cmd.Flag(name)
	if flag == nil || !flag.Changed {
		return "", false
	}

	return flag.Value.String(), true
}

// applyFlags overlays the flags set on the command line onto opts.
func applyFlags(cmd *cobra.Command, opts config.Options) config.Options {
	if v, ok := stringFlag(cmd, targetFrameworksFlag); ok {
		opts.TargetFrameworks = config.SplitFrameworks(v)
	}
	if v, ok := boolFlag(cmd, appendTargetFrameworkFlag); ok {
		opts.AppendTargetFrameworkToOutputPath = v
	}
	if v, ok := boolFlag(cmd, keepAssemblyInfoFlag); ok {
		opts.KeepAssemblyInfo = v
	}
	if v, ok := boolFlag(cmd, noBackupFlag); ok {
		opts.MakeBackups = !v
	}
	if v, ok := boolFlag(cmd, dryRunFlag); ok {
		opts.DryRun = v
	}
	if v, ok := boolFlag(cmd, noGitIgnoreFlag); ok {
		opts.RespectGitIgnore = !v
	}
	if v, ok := stringFlag(cmd, rulesFlag); ok {
		opts.RulesFile = v
	}
	if v, ok := stringFlag(cmd, logLevelFlag); ok {
		opts.LogLevel = v
	}
	if v, ok := stringFlag(cmd, logFormatFlag); ok {
		opts.LogFormat = v
	}
	if v, ok := stringFlag(cmd, reportTemplateFlag); ok {
		opts.ReportTemplate = v
	}
	return opts
}
