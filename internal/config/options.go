// Package config resolves conversion options from defaults, the
// environment, an HCL configuration file and command-line flags, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/transforms"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "CSPROJ_MIGRATE_"

// Options are the resolved settings of one run.
type Options struct {
	TargetFrameworks                  []string
	AppendTargetFrameworkToOutputPath bool
	KeepAssemblyInfo                  bool
	MakeBackups                       bool
	DryRun                            bool
	RespectGitIgnore                  bool

	ConfigFile     string
	RulesFile      string
	ReportTemplate string

	LogLevel  string
	LogFormat string
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		AppendTargetFrameworkToOutputPath: true,
		MakeBackups:                       true,
		RespectGitIgnore:                  true,
		LogLevel:                          "info",
		LogFormat:                         "text",
	}
}

// Transforms returns the subset of options the default stages need.
func (o Options) Transforms() transforms.Options {
	return transforms.Options{
		TargetFrameworks:                  append([]string(nil), o.TargetFrameworks...),
		AppendTargetFrameworkToOutputPath: o.AppendTargetFrameworkToOutputPath,
		KeepAssemblyInfo:                  o.KeepAssemblyInfo,
	}
}

// Validate checks values that cannot be fixed up silently.
func (o Options) Validate() error {
	if !logging.ValidLevel(o.LogLevel) {
		return fmt.Errorf("invalid log level %q", o.LogLevel)
	}
	switch strings.ToLower(o.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", o.LogFormat)
	}
	return nil
}

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays CSPROJ_MIGRATE_* variables onto o.
func ApplyEnv(o Options, lookup LookupFunc) (Options, error) {
	str := func(name string, target *string) {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			*target = strings.TrimSpace(v)
		}
	}
	boolean := func(name string, target *bool, invert bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("failed to parse %s%s: %w", EnvPrefix, name, err)
		}
		*target = b != invert
		return nil
	}

	if v, ok := lookup(EnvPrefix + "TARGET_FRAMEWORKS"); ok {
		if frameworks := SplitFrameworks(v); len(frameworks) > 0 {
			o.TargetFrameworks = frameworks
		}
	}
	for _, b := range []struct {
		name   string
		target *bool
		invert bool
	}{
		{"APPEND_TARGET_FRAMEWORK", &o.AppendTargetFrameworkToOutputPath, false},
		{"KEEP_ASSEMBLY_INFO", &o.KeepAssemblyInfo, false},
		{"NO_BACKUP", &o.MakeBackups, true},
		{"DRY_RUN", &o.DryRun, false},
		{"NO_GITIGNORE", &o.RespectGitIgnore, true},
	} {
		if err := boolean(b.name, b.target, b.invert); err != nil {
			return o, err
		}
	}
	str("CONFIG", &o.ConfigFile)
	str("RULES", &o.RulesFile)
	str("REPORT_TEMPLATE", &o.ReportTemplate)
	str("LOG_LEVEL", &o.LogLevel)
	str("LOG_FORMAT", &o.LogFormat)

	return o, nil
}

// SplitFrameworks splits a framework list separated by commas or
// semicolons, dropping blanks.
func SplitFrameworks(v string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ';' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
