package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	"github.com/DavidKarlas/CsprojToVs2017/internal/workspace"
)

const sampleConfig = `
options {
  target_frameworks = ["net48"]
  keep_assembly_info = true
  backup = false
  report_template = "report.tmpl"
  log_level = "debug"
}

rule "data-resources" {
  name      = "Data.csproj"
  item_type = "EmbeddedResource"
  base_path = "Resources"
}

rule "fixtures" {
  path       = "**/tests/**/*.Tests.csproj"
  properties = { OutputType = "Library" }
  item_type  = "None"
  base_path  = "TestSamples"
}
`

func envMap(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	opts, err := ApplyEnv(Defaults(), envMap(map[string]string{
		"CSPROJ_MIGRATE_TARGET_FRAMEWORKS": "net472; netstandard2.0",
		"CSPROJ_MIGRATE_NO_BACKUP":         "true",
		"CSPROJ_MIGRATE_DRY_RUN":           "1",
		"CSPROJ_MIGRATE_LOG_FORMAT":        "json",
		"UNRELATED":                        "x",
	}))
	require.NoError(t, err)

	require.Equal(t, []string{"net472", "netstandard2.0"}, opts.TargetFrameworks)
	require.False(t, opts.MakeBackups)
	require.True(t, opts.DryRun)
	require.True(t, opts.AppendTargetFrameworkToOutputPath)
	require.Equal(t, "json", opts.LogFormat)
	require.Equal(t, "info", opts.LogLevel)
	require.NoError(t, opts.Validate())

	_, err = ApplyEnv(Defaults(), envMap(map[string]string{"CSPROJ_MIGRATE_DRY_RUN": "maybe"}))
	require.Error(t, err)
}

func TestLoadFile_DecodesOptionsAndRules(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddFile("csproj-migrate.hcl", sampleConfig).
		Build()

	file, err := LoadFile(fs, "/repo/csproj-migrate.hcl")
	require.NoError(t, err)

	opts := file.Apply(Defaults())
	require.Equal(t, []string{"net48"}, opts.TargetFrameworks)
	require.True(t, opts.KeepAssemblyInfo)
	require.False(t, opts.MakeBackups)
	require.True(t, opts.AppendTargetFrameworkToOutputPath)
	require.Equal(t, "/repo/report.tmpl", opts.ReportTemplate)
	require.Equal(t, "debug", opts.LogLevel)

	require.Len(t, file.Rules, 2)
	require.Equal(t, "data-resources", file.Rules[0].Name)
	require.Equal(t, "EmbeddedResource", file.Rules[0].ItemType)

	data := models.NewProject("/repo/src/Data/Data.csproj")
	require.Equal(t, []string{"data-resources"}, ruleNames(file, data))

	fixtures := models.NewProject("/repo/tests/Unit/Core.Tests.csproj")
	fixtures.PropertyGroups = []*models.Element{
		models.NewElement("PropertyGroup").Add(models.NewTextElement("OutputType", "Library")),
	}
	require.Equal(t, []string{"fixtures"}, ruleNames(file, fixtures))

	exe := models.NewProject("/repo/tests/Unit/Runner.Tests.csproj")
	exe.PropertyGroups = []*models.Element{
		models.NewElement("PropertyGroup").Add(models.NewTextElement("OutputType", "Exe")),
	}
	require.Empty(t, ruleNames(file, exe))
}

func TestLoadFile_EvaluatesFunctionsAndConfigDir(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddFile("build/csproj-migrate.hcl", `options {
  target_frameworks = concat(split(";", lower("NET472;NETSTANDARD2.0")), split(",", "net48"))
  report_template   = "${config_dir}/templates/report.tmpl"
  log_format        = join("", ["js", "on"])
}
`).
		Build()

	file, err := LoadFile(fs, "/repo/build/csproj-migrate.hcl")
	require.NoError(t, err)

	opts := file.Apply(Defaults())
	require.Equal(t, []string{"net472", "netstandard2.0", "net48"}, opts.TargetFrameworks)
	require.Equal(t, "/repo/build/templates/report.tmpl", opts.ReportTemplate)
	require.Equal(t, "json", opts.LogFormat)
}

func ruleNames(file *File, project *models.Project) []string {
	var names []string
	for _, rule := range file.Rules.Matching(project) {
		names = append(names, rule.Name)
	}
	return names
}

func TestLoadFile_RejectsBadRules(t *testing.T) {
	cases := map[string]string{
		"no matcher": `rule "x" {
  item_type = "None"
  base_path = "A"
}`,
		"bad glob": `rule "x" {
  path      = "["
  item_type = "None"
  base_path = "A"
}`,
		"missing type": `rule "x" {
  name      = "A.csproj"
  base_path = "A"
}`,
		"syntax": `rule "x" {`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			fs := workspace.NewWorkspaceBuilder("/repo").AddFile("bad.hcl", content).Build()
			_, err := LoadFile(fs, "/repo/bad.hcl")
			require.Error(t, err)
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder("/repo").
		AddFile("csproj-migrate.hcl", sampleConfig).
		AddFile("other.hcl", `options { log_level = "warn" }`).
		AddDir("src/App").
		Build()

	env := envMap(map[string]string{
		"CSPROJ_MIGRATE_LOG_LEVEL":         "error",
		"CSPROJ_MIGRATE_KEEP_ASSEMBLY_INFO": "false",
	})

	opts, rules, err := Resolve(fs, env, "/repo/src/App", "")
	require.NoError(t, err)
	require.Equal(t, "/repo/csproj-migrate.hcl", opts.ConfigFile)
	require.Equal(t, "debug", opts.LogLevel, "file overrides environment")
	require.True(t, opts.KeepAssemblyInfo)
	require.Len(t, rules, 2)

	opts, rules, err = Resolve(fs, env, "/repo/src/App", "/repo/other.hcl")
	require.NoError(t, err)
	require.Equal(t, "warn", opts.LogLevel)
	require.Empty(t, rules)

	opts, rules, err = Resolve(fs, env, "/elsewhere", "")
	require.NoError(t, err)
	require.Equal(t, "", opts.ConfigFile)
	require.Equal(t, "error", opts.LogLevel)
	require.Empty(t, rules)
}

func TestSplitFrameworks(t *testing.T) {
	require.Equal(t, []string{"net472", "net48"}, SplitFrameworks(" net472 ,;net48;"))
	require.Empty(t, SplitFrameworks(""))
}
