package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/transforms"
	"github.com/DavidKarlas/CsprojToVs2017/internal/workspace"
)

// FileName is the configuration file looked up from the working directory
// upwards when none is given explicitly.
const FileName = "csproj-migrate.hcl"

type hclFile struct {
	Options *hclOptions `hcl:"options,block"`
	Rules   []*hclRule  `hcl:"rule,block"`
}

type hclOptions struct {
	TargetFrameworks      []string `hcl:"target_frameworks,optional"`
	AppendTargetFramework *bool    `hcl:"append_target_framework,optional"`
	KeepAssemblyInfo      *bool    `hcl:"keep_assembly_info,optional"`
	Backup                *bool    `hcl:"backup,optional"`
	DryRun                *bool    `hcl:"dry_run,optional"`
	GitIgnore             *bool    `hcl:"gitignore,optional"`
	ReportTemplate        *string  `hcl:"report_template,optional"`
	LogLevel              *string  `hcl:"log_level,optional"`
	LogFormat             *string  `hcl:"log_format,optional"`
}

type hclRule struct {
	ID         string            `hcl:"id,label"`
	Name       *string           `hcl:"name,optional"`
	Path       *string           `hcl:"path,optional"`
	Properties map[string]string `hcl:"properties,optional"`
	ItemType   string            `hcl:"item_type"`
	BasePath   string            `hcl:"base_path"`
}

// File is a decoded configuration file.
type File struct {
	Path    string
	options *hclOptions
	Rules   transforms.RuleTable
}

// LoadFile parses and decodes the HCL configuration at path.
func LoadFile(fs filesystem.FileSystem, path string) (*File, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	hclF, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(hclF.Body, evalContext(path), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	rules := make(transforms.RuleTable, 0, len(parsed.Rules))
	for _, r := range parsed.Rules {
		rule, err := r.toRule()
		if err != nil {
			return nil, fmt.Errorf("invalid rule in %s: %w", path, err)
		}
		rules = append(rules, rule)
	}

	return &File{Path: path, options: parsed.Options, Rules: rules}, nil
}

// evalContext exposes config_dir and a few string functions to
// expressions in the file at path.
func evalContext(path string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(filepath.ToSlash(filepath.Dir(path))),
		},
		Functions: map[string]function.Function{
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"split":  stdlib.SplitFunc,
			"join":   stdlib.JoinFunc,
			"concat": stdlib.ConcatFunc,
		},
	}
}

func (r *hclRule) toRule() (transforms.Rule, error) {
	var predicates []transforms.Predicate
	if r.Name != nil {
		p, err := transforms.NameIs(*r.Name)
		if err != nil {
			return transforms.Rule{}, fmt.Errorf("rule %q: %w", r.ID, err)
		}
		predicates = append(predicates, p)
	}
	if r.Path != nil {
		p, err := transforms.PathGlob(*r.Path)
		if err != nil {
			return transforms.Rule{}, fmt.Errorf("rule %q: %w", r.ID, err)
		}
		predicates = append(predicates, p)
	}
	for _, name := range slices.Sorted(maps.Keys(r.Properties)) {
		predicates = append(predicates, transforms.PropertyEquals(name, r.Properties[name]))
	}

	if len(predicates) == 0 {
		return transforms.Rule{}, fmt.Errorf("rule %q has no name, path or properties to match on", r.ID)
	}
	if r.ItemType == "" || r.BasePath == "" {
		return transforms.Rule{}, fmt.Errorf("rule %q needs item_type and base_path", r.ID)
	}

	return transforms.Rule{
		Name:     r.ID,
		Match:    transforms.All(predicates...),
		ItemType: r.ItemType,
		BasePath: r.BasePath,
	}, nil
}

// Apply overlays the file's options block onto o.
func (f *File) Apply(o Options) Options {
	opts := f.options
	if opts == nil {
		return o
	}
	if len(opts.TargetFrameworks) > 0 {
		o.TargetFrameworks = append([]string(nil), opts.TargetFrameworks...)
	}
	setBool(&o.AppendTargetFrameworkToOutputPath, opts.AppendTargetFramework)
	setBool(&o.KeepAssemblyInfo, opts.KeepAssemblyInfo)
	setBool(&o.MakeBackups, opts.Backup)
	setBool(&o.DryRun, opts.DryRun)
	setBool(&o.RespectGitIgnore, opts.GitIgnore)
	if opts.ReportTemplate != nil {
		o.ReportTemplate = f.resolve(*opts.ReportTemplate)
	}
	setString(&o.LogLevel, opts.LogLevel)
	setString(&o.LogFormat, opts.LogFormat)
	return o
}

// resolve makes a path from the file relative to the file's directory.
func (f *File) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(f.Path), path)
}

// Discover finds the configuration file for a run. An explicit path wins;
// otherwise FileName is searched from startDir upwards. It returns "" when
// there is none.
func Discover(fs filesystem.FileSystem, explicit, startDir string) string {
	if explicit != "" {
		return explicit
	}
	if path, ok := workspace.FindFileUp(fs, startDir, FileName); ok {
		return path
	}
	return ""
}

func setBool(target *bool, v *bool) {
	if v != nil {
		*target = *v
	}
}

func setString(target *string, v *string) {
	if v != nil && *v != "" {
		*target = *v
	}
}
