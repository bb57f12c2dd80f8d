package config

import (
	"fmt"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/transforms"
)

// Resolve builds the options and rule table for a run rooted at startDir
// from defaults, the environment and the configuration file. explicitConfig
// (from a flag) wins over CSPROJ_MIGRATE_CONFIG and over discovery.
// Callers apply command-line flags on top of the result.
func Resolve(fs filesystem.FileSystem, lookup LookupFunc, startDir, explicitConfig string) (Options, transforms.RuleTable, error) {
	opts, err := ApplyEnv(Defaults(), lookup)
	if err != nil {
		return opts, nil, err
	}
	if explicitConfig != "" {
		opts.ConfigFile = explicitConfig
	}

	var rules transforms.RuleTable
	if path := Discover(fs, opts.ConfigFile, startDir); path != "" {
		file, err := LoadFile(fs, path)
		if err != nil {
			return opts, nil, err
		}
		opts = file.Apply(opts)
		opts.ConfigFile = path
		rules = append(rules, file.Rules...)
	}

	return opts, rules, nil
}

// LoadRules reads the rule blocks of an HCL file. Any options block in it
// is ignored.
func LoadRules(fs filesystem.FileSystem, path string) (transforms.RuleTable, error) {
	file, err := LoadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return file.Rules, nil
}
