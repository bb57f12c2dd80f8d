package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DavidKarlas/CsprojToVs2017/internal/analysis"
	"github.com/DavidKarlas/CsprojToVs2017/internal/config"
	"github.com/DavidKarlas/CsprojToVs2017/internal/converter"
	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	"github.com/DavidKarlas/CsprojToVs2017/internal/reading"
	"github.com/DavidKarlas/CsprojToVs2017/internal/transforms"
	"github.com/DavidKarlas/CsprojToVs2017/internal/writing"
)

// session holds everything one command invocation needs, built from the
// resolved configuration.
type session struct {
	fs        filesystem.FileSystem
	wd        string
	opts      config.Options
	logger    *slog.Logger
	converter *converter.Converter
	analyzer  *analysis.Analyzer
}

func newSession(cmd *cobra.Command, fs filesystem.FileSystem, lookup config.LookupFunc) (*session, error) {
	wd, err := fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	explicit, _ := stringFlag(cmd, configFlag)
	if explicit != "" {
		explicit = absPath(wd, explicit)
	}
	opts, rules, err := config.Resolve(fs, lookup, wd, explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	opts = applyFlags(cmd, opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.RulesFile != "" {
		extra, err := config.LoadRules(fs, absPath(wd, opts.RulesFile))
		if err != nil {
			return nil, err
		}
		rules = append(rules, extra...)
	}
	if opts.ReportTemplate != "" {
		opts.ReportTemplate = absPath(wd, opts.ReportTemplate)
	}

	logger := logging.New(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr())
	extensions := models.DefaultExtensions()
	pipeline := transforms.NewPipeline(transforms.DefaultTransformations(opts.Transforms(), rules))

	conv := converter.NewConverter(fs,
		reading.NewProjectReader(fs, logger),
		reading.NewSolutionReader(fs, extensions, logger),
		pipeline, extensions, logger,
		converter.WithGitIgnore(opts.RespectGitIgnore))

	return &session{
		fs:        fs,
		wd:        wd,
		opts:      opts,
		logger:    logger,
		converter: conv,
		analyzer:  analysis.NewAnalyzer(fs, logger),
	}, nil
}

func (s *session) writer(dryRun bool) *writing.ProjectWriter {
	return writing.NewProjectWriter(s.fs, s.logger,
		writing.WithBackups(s.opts.MakeBackups),
		writing.WithDryRun(dryRun || s.opts.DryRun))
}

// root returns the directory project labels are shown relative to.
func (s *session) root(plan *converter.Plan) string {
	if s.fs.IsDir(plan.Target) {
		return plan.Target
	}
	return filepath.Dir(plan.Target)
}

func absPath(wd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(wd, path)
}
