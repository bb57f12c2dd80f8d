package transforms

import (
	"context"

	"github.com/DavidKarlas/CsprojToVs2017/internal/logging"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// Pipeline runs three phases of stages over a project: caller-supplied
// pre-default stages, the built-in default stages, then caller-supplied
// post-default stages. Each phase runs strictly in list order.
type Pipeline struct {
	Pre     []Transformation
	Default []Transformation
	Post    []Transformation
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPreDefault appends stages that run before the default set.
func WithPreDefault(stages ...Transformation) PipelineOption {
	return func(p *Pipeline) {
		p.Pre = append(p.Pre, stages...)
	}
}

// WithPostDefault appends stages that run after the default set.
func WithPostDefault(stages ...Transformation) PipelineOption {
	return func(p *Pipeline) {
		p.Post = append(p.Post, stages...)
	}
}

// NewPipeline creates a pipeline around the given default stages.
func NewPipeline(defaults []Transformation, options ...PipelineOption) *Pipeline {
	p := &Pipeline{Default: defaults}
	for _, option := range options {
		option(p)
	}
	return p
}

// Stages returns every stage in execution order.
func (p *Pipeline) Stages() []Transformation {
	stages := make([]Transformation, 0, len(p.Pre)+len(p.Default)+len(p.Post))
	stages = append(stages, p.Pre...)
	stages = append(stages, p.Default...)
	return append(stages, p.Post...)
}

// Run applies every stage to project in order.
func (p *Pipeline) Run(ctx context.Context, project *models.Project) {
	logger := logging.FromContext(ctx)
	for _, stage := range p.Stages() {
		logger.Debug("Applying transformation.", "stage", Name(stage), "project", project.Name())
		stage.Transform(ctx, project)
	}
}
