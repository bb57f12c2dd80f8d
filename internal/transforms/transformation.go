// Package transforms holds the project transformation stages and the
// pipeline that runs them.
//
// A stage mutates one concern of a project in place. Stages are built once,
// keep only read-only construction parameters, and are reused sequentially
// for every project of a run. A stage that finds nothing to do must leave
// the project untouched.
package transforms

import (
	"context"
	"fmt"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// Transformation is one isolated rewrite of a project.
type Transformation interface {
	Transform(ctx context.Context, project *models.Project)
}

// TransformationFunc adapts a function to Transformation.
type TransformationFunc func(ctx context.Context, project *models.Project)

func (f TransformationFunc) Transform(ctx context.Context, project *models.Project) {
	f(ctx, project)
}

// Options parameterize the default stages.
type Options struct {
	// TargetFrameworks overrides the frameworks inferred from each project.
	TargetFrameworks []string

	AppendTargetFrameworkToOutputPath bool

	// KeepAssemblyInfo keeps AssemblyInfo source files and disables
	// generated assembly attributes instead of moving them into properties.
	KeepAssemblyInfo bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{AppendTargetFrameworkToOutputPath: true}
}

// DefaultTransformations returns the built-in stages in their required
// order. Later stages rely on earlier ones: deduplication expects target
// framework properties to be canonical, package synthesis expects package
// assembly references to be gone, and so on. Do not reorder.
func DefaultTransformations(opts Options, rules RuleTable) []Transformation {
	return []Transformation{
		NewTargetFrameworkTransformation(opts.TargetFrameworks, opts.AppendTargetFrameworkToOutputPath),
		&PropertySimplificationTransformation{},
		&PropertyDeduplicationTransformation{},
		&TestProjectPackageReferenceTransformation{},
		&AssemblyReferenceTransformation{},
		&RemovePackageAssemblyReferencesTransformation{},
		&DefaultAssemblyReferenceRemovalTransformation{},
		&RemovePackageImportsTransformation{},
		&FileTransformation{},
		&NugetPackageTransformation{},
		NewAssemblyAttributeTransformation(opts.KeepAssemblyInfo),
		NewRuleScopedItemCollapseTransformation(rules),
		&PrimaryUnconditionalPropertyTransformation{},
	}
}

// Name returns a short display name for a stage, e.g. "FileTransformation".
func Name(t Transformation) string {
	if named, ok := t.(interface{ Name() string }); ok {
		return named.Name()
	}
	name := fmt.Sprintf("%T", t)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
