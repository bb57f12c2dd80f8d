package transforms

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// Predicate selects projects by identity.
type Predicate interface {
	Matches(project *models.Project) bool
}

// PredicateFunc adapts a function to Predicate.
type PredicateFunc func(project *models.Project) bool

func (f PredicateFunc) Matches(project *models.Project) bool {
	return f(project)
}

// NameIs matches the project file name, e.g. "Data.csproj". The pattern may
// be a glob such as "*.Tests.csproj". Matching ignores case.
func NameIs(pattern string) (Predicate, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid name pattern %q", pattern)
	}
	return PredicateFunc(func(project *models.Project) bool {
		ok, _ := doublestar.Match(pattern, strings.ToLower(project.FileName()))
		return ok
	}), nil
}

// PathGlob matches the project's full path, written with forward slashes,
// against a doublestar pattern such as "**/tests/**/*.Tests.csproj".
// Matching ignores case and any leading slash.
func PathGlob(pattern string) (Predicate, error) {
	pattern = strings.TrimPrefix(strings.ToLower(filepath.ToSlash(pattern)), "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid path pattern %q", pattern)
	}
	return PredicateFunc(func(project *models.Project) bool {
		ok, _ := doublestar.Match(pattern, slashPath(project.FilePath))
		return ok
	}), nil
}

// PropertyEquals matches projects whose unconditional property name has the
// given value.
func PropertyEquals(name, value string) Predicate {
	return PredicateFunc(func(project *models.Project) bool {
		return project.Property(name) == value
	})
}

// All matches when every predicate matches. With no predicates it matches
// nothing, so an empty rule never fires.
func All(predicates ...Predicate) Predicate {
	return PredicateFunc(func(project *models.Project) bool {
		if len(predicates) == 0 {
			return false
		}
		for _, p := range predicates {
			if !p.Matches(project) {
				return false
			}
		}
		return true
	})
}

func slashPath(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	if len(p) > 1 && p[1] == ':' {
		p = p[2:]
	}
	return strings.TrimPrefix(strings.ToLower(p), "/")
}

// Rule collapses one item type of the matching projects into a single
// recursive wildcard below BasePath.
type Rule struct {
	Name     string
	Match    Predicate
	ItemType string
	BasePath string
}

// RuleTable is an ordered list of rules. Every matching rule applies.
type RuleTable []Rule

// Matching returns the rules that apply to project, in table order.
func (t RuleTable) Matching(project *models.Project) []Rule {
	var out []Rule
	for _, rule := range t {
		if rule.Match != nil && rule.Match.Matches(project) {
			out = append(out, rule)
		}
	}
	return out
}
