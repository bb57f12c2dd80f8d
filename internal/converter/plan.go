package converter

import (
	"iter"

	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
)

// Plan is a resolved conversion target: the project files to convert, in
// order, and the solution they came from, if any.
type Plan struct {
	Target   string
	Solution *models.Solution
	Files    []string

	converter *Converter
}

// Projects reads and transforms each planned file as the caller asks for
// it. Missing and unreadable files are left out.
func (p *Plan) Projects() iter.Seq[*models.Project] {
	return func(yield func(*models.Project) bool) {
		for _, file := range p.Files {
			if p.Solution != nil {
				p.converter.logger.Info("Project found", "path", file, "solution", p.Solution.Name())
			}
			project := p.converter.process(file, p.Solution)
			if project == nil {
				continue
			}
			if !yield(project) {
				return
			}
		}
	}
}
