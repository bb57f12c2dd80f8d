package report

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
)

const defaultTemplate = `{{- if .DryRun }}Dry run: no files were changed.
{{ end -}}
Converted {{ len .Projects }} {{ ternary "project" "projects" (eq (len .Projects) 1) }}.
{{- range .Projects }}

{{ .Name }} ({{ .Language | upper }}) {{ default "no target framework" (join ";" .TargetFrameworks) }}
  packages: {{ .Packages }}
{{- with .Solution }}
  solution: {{ . }}
{{- end }}
{{- with .BackupDir }}
  backup: {{ . }}
{{- end }}
{{- range .Deleted }}
  deleted: {{ . }}
{{- end }}
{{- range .Diagnostics }}
  {{ .Code }}: {{ .Message }}
{{- end }}
{{- end }}
`

const defaultKey = "__default__"

// Renderer executes report templates. Parsed templates are cached by path.
type Renderer struct {
	fs    filesystem.FileSystem
	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewRenderer creates a Renderer.
func NewRenderer(fs filesystem.FileSystem) *Renderer {
	return &Renderer{fs: fs, cache: make(map[string]*template.Template)}
}

// Render executes the template at templatePath, or the built-in template
// when templatePath is empty, against summary.
func (r *Renderer) Render(templatePath string, summary *Summary) (string, error) {
	tmpl, err := r.template(templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, summary); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) template(path string) (*template.Template, error) {
	key := path
	if key == "" {
		key = defaultKey
	}

	r.mu.Lock()
	tmpl, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return tmpl, nil
	}

	text := defaultTemplate
	if path != "" {
		data, err := r.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read report template: %w", err)
		}
		text = string(data)
	}

	parsed, err := template.New("report").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	r.mu.Lock()
	r.cache[key] = parsed
	r.mu.Unlock()
	return parsed, nil
}
