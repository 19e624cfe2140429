package report

import (
	"os"
	"strings"
	"text/template"

	"github.com/mjeanroy/licnotice/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultTemplate renders a dependency using its fixed-layout text block.
const DefaultTemplate = "{{ .Text }}"

// blockTemplate renders one dependency into one notice block.
type blockTemplate struct {
	tmpl *template.Template
}

// newBlockTemplate parses a per-dependency template.
// An empty source falls back to DefaultTemplate.
func newBlockTemplate(source string) (*blockTemplate, error) {
	if source == "" {
		source = DefaultTemplate
	}

	tmpl, err := template.New("block").Parse(source)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrTemplateParseFailed.Error())
	}

	return &blockTemplate{tmpl: tmpl}, nil
}

// newBlockTemplateFromFile parses a per-dependency template read from path.
func newBlockTemplateFromFile(path string) (*blockTemplate, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTemplateReadFailed.Error()), "path", path)
	}
	return newBlockTemplate(string(data))
}

// Render executes the template for a single dependency.
func (t *blockTemplate) Render(dep *domain.Dependency) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, dep); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTemplateRenderFailed.Error()), "dependency", dep.String())
	}
	return sb.String(), nil
}
