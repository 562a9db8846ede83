package mdsite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Template naming conventions.
const (
	// DefaultTemplateName is the template every Markdown document is
	// rendered through.
	DefaultTemplateName = "default"

	// TemplateExt marks template source files. Files with this extension
	// are loaded into the renderer and excluded from the asset copy into
	// the output root.
	TemplateExt = ".tmpl"

	// TemplateVarBody is the reserved variable holding the rendered HTML.
	TemplateVarBody = "body"
)

// TemplateRenderer renders a named template against a flat string
// mapping. Escaping must be disabled: the body variable holds
// pre-rendered HTML that is inserted verbatim.
type TemplateRenderer interface {
	Render(name string, vars map[string]string) (string, error)
}

// templateSet loads every .tmpl file in a directory as a named template
// (file stem = template name) using text/template, which performs no
// HTML escaping. Referencing a variable the mapping does not define is a
// render error, not an empty substitution.
type templateSet struct {
	root *template.Template
}

func newTemplateSet(dir string) (*templateSet, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+TemplateExt))
	if err != nil {
		return nil, fmt.Errorf("%w: globbing %s: %v", ErrTemplateRender, dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no %s templates in %s", ErrTemplateRender, TemplateExt, dir)
	}

	root := template.New("mdsite").Option("missingkey=error")
	for _, path := range matches {
		data, err := os.ReadFile(path) // #nosec G304 -- template dir is caller-controlled
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrTemplateRender, path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), TemplateExt)
		if _, err := root.New(name).Parse(string(data)); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, path, err)
		}
	}
	return &templateSet{root: root}, nil
}

// Render executes the named template with the given variables.
func (s *templateSet) Render(name string, vars map[string]string) (string, error) {
	t := s.root.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("%w: no template named %q", ErrTemplateRender, name)
	}
	var b strings.Builder
	if err := t.Execute(&b, vars); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrTemplateRender, name, err)
	}
	return b.String(), nil
}

// Compile-time interface check.
var _ TemplateRenderer = (*templateSet)(nil)

// buildTemplateVars merges a document's front matter with the rendered
// HTML body. Front matter is cloned, never mutated. A front matter key
// named "body" is overwritten — metadata must never be able to suppress
// body content — and the collision is reported through warnf.
func buildTemplateVars(meta FrontMatter, body string, warnf logFunc) map[string]string {
	vars := meta.Clone()
	if _, clash := vars[TemplateVarBody]; clash {
		warnf("warning: front matter var %q will be ignored", TemplateVarBody)
	}
	vars[TemplateVarBody] = body
	return vars
}
