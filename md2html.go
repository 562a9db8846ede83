package mdsite

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// defaultHighlightStyle is the chroma style used when none is configured.
const defaultHighlightStyle = "github"

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(content string) (string, error)
}

// goldmarkConverter converts Markdown bodies to HTML fragments using
// goldmark (pure Go).
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a converter with strikethrough, fenced-code
// highlighting, and the cross-document link rewrites enabled.
func newGoldmarkConverter(highlightStyle string) *goldmarkConverter {
	if highlightStyle == "" {
		highlightStyle = defaultHighlightStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			// Strikethrough is not part of the CommonMark standard so
			// must be enabled explicitly.
			extension.Strikethrough,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
			),
			&linkRewrite{},
		),
		goldmark.WithRendererOptions(
			// Raw HTML in document bodies passes through verbatim.
			html.WithUnsafe(),
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts a Markdown body to an HTML fragment. A syntactically
// valid body is not expected to fail; errors here are writer failures.
func (c *goldmarkConverter) ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}
