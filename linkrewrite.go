package mdsite

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdsite/internal/mimeutil"
)

// linkRewrite is the goldmark extension carrying both cross-document
// link rewriting and audio player rendering.
type linkRewrite struct{}

func (e *linkRewrite) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(&mdLinkTransformer{}, 500),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(newAudioLinkRenderer(), 500),
		),
	)
}

// mdSuffix is matched literally at the end of the destination, so a
// fragment after .md (a/b.md#frag) leaves the link untouched.
var mdSuffix = []byte(".md")

// mdLinkTransformer rewrites link destinations ending in .md to the
// .html path the website generator will produce for that source, keeping
// intra-site links valid after generation.
type mdLinkTransformer struct{}

func (t *mdLinkTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok || !bytes.HasSuffix(link.Destination, mdSuffix) {
			return ast.WalkContinue, nil
		}
		stem := link.Destination[:len(link.Destination)-len(mdSuffix)]
		rewritten := make([]byte, 0, len(stem)+len(".html"))
		rewritten = append(rewritten, stem...)
		rewritten = append(rewritten, ".html"...)
		link.Destination = rewritten
		return ast.WalkContinue, nil
	})
}

// audioLinkRenderer replaces links to recognized audio files with an
// inline <audio> player. The player swallows the whole link span: the
// link's children are skipped so the fallback anchor carries their text
// instead of nesting inside a rendered link. Other links get goldmark's
// ordinary anchor rendering.
type audioLinkRenderer struct {
	html.Config
}

func newAudioLinkRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &audioLinkRenderer{Config: html.NewConfig()}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *audioLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
}

func (r *audioLinkRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)

	if mime, ok := mimeutil.AudioType(mimeutil.Ext(string(n.Destination))); ok {
		if !entering {
			return ast.WalkContinue, nil
		}
		r.writeAudioPlayer(w, source, n, mime)
		return ast.WalkSkipChildren, nil
	}

	// Ordinary link: mirror goldmark's default anchor rendering.
	if entering {
		_, _ = w.WriteString(`<a href="`)
		if r.Unsafe || !html.IsDangerousURL(n.Destination) {
			_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
		}
		_ = w.WriteByte('"')
		if n.Title != nil {
			_, _ = w.WriteString(` title="`)
			r.Writer.Write(w, n.Title)
			_ = w.WriteByte('"')
		}
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.LinkAttributeFilter)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</a>")
	}
	return ast.WalkContinue, nil
}

// writeAudioPlayer emits the <audio> element with a clickable fallback
// anchor labelled by the link's own text, or a placeholder glyph when the
// link has no text.
func (r *audioLinkRenderer) writeAudioPlayer(w util.BufWriter, source []byte, n *ast.Link, mime string) {
	dest := util.EscapeHTML(util.URLEscape(n.Destination, true))
	label := linkText(source, n)
	if len(label) == 0 {
		label = []byte("#")
	}

	_, _ = w.WriteString(`<audio controls><source src="`)
	_, _ = w.Write(dest)
	_, _ = w.WriteString(`" type="`)
	_, _ = w.WriteString(mime)
	_, _ = w.WriteString(`">Your browser does not support the audio element. `)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(dest)
	_, _ = w.WriteString(`" title="`)
	if n.Title != nil {
		r.Writer.Write(w, n.Title)
	}
	_, _ = w.WriteString(`" class="audio"><span class="fa-solid fa-play">`)
	_, _ = w.Write(util.EscapeHTML(label))
	_, _ = w.WriteString(`</span></a></audio>`)
}

// linkText collects the immediate text children of a link node.
func linkText(source []byte, n ast.Node) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.Bytes()
}
