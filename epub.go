package mdsite

import (
	"path/filepath"
	"strings"

	epub "github.com/bmaupin/go-epub"
)

// epubPackager implements BookPackager on the go-epub container writer.
// The container's internal layout is entirely the library's concern.
type epubPackager struct {
	e *epub.Epub
}

func newEpubPackager(title, author string) *epubPackager {
	e := epub.NewEpub(title)
	e.SetAuthor(author)
	return &epubPackager{e: e}
}

// AddCover registers the cover image. go-epub derives the container MIME
// from the internal file name, so a source without an extension gets one
// from the resolved MIME type (image/png by default).
func (p *epubPackager) AddCover(sourcePath, mimeType string) error {
	name := filepath.Base(sourcePath)
	if filepath.Ext(name) == "" {
		name += "." + strings.TrimPrefix(mimeType, "image/")
	}
	internal, err := p.e.AddImage(sourcePath, name)
	if err != nil {
		return err
	}
	p.e.SetCover(internal, "")
	return nil
}

// AddTitlePage embeds the title page as untitled structural content.
func (p *epubPackager) AddTitlePage(name string, content []byte) error {
	_, err := p.e.AddSection(string(content), "", name, "")
	return err
}

// AddChapter appends one chapter part in call order.
func (p *epubPackager) AddChapter(name, title string, content []byte) error {
	_, err := p.e.AddSection(string(content), title, name, "")
	return err
}

// Finalize serializes the package to path.
func (p *epubPackager) Finalize(path string) error {
	return p.e.Write(path)
}

// Compile-time interface check.
var _ BookPackager = (*epubPackager)(nil)
