package mdsite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Historical defaults for book packaging.
const (
	defaultBookAuthor = "Author Name"
	defaultBookTitle  = "My Book"
	defaultBookOutput = "book.epub"
)

// logFunc receives progress and warning lines. The library never writes
// to stdout/stderr itself.
type logFunc func(format string, args ...any)

// Site owns one generation run: the scanned document set, the template
// renderer, and the output root. The output root is exclusively owned by
// a single run — it is wiped and rebuilt per generation, so concurrent
// runs against the same output root must be serialized by the caller.
type Site struct {
	InDir       string
	OutDir      string
	TemplateDir string

	docs      []*Document
	renderer  TemplateRenderer
	converter htmlConverter
	packager  BookPackager
	logf      logFunc

	highlightStyle string
	bookAuthor     string
	bookTitle      string
	bookOut        string
}

// Option configures a Site.
type Option func(*Site)

// WithLogf injects a progress callback (e.g. wired to stderr under a
// verbose flag). The default discards all output.
func WithLogf(f func(format string, args ...any)) Option {
	return func(s *Site) {
		if f != nil {
			s.logf = f
		}
	}
}

// WithHighlightStyle sets the chroma style for fenced code blocks.
func WithHighlightStyle(name string) Option {
	return func(s *Site) { s.highlightStyle = name }
}

// WithBookMeta sets the author and title recorded in the book package.
// Empty values keep the defaults.
func WithBookMeta(author, title string) Option {
	return func(s *Site) {
		if author != "" {
			s.bookAuthor = author
		}
		if title != "" {
			s.bookTitle = title
		}
	}
}

// WithBookOutput sets the book package file path.
func WithBookOutput(path string) Option {
	return func(s *Site) {
		if path != "" {
			s.bookOut = path
		}
	}
}

// WithTemplateRenderer replaces the directory-backed template renderer.
func WithTemplateRenderer(r TemplateRenderer) Option {
	return func(s *Site) { s.renderer = r }
}

// WithBookPackager replaces the EPUB packager (e.g. for a different
// container format, or by tests).
func WithBookPackager(p BookPackager) Option {
	return func(s *Site) { s.packager = p }
}

// NewSite scans the source tree and prepares a generation run. The
// source directory is created if missing; a missing template directory
// is populated with the embedded default template set. Hidden files and
// directories are excluded from the scan; symbolic links are followed.
func NewSite(inDir, outDir, templateDir string, opts ...Option) (*Site, error) {
	s := &Site{
		InDir:       inDir,
		OutDir:      outDir,
		TemplateDir: templateDir,
		logf:        func(string, ...any) {},
		bookAuthor:  defaultBookAuthor,
		bookTitle:   defaultBookTitle,
		bookOut:     defaultBookOutput,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(inDir, fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating source directory %s: %w", inDir, err)
	}

	if _, err := os.Stat(templateDir); os.IsNotExist(err) {
		s.logf("inflating default templates into %s", templateDir)
		if err := assets.Inflate(templateDir); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking template directory %s: %w", templateDir, err)
	}

	if s.renderer == nil {
		renderer, err := newTemplateSet(templateDir)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForMissingTemplate(templateDir))
		}
		s.renderer = renderer
	}
	if s.converter == nil {
		s.converter = newGoldmarkConverter(s.highlightStyle)
	}

	docs, err := scanDocuments(inDir)
	if err != nil {
		return nil, err
	}
	s.docs = docs

	return s, nil
}

// Documents returns the scanned document set in scan order.
func (s *Site) Documents() []*Document {
	return s.docs
}

// scanDocuments walks the source tree in lexical order, skipping hidden
// names and following symbolic links, and classifies every regular file.
func scanDocuments(root string) ([]*Document, error) {
	var docs []*Document
	if err := scanTree(root, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func scanTree(dir string, docs *[]*Document) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentRead, dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if fileutil.IsHiddenName(name) {
			continue
		}
		path := filepath.Join(dir, name)

		// Stat (not Lstat) so symlinked files and directories are
		// treated as their targets.
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDocumentRead, path, err)
		}
		switch {
		case info.IsDir():
			if err := scanTree(path, docs); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			doc, err := NewDocument(path)
			if err != nil {
				return err
			}
			*docs = append(*docs, doc)
		}
	}
	return nil
}

// GenerateSite renders the whole document set into the output root and
// returns the number of documents processed. Any failure aborts the run;
// output already written stays in place.
func (s *Site) GenerateSite(ctx context.Context) (int, error) {
	if err := s.cleanAndSetup(); err != nil {
		return 0, err
	}
	s.logf("generating html for %d files", len(s.docs))

	for _, doc := range s.docs {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := s.generateDocument(doc); err != nil {
			return 0, err
		}
	}
	return len(s.docs), nil
}

// GenerateBook packages the whole document set into a single eBook file
// and returns the number of documents processed.
func (s *Site) GenerateBook(ctx context.Context) (int, error) {
	if err := s.cleanAndSetup(); err != nil {
		return 0, err
	}
	s.logf("generating ePub for %d files", len(s.docs))

	packager := s.packager
	if packager == nil {
		packager = newEpubPackager(s.bookTitle, s.bookAuthor)
	}

	if err := assembleBook(ctx, s.docs, packager, s.logf); err != nil {
		return 0, err
	}
	if err := packager.Finalize(s.bookOut); err != nil {
		return 0, fmt.Errorf("%w: finalizing %s: %v", ErrPackaging, s.bookOut, err)
	}
	s.logf("wrote %s", s.bookOut)
	return len(s.docs), nil
}

// cleanAndSetup wipes and recreates the output root, then copies the
// template support assets into it. This is the only destructive phase;
// it runs before any document is written.
func (s *Site) cleanAndSetup() error {
	if len(s.docs) == 0 {
		s.logf("no documents found%s", hints.ForEmptySource(s.InDir))
	}
	if err := fileutil.CleanDir(s.OutDir); err != nil {
		return err
	}
	return s.copyTemplateAssets()
}

// copyTemplateAssets copies everything under the template directory into
// the output root, excluding hidden names and the template sources
// themselves (by extension).
func (s *Site) copyTemplateAssets() error {
	return s.copyAssetTree(s.TemplateDir, s.OutDir)
}

func (s *Site) copyAssetTree(srcDir, dstDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", srcDir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if fileutil.IsHiddenName(name) {
			continue
		}
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(dstDir, name)

		info, err := os.Stat(src)
		if err != nil {
			return fmt.Errorf("stat %s: %w", src, err)
		}
		switch {
		case info.IsDir():
			if err := s.copyAssetTree(src, dst); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if filepath.Ext(name) == TemplateExt {
				continue
			}
			s.logf("asset   -> %s\t%s", src, dst)
			if err := fileutil.CopyFile(src, dst); err != nil {
				return err
			}
		}
	}
	return nil
}

// outPath re-roots a document's source-relative path under the output
// root. A source path that cannot be expressed relative to the declared
// root is a programming-contract violation.
func (s *Site) outPath(doc *Document) (string, error) {
	rel, err := filepath.Rel(s.InDir, doc.SourcePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %s is not under %s", ErrPath, doc.SourcePath, s.InDir)
	}
	return filepath.Join(s.OutDir, rel), nil
}

// generateDocument writes one document's output: opaque files are
// byte-copied, Markdown files run through the render pipeline.
func (s *Site) generateDocument(doc *Document) error {
	out, err := s.outPath(doc)
	if err != nil {
		return err
	}

	switch doc.Kind {
	case KindOpaque:
		s.logf("copy    -> %s\t%s", doc.SourcePath, out)
		if err := fileutil.CopyFile(doc.SourcePath, out); err != nil {
			return fmt.Errorf("%s: %w", doc.SourcePath, err)
		}
		return nil

	case KindMarkdown:
		htmlOut := replaceExt(out, ".html")
		s.logf("convert -> %s\t%s", doc.SourcePath, htmlOut)

		body, err := s.converter.ToHTML(doc.Body)
		if err != nil {
			return fmt.Errorf("%s: %w", doc.SourcePath, err)
		}
		vars := buildTemplateVars(doc.Meta, body, s.logf)
		rendered, err := s.renderer.Render(DefaultTemplateName, vars)
		if err != nil {
			return fmt.Errorf("%s: %w", doc.SourcePath, err)
		}
		if err := fileutil.WriteFile(htmlOut, []byte(rendered)); err != nil {
			return fmt.Errorf("%s: %w", doc.SourcePath, err)
		}
		return nil

	default:
		return fmt.Errorf("unhandled document kind %v for %s", doc.Kind, doc.SourcePath)
	}
}

// replaceExt swaps the path's extension.
func replaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}
