package mdsite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Kind discriminates the two document variants. They share no behavior
// beyond having a source path, so both assembly paths switch on Kind
// exhaustively instead of going through an interface.
type Kind int

const (
	// KindMarkdown marks documents that are read, split, and converted.
	KindMarkdown Kind = iota
	// KindOpaque marks documents that are copied verbatim.
	KindOpaque
)

// String returns a human-readable kind name for logs and errors.
func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Document is one discovered source file. Created once at scan time,
// immutable afterwards, and consumed by exactly one assembly path per run.
type Document struct {
	SourcePath string
	Kind       Kind

	// Meta and Body are populated for KindMarkdown only. Body never
	// contains the front matter block.
	Meta FrontMatter
	Body string
}

// markdownExtensions are matched case-sensitively against the file
// extension without its dot.
var markdownExtensions = []string{"md", "markdown"}

// IsMarkdownPath reports whether path has a Markdown file extension.
func IsMarkdownPath(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// NewDocument classifies path and, for Markdown files, reads the content
// and splits off the front matter. Opaque files are not read here; their
// bytes are only touched at copy time. Read and decode failures wrap
// ErrDocumentRead with the path attached.
func NewDocument(path string) (*Document, error) {
	if !IsMarkdownPath(path) {
		return &Document{SourcePath: path, Kind: KindOpaque}, nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- paths come from the scanned source tree
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentRead, path, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: %s: invalid UTF-8", ErrDocumentRead, path)
	}

	meta, body, err := ExtractFrontMatter(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Document{
		SourcePath: path,
		Kind:       KindMarkdown,
		Meta:       meta,
		Body:       body,
	}, nil
}

// FileStem returns the file name without its extension. An empty stem is
// a programming-contract violation (documents always come from named
// files) and wraps ErrPath.
func (d *Document) FileStem() (string, error) {
	base := filepath.Base(d.SourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", fmt.Errorf("%w: no usable file stem for %s", ErrPath, d.SourcePath)
	}
	return stem, nil
}
