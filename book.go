package mdsite

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/mimeutil"
)

// BookRole is the structural classification of a document inside the
// eBook package, derived from its file stem at assembly time. It is
// never stored on the Document.
type BookRole int

const (
	// RoleChapter is sequential body text; chapter numbers count only
	// chapter documents, in scan order, starting at 1.
	RoleChapter BookRole = iota
	// RoleCover is the package cover image.
	RoleCover
	// RoleTitlePage is the untitled first structural content.
	RoleTitlePage
)

// String returns a human-readable role name for logs.
func (r BookRole) String() string {
	switch r {
	case RoleChapter:
		return "chapter"
	case RoleCover:
		return "cover"
	case RoleTitlePage:
		return "title page"
	default:
		return fmt.Sprintf("BookRole(%d)", int(r))
	}
}

// ClassifyRole maps a file stem to its book role. The match is exact
// and case-sensitive: "Cover.png" is a chapter, "cover.png" the cover.
func ClassifyRole(stem string) BookRole {
	switch stem {
	case "cover", "_cover":
		return RoleCover
	case "title", "_title":
		return RoleTitlePage
	default:
		return RoleChapter
	}
}

// BookPackager is the container-format collaborator. Parts must be
// packaged in the order the calls arrive; Finalize serializes the
// package after all parts are added.
type BookPackager interface {
	AddCover(sourcePath, mimeType string) error
	AddTitlePage(name string, content []byte) error
	AddChapter(name, title string, content []byte) error
	Finalize(path string) error
}

// assembleBook classifies every document in scan order and feeds it to
// the packager. Document files are handed over as-is: the book path does
// not run Markdown conversion (content is expected pre-rendered
// HTML/XHTML). A failure adding any part aborts the whole assembly.
func assembleBook(ctx context.Context, docs []*Document, p BookPackager, logf logFunc) error {
	chapter := 1
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}

		stem, err := doc.FileStem()
		if err != nil {
			return err
		}

		switch role := ClassifyRole(stem); role {
		case RoleCover:
			mime := mimeutil.ImageType(mimeutil.Ext(doc.SourcePath))
			logf("cover   -> %s (%s)", doc.SourcePath, mime)
			if err := p.AddCover(doc.SourcePath, mime); err != nil {
				return fmt.Errorf("%w: adding cover %s: %v", ErrPackaging, doc.SourcePath, err)
			}

		case RoleTitlePage:
			content, err := readBookContent(doc)
			if err != nil {
				return err
			}
			name := stem + ".xhtml"
			logf("title   -> %s\tas %s", doc.SourcePath, name)
			if err := p.AddTitlePage(name, content); err != nil {
				return fmt.Errorf("%w: adding title page %s: %v", ErrPackaging, doc.SourcePath, err)
			}

		case RoleChapter:
			content, err := readBookContent(doc)
			if err != nil {
				return err
			}
			name := stem + ".xhtml"
			title := fmt.Sprintf("Chapter %d", chapter)
			logf("chapter -> %s\tas %s\ttitle: %s", doc.SourcePath, name, title)
			if err := p.AddChapter(name, title, content); err != nil {
				return fmt.Errorf("%w: adding chapter %s: %v", ErrPackaging, doc.SourcePath, err)
			}
			chapter++

		default:
			return fmt.Errorf("unhandled book role %v for %s", role, doc.SourcePath)
		}
	}
	return nil
}

// readBookContent reads a document's raw bytes for packaging.
func readBookContent(doc *Document) ([]byte, error) {
	content, err := os.ReadFile(doc.SourcePath) // #nosec G304 -- paths come from the scanned source tree
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentRead, doc.SourcePath, err)
	}
	return content, nil
}
