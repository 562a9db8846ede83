// Package mdsite turns a directory tree of Markdown documents into a
// static website or a single EPUB package.
//
// # Quick Start
//
// Create a Site over a source tree and generate:
//
//	site, err := mdsite.NewSite("markdown", "_website", "templates")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := site.GenerateSite(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("generated %d documents\n", n)
//
// # Document Model
//
// Every file discovered under the source root becomes a Document.
// Files with a .md or .markdown extension are read, their leading
// YAML front matter (a flat string-to-string block between --- lines)
// is split off, and the remainder becomes the document body. All other
// files are opaque and copied verbatim by the website path.
//
// # Website Generation
//
// GenerateSite wipes and rebuilds the output root, copies template
// support assets (everything in the template directory except the
// .tmpl sources), and mirrors the source tree: Markdown becomes HTML
// at the same relative path, opaque files are byte-identical copies.
// Markdown bodies are converted via Goldmark with strikethrough and
// syntax highlighting enabled; links to .md targets are rewritten to
// .html, and links to audio files become inline <audio> players.
// The rendered body is merged with the document's front matter and
// passed to the "default" template.
//
// # Book Generation
//
// GenerateBook classifies every document by file stem — cover/_cover
// is the cover image, title/_title the title page, everything else a
// numbered chapter in scan order — and hands the raw files to an EPUB
// packager. Book content is embedded as-is; the book path performs no
// Markdown conversion.
//
// # Templates
//
// Templates live in a directory of .tmpl files rendered with a flat
// string mapping. The reserved key "body" always holds the rendered
// HTML; escaping is disabled so pre-rendered HTML passes through
// verbatim. If the template directory does not exist, an embedded
// default set is inflated into it on first use.
package mdsite
