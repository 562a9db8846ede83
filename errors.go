package mdsite

import "errors"

// Sentinel errors for generation operations.
// Every failure aborts the whole run; partial output already written is
// left in place.
var (
	ErrMetadataParse  = errors.New("front matter parse failed")
	ErrDocumentRead   = errors.New("document read failed")
	ErrTemplateRender = errors.New("template render failed")
	ErrPackaging      = errors.New("book packaging failed")
	ErrPath           = errors.New("source path outside declared root or unusable")
)
