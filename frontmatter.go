package mdsite

import (
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// FrontMatter is the flat string-to-string metadata block of a Markdown
// document. Only scalar string values are supported, like
//
//	---
//	title: "My Website"
//	---
//
// Richer YAML (lists, nested maps, bare numbers) is a parse error.
type FrontMatter map[string]string

// Clone returns an independent copy of the mapping. Merging into
// template variables must never mutate the document's own metadata.
func (fm FrontMatter) Clone() map[string]string {
	out := make(map[string]string, len(fm))
	for k, v := range fm {
		out[k] = v
	}
	return out
}

// frontMatterDelimiters in detection order. Both line-ending styles are
// accepted; the closing delimiter must use the same style as the opener.
var frontMatterDelimiters = []string{"---\n", "---\r\n"}

// ExtractFrontMatter splits a leading front matter block from text.
//
// When text starts with a --- delimiter line and a matching closing
// delimiter exists, it returns the parsed mapping and the remainder with
// both delimiter lines and the block removed exactly. When no delimiter
// opens the text — or the opener is never closed — it returns (nil, text)
// untouched: a malformed document must not silently lose its body.
// A delimited block that is not a flat string mapping wraps
// ErrMetadataParse.
func ExtractFrontMatter(text string) (FrontMatter, string, error) {
	var delim string
	for _, d := range frontMatterDelimiters {
		if strings.HasPrefix(text, d) {
			delim = d
			break
		}
	}
	if delim == "" {
		return nil, text, nil
	}

	rest := text[len(delim):]
	end := strings.Index(rest, delim)
	if end < 0 {
		return nil, text, nil
	}

	block := rest[:end]
	remainder := rest[end+len(delim):]

	if strings.TrimSpace(block) == "" {
		return FrontMatter{}, remainder, nil
	}

	vars, err := yamlutil.DecodeStringMap([]byte(block))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMetadataParse, err)
	}

	return FrontMatter(vars), remainder, nil
}
