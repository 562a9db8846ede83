// Package assets embeds the default template set and inflates it onto
// disk for first runs, so a fresh project works without any setup.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

//go:embed templates/*
var templates embed.FS

// templateRoot is the embedded directory holding the default template set.
const templateRoot = "templates"

// Names returns the relative paths of all embedded template assets.
func Names() ([]string, error) {
	var names []string
	err := fs.WalkDir(templates, templateRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(templateRoot, p)
		if err != nil {
			return err
		}
		names = append(names, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing embedded templates: %w", err)
	}
	return names, nil
}

// Inflate writes the embedded default templates into dir, creating parent
// directories as needed. Existing files are overwritten.
func Inflate(dir string) error {
	names, err := Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		data, err := templates.ReadFile(filepath.ToSlash(filepath.Join(templateRoot, name)))
		if err != nil {
			return fmt.Errorf("reading embedded template %s: %w", name, err)
		}
		if err := fileutil.WriteFile(filepath.Join(dir, name), data); err != nil {
			return fmt.Errorf("inflating template %s: %w", name, err)
		}
	}
	return nil
}
