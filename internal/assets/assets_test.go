package assets_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/assets"
)

func TestNames(t *testing.T) {
	t.Parallel()

	names, err := assets.Names()
	if err != nil {
		t.Fatalf("Names() unexpected error: %v", err)
	}
	if !slices.Contains(names, "default.tmpl") {
		t.Errorf("Names() = %v, missing default.tmpl", names)
	}
	if !slices.Contains(names, "style.css") {
		t.Errorf("Names() = %v, missing style.css", names)
	}
}

func TestInflate(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "templates")
	if err := assets.Inflate(dir); err != nil {
		t.Fatalf("Inflate() unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "default.tmpl"))
	if err != nil {
		t.Fatalf("reading inflated template: %v", err)
	}
	if !strings.Contains(string(data), "{{.body}}") {
		t.Errorf("default template missing body placeholder:\n%s", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "style.css")); err != nil {
		t.Errorf("style.css not inflated: %v", err)
	}
}
