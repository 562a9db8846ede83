// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForEmptySource returns a hint for a source directory with no documents.
func ForEmptySource(dir string) string {
	return format("add files to the source directory: " + dir)
}

// ForMissingTemplate returns a hint for a missing named template.
func ForMissingTemplate(dir string) string {
	return format("delete " + dir + " to restore the default templates on the next run")
}

// format wraps a single hint in the standard format.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
