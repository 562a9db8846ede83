// Package config loads and validates the optional mdsite configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrUnknownHighlight = errors.New("unknown highlight style")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // Directory and file paths
	MaxAuthorLength = 100  // Book author
	MaxTitleLength  = 200  // Book title
	MaxStyleLength  = 50   // Chroma style name
)

// Config holds all configuration for site and book generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Templates TemplatesConfig `yaml:"templates"`
	Book      BookConfig      `yaml:"book"`
	Highlight HighlightConfig `yaml:"highlight"`
}

// InputConfig defines the source document tree.
type InputConfig struct {
	Dir string `yaml:"dir"` // Source directory (empty = "markdown")
}

// OutputConfig defines the website output root.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = "_website")
}

// TemplatesConfig defines where templates live.
type TemplatesConfig struct {
	Dir string `yaml:"dir"` // Template directory (empty = "templates")
}

// BookConfig defines eBook packaging metadata.
type BookConfig struct {
	Author string `yaml:"author"` // Book author (empty = "Author Name")
	Title  string `yaml:"title"`  // Book title (empty = "My Book")
	Output string `yaml:"output"` // Package file path (empty = "book.epub")
}

// HighlightConfig defines fenced-code highlighting for the website path.
type HighlightConfig struct {
	Style string `yaml:"style"` // Chroma style name (empty = library default)
}

// DefaultConfig returns a neutral configuration; empty fields fall back
// to the historical defaults at the call site.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and the highlight style name.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.dir", c.Input.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"templates.dir", c.Templates.Dir, MaxPathLength},
		{"book.author", c.Book.Author, MaxAuthorLength},
		{"book.title", c.Book.Title, MaxTitleLength},
		{"book.output", c.Book.Output, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxStyleLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Highlight.Style != "" && !slices.Contains(styles.Names(), c.Highlight.Style) {
		return fmt.Errorf("%w: %q", ErrUnknownHighlight, c.Highlight.Style)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdsite", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
