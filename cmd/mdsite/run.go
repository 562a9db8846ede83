package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Fallback directories when neither flags nor config name them.
const (
	defaultInputDir    = "markdown"
	defaultOutputDir   = "_website"
	defaultTemplateDir = "templates"
)

// defaultConfigName is the config searched for when --config is not given.
const defaultConfigName = "mdsite"

// ErrUnknownCommand reports an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// run dispatches the subcommand.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "site":
		return runSite(ctx, rest, deps)
	case "book":
		return runBook(ctx, rest, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "mdsite %s\n", Version)
		return nil
	case "help", "-h", "--help":
		runHelp(rest, deps)
		return nil
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", cmd)
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// runSite generates the static website.
func runSite(ctx context.Context, args []string, deps *Dependencies) error {
	flags, err := parseSiteFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if flags.highlight != "" {
		cfg.Highlight.Style = flags.highlight
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	site, err := newSite(cfg, &flags.dirs, &flags.common, deps)
	if err != nil {
		return err
	}

	n, err := site.GenerateSite(ctx)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "generated %d documents into %s\n", n, site.OutDir)
	}
	return nil
}

// runBook packages the source tree into an EPUB.
func runBook(ctx context.Context, args []string, deps *Dependencies) error {
	flags, err := parseBookFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	// Flags win over config for book metadata.
	if flags.author != "" {
		cfg.Book.Author = flags.author
	}
	if flags.title != "" {
		cfg.Book.Title = flags.title
	}
	if flags.epub != "" {
		cfg.Book.Output = flags.epub
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	site, err := newSite(cfg, &flags.dirs, &flags.common, deps)
	if err != nil {
		return err
	}

	n, err := site.GenerateBook(ctx)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		out := cfg.Book.Output
		if out == "" {
			out = "book.epub"
		}
		fmt.Fprintf(deps.Stdout, "packaged %d documents into %s\n", n, out)
	}
	return nil
}

// newSite resolves directories from flags and config and builds the run.
func newSite(cfg *config.Config, dirs *dirFlags, common *commonFlags, deps *Dependencies) (*mdsite.Site, error) {
	inDir := firstNonEmpty(dirs.input, cfg.Input.Dir, defaultInputDir)
	outDir := firstNonEmpty(dirs.output, cfg.Output.Dir, defaultOutputDir)
	templateDir := firstNonEmpty(dirs.templates, cfg.Templates.Dir, defaultTemplateDir)

	opts := []mdsite.Option{
		mdsite.WithHighlightStyle(cfg.Highlight.Style),
		mdsite.WithBookMeta(cfg.Book.Author, cfg.Book.Title),
		mdsite.WithBookOutput(cfg.Book.Output),
	}
	if common.verbose && !common.quiet {
		opts = append(opts, mdsite.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		}))
	}

	return mdsite.NewSite(inDir, outDir, templateDir, opts...)
}

// loadConfig loads the named config, or the default "mdsite" config when
// no name is given. A missing default config is not an error; a missing
// explicitly named one is.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		cfg, err := config.LoadConfig(defaultConfigName)
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return cfg, err
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(configSearchPaths(nameOrPath)))
	}
	return cfg, err
}

// configSearchPaths lists where a named config would have been looked up.
func configSearchPaths(nameOrPath string) []string {
	if strings.ContainsAny(nameOrPath, "/\\") {
		return nil
	}
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "go-mdsite", nameOrPath+".yaml"))
	}
	return paths
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
