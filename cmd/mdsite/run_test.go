package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/config"
)

// testDeps returns Dependencies backed by buffers.
func testDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Dependencies{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// siteArgs builds a site invocation against temp directories.
func siteArgs(root string, extra ...string) []string {
	args := []string{
		"site",
		"-i", filepath.Join(root, "markdown"),
		"-o", filepath.Join(root, "out"),
		"-t", filepath.Join(root, "templates"),
	}
	return append(args, extra...)
}

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("no command", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		err := run(context.Background(), nil, deps)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Fatalf("run() error = %v, want ErrUnknownCommand", err)
		}
		if !strings.Contains(stderr.String(), "Usage: mdsite") {
			t.Errorf("usage not printed:\n%s", stderr.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		err := run(context.Background(), []string{"frobnicate"}, deps)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Fatalf("run() error = %v, want ErrUnknownCommand", err)
		}
		if !strings.Contains(stderr.String(), "frobnicate") {
			t.Errorf("unknown command not named:\n%s", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		if err := run(context.Background(), []string{"version"}, deps); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "mdsite "+Version) {
			t.Errorf("version output = %q", stdout.String())
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		if err := run(context.Background(), []string{"help"}, deps); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "Commands:") {
			t.Errorf("help output = %q", stdout.String())
		}
	})

	t.Run("help for book", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		if err := run(context.Background(), []string{"help", "book"}, deps); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "mdsite book") {
			t.Errorf("book help output = %q", stdout.String())
		}
	})
}

func TestRunSite(t *testing.T) {
	t.Parallel()

	t.Run("generates the website", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeSource(t, filepath.Join(root, "markdown"), "index.md", "# Home")

		deps, stdout, _ := testDeps()
		if err := run(context.Background(), siteArgs(root), deps); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}

		out, err := os.ReadFile(filepath.Join(root, "out", "index.html"))
		if err != nil {
			t.Fatalf("index.html not written: %v", err)
		}
		if !strings.Contains(string(out), "<h1>Home</h1>") {
			t.Errorf("index.html = %q", out)
		}
		if !strings.Contains(stdout.String(), "generated 1 documents") {
			t.Errorf("summary = %q", stdout.String())
		}
	})

	t.Run("quiet suppresses the summary", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeSource(t, filepath.Join(root, "markdown"), "a.md", "# A")

		deps, stdout, _ := testDeps()
		if err := run(context.Background(), siteArgs(root, "--quiet"), deps); err != nil {
			t.Fatal(err)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
	})

	t.Run("verbose logs progress to stderr", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeSource(t, filepath.Join(root, "markdown"), "a.md", "# A")

		deps, _, stderr := testDeps()
		if err := run(context.Background(), siteArgs(root, "--verbose"), deps); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stderr.String(), "a.md") {
			t.Errorf("no per-file progress on stderr:\n%s", stderr.String())
		}
	})

	t.Run("directories come from the config file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeSource(t, filepath.Join(root, "src"), "page.md", "# P")
		cfgPath := filepath.Join(root, "mdsite.yaml")
		cfg := "input:\n  dir: " + filepath.Join(root, "src") + "\n" +
			"output:\n  dir: " + filepath.Join(root, "www") + "\n" +
			"templates:\n  dir: " + filepath.Join(root, "tpl") + "\n"
		if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
			t.Fatal(err)
		}

		deps, _, _ := testDeps()
		if err := run(context.Background(), []string{"site", "-c", cfgPath}, deps); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "www", "page.html")); err != nil {
			t.Errorf("config-directed output missing: %v", err)
		}
	})

	t.Run("flags override the config file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeSource(t, filepath.Join(root, "markdown"), "page.md", "# P")
		cfgPath := filepath.Join(root, "mdsite.yaml")
		cfg := "output:\n  dir: " + filepath.Join(root, "from-config") + "\n"
		if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
			t.Fatal(err)
		}

		deps, _, _ := testDeps()
		if err := run(context.Background(), siteArgs(root, "-c", cfgPath), deps); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(root, "out", "page.html")); err != nil {
			t.Errorf("flag-directed output missing: %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "from-config")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("config output dir used despite flag: %v", err)
		}
	})

	t.Run("unknown highlight style is a usage error", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		deps, _, _ := testDeps()
		err := run(context.Background(), siteArgs(root, "--highlight", "no-such-style"), deps)
		if !errors.Is(err, config.ErrUnknownHighlight) {
			t.Fatalf("run() error = %v, want ErrUnknownHighlight", err)
		}
		if got := exitCodeFor(err); got != ExitUsage {
			t.Errorf("exitCodeFor() = %d, want %d", got, ExitUsage)
		}
	})

	t.Run("missing explicit config names the path", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		missing := filepath.Join(root, "absent.yaml")
		deps, _, _ := testDeps()
		err := run(context.Background(), siteArgs(root, "-c", missing), deps)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("run() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "absent.yaml") {
			t.Errorf("error %q does not name the config path", err)
		}
		if got := exitCodeFor(err); got != ExitUsage {
			t.Errorf("exitCodeFor() = %d, want %d", got, ExitUsage)
		}
	})
}

func TestRunBook(t *testing.T) {
	t.Parallel()

	t.Run("packages an epub", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeSource(t, filepath.Join(root, "markdown"), "_title.md", "<h1>My Book</h1>")
		writeSource(t, filepath.Join(root, "markdown"), "chapter-one.md", "<p>one</p>")
		epubPath := filepath.Join(root, "book.epub")

		deps, stdout, _ := testDeps()
		args := []string{
			"book",
			"-i", filepath.Join(root, "markdown"),
			"-o", filepath.Join(root, "out"),
			"-t", filepath.Join(root, "templates"),
			"--author", "Jane Roe",
			"--title", "My Book",
			"--epub", epubPath,
		}
		if err := run(context.Background(), args, deps); err != nil {
			t.Fatalf("run() unexpected error: %v", err)
		}

		info, err := os.Stat(epubPath)
		if err != nil {
			t.Fatalf("epub not written: %v", err)
		}
		if info.Size() == 0 {
			t.Error("epub is empty")
		}
		if !strings.Contains(stdout.String(), "packaged 2 documents") {
			t.Errorf("summary = %q", stdout.String())
		}
	})
}
