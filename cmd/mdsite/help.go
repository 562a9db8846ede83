package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  site       Generate a static website from the source tree")
	fmt.Fprintln(w, "  book       Package the source tree into an EPUB")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printSiteUsage prints usage for the site command.
func printSiteUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite site [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a static website: Markdown becomes templated HTML,")
	fmt.Fprintln(w, "everything else is copied as-is, mirroring the source tree.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <dir>       Source directory (default \"markdown\")")
	fmt.Fprintln(w, "  -o, --output <dir>      Output directory (default \"_website\")")
	fmt.Fprintln(w, "  -t, --templates <dir>   Template directory (default \"templates\")")
	fmt.Fprintln(w, "      --highlight <name>  Syntax highlight style for fenced code")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-file progress")
}

// printBookUsage prints usage for the book command.
func printBookUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite book [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Package the source tree into a single EPUB. File stems select")
	fmt.Fprintln(w, "roles: cover/_cover is the cover image, title/_title the title")
	fmt.Fprintln(w, "page; everything else becomes a numbered chapter in scan order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <dir>       Source directory (default \"markdown\")")
	fmt.Fprintln(w, "  -o, --output <dir>      Output directory (default \"_website\")")
	fmt.Fprintln(w, "  -t, --templates <dir>   Template directory (default \"templates\")")
	fmt.Fprintln(w, "      --author <name>     Book author")
	fmt.Fprintln(w, "      --title <text>      Book title")
	fmt.Fprintln(w, "      --epub <path>       Book package path (default \"book.epub\")")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-file progress")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "site":
		printSiteUsage(deps.Stdout)
	case "book":
		printBookUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: mdsite version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
