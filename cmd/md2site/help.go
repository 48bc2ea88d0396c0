package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render a source tree into a static site")
	fmt.Fprintln(w, "  convert    Render individual markdown files to HTML")
	fmt.Fprintln(w, "  watch      Rebuild the site on source changes")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a source tree into a static site.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A directory with a README.md is a homepage: its README renders to")
	fmt.Fprintln(w, "index.html with links to child homepages and sibling articles, and")
	fmt.Fprintln(w, "every other markdown file renders next to it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Source root (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>         Output directory (default: <dir>/site)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --math <mode>          Math scripts: auto, always, never")
	fmt.Fprintln(w, "      --highlight            Highlight fenced code blocks")
	fmt.Fprintln(w, "      --highlight-style <s>  Highlight color scheme")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --style <name>         CSS style name")
	fmt.Fprintln(w, "      --template <name>      Page template name")
	fmt.Fprintln(w, "      --asset-path <dir>     Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF Export:")
	fmt.Fprintln(w, "      --pdf                  Also export each page as PDF")
	fmt.Fprintln(w, "      --pdf-timeout <d>      PDF render timeout per page (e.g., 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to standalone HTML pages. No homepage roles")
	fmt.Fprintln(w, "are assigned and no navigation links are embedded.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "      --math <mode>          Math scripts: auto, always, never")
	fmt.Fprintln(w, "      --highlight            Highlight fenced code blocks")
	fmt.Fprintln(w, "      --highlight-style <s>  Highlight color scheme")
	fmt.Fprintln(w, "      --style <name>         CSS style name")
	fmt.Fprintln(w, "      --template <name>      Page template name")
	fmt.Fprintln(w, "      --asset-path <dir>     Custom asset directory")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site watch <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rebuild the site whenever a markdown file changes. Runs until")
	fmt.Fprintln(w, "interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>         Output directory (default: <dir>/site)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --debounce <d>         Rebuild debounce window (default: 300ms)")
	fmt.Fprintln(w, "      --math <mode>          Math scripts: auto, always, never")
	fmt.Fprintln(w, "      --highlight            Highlight fenced code blocks")
	fmt.Fprintln(w, "      --style <name>         CSS style name")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
