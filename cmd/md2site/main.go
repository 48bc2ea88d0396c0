package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS silently; container limits are respected.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// run dispatches the command line to a subcommand and maps the outcome
// to an exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "build":
		flags, positional, err := parseBuildFlags(rest)
		if err != nil {
			return ExitUsage
		}
		return report(runBuild(ctx, positional, flags, env), env)

	case "convert":
		flags, positional, err := parseConvertFlags(rest)
		if err != nil {
			return ExitUsage
		}
		return report(runConvert(ctx, positional, flags, env), env)

	case "watch":
		flags, positional, err := parseWatchFlags(rest)
		if err != nil {
			return ExitUsage
		}
		return report(runWatch(ctx, positional, flags, env), env)

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return ExitSuccess

	case "help", "--help", "-h":
		runHelp(rest, env)
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// report prints a command error with contextual hints and converts it
// to an exit code.
func report(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// hintFor picks an actionable hint for well-known failure classes.
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2site.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, md2site.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
