package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDispatch(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := run(context.Background(), nil, env); code != ExitUsage {
			t.Errorf("run() = %d, want ExitUsage", code)
		}
		if !strings.Contains(stderr.String(), "Usage: md2site") {
			t.Errorf("stderr = %q, want usage text", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := run(context.Background(), []string{"version"}, env); code != ExitSuccess {
			t.Errorf("run() = %d, want ExitSuccess", code)
		}
		if !strings.Contains(stdout.String(), "md2site") {
			t.Errorf("stdout = %q, want version line", stdout.String())
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if code := run(context.Background(), []string{"help", "build"}, env); code != ExitSuccess {
			t.Errorf("run() = %d, want ExitSuccess", code)
		}
		if !strings.Contains(stdout.String(), "md2site build") {
			t.Errorf("stdout = %q, want build usage", stdout.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := run(context.Background(), []string{"frobnicate"}, env); code != ExitUsage {
			t.Errorf("run() = %d, want ExitUsage", code)
		}
		if !strings.Contains(stderr.String(), "Unknown command") {
			t.Errorf("stderr = %q, want unknown command message", stderr.String())
		}
	})

	t.Run("build end to end", func(t *testing.T) {
		t.Parallel()

		root := setupTestDir(t, map[string]string{
			"README.md": "# Home",
		})
		outDir := filepath.Join(t.TempDir(), "site")

		env, _, _ := testEnv()
		code := run(context.Background(), []string{"build", "-o", outDir, root}, env)
		if code != ExitSuccess {
			t.Errorf("run() = %d, want ExitSuccess", code)
		}
	})

	t.Run("build without input", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		code := run(context.Background(), []string{"build"}, env)
		if code != ExitIO {
			t.Errorf("run() = %d, want ExitIO", code)
		}
		if !strings.Contains(stderr.String(), "Error:") {
			t.Errorf("stderr = %q, want error line", stderr.String())
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		if code := run(context.Background(), []string{"build", "--nope"}, env); code != ExitUsage {
			t.Errorf("run() = %d, want ExitUsage", code)
		}
	})
}
