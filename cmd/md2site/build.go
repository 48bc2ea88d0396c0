package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWritePage          = errors.New("failed to write page")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidDuration    = errors.New("invalid duration")
)

// maxWorkers bounds the --workers flag.
const maxWorkers = 32

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultOutputDirName is used when neither flag nor config set an output.
const defaultOutputDirName = "site"

// BuildResult holds the outcome of a single page build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runBuild renders a whole source tree into a static site.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	env.Config = cfg

	root, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg, root)

	jobs, err := discoverSite(root, outputDir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	pool, err := newBuilderPool(flags.workers, cfg, env)
	if err != nil {
		return err
	}
	defer pool.Close()

	results := buildBatch(ctx, pool, jobs, cfg.PDF.Enabled)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d page(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the named config, or defaults when no name is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.assets.style != "" {
		cfg.CSS.Style = flags.assets.style
	}
	if flags.assets.template != "" {
		cfg.Assets.Template = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.render.math != "" {
		cfg.Site.Math = flags.render.math
	}
	if flags.render.highlight {
		cfg.Site.Highlight.Enabled = true
	}
	if flags.render.highlightStyle != "" {
		cfg.Site.Highlight.Style = flags.render.highlightStyle
		cfg.Site.Highlight.Enabled = true
	}
	if flags.pdf.enabled {
		cfg.PDF.Enabled = true
	}
	if flags.pdf.timeout != "" {
		if d, err := time.ParseDuration(flags.pdf.timeout); err == nil && d > 0 {
			cfg.PDF.Timeout = d
		}
	}
}

// resolveInputPath determines the source root from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag, config, or
// a "site" directory beside the source root.
func resolveOutputDir(flagOutput string, cfg *config.Config, root string) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir
	}
	return filepath.Join(root, defaultOutputDirName)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// newBuilderPool creates a pool whose factory builds services from the
// merged config. Service options are identical per worker.
func newBuilderPool(flagWorkers int, cfg *config.Config, env *Environment) (*BuilderPool, error) {
	loader, err := resolveLoader(cfg, env)
	if err != nil {
		return nil, err
	}
	opts := serviceOptions(cfg, loader)

	factory := func() (*builder, error) {
		svc, err := md2site.New(opts...)
		if err != nil {
			return nil, err
		}
		b := &builder{conv: svc}
		if cfg.PDF.Enabled {
			b.pdf = md2site.NewPDFExporter(cfg.PDF.Timeout)
		}
		return b, nil
	}

	return NewBuilderPool(resolvePoolSize(flagWorkers), factory), nil
}

// resolveLoader picks the asset loader: custom directory when configured,
// otherwise the environment default.
func resolveLoader(cfg *config.Config, env *Environment) (assets.AssetLoader, error) {
	if cfg.Assets.BasePath == "" {
		return env.AssetLoader, nil
	}
	return assets.NewFilesystemLoader(cfg.Assets.BasePath)
}

// serviceOptions converts merged config into service options.
func serviceOptions(cfg *config.Config, loader assets.AssetLoader) []md2site.Option {
	opts := []md2site.Option{md2site.WithAssetLoader(loader)}

	if cfg.CSS.Style != "" {
		opts = append(opts, md2site.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.Template != "" {
		opts = append(opts, md2site.WithTemplate(cfg.Assets.Template))
	}
	if cfg.Site.Math != "" {
		opts = append(opts, md2site.WithMathMode(strings.ToLower(cfg.Site.Math)))
	}
	if cfg.Site.Highlight.Enabled {
		opts = append(opts, md2site.WithHighlighting(cfg.Site.Highlight.Style))
	}

	return opts
}

// buildBatch renders pages concurrently using the builder pool.
func buildBatch(ctx context.Context, pool Pool, jobs []PageJob, exportPDF bool) []BuildResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]BuildResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			b, err := pool.Acquire()
			if err != nil {
				for idx := range queue {
					results[idx] = BuildResult{InputPath: jobs[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(b)

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						InputPath: jobs[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = buildPage(ctx, b, jobs[idx], exportPDF)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// buildPage renders a single page and returns the result.
func buildPage(ctx context.Context, b *builder, job PageJob, exportPDF bool) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
	}

	content, err := os.ReadFile(job.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := b.conv.Convert(ctx, md2site.Input{
		Markdown: string(content),
		Name:     job.Name,
		Kind:     job.Kind,
		Links:    job.Links,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(job.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- generated pages are meant to be readable
	if err := os.WriteFile(job.OutputPath, []byte(res.HTML), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	if exportPDF && b.pdf != nil {
		pdfPath := strings.TrimSuffix(job.OutputPath, ".html") + ".pdf"
		pdfBytes, err := b.pdf.ExportHTML(ctx, res.HTML)
		if err != nil {
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(pdfPath, pdfBytes, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	result.Duration = time.Since(start)
	return result
}

// printResults outputs build results using the environment writers.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
