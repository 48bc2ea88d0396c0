package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

// runConvert renders explicitly named files or directories as standalone
// pages. Unlike build, no homepage roles are assigned and no navigation
// links are embedded; every page is a singleton.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(&buildFlags{common: flags.common, assets: flags.assets, render: flags.render}, cfg)
	env.Config = cfg

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, flags.output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, inputPath)
	}

	svc, err := newService(cfg, env)
	if err != nil {
		return err
	}

	results := convertFiles(ctx, svc, files)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d page(s) failed", failedCount)
	}

	return nil
}

// newService creates one rendering service from the merged config.
func newService(cfg *config.Config, env *Environment) (*md2site.Service, error) {
	loader, err := resolveLoader(cfg, env)
	if err != nil {
		return nil, err
	}
	return md2site.New(serviceOptions(cfg, loader)...)
}

// discoverFiles finds markdown files to convert as singleton pages.
func discoverFiles(inputPath, outputDir string) ([]PageJob, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []PageJob{singletonJob(inputPath, outPath)}, nil
	}

	var jobs []PageJob
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isMarkdownFile(d.Name()) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		jobs = append(jobs, singletonJob(path, outPath))
		return nil
	})

	return jobs, err
}

// singletonJob plans one standalone page.
func singletonJob(inputPath, outputPath string) PageJob {
	return PageJob{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Name:       filepath.Base(inputPath),
		Kind:       md2site.PageSingleton,
	}
}

// resolveOutputPath determines the HTML output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".html")
	}

	if strings.HasSuffix(outputDir, ".html") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".html")
		}
	}

	return filepath.Join(outputDir, base+".html")
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// convertFiles renders singleton pages sequentially. Convert does no
// browser work, so parallelism buys nothing for explicit file lists.
func convertFiles(ctx context.Context, svc *md2site.Service, jobs []PageJob) []BuildResult {
	results := make([]BuildResult, len(jobs))
	b := &builder{conv: svc}
	for i, job := range jobs {
		if ctx.Err() != nil {
			results[i] = BuildResult{InputPath: job.InputPath, Err: ctx.Err()}
			continue
		}
		results[i] = buildPage(ctx, b, job, false)
	}
	return results
}
