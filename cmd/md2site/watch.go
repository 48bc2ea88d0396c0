package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce collapses editor save bursts into one rebuild.
const defaultDebounce = 300 * time.Millisecond

// runWatch rebuilds the site whenever a markdown file under the source
// root changes. It blocks until the context is cancelled.
func runWatch(ctx context.Context, positionalArgs []string, flags *watchFlags, env *Environment) error {
	debounce := defaultDebounce
	if flags.debounce != "" {
		d, err := time.ParseDuration(flags.debounce)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidDuration, flags.debounce)
		}
		debounce = d
	}

	cfg, err := loadConfig(flags.build.common.config)
	if err != nil {
		return err
	}
	root, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.build.output, cfg, root)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, root, outputDir); err != nil {
		return err
	}

	log := env.Logger
	log.Info("watching for changes", "root", root, "output", outputDir)

	// Initial build so the output exists before the first edit.
	rebuild(ctx, positionalArgs, flags, env)

	var timer *time.Timer
	var pending []string
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, outputDir) {
				continue
			}

			// New directories join the watch set as they appear.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, event.Name, outputDir)
				}
			}

			pending = append(pending, event.Name)
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}

		case <-fire:
			timer = nil
			log.Info("change detected", "files", len(pending))
			pending = nil
			rebuild(ctx, positionalArgs, flags, env)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "err", err)
		}
	}
}

// rebuild runs one build pass, logging failures instead of exiting so
// the watch loop survives broken intermediate states.
func rebuild(ctx context.Context, args []string, flags *watchFlags, env *Environment) {
	start := time.Now()
	if err := runBuild(ctx, args, &flags.build, env); err != nil {
		env.Logger.Error("build failed", "err", err)
		return
	}
	env.Logger.Info("build complete", "duration", time.Since(start).Round(time.Millisecond))
}

// watchTree registers root and all its subdirectories, skipping the
// output directory and hidden directories.
func watchTree(watcher *fsnotify.Watcher, root, outputDir string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path == outputDir || (path != root && strings.HasPrefix(d.Name(), ".")) {
			return fs.SkipDir
		}
		return watcher.Add(path)
	})
}

// relevantEvent filters out noise: only markdown writes outside the
// output directory trigger a rebuild.
func relevantEvent(event fsnotify.Event, outputDir string) bool {
	if strings.HasPrefix(event.Name, outputDir+string(filepath.Separator)) {
		return false
	}
	if event.Op.Has(fsnotify.Create) {
		return true // may be a new directory; checked by the caller
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return isMarkdownFile(event.Name)
}
