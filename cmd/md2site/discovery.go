package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/hints"
)

// Sentinel errors for site discovery.
var (
	ErrNoPages      = errors.New("no markdown pages found")
	ErrNotDirectory = errors.New("input is not a directory")
)

// homepageFile marks a directory as a homepage and becomes its index page.
const homepageFile = "README.md"

// PageJob is one markdown file scheduled for rendering, with the page
// role and sibling links already resolved from the directory layout.
type PageJob struct {
	InputPath  string
	OutputPath string
	Name       string
	Kind       md2site.PageKind
	Links      *md2site.SiblingLinks
}

// discoverSite walks a source tree and plans one job per page. A
// directory is a homepage when it holds a README.md; its README renders
// to index.html with links to child homepages and sibling articles, and
// every other markdown file in it renders next to it as an article.
// Directories without a README and hidden directories are not entered,
// so drafts can be parked in plain folders.
func discoverSite(root, outputDir string) ([]PageJob, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	if !isHomepageDir(root) {
		return nil, fmt.Errorf("%w in %s%s", ErrNoPages, root, hints.ForMissingHomepage(root))
	}

	var jobs []PageJob
	if err := collectPages(root, outputDir, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// collectPages plans the pages of one homepage directory, then recurses
// into child homepages. os.ReadDir returns entries sorted by name, which
// fixes the link order on every homepage.
func collectPages(dir, outDir string, jobs *[]PageJob) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	links := &md2site.SiblingLinks{}
	var homepagePath string

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			if isHomepageDir(filepath.Join(dir, name)) {
				links.Homepages = append(links.Homepages, name)
			}
			continue
		}

		if !isMarkdownFile(name) {
			continue
		}
		if strings.EqualFold(name, homepageFile) {
			homepagePath = filepath.Join(dir, name)
			continue
		}
		links.Articles = append(links.Articles, name)
	}

	*jobs = append(*jobs, PageJob{
		InputPath:  homepagePath,
		OutputPath: filepath.Join(outDir, "index.html"),
		Name:       homepageFile,
		Kind:       md2site.PageHomepage,
		Links:      links,
	})

	for _, article := range links.Articles {
		stem := strings.TrimSuffix(article, filepath.Ext(article))
		*jobs = append(*jobs, PageJob{
			InputPath:  filepath.Join(dir, article),
			OutputPath: filepath.Join(outDir, stem+".html"),
			Name:       article,
			Kind:       md2site.PageSingleton,
		})
	}

	for _, child := range links.Homepages {
		if err := collectPages(filepath.Join(dir, child), filepath.Join(outDir, child), jobs); err != nil {
			return err
		}
	}

	return nil
}

// isHomepageDir reports whether dir holds a README.md.
func isHomepageDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(entry.Name(), homepageFile) {
			return true
		}
	}
	return false
}

// isMarkdownFile reports whether name has a markdown extension.
func isMarkdownFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
