// Package md2site converts a restricted Markdown dialect into standalone
// HTML pages.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc, err := md2site.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Name:     "hello.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(result.HTML), 0644)
//
// The result contains the complete page (result.HTML) and the body
// fragment before template wrapping (result.Body).
//
// # Dialect
//
// The converter is intentionally not a CommonMark parser. It scans input
// line by line and understands a fixed set of constructs:
//
//   - YAML front matter delimited by lines containing only ---
//   - ATX headers # through ###### (seven or more # clamp to h6)
//   - fenced code blocks ```lang with a per-block copy button
//   - Obsidian-style images ![[name.ext]] resolved against ../graphics/
//   - callout blocks > [!NOTE] with a collapsible body
//   - $$ math blocks passed through for client-side rendering
//   - inline `code`, **strong**, __underline__, *em* and _em_
//
// Every other non-blank line becomes its own paragraph. Lines are never
// merged, nesting is never attempted, and malformed markers are kept as
// literal text; conversion succeeds for any input string.
//
// # Page Roles
//
// A singleton article renders content only. A homepage additionally gets
// navigation links to child homepages and sibling articles appended after
// the body:
//
//	result, err := svc.Convert(ctx, md2site.Input{
//	    Markdown: readme,
//	    Kind:     md2site.PageHomepage,
//	    Links: &md2site.SiblingLinks{
//	        Homepages: []string{"docs"},
//	        Articles:  []string{"Pipeline_example.md"},
//	    },
//	})
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := md2site.New(
//	    md2site.WithStyle("default"),
//	    md2site.WithMathMode(md2site.MathAlways),
//	    md2site.WithHighlighting("github"),
//	)
//
// # Concurrency
//
// A Service is safe for concurrent use. Every Convert call owns its parse
// state and discards it on return, so batch callers may convert many
// documents in parallel without locking.
//
// # PDF Export
//
// PDFExporter renders a generated page to PDF through headless Chrome
// (go-rod). The browser is optional and never touched by the HTML path;
// rod downloads a managed Chromium on first run if none is found. Set
// ROD_BROWSER_BIN to use a custom binary.
package md2site
