package md2site

import (
	"github.com/alnah/go-md2site/internal/assets"
)

// PageKind selects the role of a generated page.
type PageKind int

const (
	// PageSingleton is a leaf article page with content only.
	PageSingleton PageKind = iota
	// PageHomepage aggregates links to child homepages and sibling articles.
	PageHomepage
)

// Math script inclusion modes.
const (
	MathAuto   = "auto"   // include scripts when math syntax is detected
	MathAlways = "always" // always include scripts
	MathNever  = "never"  // never include scripts
)

// SiblingLinks lists the navigation targets embedded into a homepage.
// Both groups are read-only inputs and keep caller order; the embedder
// never sorts.
type SiblingLinks struct {
	Homepages []string // child homepage directory names
	Articles  []string // sibling article names, with or without .md suffix
}

// Input contains conversion parameters for one page.
type Input struct {
	Markdown string        // raw markdown source
	Name     string        // source file name, used to derive a title
	Title    string        // explicit title; overrides front matter and Name
	Kind     PageKind      // PageSingleton (default) or PageHomepage
	Links    *SiblingLinks // required when Kind is PageHomepage
}

// Validate checks homepage preconditions. The text transform itself is
// total over all inputs; a missing sibling set is the only fatal input
// condition.
func (in Input) Validate() error {
	if in.Kind == PageHomepage && in.Links == nil {
		return ErrNilSiblingLinks
	}
	return nil
}

// Result holds one rendered page.
type Result struct {
	HTML     string // complete page wrapped in the site template
	Body     string // body fragment before template wrapping
	Title    string // resolved page title
	UsesMath bool   // whether math script tags were included
}

// Option configures a Service.
type Option func(*serviceConfig)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	loader         assets.AssetLoader
	template       string
	style          string
	mathMode       string
	highlight      bool
	highlightStyle string
}

// WithAssetLoader overrides the embedded template and style assets.
func WithAssetLoader(l assets.AssetLoader) Option {
	return func(cfg *serviceConfig) {
		cfg.loader = l
	}
}

// WithTemplate selects the page template by asset name.
func WithTemplate(name string) Option {
	return func(cfg *serviceConfig) {
		cfg.template = name
	}
}

// WithStyle selects the CSS style by asset name.
func WithStyle(name string) Option {
	return func(cfg *serviceConfig) {
		cfg.style = name
	}
}

// WithMathMode controls the math script tags in the page head: MathAuto,
// MathAlways or MathNever. The renderer only reports whether math syntax
// was seen; inclusion is decided at the template level.
func WithMathMode(mode string) Option {
	return func(cfg *serviceConfig) {
		cfg.mathMode = mode
	}
}

// WithHighlighting enables server-side syntax highlighting of fenced code
// blocks using the named chroma style. Blocks with an unknown language
// keep the plain escaped output.
func WithHighlighting(style string) Option {
	return func(cfg *serviceConfig) {
		cfg.highlight = true
		cfg.highlightStyle = style
	}
}
