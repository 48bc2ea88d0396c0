package md2site

import (
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/alnah/go-md2site/internal/assets"
)

// Default asset names and modes.
const (
	defaultTemplate = "page"
	defaultStyle    = "default"
	defaultMathMode = MathAuto
)

// defaultTitle is used when no title can be resolved from input.
const defaultTitle = "Document"

// Service orchestrates the markdown-to-page pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	renderer     *bodyRenderer
	embedder     linkEmbedder
	wrapper      pageWrapper
}

// New creates a Service with default configuration: embedded assets,
// MathAuto, highlighting off. Use options to customize behavior.
func New(opts ...Option) (*Service, error) {
	cfg := serviceConfig{
		loader:   assets.NewEmbeddedLoader(),
		template: defaultTemplate,
		style:    defaultStyle,
		mathMode: defaultMathMode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.mathMode {
	case MathAuto, MathAlways, MathNever:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMathMode, cfg.mathMode)
	}

	renderer := &bodyRenderer{}
	if cfg.highlight {
		renderer.highlighter = newChromaHighlighter(cfg.highlightStyle)
	}

	wrapper, err := newTemplateWrapper(cfg.loader, cfg.template, cfg.style)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:          cfg,
		preprocessor: lineEndingPreprocessor{},
		renderer:     renderer,
		embedder:     navEmbedder{},
		wrapper:      wrapper,
	}, nil
}

// Convert renders one markdown document into a standalone HTML page.
// The transform is total over input text; the only input error is a
// homepage without sibling links. Each call owns its parse state, so
// concurrent Convert calls are independent.
func (s *Service) Convert(ctx context.Context, input Input) (Result, error) {
	if err := input.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	content := s.preprocessor.Preprocess(ctx, input.Markdown)
	meta := extractFrontMatter(content)

	rendered := s.renderer.RenderBody(content)
	body := rendered.Body

	if input.Kind == PageHomepage {
		var err error
		body, err = s.embedder.EmbedLinks(ctx, body, input.Links)
		if err != nil {
			return Result{}, err
		}
	}

	title := resolveTitle(input, meta)
	includeMath := s.includeMath(rendered.UsesMath)

	page, err := s.wrapper.WrapPage(ctx, pageData{
		Title:       title,
		Body:        template.HTML(body), // #nosec G203 -- body is produced by our renderer, already escaped
		IncludeMath: includeMath,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{HTML: page, Body: body, Title: title, UsesMath: includeMath}, nil
}

// includeMath applies the configured math mode to the renderer's finding.
func (s *Service) includeMath(usesMath bool) bool {
	switch s.cfg.mathMode {
	case MathAlways:
		return true
	case MathNever:
		return false
	default:
		return usesMath
	}
}

// resolveTitle picks the page title: explicit input, then front matter,
// then a title derived from the source file name.
func resolveTitle(input Input, meta frontMatterMeta) string {
	if input.Title != "" {
		return input.Title
	}
	if meta.Title != "" {
		return meta.Title
	}
	return deriveTitle(input.Name)
}

// deriveTitle turns a file name into a display title: extension stripped,
// underscores become spaces, words title-cased.
func deriveTitle(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")

	words := strings.Fields(base)
	if len(words) == 0 {
		return defaultTitle
	}
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
