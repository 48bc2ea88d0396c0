package md2site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/alnah/go-md2site/internal/assets"
)

// pageData feeds the site page template.
type pageData struct {
	Title       string
	CSS         template.CSS
	Body        template.HTML
	IncludeMath bool
}

// pageWrapper embeds a rendered body into the standalone page shell.
type pageWrapper interface {
	WrapPage(ctx context.Context, data pageData) (string, error)
}

// templateWrapper renders the shared html/template with the site CSS
// inlined into the head.
type templateWrapper struct {
	tmpl *template.Template
	css  string
}

// Compile-time interface check.
var _ pageWrapper = (*templateWrapper)(nil)

// newTemplateWrapper loads the page template and style through the asset
// loader and parses the template once for the lifetime of the service.
func newTemplateWrapper(loader assets.AssetLoader, templateName, styleName string) (*templateWrapper, error) {
	tmplContent, err := loader.LoadTemplate(templateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(templateName).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	css, err := loader.LoadStyle(styleName)
	if err != nil {
		return nil, err
	}

	return &templateWrapper{tmpl: tmpl, css: css}, nil
}

// WrapPage renders the full standalone page around the body fragment.
func (w *templateWrapper) WrapPage(ctx context.Context, data pageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data.CSS = template.CSS(w.css)

	var buf bytes.Buffer
	if err := w.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
