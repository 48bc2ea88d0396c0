package md2site

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/assets"
)

func TestNewTemplateWrapper(t *testing.T) {
	t.Parallel()

	t.Run("embedded defaults", func(t *testing.T) {
		t.Parallel()

		w, err := newTemplateWrapper(assets.NewEmbeddedLoader(), defaultTemplate, defaultStyle)
		if err != nil {
			t.Fatalf("newTemplateWrapper() error = %v", err)
		}
		if w.css == "" {
			t.Error("css is empty, want embedded default style")
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		_, err := newTemplateWrapper(assets.NewEmbeddedLoader(), "nope", defaultStyle)
		if !errors.Is(err, assets.ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("missing style", func(t *testing.T) {
		t.Parallel()

		_, err := newTemplateWrapper(assets.NewEmbeddedLoader(), defaultTemplate, "nope")
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("error = %v, want ErrStyleNotFound", err)
		}
	})
}

func TestWrapPage(t *testing.T) {
	t.Parallel()

	w, err := newTemplateWrapper(assets.NewEmbeddedLoader(), defaultTemplate, defaultStyle)
	if err != nil {
		t.Fatalf("newTemplateWrapper() error = %v", err)
	}

	t.Run("structure", func(t *testing.T) {
		t.Parallel()

		page, err := w.WrapPage(context.Background(), pageData{
			Title: "Test Page",
			Body:  template.HTML("<h1>Hi</h1>"),
		})
		if err != nil {
			t.Fatalf("WrapPage() error = %v", err)
		}

		for _, want := range []string{
			"<!DOCTYPE html>",
			"<title>Test Page</title>",
			"<h1>Hi</h1>",
			"<style>",
			"copySibling",
		} {
			if !strings.Contains(page, want) {
				t.Errorf("page missing %q", want)
			}
		}
		if strings.Contains(page, "MathJax-script") {
			t.Error("page includes math scripts without IncludeMath")
		}
	})

	t.Run("math scripts included on demand", func(t *testing.T) {
		t.Parallel()

		page, err := w.WrapPage(context.Background(), pageData{
			Title:       "Math",
			Body:        template.HTML("<p>$$x$$</p>"),
			IncludeMath: true,
		})
		if err != nil {
			t.Fatalf("WrapPage() error = %v", err)
		}
		if !strings.Contains(page, "MathJax-script") {
			t.Error("page missing MathJax script")
		}
		if !strings.Contains(page, "polyfill") {
			t.Error("page missing polyfill script")
		}
	})

	t.Run("title escaped", func(t *testing.T) {
		t.Parallel()

		page, err := w.WrapPage(context.Background(), pageData{
			Title: "A <b> & B",
			Body:  template.HTML(""),
		})
		if err != nil {
			t.Fatalf("WrapPage() error = %v", err)
		}
		if strings.Contains(page, "<title>A <b> & B</title>") {
			t.Error("title not escaped")
		}
		if !strings.Contains(page, "&lt;b&gt;") {
			t.Errorf("escaped title missing from page")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := w.WrapPage(ctx, pageData{Title: "x"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
