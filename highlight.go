package md2site

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeHighlighter colorizes fenced code content. Implementations return
// ok=false when the language is unknown so the renderer can fall back to
// plain escaped output.
type codeHighlighter interface {
	Highlight(source, lang string) (html string, ok bool)
}

// chromaHighlighter renders code through chroma with inline styles, so
// the emitted fragment needs no extra stylesheet. The surrounding
// <pre><code> wrapper stays ours; chroma only produces the span stream.
type chromaHighlighter struct {
	style string
}

// Compile-time interface check.
var _ codeHighlighter = (*chromaHighlighter)(nil)

// newChromaHighlighter creates a highlighter using the named chroma style.
// An unknown style name falls back to chroma's default.
func newChromaHighlighter(style string) *chromaHighlighter {
	return &chromaHighlighter{style: style}
}

// Highlight colorizes source for the given language token.
func (h *chromaHighlighter) Highlight(source, lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(h.style)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", false
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.PreventSurroundingPre(true),
	)
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}
