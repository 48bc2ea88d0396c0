package md2site

import (
	"regexp"
	"strings"
)

// Inline substitution rules, applied in this exact order. Code spans go
// first so backticked text is wrapped before the emphasis passes see it.
// Strong and underline run before the single-delimiter emphasis rules,
// which keeps ** and __ from being read as two adjacent emphasis markers.
var inlineRules = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile("`([^`]+)`"), "<code>$1</code>"},
	{regexp.MustCompile(`\*\*([^*]+)\*\*`), "<strong>$1</strong>"},
	{regexp.MustCompile(`__([^_]+)__`), "<u>$1</u>"},
	{regexp.MustCompile(`\*([^*]+)\*`), "<em>$1</em>"},
	{regexp.MustCompile(`_([^_]+)_`), "<em>$1</em>"},
}

// textEscaper escapes markup-significant characters in body text. Quotes
// are left alone; attribute values go through html.EscapeString instead.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// renderInline escapes text and replaces inline markers with their HTML
// equivalents. At most one substitution happens per matched span and no
// nesting is attempted; unterminated markers stay literal text. Applied
// to headers, paragraphs and callout content only, never inside fences.
func renderInline(text string) string {
	text = textEscaper.Replace(text)
	for _, rule := range inlineRules {
		text = rule.pattern.ReplaceAllString(text, rule.repl)
	}
	return text
}
