package md2site

import (
	"fmt"
	"html"
	"strings"
)

// imageBasePath is the fixed resolution root for ![[name.ext]] targets.
const imageBasePath = "../graphics/"

// codeBlockFormat wraps every fenced block with its own copy control. The
// button resolves its target through the adjacent <pre> sibling, so
// multiple blocks on one page cannot cross-wire.
const codeBlockFormat = `<div class="code-block"><button class="copy" onclick="copySibling(this)">Copy</button><pre><code class="language-%s">%s</code></pre></div>`

// calloutIcons maps callout kinds to their title icon entity.
var calloutIcons = map[string]string{
	"NOTE":      "&#8505;",
	"INFO":      "&#8505;",
	"TIP":       "&#128161;",
	"IMPORTANT": "&#10071;",
	"WARNING":   "&#9888;",
	"CAUTION":   "&#9888;",
	"DANGER":    "&#128293;",
}

// defaultCalloutIcon is used for unknown callout kinds.
const defaultCalloutIcon = "&#8505;"

// renderResult is the outcome of one body render.
type renderResult struct {
	Body     string
	UsesMath bool // math block or inline $..$ seen; consumed by the template layer
}

// bodyRenderer drives the line-by-line scan: it feeds each line to the
// classifier with the current parse state and assembles the emitted HTML
// fragments in scan order.
type bodyRenderer struct {
	highlighter codeHighlighter // nil keeps plain escaped code output
}

// RenderBody converts markdown into an HTML body fragment. It never
// fails: unterminated front matter swallows the remainder of the input,
// and unterminated fences, math blocks and callouts are implicitly closed
// at end of document.
func (r *bodyRenderer) RenderBody(markdown string) renderResult {
	var (
		res   renderResult
		state parseState
		out   []string

		codeLang  string
		codeLines []string
		mathLines []string

		inCallout    bool
		calloutKind  string
		calloutTitle string
		calloutBody  []string
	)

	for _, line := range strings.Split(markdown, "\n") {
		var cls lineClass
		cls, state = classify(line, state)

		// Leaving a callout flushes it before the current line's output.
		if inCallout && cls.kind != lineCalloutBody {
			out = append(out, buildCallout(calloutKind, calloutTitle, calloutBody))
			inCallout = false
			calloutBody = nil
		}

		switch cls.kind {
		case lineFrontMatterDelimiter, lineFrontMatterContent, lineBlank:
			// no output

		case lineFenceBoundary:
			if state.inCodeBlock {
				codeLang = cls.lang
				codeLines = nil
			} else {
				out = append(out, r.buildCodeBlock(codeLang, codeLines))
			}

		case lineCodeContent:
			codeLines = append(codeLines, cls.text)

		case lineMathBoundary:
			if !state.inMathBlock {
				out = append(out, buildMathBlock(mathLines))
				res.UsesMath = true
			} else {
				mathLines = nil
			}

		case lineMathContent:
			mathLines = append(mathLines, cls.text)

		case lineCalloutOpen:
			inCallout = true
			calloutKind = cls.calloutKind
			calloutTitle = cls.calloutTitle
			calloutBody = nil

		case lineCalloutBody:
			calloutBody = append(calloutBody, cls.text)

		case lineHeader:
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", cls.level, renderInline(cls.text), cls.level))

		case lineImage:
			name := html.EscapeString(cls.filename)
			out = append(out, fmt.Sprintf(`<img src="%s%s" alt="%s">`, imageBasePath, name, name))

		case lineText:
			if hasInlineMath(cls.text) {
				res.UsesMath = true
			}
			out = append(out, "<p>"+renderInline(cls.text)+"</p>")
		}
	}

	// End-of-document recovery for unterminated constructs.
	if inCallout {
		out = append(out, buildCallout(calloutKind, calloutTitle, calloutBody))
	}
	if state.inCodeBlock {
		out = append(out, r.buildCodeBlock(codeLang, codeLines))
	}
	if state.inMathBlock {
		out = append(out, buildMathBlock(mathLines))
		res.UsesMath = true
	}

	res.Body = strings.Join(out, "\n")
	return res
}

// buildCodeBlock emits the copy-button wrapper around escaped (or, when a
// highlighter is configured and knows the language, colorized) code. The
// raw lines are joined verbatim; inline markup never applies here.
func (r *bodyRenderer) buildCodeBlock(lang string, lines []string) string {
	source := strings.Join(lines, "\n")
	if r.highlighter != nil {
		if colored, ok := r.highlighter.Highlight(source, lang); ok {
			return fmt.Sprintf(codeBlockFormat, lang, colored)
		}
	}
	return fmt.Sprintf(codeBlockFormat, lang, html.EscapeString(source))
}

// buildMathBlock passes a $$ block through for client-side rendering.
// The content is not escaped; MathJax consumes it as written.
func buildMathBlock(lines []string) string {
	return "<p>$$\n" + strings.Join(lines, "\n") + "\n$$</p>"
}

// buildCallout emits an admonition block with a collapsible body.
func buildCallout(kind, title string, body []string) string {
	icon, ok := calloutIcons[strings.ToUpper(kind)]
	if !ok {
		icon = defaultCalloutIcon
	}

	var titleHTML string
	if title != "" {
		titleHTML = renderInline(title)
	}

	var b strings.Builder
	for _, line := range body {
		b.WriteString("<p>" + renderInline(line) + "</p>")
	}

	return fmt.Sprintf(
		`<div class="callout callout-%s"><div class="callout-title">%s %s<button class="toggle" onclick="toggleCallout(this)">-</button></div><div class="callout-body">%s</div></div>`,
		strings.ToLower(kind), icon, titleHTML, b.String(),
	)
}

// hasInlineMath reports whether a paragraph line carries a $..$ span.
func hasInlineMath(line string) bool {
	first := strings.Index(line, "$")
	if first == -1 {
		return false
	}
	return strings.Contains(line[first+1:], "$")
}
