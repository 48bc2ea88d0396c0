package md2site

import (
	"context"
	"html"
	"strings"
)

// linkEmbedder appends navigation links to a rendered homepage body.
type linkEmbedder interface {
	EmbedLinks(ctx context.Context, body string, links *SiblingLinks) (string, error)
}

// navEmbedder emits one link list per sibling group, homepages first,
// separated from the body by a rule. Pure post-processing: the body is
// never modified, only appended to.
type navEmbedder struct{}

// Compile-time interface check.
var _ linkEmbedder = navEmbedder{}

// EmbedLinks returns body followed by the navigation fragment. A nil
// links value is a precondition violation, the only fatal condition on
// the rendering path.
func (navEmbedder) EmbedLinks(ctx context.Context, body string, links *SiblingLinks) (string, error) {
	if links == nil {
		return "", ErrNilSiblingLinks
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	parts := []string{body, "<hr>"}

	if len(links.Homepages) > 0 {
		parts = append(parts, "<ul>")
		for _, dir := range links.Homepages {
			parts = append(parts, "<li>"+makeLink(dir, dir)+"</li>")
		}
		parts = append(parts, "</ul>")
	}

	if len(links.Articles) > 0 {
		parts = append(parts, "<ul>")
		for _, article := range links.Articles {
			name := articleName(article)
			parts = append(parts, "<li>"+makeLink(name+".html", name)+"</li>")
		}
		parts = append(parts, "</ul>")
	}

	return strings.Join(parts, "\n"), nil
}

// makeLink builds one anchor with escaped target and text.
func makeLink(href, text string) string {
	return `<a href="` + html.EscapeString(href) + `">` + html.EscapeString(text) + `</a>`
}

// articleName strips a markdown extension from an article identifier.
func articleName(name string) string {
	for _, ext := range []string{".md", ".markdown"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
