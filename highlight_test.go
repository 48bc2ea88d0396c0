package md2site

import (
	"strings"
	"testing"
)

func TestChromaHighlight(t *testing.T) {
	t.Parallel()

	t.Run("known language", func(t *testing.T) {
		t.Parallel()

		h := newChromaHighlighter("github")
		got, ok := h.Highlight(`fmt.Println("hi")`, "go")
		if !ok {
			t.Fatal("Highlight() ok = false, want true")
		}
		if !strings.Contains(got, "<span") {
			t.Errorf("Highlight() = %q, want span markup", got)
		}
		if strings.Contains(got, "<pre") {
			t.Errorf("Highlight() = %q, must not wrap in <pre>", got)
		}
	})

	t.Run("unknown language falls back", func(t *testing.T) {
		t.Parallel()

		h := newChromaHighlighter("github")
		_, ok := h.Highlight("whatever", "nosuchlang")
		if ok {
			t.Error("Highlight() ok = true, want false for unknown language")
		}
	})

	t.Run("empty language falls back", func(t *testing.T) {
		t.Parallel()

		h := newChromaHighlighter("github")
		_, ok := h.Highlight("plain", "")
		if ok {
			t.Error("Highlight() ok = true, want false for empty language")
		}
	})

	t.Run("unknown style uses fallback", func(t *testing.T) {
		t.Parallel()

		h := newChromaHighlighter("definitely-not-a-style")
		_, ok := h.Highlight("x = 1", "python")
		if !ok {
			t.Error("Highlight() ok = false, want true with fallback style")
		}
	})
}

func TestRendererWithHighlighter(t *testing.T) {
	t.Parallel()

	r := &bodyRenderer{highlighter: newChromaHighlighter("github")}
	got := r.RenderBody("```go\nreturn nil\n```").Body

	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("Body missing language class: %q", got)
	}
	if !strings.Contains(got, "<span") {
		t.Errorf("Body missing highlighted spans: %q", got)
	}
	if !strings.Contains(got, `onclick="copySibling(this)"`) {
		t.Errorf("Body missing copy button: %q", got)
	}
}
