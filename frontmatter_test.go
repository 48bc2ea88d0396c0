package md2site

import (
	"testing"
)

func TestExtractFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		markdown  string
		wantTitle string
	}{
		{
			name:      "title extracted",
			markdown:  "---\ntitle: My Page\n---\nbody",
			wantTitle: "My Page",
		},
		{
			name:      "no front matter",
			markdown:  "# Just content",
			wantTitle: "",
		},
		{
			name:      "empty document",
			markdown:  "",
			wantTitle: "",
		},
		{
			name:      "unknown keys ignored",
			markdown:  "---\ntitle: Kept\ndate: 2024-01-01\ntags: [a, b]\n---\nbody",
			wantTitle: "Kept",
		},
		{
			name:      "unterminated block yields nothing",
			markdown:  "---\ntitle: Lost\nbody continues",
			wantTitle: "",
		},
		{
			name:      "empty block yields nothing",
			markdown:  "---\n---\nbody",
			wantTitle: "",
		},
		{
			name:      "marker not on first line is ignored",
			markdown:  "intro\n---\ntitle: Nope\n---",
			wantTitle: "",
		},
		{
			name:      "malformed yaml degrades to empty",
			markdown:  "---\ntitle: [unclosed\n---\nbody",
			wantTitle: "",
		},
		{
			name:      "quoted title",
			markdown:  "---\ntitle: \"Quoted: With Colon\"\n---\nbody",
			wantTitle: "Quoted: With Colon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := extractFrontMatter(tt.markdown)
			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
		})
	}
}
