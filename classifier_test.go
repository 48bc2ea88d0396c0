package md2site

import (
	"testing"
)

func TestClassifySingleLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantKind lineKind
		wantText string
	}{
		{
			name:     "plain text",
			line:     "Just a sentence.",
			wantKind: lineText,
			wantText: "Just a sentence.",
		},
		{
			name:     "blank line",
			line:     "",
			wantKind: lineBlank,
		},
		{
			name:     "whitespace only is blank",
			line:     "   \t  ",
			wantKind: lineBlank,
		},
		{
			name:     "header",
			line:     "# Title",
			wantKind: lineHeader,
			wantText: "Title",
		},
		{
			name:     "header without space",
			line:     "##Tight",
			wantKind: lineHeader,
			wantText: "Tight",
		},
		{
			name:     "fence opener",
			line:     "```go",
			wantKind: lineFenceBoundary,
		},
		{
			name:     "math opener",
			line:     "$$",
			wantKind: lineMathBoundary,
		},
		{
			name:     "image",
			line:     "![[diagram.png]]",
			wantKind: lineImage,
		},
		{
			name:     "callout opener",
			line:     "> [!NOTE] Heads up",
			wantKind: lineCalloutOpen,
		},
		{
			name:     "plain blockquote is text",
			line:     "> just a quote",
			wantKind: lineText,
			wantText: "> just a quote",
		},
		{
			name:     "inline code stays text",
			line:     "use `go build` here",
			wantKind: lineText,
			wantText: "use `go build` here",
		},
		{
			name:     "indented fence is text",
			line:     "  ```go",
			wantKind: lineText,
			wantText: "  ```go",
		},
		{
			name:     "fence with trailing content is text",
			line:     "```go fmt.Println()",
			wantKind: lineText,
			wantText: "```go fmt.Println()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cls, _ := classify(tt.line, parseState{started: true})
			if cls.kind != tt.wantKind {
				t.Errorf("kind = %d, want %d", cls.kind, tt.wantKind)
			}
			if tt.wantText != "" && cls.text != tt.wantText {
				t.Errorf("text = %q, want %q", cls.text, tt.wantText)
			}
		})
	}
}

func TestClassifyHeaderLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantLevel int
		wantText  string
	}{
		{name: "h1", line: "# One", wantLevel: 1, wantText: "One"},
		{name: "h3", line: "### Three", wantLevel: 3, wantText: "Three"},
		{name: "h6", line: "###### Six", wantLevel: 6, wantText: "Six"},
		{name: "seven hashes caps at six", line: "####### Deep", wantLevel: 6, wantText: "# Deep"},
		{name: "ten hashes caps at six", line: "########## Deeper", wantLevel: 6, wantText: "#### Deeper"},
		{name: "empty header text", line: "##", wantLevel: 2, wantText: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cls, _ := classify(tt.line, parseState{started: true})
			if cls.kind != lineHeader {
				t.Fatalf("kind = %d, want lineHeader", cls.kind)
			}
			if cls.level != tt.wantLevel {
				t.Errorf("level = %d, want %d", cls.level, tt.wantLevel)
			}
			if cls.text != tt.wantText {
				t.Errorf("text = %q, want %q", cls.text, tt.wantText)
			}
		})
	}
}

func TestClassifyImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		line         string
		wantKind     lineKind
		wantFilename string
	}{
		{
			name:         "bare image",
			line:         "![[pic.png]]",
			wantKind:     lineImage,
			wantFilename: "pic.png",
		},
		{
			name:         "image with surrounding whitespace",
			line:         "  ![[pic.png]]  ",
			wantKind:     lineImage,
			wantFilename: "pic.png",
		},
		{
			name:         "size option discarded",
			line:         "![[pic.png|300]]",
			wantKind:     lineImage,
			wantFilename: "pic.png",
		},
		{
			name:     "image with leading text is paragraph",
			line:     "see ![[pic.png]]",
			wantKind: lineText,
		},
		{
			name:     "image with trailing text is paragraph",
			line:     "![[pic.png]] caption",
			wantKind: lineText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cls, _ := classify(tt.line, parseState{started: true})
			if cls.kind != tt.wantKind {
				t.Errorf("kind = %d, want %d", cls.kind, tt.wantKind)
			}
			if tt.wantFilename != "" && cls.filename != tt.wantFilename {
				t.Errorf("filename = %q, want %q", cls.filename, tt.wantFilename)
			}
		})
	}
}

func TestClassifyFrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("opens only on first line", func(t *testing.T) {
		t.Parallel()

		cls, state := classify("---", parseState{})
		if cls.kind != lineFrontMatterDelimiter {
			t.Fatalf("kind = %d, want lineFrontMatterDelimiter", cls.kind)
		}
		if !state.inFrontMatter {
			t.Error("state.inFrontMatter = false, want true")
		}

		cls, state = classify("title: Hello", state)
		if cls.kind != lineFrontMatterContent {
			t.Errorf("kind = %d, want lineFrontMatterContent", cls.kind)
		}

		cls, state = classify("---", state)
		if cls.kind != lineFrontMatterDelimiter {
			t.Errorf("kind = %d, want lineFrontMatterDelimiter", cls.kind)
		}
		if state.inFrontMatter {
			t.Error("state.inFrontMatter = true after close, want false")
		}
	})

	t.Run("mid-document dashes are text", func(t *testing.T) {
		t.Parallel()

		cls, _ := classify("---", parseState{started: true})
		if cls.kind != lineText {
			t.Errorf("kind = %d, want lineText", cls.kind)
		}
	})
}

func TestClassifyFencePrecedence(t *testing.T) {
	t.Parallel()

	// A header line inside an open fence is code, not a header.
	state := parseState{started: true}
	_, state = classify("```python", state)
	if !state.inCodeBlock {
		t.Fatal("state.inCodeBlock = false after opener")
	}

	cls, state := classify("# not a header", state)
	if cls.kind != lineCodeContent {
		t.Errorf("kind = %d, want lineCodeContent", cls.kind)
	}
	if cls.text != "# not a header" {
		t.Errorf("text = %q, want raw line", cls.text)
	}

	// Blank lines inside a fence are code, not blank.
	cls, state = classify("", state)
	if cls.kind != lineCodeContent {
		t.Errorf("blank in fence: kind = %d, want lineCodeContent", cls.kind)
	}

	cls, state = classify("```", state)
	if cls.kind != lineFenceBoundary {
		t.Errorf("kind = %d, want lineFenceBoundary", cls.kind)
	}
	if state.inCodeBlock {
		t.Error("state.inCodeBlock = true after close")
	}
}

func TestClassifyMathBlock(t *testing.T) {
	t.Parallel()

	state := parseState{started: true}
	_, state = classify("$$", state)
	if !state.inMathBlock {
		t.Fatal("state.inMathBlock = false after opener")
	}

	cls, state := classify(`\frac{a}{b}`, state)
	if cls.kind != lineMathContent {
		t.Errorf("kind = %d, want lineMathContent", cls.kind)
	}

	// Markup inside a math block is raw content.
	cls, state = classify("# not a header", state)
	if cls.kind != lineMathContent {
		t.Errorf("kind = %d, want lineMathContent", cls.kind)
	}

	cls, state = classify("$$", state)
	if cls.kind != lineMathBoundary {
		t.Errorf("kind = %d, want lineMathBoundary", cls.kind)
	}
	if state.inMathBlock {
		t.Error("state.inMathBlock = true after close")
	}
}

func TestClassifyCallout(t *testing.T) {
	t.Parallel()

	state := parseState{started: true}
	cls, state := classify("> [!WARNING] Careful", state)
	if cls.kind != lineCalloutOpen {
		t.Fatalf("kind = %d, want lineCalloutOpen", cls.kind)
	}
	if cls.calloutKind != "WARNING" {
		t.Errorf("calloutKind = %q, want %q", cls.calloutKind, "WARNING")
	}
	if cls.calloutTitle != "Careful" {
		t.Errorf("calloutTitle = %q, want %q", cls.calloutTitle, "Careful")
	}

	cls, state = classify("> body line", state)
	if cls.kind != lineCalloutBody {
		t.Errorf("kind = %d, want lineCalloutBody", cls.kind)
	}
	if cls.text != "body line" {
		t.Errorf("text = %q, want %q", cls.text, "body line")
	}

	// First non-quote line leaves the callout.
	cls, state = classify("after", state)
	if cls.kind != lineText {
		t.Errorf("kind = %d, want lineText", cls.kind)
	}
	if state.inCallout {
		t.Error("state.inCallout = true after leaving")
	}
}
