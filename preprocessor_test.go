package md2site

import (
	"context"
	"testing"
)

func TestPreprocessLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "unix untouched", in: "a\nb", want: "a\nb"},
		{name: "windows normalized", in: "a\r\nb", want: "a\nb"},
		{name: "classic mac normalized", in: "a\rb", want: "a\nb"},
		{name: "mixed endings", in: "a\r\nb\rc\nd", want: "a\nb\nc\nd"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := lineEndingPreprocessor{}.Preprocess(context.Background(), tt.in)
			if got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
