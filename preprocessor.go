package md2site

import (
	"context"
	"regexp"
)

// crlfOrCR matches Windows and legacy Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// markdownPreprocessor defines the contract for markdown preprocessing.
type markdownPreprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// lineEndingPreprocessor normalizes input before the line scan so the
// classifier only ever sees \n-terminated lines.
type lineEndingPreprocessor struct{}

// Preprocess converts \r\n and \r to \n.
func (lineEndingPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
