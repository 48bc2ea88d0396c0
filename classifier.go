package md2site

import (
	"regexp"
	"strings"
)

// frontMatterMarker delimits the metadata block at the top of a document.
const frontMatterMarker = "---"

// Line classification patterns, consulted in classify's precedence order.
var (
	reFence   = regexp.MustCompile("^```(\\w*)\\s*$")
	reMath    = regexp.MustCompile(`^\$\$\s*$`)
	reCallout = regexp.MustCompile(`^>\s*\[!(\w+)\]\s*(.*)$`)
	reHeader  = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)
	reImage   = regexp.MustCompile(`^\s*!\[\[([^|\]]+)(?:\|[^]]*)?\]\]\s*$`)
)

// lineKind enumerates the constructs a single input line can belong to.
// Every line classifies to exactly one kind.
type lineKind int

const (
	lineFrontMatterDelimiter lineKind = iota
	lineFrontMatterContent            // metadata, consumed without output
	lineBlank
	lineFenceBoundary
	lineCodeContent // raw line inside an open fence
	lineMathBoundary
	lineMathContent // raw line inside an open math block
	lineCalloutOpen
	lineCalloutBody
	lineHeader
	lineImage
	lineText
)

// parseState tracks multi-line constructs during one document scan. The
// zero value is the state at the start of a document. Front matter can
// only be entered before the first body line and never re-enters once
// closed; fence and math state toggle in pairs.
type parseState struct {
	started       bool
	inFrontMatter bool
	inCodeBlock   bool
	inMathBlock   bool
	inCallout     bool
}

// lineClass is the classification of one line. Only the fields matching
// the kind are populated.
type lineClass struct {
	kind lineKind

	level        int    // header level, 1..6
	text         string // header/paragraph text, raw content, callout body
	lang         string // fence language token, may be empty
	filename     string // image target
	calloutKind  string
	calloutTitle string
}

// classify assigns a lineKind to line given the current state and returns
// the updated state. The first matching rule wins, so specific patterns
// are checked before general ones. Checks for open fences and math blocks
// come before the blank check: blank lines inside those regions are raw
// content, not Blank.
func classify(line string, state parseState) (lineClass, parseState) {
	trimmed := strings.TrimSpace(line)

	if !state.started && trimmed == frontMatterMarker {
		state.started = true
		state.inFrontMatter = true
		return lineClass{kind: lineFrontMatterDelimiter}, state
	}
	state.started = true

	if state.inFrontMatter {
		if trimmed == frontMatterMarker {
			state.inFrontMatter = false
			return lineClass{kind: lineFrontMatterDelimiter}, state
		}
		return lineClass{kind: lineFrontMatterContent, text: line}, state
	}

	if state.inCodeBlock {
		if reFence.MatchString(line) {
			state.inCodeBlock = false
			return lineClass{kind: lineFenceBoundary}, state
		}
		return lineClass{kind: lineCodeContent, text: line}, state
	}

	if state.inMathBlock {
		if reMath.MatchString(line) {
			state.inMathBlock = false
			return lineClass{kind: lineMathBoundary}, state
		}
		return lineClass{kind: lineMathContent, text: line}, state
	}

	if state.inCallout {
		// Any > line continues the callout, including further [!KIND]
		// markers; the first line without a > marker leaves it.
		if strings.HasPrefix(line, ">") {
			return lineClass{kind: lineCalloutBody, text: strings.TrimLeft(line[1:], " \t")}, state
		}
		state.inCallout = false
	}

	if trimmed == "" {
		return lineClass{kind: lineBlank}, state
	}

	if m := reCallout.FindStringSubmatch(line); m != nil {
		state.inCallout = true
		return lineClass{
			kind:         lineCalloutOpen,
			calloutKind:  m[1],
			calloutTitle: strings.TrimSpace(m[2]),
		}, state
	}

	if m := reFence.FindStringSubmatch(line); m != nil {
		state.inCodeBlock = true
		return lineClass{kind: lineFenceBoundary, lang: m[1]}, state
	}

	if reMath.MatchString(line) {
		state.inMathBlock = true
		return lineClass{kind: lineMathBoundary}, state
	}

	if m := reHeader.FindStringSubmatch(line); m != nil {
		return lineClass{kind: lineHeader, level: len(m[1]), text: strings.TrimSpace(m[2])}, state
	}

	if m := reImage.FindStringSubmatch(line); m != nil {
		return lineClass{kind: lineImage, filename: strings.TrimSpace(m[1])}, state
	}

	return lineClass{kind: lineText, text: line}, state
}
