package md2site

import (
	"strings"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// frontMatterMeta carries the metadata keys the generator understands.
// Unknown keys are ignored.
type frontMatterMeta struct {
	Title string `yaml:"title"`
}

// extractFrontMatter parses the leading front matter block, if any.
// Malformed YAML and unterminated blocks degrade to empty metadata; front
// matter never fails a conversion. Suppressing the block from rendered
// output is the renderer's job, not handled here.
func extractFrontMatter(markdown string) frontMatterMeta {
	var meta frontMatterMeta

	lines := strings.Split(markdown, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterMarker {
		return meta
	}

	var block []string
	closed := false
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == frontMatterMarker {
			closed = true
			break
		}
		block = append(block, line)
	}
	if !closed || len(block) == 0 {
		return meta
	}

	if err := yamlutil.Unmarshal([]byte(strings.Join(block, "\n")), &meta); err != nil {
		return frontMatterMeta{}
	}
	return meta
}
