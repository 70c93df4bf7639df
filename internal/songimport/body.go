package songimport

import (
	"regexp"
	"strings"
)

var excessBlankRe = regexp.MustCompile(`\n{3,}`)

// HasGroupHeadings reports whether any non-blank line is a section
// heading.
func HasGroupHeadings(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if IsHeading(line) {
			return true
		}
	}
	return false
}

// HasGroupHeadingsText is the single-block form of HasGroupHeadings: the
// text is normalized and split on newlines first.
func HasGroupHeadingsText(text string) bool {
	return HasGroupHeadings(strings.Split(NormalizeLineEndings(text), "\n"))
}

// assembleBody builds the final lyric body from the lines that survived
// header extraction. When the lines contain section headings the body is
// segmented into heading-delimited blocks joined by blank lines; otherwise
// it is flattened into a single block with blank runs collapsed.
func assembleBody(lines []string) (string, bool) {
	if !HasGroupHeadings(lines) {
		joined := strings.Join(lines, "\n")
		joined = excessBlankRe.ReplaceAllString(joined, "\n\n")
		return strings.TrimSpace(joined), false
	}

	var blocks []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			// Keep at most one blank inside a block, and none at the start.
			if len(current) > 0 && current[len(current)-1] != "" {
				current = append(current, "")
			}
		case IsHeading(trimmed):
			flush()
			current = append(current, trimmed)
		default:
			current = append(current, trimmed)
		}
	}
	flush()

	return strings.Join(blocks, "\n\n"), true
}
