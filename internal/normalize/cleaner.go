// Package normalize cleans lyric text for display and comparison:
// punctuation removal that keeps apostrophes inside words, whitespace
// collapsing, and filename-based song name heuristics.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceCollapseRe = regexp.MustCompile(`[ \t]+`)

// punctuationChars are removed outright. Apostrophes are handled
// separately so they are not in this set.
const punctuationChars = ".,;:?!\"“”„‚«»‹›()[]{}<>—–-/\\|@#$%^&*_+=~\x60"

// apostropheChars are kept only between letters, normalized to '.
const apostropheChars = "'’‘`"

// Cleaner normalizes lyric text. The zero value collapses line breaks;
// NewCleaner preserves them.
type Cleaner struct {
	preserveLineBreaks bool
}

func NewCleaner() *Cleaner {
	return &Cleaner{preserveLineBreaks: true}
}

func (c *Cleaner) WithPreserveLineBreaks(preserve bool) *Cleaner {
	c.preserveLineBreaks = preserve
	return c
}

// CleanLine normalizes a chunk of text: line endings to \n, punctuation
// removed, in-word apostrophes kept (normalized to a straight quote),
// whitespace runs collapsed, and the result trimmed. With line breaks
// preserved, each line is collapsed and trimmed independently.
func (c *Cleaner) CleanLine(text string) string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	runes := []rune(normalized)
	var out strings.Builder
	out.Grow(len(normalized))

	for i, r := range runes {
		switch {
		case strings.ContainsRune(punctuationChars, r):
			// dropped
		case strings.ContainsRune(apostropheChars, r):
			prevIsLetter := i > 0 && unicode.IsLetter(runes[i-1])
			nextIsLetter := i+1 < len(runes) && unicode.IsLetter(runes[i+1])
			if prevIsLetter && nextIsLetter {
				out.WriteRune('\'')
			}
		default:
			out.WriteRune(r)
		}
	}

	cleaned := out.String()

	if c.preserveLineBreaks {
		lines := strings.Split(cleaned, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(whitespaceCollapseRe.ReplaceAllString(line, " "))
		}
		return strings.Join(lines, "\n")
	}

	cleaned = whitespaceCollapseRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// CleanToLines cleans the text and splits it into trimmed, non-empty
// lines.
func (c *Cleaner) CleanToLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(c.CleanLine(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
