package songimport

import (
	"regexp"
	"strings"
)

// Line classifiers. Each one is an independent, stateless test over a
// single line; a line may satisfy several of them at once. Absence of a
// match yields an empty result, never an error.
var (
	headingRe        = regexp.MustCompile(`(?i)^(?:verse|chorus|bridge|pre-chorus|prechorus|pc|outro|ending|intro|opening|tag|coda|interlude|instrumental|v|c|b)(?:\s*\d+)?$`)
	bracketHeadingRe = regexp.MustCompile(`^\[.+\]$`)

	titleFieldRe = regexp.MustCompile(`(?i)^\s*(?:title|song title|song name)\s*[:\-]\s*(.+)$`)
	ccliFieldRe  = regexp.MustCompile(`(?i)CCLI\s*(?:#|ID)?\s*[:\-]?\s*(\d{4,})`)
	keyFieldRe   = regexp.MustCompile(`(?i)\bKey\b\s*[:\-]?\s*([A-G](?:#|b)?m?(?:\s*/\s*[A-G](?:#|b)?m?)?)`)

	attributionRe = regexp.MustCompile(`(?i)\b(?:words?\s*(?:and\s+)?music|music|lyrics|written|author)\s+by\b\s*[:\-]?\s*(.+)`)
	artistFieldRe = regexp.MustCompile(`(?i)\bartist\b\s*[:\-]?\s*(.+)`)
	ccliMarkerRe  = regexp.MustCompile(`(?i)\bCCLI\b`)

	linkRe = regexp.MustCompile(`https?://\S+`)

	metadataMarkerRe = regexp.MustCompile(`(?i)\b(?:artist|author|written\s+by|words\s+(?:and\s+music\s+)?by|music\s+by|lyrics\s+by)\b`)
)

// IsHeading reports whether the line identifies a song section, either as
// a canonical token ("Verse 2", "chorus", "V2", optionally wrapped in a
// single pair of parentheses) or as a full bracket-delimited label
// ("[Bridge]", "[Intro x2]").
func IsHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if bracketHeadingRe.MatchString(trimmed) {
		return true
	}
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	return headingRe.MatchString(strings.TrimSpace(trimmed))
}

// TitleField extracts the value of an explicit title line such as
// "Title: Amazing Grace" or "Song Name - Oceans".
func TitleField(line string) (string, bool) {
	match := titleFieldRe.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "", false
	}
	title := strings.TrimSpace(match[1])
	if title == "" {
		return "", false
	}
	return title, true
}

// CcliField extracts a CCLI license number (4+ digits) from forms like
// "CCLI #1234567", "CCLI: 1234567", or "CCLI ID 1234567".
func CcliField(line string) (string, bool) {
	match := ccliFieldRe.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// KeyField extracts a musical key from forms like "Key: G", "Key of Ebm"
// is not supported; the marker word must be "Key". Slash alternates
// ("Key: D/E") are kept in the captured value.
func KeyField(line string) (string, bool) {
	match := keyFieldRe.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// ArtistField extracts an attribution from "Words and Music by ...",
// "Written by ...", "Artist: ..." and similar forms. The captured tail is
// truncated at a standalone "CCLI" word and at a " - " separator.
func ArtistField(line string) (string, bool) {
	var tail string
	if match := attributionRe.FindStringSubmatch(line); match != nil {
		tail = match[1]
	} else if match := artistFieldRe.FindStringSubmatch(line); match != nil {
		tail = match[1]
	} else {
		return "", false
	}

	if loc := ccliMarkerRe.FindStringIndex(tail); loc != nil {
		tail = tail[:loc[0]]
	}
	if idx := strings.Index(tail, " - "); idx != -1 {
		tail = tail[:idx]
	}

	tail = strings.TrimSpace(tail)
	if tail == "" {
		return "", false
	}
	return tail, true
}

// LinkField extracts the first well-formed URL in the line, with trailing
// punctuation stripped.
func LinkField(line string) (string, bool) {
	match := linkRe.FindString(line)
	if match == "" {
		return "", false
	}
	match = strings.TrimRight(match, "),.;")
	if match == "" {
		return "", false
	}
	return match, true
}

// IsMetadataLine reports whether the line looks like song metadata rather
// than lyric content. Used only to exclude candidates from the fallback
// title scan.
func IsMetadataLine(line string) bool {
	return ccliFieldRe.MatchString(line) ||
		keyFieldRe.MatchString(line) ||
		metadataMarkerRe.MatchString(line)
}
