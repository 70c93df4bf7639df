package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// filenameSuffixRe matches common file suffixes that are not part of the
// song name ("Amazing Grace - Lyrics.txt", "Oceans Slides.txt").
var filenameSuffixRe = regexp.MustCompile(`(?i)\s*[-_]?\s*(lyrics?|slides?|slideshow|presentation|sheet|chart|worship|song)\s*$`)

// likelyTitleMinLen and likelyTitleMaxLen bound plausible title lengths;
// longer text is almost always lyric content.
const (
	likelyTitleMinLen     = 2
	likelyTitleMaxLen     = 60
	likelyTitleSimilarity = 0.7
)

// SongNameFromFilename extracts a normalized (comparison-form) song name
// from a filename: extension and common suffixes removed, lowercased,
// punctuation stripped.
func SongNameFromFilename(filename string) string {
	return ForComparison(TitleFromFilename(filename))
}

// TitleFromFilename is the display-form counterpart of
// SongNameFromFilename: extension and suffixes removed, separators
// turned into spaces, lowercase words capitalized.
func TitleFromFilename(filename string) string {
	name := stripFilenameNoise(filename)
	name = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		if unicode.IsLower(runes[0]) {
			runes[0] = unicode.ToUpper(runes[0])
			words[i] = string(runes)
		}
	}
	return strings.Join(words, " ")
}

func stripFilenameNoise(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return filenameSuffixRe.ReplaceAllString(name, "")
}

// ForComparison lowercases the text, removes everything but letters,
// digits, and whitespace, and collapses whitespace runs.
func ForComparison(text string) string {
	var kept strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			kept.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(strings.ToLower(kept.String())), " ")
}

// Similarity scores two comparison-form strings from 0 (unrelated) to 1
// (identical), using exact match, containment, then word-set overlap.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter := float64(min(len(a), len(b)))
		longer := float64(max(len(a), len(b)))
		return shorter / longer
	}

	wordsA := fieldSet(a)
	wordsB := fieldSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for word := range wordsA {
		if _, ok := wordsB[word]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection

	return float64(intersection) / float64(union)
}

// IsLikelyTitle reports whether the text probably names the song whose
// filename normalized to normalizedFilename.
func IsLikelyTitle(text, normalizedFilename string) bool {
	normalizedText := ForComparison(text)
	if len(normalizedText) < likelyTitleMinLen || len(normalizedText) > likelyTitleMaxLen {
		return false
	}
	return Similarity(normalizedText, normalizedFilename) >= likelyTitleSimilarity
}

func fieldSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		set[word] = struct{}{}
	}
	return set
}
