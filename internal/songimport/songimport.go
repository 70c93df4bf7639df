// Package songimport extracts structured song metadata and a normalized
// lyric body from freeform lyric-sheet text. Input is pasted or uploaded
// text with no fixed schema; every extractor is a best-effort heuristic
// and the package never returns an error for any input.
package songimport

import "strings"

// ParsedSong is the result of a single import parse. Optional metadata
// fields are empty strings when the input carried no matching line.
type ParsedSong struct {
	Title            string `json:"title,omitempty"`
	DefaultKey       string `json:"default_key,omitempty"`
	CcliID           string `json:"ccli_id,omitempty"`
	Artist           string `json:"artist,omitempty"`
	LinkURL          string `json:"link_url,omitempty"`
	Lyrics           string `json:"lyrics"`
	HasGroupHeadings bool   `json:"has_group_headings"`
}

// Options adjusts parsing behavior.
type Options struct {
	// FallbackTitle is applied only when no title could be recovered from
	// the text itself, neither from an explicit "Title:" line nor from the
	// fallback scan of the header window.
	FallbackTitle string
}

// Parse extracts song metadata and a normalized lyric body from raw text.
// It is a total function: any input, including the empty string, yields a
// well-formed result.
func Parse(rawText string, opts Options) ParsedSong {
	song := ParsedSong{}
	lines := strings.Split(NormalizeLineEndings(rawText), "\n")

	removed := extractHeader(lines, &song)
	resolveFallbackTitle(lines, &song, removed)

	remaining := make([]string, 0, len(lines))
	for i, line := range lines {
		if _, consumed := removed[i]; consumed {
			continue
		}
		remaining = append(remaining, line)
	}

	song.Lyrics, song.HasGroupHeadings = assembleBody(remaining)

	if song.Title == "" && opts.FallbackTitle != "" {
		song.Title = opts.FallbackTitle
	}

	return song
}
