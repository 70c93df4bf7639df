// Package slides groups normalized lyric lines into presentation slides.
// Each slide holds a fixed number of lyric lines (default 2); when a song
// has section headings, slide breaks follow the sections instead of
// running across them.
package slides

import (
	"strings"

	"github.com/openworship/songsheet/internal/songimport"
)

const DefaultLinesPerSlide = 2

// Slide is a single presentation slide: an optional section label and the
// lyric lines shown together.
type Slide struct {
	Label string   `json:"label,omitempty"`
	Lines []string `json:"lines"`
}

// Text returns the slide body as newline-joined lines.
func (s Slide) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Formatter renders lyric lines as blank-line separated slide text.
type Formatter struct {
	linesPerSlide int
}

func NewFormatter() *Formatter {
	return &Formatter{linesPerSlide: DefaultLinesPerSlide}
}

// WithLinesPerSlide sets the slide size, clamped to at least one line.
func (f *Formatter) WithLinesPerSlide(lines int) *Formatter {
	f.linesPerSlide = max(lines, 1)
	return f
}

// Format chunks the lines into slides and joins them with blank lines.
func (f *Formatter) Format(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	chunks := make([]string, 0, (len(lines)+f.linesPerSlide-1)/f.linesPerSlide)
	for start := 0; start < len(lines); start += f.linesPerSlide {
		end := min(start+f.linesPerSlide, len(lines))
		chunks = append(chunks, strings.Join(lines[start:end], "\n"))
	}

	return strings.Join(chunks, "\n\n")
}

// FormatWithNewline formats the lines and appends a trailing newline when
// the result is non-empty.
func (f *Formatter) FormatWithNewline(lines []string) string {
	formatted := f.Format(lines)
	if formatted == "" {
		return formatted
	}
	return formatted + "\n"
}

// Split chunks lines into Slide values of at most linesPerSlide lines.
func Split(lines []string, linesPerSlide int) []Slide {
	size := max(linesPerSlide, 1)

	slides := make([]Slide, 0, (len(lines)+size-1)/size)
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		slides = append(slides, Slide{Lines: lines[start:end]})
	}

	return slides
}

// FromSong builds the slide sequence for a parsed song. Songs without
// section headings are chunked uniformly. Songs with headings are split
// per section: the heading line becomes the label of every slide cut from
// that section, so a renderer can show per-section breaks.
func FromSong(song songimport.ParsedSong, linesPerSlide int) []Slide {
	size := max(linesPerSlide, 1)

	if !song.HasGroupHeadings {
		return Split(contentLines(song.Lyrics), size)
	}

	var slides []Slide
	// A section may contain an internal blank line, so the current label
	// carries across blocks until the next heading.
	label := ""
	for _, block := range strings.Split(song.Lyrics, "\n\n") {
		lines := contentLines(block)
		if len(lines) == 0 {
			continue
		}

		if songimport.IsHeading(lines[0]) {
			label = lines[0]
			lines = lines[1:]
		}

		if len(lines) == 0 {
			// A heading with no lines still yields a labeled break.
			slides = append(slides, Slide{Label: label})
			continue
		}

		for start := 0; start < len(lines); start += size {
			end := min(start+size, len(lines))
			slides = append(slides, Slide{Label: label, Lines: lines[start:end]})
		}
	}

	return slides
}

func contentLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
