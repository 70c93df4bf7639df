// Package chart renders a parsed song as shareable chart documents:
// Markdown, standalone HTML, and plain slide text.
package chart

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"

	"github.com/openworship/songsheet/internal/slides"
	"github.com/openworship/songsheet/internal/songimport"
)

// Markdown renders the song as a Markdown chart: a title heading, a
// metadata line, and one section per lyric block.
func Markdown(song songimport.ParsedSong) string {
	var sb strings.Builder

	title := song.Title
	if title == "" {
		title = "Untitled"
	}
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n")

	if meta := metadataLine(song); meta != "" {
		sb.WriteString("\n")
		sb.WriteString(meta)
		sb.WriteString("\n")
	}

	for _, block := range strings.Split(song.Lyrics, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		lines := strings.Split(block, "\n")

		sb.WriteString("\n")
		if song.HasGroupHeadings && songimport.IsHeading(strings.TrimSpace(lines[0])) {
			sb.WriteString("## ")
			sb.WriteString(strings.Trim(strings.TrimSpace(lines[0]), "[]"))
			sb.WriteString("\n\n")
			lines = lines[1:]
		}

		for _, line := range lines {
			if line == "" {
				continue
			}
			// Trailing backslash forces a Markdown hard line break.
			sb.WriteString(line)
			sb.WriteString("\\\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\\\n") + "\n"
}

// HTML renders the song as a complete standalone HTML page.
func HTML(song songimport.ParsedSong) []byte {
	parser := mdparser.NewWithExtensions(mdparser.CommonExtensions)
	doc := parser.Parse([]byte(Markdown(song)))

	title := song.Title
	if title == "" {
		title = "Untitled"
	}

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Title: title,
		Flags: mdhtml.CommonFlags | mdhtml.CompletePage,
	})

	return markdown.Render(doc, renderer)
}

// Text renders the song as plain presentation text, blank-line
// separated slides with at most linesPerSlide lyric lines each.
func Text(song songimport.ParsedSong, linesPerSlide int) string {
	deck := slides.FromSong(song, linesPerSlide)

	parts := make([]string, 0, len(deck)+1)
	if song.Title != "" {
		parts = append(parts, song.Title)
	}
	for _, slide := range deck {
		body := slide.Text()
		if slide.Label != "" && body != "" {
			body = slide.Label + "\n" + body
		} else if slide.Label != "" {
			body = slide.Label
		}
		parts = append(parts, body)
	}

	return strings.Join(parts, "\n\n") + "\n"
}

func metadataLine(song songimport.ParsedSong) string {
	var parts []string
	if song.Artist != "" {
		parts = append(parts, song.Artist)
	}
	if song.DefaultKey != "" {
		parts = append(parts, fmt.Sprintf("Key: %s", song.DefaultKey))
	}
	if song.CcliID != "" {
		parts = append(parts, fmt.Sprintf("CCLI #%s", song.CcliID))
	}
	if song.LinkURL != "" {
		parts = append(parts, fmt.Sprintf("[Source](%s)", song.LinkURL))
	}

	if len(parts) == 0 {
		return ""
	}
	return "*" + strings.Join(parts, " | ") + "*"
}
