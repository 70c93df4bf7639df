package songimport

import "strings"

// maxHeaderLines bounds the metadata scan when the document has no section
// headings at all. Changing it changes observable parsing behavior on real
// inputs.
const maxHeaderLines = 8

// fieldScanner pairs a line extractor with the setter for the field it
// populates. The setter reports whether the field was still absent and got
// set, so first match wins per field.
type fieldScanner struct {
	extract func(string) (string, bool)
	assign  func(*ParsedSong, string) bool
}

// fieldScanners returns the non-title extractors in their fixed priority
// order. Unlike the title test, these are not mutually exclusive: a single
// line may populate several fields.
func fieldScanners() []fieldScanner {
	return []fieldScanner{
		{extract: CcliField, assign: func(s *ParsedSong, v string) bool {
			if s.CcliID != "" {
				return false
			}
			s.CcliID = v
			return true
		}},
		{extract: KeyField, assign: func(s *ParsedSong, v string) bool {
			if s.DefaultKey != "" {
				return false
			}
			s.DefaultKey = v
			return true
		}},
		{extract: ArtistField, assign: func(s *ParsedSong, v string) bool {
			if s.Artist != "" {
				return false
			}
			s.Artist = v
			return true
		}},
		{extract: LinkField, assign: func(s *ParsedSong, v string) bool {
			if s.LinkURL != "" {
				return false
			}
			s.LinkURL = v
			return true
		}},
	}
}

// headerLimit returns the exclusive upper bound of the header window: the
// index of the first heading line if the document has one, otherwise at
// most maxHeaderLines. Metadata scanning must stop once section structure
// begins so headings are never misread as fields.
func headerLimit(lines []string) int {
	for i, line := range lines {
		if IsHeading(line) {
			return i
		}
	}
	return min(len(lines), maxHeaderLines)
}

// extractHeader scans the header window line by line, populating metadata
// fields on song and returning the set of line indices consumed by at
// least one field. A line is removed at most once regardless of how many
// fields it populated.
func extractHeader(lines []string, song *ParsedSong) map[int]struct{} {
	removed := make(map[int]struct{})
	limit := headerLimit(lines)
	scanners := fieldScanners()

	for i := 0; i < limit; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}

		// An explicit title line always wins and is assumed to carry no
		// other metadata, so it is exclusive with the field scanners.
		if title, ok := TitleField(trimmed); ok {
			if song.Title == "" {
				song.Title = title
				removed[i] = struct{}{}
			}
			continue
		}

		for _, scanner := range scanners {
			value, ok := scanner.extract(trimmed)
			if !ok {
				continue
			}
			if scanner.assign(song, value) {
				removed[i] = struct{}{}
			}
		}
	}

	return removed
}

// resolveFallbackTitle runs only when no explicit title line was found. It
// promotes the first header-window line that is non-blank and looks like
// neither metadata, a link, nor a heading.
func resolveFallbackTitle(lines []string, song *ParsedSong, removed map[int]struct{}) {
	if song.Title != "" {
		return
	}

	limit := headerLimit(lines)
	for i := 0; i < limit; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if _, ok := LinkField(trimmed); ok {
			continue
		}
		if _, ok := TitleField(trimmed); ok {
			continue
		}
		if IsMetadataLine(trimmed) || IsHeading(trimmed) {
			continue
		}

		song.Title = trimmed
		removed[i] = struct{}{}
		return
	}
}
