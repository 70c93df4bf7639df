package search

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/oops"

	"github.com/openworship/songsheet/internal/songbook"
)

// ContentResult represents a single match from lyric content search.
type ContentResult struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Line  int    `json:"line"`
	Text  string `json:"text"`
}

// ContentOptions configures lyric content search behavior.
type ContentOptions struct {
	OutputDir string
	Query     string
	UseRegex  bool
	Limit     int
}

// Content performs literal or regex search across imported lyric files.
// Literal search is case-insensitive.
func Content(book *songbook.Book, opts ContentOptions) ([]ContentResult, error) {
	query := strings.TrimSpace(opts.Query)
	if query == "" {
		return nil, oops.
			Code("INVALID_ARGS").
			Hint("Provide a non-empty search query").
			Errorf("search query cannot be empty")
	}

	var matcher func(string) bool
	if opts.UseRegex {
		re, err := regexp.Compile(query)
		if err != nil {
			return nil, oops.
				Code("INVALID_ARGS").
				With("pattern", query).
				Wrapf(err, "compiling search pattern")
		}
		matcher = re.MatchString
	} else {
		lowered := strings.ToLower(query)
		matcher = func(line string) bool {
			return strings.Contains(strings.ToLower(line), lowered)
		}
	}

	slugs := make([]string, 0, len(book.Songs))
	for slug := range book.Songs {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	var results []ContentResult
	for _, slug := range slugs {
		entry := book.Songs[slug]
		matches, err := scanFile(filepath.Join(opts.OutputDir, entry.File), matcher)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			results = append(results, ContentResult{
				Slug:  slug,
				Title: entry.Title,
				Line:  match.line,
				Text:  match.text,
			})
			if opts.Limit > 0 && len(results) >= opts.Limit {
				return results, nil
			}
		}
	}

	return results, nil
}

type lineMatch struct {
	line int
	text string
}

func scanFile(path string, matcher func(string) bool) ([]lineMatch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "opening lyric file")
	}
	defer func() {
		_ = file.Close()
	}()

	var matches []lineMatch
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		if matcher(text) {
			matches = append(matches, lineMatch{line: lineNum, text: text})
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(scanErr, "scanning lyric file")
	}

	return matches, nil
}
