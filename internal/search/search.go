// Package search finds songs in a songbook by fuzzy metadata match or
// by scanning lyric content.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/oops"

	"github.com/openworship/songsheet/internal/songbook"
)

// MetadataResult represents a single match from metadata search.
type MetadataResult struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Artist     string `json:"artist,omitempty"`
	Key        string `json:"key,omitempty"`
	MatchField string `json:"match_field"`
	MatchValue string `json:"match_value"`
	Score      int    `json:"score"`
}

// MetadataOptions configures metadata search behavior.
type MetadataOptions struct {
	Query string
	Limit int
}

type indexEntry struct {
	Slug       string
	MatchField string
	MatchValue string
}

type searchIndex struct {
	entries []indexEntry
}

func (s searchIndex) String(i int) string {
	return s.entries[i].MatchValue
}

func (s searchIndex) Len() int {
	return len(s.entries)
}

// Metadata performs fuzzy search across songbook metadata fields.
func Metadata(book *songbook.Book, opts MetadataOptions) ([]MetadataResult, error) {
	query := strings.TrimSpace(opts.Query)
	if query == "" {
		return nil, oops.
			Code("INVALID_ARGS").
			Hint("Provide a non-empty search query").
			Errorf("search query cannot be empty")
	}

	slugs := make([]string, 0, len(book.Songs))
	for slug := range book.Songs {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	var entries []indexEntry
	for _, slug := range slugs {
		entry := book.Songs[slug]

		entries = append(entries, indexEntry{
			Slug:       slug,
			MatchField: "title",
			MatchValue: entry.Title,
		})

		if entry.Artist != "" {
			entries = append(entries, indexEntry{
				Slug:       slug,
				MatchField: "artist",
				MatchValue: entry.Artist,
			})
		}

		if entry.CcliID != "" {
			entries = append(entries, indexEntry{
				Slug:       slug,
				MatchField: "ccli",
				MatchValue: entry.CcliID,
			})
		}
	}

	index := searchIndex{entries: entries}
	matches := fuzzy.FindFrom(query, index)

	deduped := make(map[string]MetadataResult)
	for _, match := range matches {
		if match.Score < 0 {
			continue
		}
		entry := entries[match.Index]
		song := book.Songs[entry.Slug]

		if existing, exists := deduped[entry.Slug]; !exists || match.Score > existing.Score {
			deduped[entry.Slug] = MetadataResult{
				Slug:       entry.Slug,
				Title:      song.Title,
				Artist:     song.Artist,
				Key:        song.Key,
				MatchField: entry.MatchField,
				MatchValue: entry.MatchValue,
				Score:      match.Score,
			}
		}
	}

	results := make([]MetadataResult, 0, len(deduped))
	for _, result := range deduped {
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Slug < results[j].Slug
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results, nil
}
