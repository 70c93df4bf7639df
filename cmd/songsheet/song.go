package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"

	"github.com/openworship/songsheet/internal/config"
	"github.com/openworship/songsheet/internal/songbook"
	"github.com/openworship/songsheet/internal/songimport"
)

// resolveEntry finds a songbook entry by slug, or by the slug of a title
// given verbatim.
func resolveEntry(book *songbook.Book, id string) (string, *songbook.Entry, error) {
	if entry, ok := book.Songs[id]; ok {
		return id, entry, nil
	}

	slug := songbook.Slug(id)
	if entry, ok := book.Songs[slug]; ok {
		return slug, entry, nil
	}

	return "", nil, oops.
		Code("SONG_NOT_FOUND").
		With("id", id).
		Hint("Run 'songsheet list' to see imported songs").
		Errorf("song %q not found in songbook", id)
}

// loadSong reconstructs a parsed song from its stored lyric file and
// songbook entry.
func loadSong(cfg *config.Config, entry *songbook.Entry) (songimport.ParsedSong, error) {
	path := filepath.Join(cfg.Output, entry.File)
	data, err := os.ReadFile(path)
	if err != nil {
		return songimport.ParsedSong{}, oops.
			Code("READ_FAILED").
			With("path", path).
			Hint("Re-run 'songsheet import' to restore the file").
			Wrapf(err, "reading lyric file")
	}

	body := strings.TrimSuffix(string(data), "\n")
	if entry.Title != "" {
		body = strings.TrimPrefix(body, entry.Title+"\n\n")
	}

	return songimport.ParsedSong{
		Title:            entry.Title,
		DefaultKey:       entry.Key,
		CcliID:           entry.CcliID,
		Artist:           entry.Artist,
		LinkURL:          entry.LinkURL,
		Lyrics:           body,
		HasGroupHeadings: entry.HasGroupHeadings,
	}, nil
}
