package search_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openworship/songsheet/internal/search"
	"github.com/openworship/songsheet/internal/songbook"
)

func contentFixture(t *testing.T) (*songbook.Book, string) {
	t.Helper()

	dir := t.TempDir()
	book := songbook.New()

	writeSong := func(slug, title, body string) {
		file := slug + ".txt"
		if err := os.WriteFile(filepath.Join(dir, file), []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		book.Songs[slug] = &songbook.Entry{Title: title, File: file}
	}

	writeSong("amazing-grace", "Amazing Grace",
		"Amazing Grace\n\nAmazing grace how sweet the sound\nThat saved a wretch like me\n")
	writeSong("oceans", "Oceans",
		"Oceans\n\nYou call me out upon the waters\nThe great unknown where feet may fail\n")

	return book, dir
}

func TestContentEmptyQueryReturnsError(t *testing.T) {
	book, dir := contentFixture(t)

	_, err := search.Content(book, search.ContentOptions{OutputDir: dir, Query: ""})
	if err == nil {
		t.Fatal("Content() with empty query: got nil error, want non-nil")
	}
}

func TestContentLiteralSearchIsCaseInsensitive(t *testing.T) {
	book, dir := contentFixture(t)

	results, err := search.Content(book, search.ContentOptions{
		OutputDir: dir,
		Query:     "SWEET THE SOUND",
	})
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Content() returned %d results, want 1", len(results))
	}
	if results[0].Slug != "amazing-grace" {
		t.Errorf("Slug = %q, want 'amazing-grace'", results[0].Slug)
	}
	if results[0].Line != 3 {
		t.Errorf("Line = %d, want 3", results[0].Line)
	}
}

func TestContentRegexSearch(t *testing.T) {
	book, dir := contentFixture(t)

	results, err := search.Content(book, search.ContentOptions{
		OutputDir: dir,
		Query:     `feet may (fail|fly)`,
		UseRegex:  true,
	})
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Content() returned %d results, want 1", len(results))
	}
	if results[0].Slug != "oceans" {
		t.Errorf("Slug = %q, want 'oceans'", results[0].Slug)
	}
}

func TestContentInvalidRegexReturnsError(t *testing.T) {
	book, dir := contentFixture(t)

	_, err := search.Content(book, search.ContentOptions{
		OutputDir: dir,
		Query:     "[unclosed",
		UseRegex:  true,
	})
	if err == nil {
		t.Fatal("Content() with invalid regex: got nil error, want non-nil")
	}
}

func TestContentRespectsLimit(t *testing.T) {
	book, dir := contentFixture(t)

	results, err := search.Content(book, search.ContentOptions{
		OutputDir: dir,
		Query:     "a",
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Content() returned %d results, want 2", len(results))
	}
}
