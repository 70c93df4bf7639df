// Package songbook maintains the JSON index that tracks every imported
// song in an output directory.
package songbook

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/samber/oops"
)

const (
	CurrentVersion = "1.0.0"
	BookFile       = "songbook.json"
)

type Book struct {
	Version   string            `json:"version"`
	Generated time.Time         `json:"generated"`
	Songs     map[string]*Entry `json:"songs"`
}

type Entry struct {
	Title            string    `json:"title"`
	Artist           string    `json:"artist,omitempty"`
	Key              string    `json:"key,omitempty"`
	CcliID           string    `json:"ccli_id,omitempty"`
	LinkURL          string    `json:"link_url,omitempty"`
	Sections         int       `json:"sections"`
	HasGroupHeadings bool      `json:"has_group_headings"`
	SourceFile       string    `json:"source_file,omitempty"`
	File             string    `json:"file"`
	Lines            int       `json:"lines"`
	ImportedAt       time.Time `json:"imported_at"`
}

func New() *Book {
	return &Book{
		Version:   CurrentVersion,
		Generated: time.Now(),
		Songs:     make(map[string]*Entry),
	}
}

func Load(outputDir string) (*Book, error) {
	bookPath := Path(outputDir)
	data, err := os.ReadFile(bookPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oops.
				Code("SONGBOOK_NOT_FOUND").
				With("path", bookPath).
				Hint("Run 'songsheet import' to create the songbook").
				Errorf("songbook not found at %q", bookPath)
		}

		return nil, oops.
			Code("SONGBOOK_READ_ERROR").
			With("path", bookPath).
			Wrapf(err, "reading songbook file")
	}

	b := &Book{}
	if unmarshalErr := json.Unmarshal(data, b); unmarshalErr != nil {
		return nil, oops.
			Code("SONGBOOK_CORRUPTED").
			With("path", bookPath).
			Hint("Delete songbook.json and re-run 'songsheet import'").
			Wrapf(unmarshalErr, "parsing songbook file")
	}

	if b.Songs == nil {
		b.Songs = make(map[string]*Entry)
	}

	return b, nil
}

// LoadOrNew returns the existing songbook in outputDir, or a fresh one
// when none has been written yet.
func LoadOrNew(outputDir string) (*Book, error) {
	b, err := Load(outputDir)
	if err != nil {
		if hasCode(err, "SONGBOOK_NOT_FOUND") {
			return New(), nil
		}
		return nil, err
	}
	return b, nil
}

func (b *Book) Save(outputDir string) error {
	if b == nil {
		return oops.
			Code("SONGBOOK_WRITE_ERROR").
			Hint("Initialize songbook before saving").
			Errorf("cannot save nil songbook")
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return oops.
			Code("SONGBOOK_WRITE_ERROR").
			With("path", outputDir).
			Wrapf(err, "creating output directory")
	}

	b.Generated = time.Now()

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return oops.
			Code("SONGBOOK_WRITE_ERROR").
			Wrapf(err, "encoding songbook")
	}

	data = append(data, '\n')
	bookPath := Path(outputDir)

	tempFile, err := os.CreateTemp(outputDir, BookFile+".*.tmp")
	if err != nil {
		return oops.
			Code("SONGBOOK_WRITE_ERROR").
			With("path", outputDir).
			Wrapf(err, "creating temporary songbook file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, writeErr := tempFile.Write(data); writeErr != nil {
		_ = tempFile.Close()
		return oops.
			Code("SONGBOOK_WRITE_ERROR").
			With("path", tempPath).
			Wrapf(writeErr, "writing temporary songbook file")
	}

	if closeErr := tempFile.Close(); closeErr != nil {
		return oops.
			Code("SONGBOOK_WRITE_ERROR").
			With("path", tempPath).
			Wrapf(closeErr, "closing temporary songbook file")
	}

	if renameErr := os.Rename(tempPath, bookPath); renameErr != nil {
		return oops.
			Code("SONGBOOK_WRITE_ERROR").
			With("from", tempPath).
			With("to", bookPath).
			Wrapf(renameErr, "replacing songbook file")
	}

	return nil
}

func Path(outputDir string) string {
	return filepath.Join(outputDir, BookFile)
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a stable filesystem identifier from a song title.
func Slug(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

func hasCode(err error, code string) bool {
	var oopsErr oops.OopsError
	if errors.As(err, &oopsErr) {
		return oopsErr.Code() == code
	}
	return false
}
