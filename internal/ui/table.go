package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openworship/songsheet/internal/songbook"
)

// SongRow is the display form of one songbook entry.
type SongRow struct {
	Slug       string    `json:"id"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist,omitempty"`
	Key        string    `json:"key,omitempty"`
	CcliID     string    `json:"ccli,omitempty"`
	LinkURL    string    `json:"link,omitempty"`
	Sections   int       `json:"sections"`
	File       string    `json:"file"`
	SourceFile string    `json:"source,omitempty"`
	ImportedAt time.Time `json:"imported"`
}

// ListOptions configures songbook list rendering.
type ListOptions struct {
	Format string
	Fields []string
	Limit  int
	Writer io.Writer
}

// SongRows flattens a songbook into display rows sorted by title.
func SongRows(book *songbook.Book) []SongRow {
	rows := make([]SongRow, 0, len(book.Songs))
	for slug, entry := range book.Songs {
		rows = append(rows, SongRow{
			Slug:       slug,
			Title:      entry.Title,
			Artist:     entry.Artist,
			Key:        entry.Key,
			CcliID:     entry.CcliID,
			LinkURL:    entry.LinkURL,
			Sections:   entry.Sections,
			File:       entry.File,
			SourceFile: entry.SourceFile,
			ImportedAt: entry.ImportedAt,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Title != rows[j].Title {
			return rows[i].Title < rows[j].Title
		}
		return rows[i].Slug < rows[j].Slug
	})

	return rows
}

// RenderSongList writes the rows in the configured format.
func RenderSongList(rows []SongRow, opts ListOptions) error {
	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	switch opts.Format {
	case "json":
		return renderSongListJSON(writer, rows)
	case "csv":
		renderSongListTable(writer, rows, opts.Fields, true)
		return nil
	default:
		renderSongListTable(writer, rows, opts.Fields, false)
		return nil
	}
}

func renderSongListJSON(w io.Writer, rows []SongRow) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("encode song list json: %w", err)
	}

	return nil
}

func renderSongListTable(w io.Writer, rows []SongRow, fields []string, asCSV bool) {
	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(fields))
	for _, field := range fields {
		header = append(header, strings.ToUpper(field))
	}
	writer.AppendHeader(header)

	for _, row := range rows {
		tableRow := make(table.Row, 0, len(fields))
		for _, field := range fields {
			tableRow = append(tableRow, fieldValue(row, field))
		}
		writer.AppendRow(tableRow)
	}

	if asCSV {
		writer.RenderCSV()
		return
	}
	writer.Render()
}

func fieldValue(row SongRow, field string) string {
	switch field {
	case "id":
		return row.Slug
	case "title":
		return row.Title
	case "artist":
		return row.Artist
	case "key":
		return row.Key
	case "ccli":
		return row.CcliID
	case "link":
		return row.LinkURL
	case "sections":
		return fmt.Sprintf("%d", row.Sections)
	case "file":
		return row.File
	case "source":
		return row.SourceFile
	case "imported":
		if row.ImportedAt.IsZero() {
			return ""
		}
		return row.ImportedAt.Format("2006-01-02")
	default:
		return ""
	}
}
