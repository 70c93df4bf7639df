package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/search"
	"github.com/openworship/songsheet/internal/songbook"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

func newSearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search song metadata or lyric content",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "content",
				Usage: "Search lyric contents instead of metadata",
			},
			&cli.BoolFlag{
				Name:  "regex",
				Usage: "Treat query as regex (requires --content)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: table, json, csv",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Max results (0 = use config default)",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Show all results (no limit)",
			},
		},
		Action: searchAction,
	}
}

func searchAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: songsheet search <query>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	query := strings.TrimSpace(cmd.Args().First())
	if query == "" {
		return oops.
			Code("INVALID_ARGS").
			Hint("Provide a non-empty search query").
			Errorf("search query cannot be empty")
	}

	if cmd.Bool("regex") && !cmd.Bool("content") {
		return oops.
			Code("INVALID_ARGS").
			Hint("--regex requires --content flag").
			Errorf("--regex can only be used with --content")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	book, err := songbook.Load(cfg.Output)
	if err != nil {
		return err
	}

	format := resolveFormat(cmd, cfg)
	limit := resolveLimit(cmd, cfg)

	if cmd.Bool("content") {
		return runContentSearch(book, cfg.Output, query, cmd.Bool("regex"), format, limit)
	}

	return runMetadataSearch(book, query, format, limit)
}

func runMetadataSearch(book *songbook.Book, query, format string, limit int) error {
	results, err := search.Metadata(book, search.MetadataOptions{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		return outputMetadataJSON(results)
	case formatCSV:
		return outputMetadataCSV(results)
	default:
		return outputMetadataTable(results)
	}
}

func runContentSearch(book *songbook.Book, outputDir, query string, useRegex bool, format string, limit int) error {
	results, err := search.Content(book, search.ContentOptions{
		OutputDir: outputDir,
		Query:     query,
		UseRegex:  useRegex,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		return outputContentJSON(results)
	case formatCSV:
		return outputContentCSV(results)
	default:
		return outputContentTable(results)
	}
}

func outputMetadataJSON(results []search.MetadataResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return oops.Code("JSON_ERROR").Wrapf(err, "encoding results")
	}
	return nil
}

func outputMetadataCSV(results []search.MetadataResult) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"id", "title", "artist", "key", "match_field", "match_value", "score"}
	if err := w.Write(header); err != nil {
		return oops.Code("CSV_ERROR").Wrapf(err, "writing CSV header")
	}

	for _, r := range results {
		if err := w.Write([]string{
			r.Slug,
			r.Title,
			r.Artist,
			r.Key,
			r.MatchField,
			r.MatchValue,
			strconv.Itoa(r.Score),
		}); err != nil {
			return oops.Code("CSV_ERROR").Wrapf(err, "writing CSV row")
		}
	}

	return nil
}

func outputMetadataTable(results []search.MetadataResult) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"ID", "TITLE", "ARTIST", "KEY", "MATCH FIELD", "SCORE"})

	for _, r := range results {
		t.AppendRow(table.Row{
			r.Slug,
			r.Title,
			r.Artist,
			r.Key,
			r.MatchField,
			r.Score,
		})
	}

	t.Render()
	return nil
}

func outputContentJSON(results []search.ContentResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return oops.Code("JSON_ERROR").Wrapf(err, "encoding results")
	}
	return nil
}

func outputContentCSV(results []search.ContentResult) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"id", "title", "line", "text"}); err != nil {
		return oops.Code("CSV_ERROR").Wrapf(err, "writing CSV header")
	}

	for _, r := range results {
		if err := w.Write([]string{
			r.Slug,
			r.Title,
			strconv.Itoa(r.Line),
			r.Text,
		}); err != nil {
			return oops.Code("CSV_ERROR").Wrapf(err, "writing CSV row")
		}
	}

	return nil
}

func outputContentTable(results []search.ContentResult) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"ID", "TITLE", "LINE", "TEXT"})

	for _, r := range results {
		t.AppendRow(table.Row{
			r.Slug,
			r.Title,
			r.Line,
			r.Text,
		})
	}

	t.Render()
	return nil
}
