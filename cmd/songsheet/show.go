package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/songbook"
	"github.com/openworship/songsheet/internal/songimport"
)

func newShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one song with its metadata and lyrics",
		ArgsUsage: "<song-id>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
			&cli.BoolFlag{
				Name:  "lyrics-only",
				Usage: "Print only the lyric body",
			},
		},
		Action: showAction,
	}
}

type showOutput struct {
	Slug string `json:"id"`
	songimport.ParsedSong
	SourceFile string `json:"source_file,omitempty"`
}

func showAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: songsheet show <song-id>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	book, err := songbook.Load(cfg.Output)
	if err != nil {
		return err
	}

	slug, entry, err := resolveEntry(book, cmd.Args().First())
	if err != nil {
		return err
	}

	song, err := loadSong(cfg, entry)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if encodeErr := encoder.Encode(showOutput{
			Slug:       slug,
			ParsedSong: song,
			SourceFile: entry.SourceFile,
		}); encodeErr != nil {
			return oops.Code("JSON_ERROR").Wrapf(encodeErr, "encoding song")
		}
		return nil
	}

	if cmd.Bool("lyrics-only") {
		fmt.Fprintln(os.Stdout, song.Lyrics)
		return nil
	}

	printSongHeader(slug, song)
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, song.Lyrics)
	return nil
}

func printSongHeader(slug string, song songimport.ParsedSong) {
	title := song.Title
	if title == "" {
		title = slug
	}
	fmt.Fprintln(os.Stdout, title)

	if song.Artist != "" {
		fmt.Fprintf(os.Stdout, "Artist: %s\n", song.Artist)
	}
	if song.DefaultKey != "" {
		fmt.Fprintf(os.Stdout, "Key: %s\n", song.DefaultKey)
	}
	if song.CcliID != "" {
		fmt.Fprintf(os.Stdout, "CCLI: %s\n", song.CcliID)
	}
	if song.LinkURL != "" {
		fmt.Fprintf(os.Stdout, "Link: %s\n", song.LinkURL)
	}
}
