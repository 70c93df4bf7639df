package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/chart"
	"github.com/openworship/songsheet/internal/slides"
	"github.com/openworship/songsheet/internal/songbook"
)

func newSlidesCommand() *cli.Command {
	return &cli.Command{
		Name:      "slides",
		Usage:     "Render a song as presentation slide text",
		ArgsUsage: "<song-id>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "Lyric lines per slide (0 = use config default)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the slide deck as JSON",
			},
		},
		Action: slidesAction,
	}
}

func slidesAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: songsheet slides <song-id>").
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

	_, entry, err := resolveEntry(book, cmd.Args().First())
	if err != nil {
		return err
	}

	song, err := loadSong(cfg, entry)
	if err != nil {
		return err
	}

	linesPerSlide := cfg.Slides.LinesPerSlide
	if cmd.IsSet("lines") {
		linesPerSlide = cmd.Int("lines")
	}

	if cmd.Bool("json") {
		deck := slides.FromSong(song, linesPerSlide)
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if encodeErr := encoder.Encode(deck); encodeErr != nil {
			return oops.Code("JSON_ERROR").Wrapf(encodeErr, "encoding slides")
		}
		return nil
	}

	fmt.Fprint(os.Stdout, chart.Text(song, linesPerSlide))
	return nil
}
