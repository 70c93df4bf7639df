package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/chart"
	"github.com/openworship/songsheet/internal/songbook"
)

func newExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a song as a chart document",
		ArgsUsage: "<song-id>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: md, html, txt",
				Value:   "md",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output file (default: stdout)",
			},
			&cli.IntFlag{
				Name:  "lines",
				Usage: "Lyric lines per slide for txt format (0 = use config default)",
			},
		},
		Action: exportAction,
	}
}

func exportAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: songsheet export <song-id>").
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

	var rendered []byte
	switch format := cmd.String("format"); format {
	case "md":
		rendered = []byte(chart.Markdown(song))
	case "html":
		rendered = chart.HTML(song)
	case "txt":
		linesPerSlide := cfg.Slides.LinesPerSlide
		if cmd.IsSet("lines") {
			linesPerSlide = cmd.Int("lines")
		}
		rendered = []byte(chart.Text(song, linesPerSlide))
	default:
		return oops.
			Code("INVALID_ARGS").
			With("format", format).
			Hint("Use one of: md, html, txt").
			Errorf("unknown export format %q", format)
	}

	outPath := cmd.String("out")
	if outPath == "" {
		_, writeErr := os.Stdout.Write(rendered)
		return writeErr
	}

	if writeErr := os.WriteFile(outPath, rendered, 0o600); writeErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", outPath).
			Wrapf(writeErr, "writing export file")
	}

	fmt.Fprintf(os.Stderr, "exported to %s\n", outPath)
	return nil
}
