package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/importer"
	"github.com/openworship/songsheet/internal/ui"
)

const defaultParallel = 4

func newImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import lyric files or directories into the songbook",
		ArgsUsage: "[file|dir|glob...]",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would be imported without writing files",
			},
			&cli.BoolFlag{
				Name:  "clean-lyrics",
				Usage: "Strip punctuation from lyric lines during import",
			},
			&cli.IntFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "Maximum files parsed in parallel",
				Value:   defaultParallel,
			},
		},
		Action: importAction,
	}
}

func importAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.IsSet("clean-lyrics") {
		cfg.Import.CleanLyrics = cmd.Bool("clean-lyrics")
	}

	dryRun := cmd.Bool("dry-run")
	printer := ui.NewImportPrinter(dryRun)

	result, err := importer.Run(ctx, cfg, importer.Options{
		Inputs:      cmd.Args().Slice(),
		DryRun:      dryRun,
		MaxParallel: cmd.Int("parallel"),
		OnEvent:     printer.HandleEvent,
	})
	printer.PrintSummary(result)

	return err
}
