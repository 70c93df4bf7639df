package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/fetch"
	"github.com/openworship/songsheet/internal/importer"
	"github.com/openworship/songsheet/internal/ui"
)

func newFetchCommand() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a lyric file from a URL and import it",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "title",
				Usage: "Fallback title when the document carries none",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Show what would be imported without writing files",
			},
		},
		Action: fetchAction,
	}
}

func fetchAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: songsheet fetch <url>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	rawURL := cmd.Args().First()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client := fetch.NewClient()
	defer func() {
		_ = client.Close()
	}()

	text, err := client.Text(ctx, rawURL)
	if err != nil {
		return err
	}

	// Stage the fetched text as a file so it flows through the same
	// import pipeline as local inputs.
	fileName := fetch.FilenameFromURL(rawURL, "fetched-song")
	if title := cmd.String("title"); title != "" {
		fileName = title + ".txt"
	}

	stageDir, err := os.MkdirTemp("", "songsheet-fetch-*")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			Wrapf(err, "creating staging directory")
	}
	defer func() {
		_ = os.RemoveAll(stageDir)
	}()

	stagedPath := filepath.Join(stageDir, fileName)
	if writeErr := os.WriteFile(stagedPath, []byte(text), 0o600); writeErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", stagedPath).
			Wrapf(writeErr, "staging fetched lyrics")
	}

	dryRun := cmd.Bool("dry-run")
	printer := ui.NewImportPrinter(dryRun)

	result, err := importer.Run(ctx, cfg, importer.Options{
		Inputs:         []string{stagedPath},
		DryRun:         dryRun,
		OnEvent:        printer.HandleEvent,
		SourceOverride: rawURL,
	})
	printer.PrintSummary(result)

	return err
}
