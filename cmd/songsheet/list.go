package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/config"
	"github.com/openworship/songsheet/internal/songbook"
	"github.com/openworship/songsheet/internal/ui"
)

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List songs in the songbook",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: table, json, csv",
			},
			&cli.StringFlag{
				Name:  "fields",
				Usage: "Comma-separated fields: id,title,artist,key,ccli,link,sections,file,source,imported",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Show first N songs (0 = use config default)",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Show all songs (no limit)",
			},
		},
		Action: listAction,
	}
}

func listAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	book, err := songbook.Load(cfg.Output)
	if err != nil {
		return err
	}

	return ui.RenderSongList(ui.SongRows(book), ui.ListOptions{
		Format: resolveFormat(cmd, cfg),
		Fields: resolveFields(cmd, cfg),
		Limit:  resolveLimit(cmd, cfg),
	})
}

func resolveLimit(cmd *cli.Command, cfg *config.Config) int {
	if cmd.Bool("all") {
		return 0
	}
	if cmd.IsSet("limit") {
		return cmd.Int("limit")
	}
	return cfg.Display.Limit
}

func resolveFormat(cmd *cli.Command, cfg *config.Config) string {
	if cmd.Bool("json") {
		return "json"
	}
	if cmd.IsSet("format") {
		return cmd.String("format")
	}
	return cfg.Display.Format
}

func resolveFields(cmd *cli.Command, cfg *config.Config) []string {
	if cmd.IsSet("fields") {
		return strings.Split(cmd.String("fields"), ",")
	}
	return cfg.Display.ListFields
}
