package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

const starterConfig = `# songsheet configuration
# Songs are written to this directory, next to songbook.json.
output = "songbook"

[slides]
# Lyric lines shown per presentation slide.
lines_per_slide = 2

[import]
# Glob patterns used when importing a directory.
patterns = ["**/*.txt"]
exclude = []
# Strip punctuation from lyric lines during import.
clean_lyrics = false

[display]
# table, json, or csv
format = "table"
limit = 50
fields = ["id", "title", "artist", "key", "sections"]
`

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter songsheet.toml in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing songsheet.toml",
			},
		},
		Action: initAction,
	}
}

func initAction(_ context.Context, cmd *cli.Command) error {
	const configName = "songsheet.toml"

	if !cmd.Bool("force") {
		if _, err := os.Stat(configName); err == nil {
			return oops.
				Code("CONFIG_EXISTS").
				With("path", configName).
				Hint("Use --force to overwrite").
				Errorf("%s already exists", configName)
		}
	}

	if err := os.WriteFile(configName, []byte(starterConfig), 0o600); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", configName).
			Wrapf(err, "writing starter config")
	}

	fmt.Fprintf(os.Stderr, "created %s\n", configName)
	return nil
}
