package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/openworship/songsheet/internal/config"
)

var (
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	version = "dev"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	commit = "unknown"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	buildTime = "unknown"
)

func main() {
	if err := run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newRootCommand().Run(context.Background(), args)
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "songsheet",
		Usage:   "Import raw lyric files into a structured songbook",
		Version: versionString(),
		Commands: []*cli.Command{
			newImportCommand(),
			newFetchCommand(),
			newListCommand(),
			newShowCommand(),
			newSearchCommand(),
			newSlidesCommand(),
			newExportCommand(),
			newInitCommand(),
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to config file",
	}
}

// loadConfig resolves the effective config: an explicit --config path, a
// songsheet.toml found by upward search, or built-in defaults rooted at
// the working directory.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	configPath := cmd.String("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		if configPath == "" && hasErrorCode(err, "CONFIG_NOT_FOUND") {
			return config.Default()
		}
		return nil, err
	}

	return cfg, nil
}

func hasErrorCode(err error, code string) bool {
	var oopsErr oops.OopsError
	if errors.As(err, &oopsErr) {
		return oopsErr.Code() == code
	}
	return false
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime)
}
