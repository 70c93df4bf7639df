// Package importer drives the batch import of raw lyric files into a
// songbook directory.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	stdsync "sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/openworship/songsheet/internal/config"
	"github.com/openworship/songsheet/internal/content"
	"github.com/openworship/songsheet/internal/normalize"
	"github.com/openworship/songsheet/internal/songbook"
	"github.com/openworship/songsheet/internal/songimport"
)

const defaultMaxParallel = 4

type Options struct {
	Inputs      []string
	DryRun      bool
	MaxParallel int
	OnEvent     func(Event)

	// SourceOverride replaces the recorded source path for every imported
	// file. Used when inputs are staged copies of a remote source.
	SourceOverride string
}

type EventKind int

const (
	EventImported EventKind = iota
	EventSkipped
	EventFailed
)

type Event struct {
	Kind    EventKind
	File    string
	Reason  string
	Warning string
	Entry   *songbook.Entry
	Err     error
}

type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

type fileState struct {
	song    songimport.ParsedSong
	warning string
	skip    string
	err     error
}

func Run(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	if cfg == nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			Errorf("config is required")
	}

	files, err := resolveFiles(cfg, opts.Inputs)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, oops.
			Code("NO_INPUT_FILES").
			With("inputs", strings.Join(opts.Inputs, ", ")).
			Hint("Check import.patterns in songsheet.toml").
			Errorf("no lyric files matched the given inputs")
	}

	book, err := songbook.LoadOrNew(cfg.Output)
	if err != nil {
		return nil, err
	}

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	states := make(map[string]fileState, len(files))
	var statesMu stdsync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for _, file := range files {
		file := file
		group.Go(func() error {
			state := parseFile(groupCtx, cfg, file)

			statesMu.Lock()
			states[file] = state
			statesMu.Unlock()
			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return nil, oops.Wrapf(waitErr, "waiting for import workers")
	}

	result := &Result{}
	usedSlugs := make(map[string]struct{}, len(files))
	for slug := range book.Songs {
		usedSlugs[slug] = struct{}{}
	}

	for _, file := range files {
		state := states[file]
		event := Event{File: file}

		switch {
		case state.err != nil:
			result.Failed++
			event.Kind = EventFailed
			event.Err = state.err
		case state.skip != "":
			result.Skipped++
			event.Kind = EventSkipped
			event.Reason = state.skip
		default:
			sourcePath := file
			if opts.SourceOverride != "" {
				sourcePath = opts.SourceOverride
			}
			entry, writeErr := storeSong(cfg, book, usedSlugs, sourcePath, state.song, opts.DryRun)
			if writeErr != nil {
				result.Failed++
				event.Kind = EventFailed
				event.Err = writeErr
			} else {
				result.Imported++
				event.Kind = EventImported
				event.Entry = entry
				event.Warning = state.warning
			}
		}

		if opts.OnEvent != nil {
			opts.OnEvent(event)
		}
	}

	if !opts.DryRun && result.Imported > 0 {
		if saveErr := book.Save(cfg.Output); saveErr != nil {
			return result, saveErr
		}
	}

	if result.Failed > 0 {
		return result, oops.
			Code("IMPORT_FAILED").
			With("failed_files", result.Failed).
			Errorf("%d file(s) failed during import", result.Failed)
	}

	return result, nil
}

func parseFile(ctx context.Context, cfg *config.Config, path string) fileState {
	if err := ctx.Err(); err != nil {
		return fileState{err: oops.Wrapf(err, "import canceled")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileState{err: oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "reading lyric file")}
	}

	if content.IsBinary(data) {
		return fileState{skip: "binary file"}
	}

	data = content.StripBOM(data)
	if !content.IsValidUTF8(data) {
		return fileState{skip: "not valid UTF-8"}
	}

	fallbackTitle := normalize.TitleFromFilename(filepath.Base(path))
	song := songimport.Parse(string(data), songimport.Options{FallbackTitle: fallbackTitle})

	if song.Lyrics == "" && song.Title == "" {
		return fileState{skip: "no usable content"}
	}

	if cfg.Import.CleanLyrics {
		song.Lyrics = cleanLyrics(song.Lyrics)
	}

	state := fileState{song: song}

	// Flag imports whose resolved title looks nothing like the filename;
	// those usually promoted a lyric line instead of a real title.
	songName := normalize.SongNameFromFilename(filepath.Base(path))
	if song.Title != "" && songName != "" && !normalize.IsLikelyTitle(song.Title, songName) {
		state.warning = fmt.Sprintf("title %q does not resemble filename %q", song.Title, songName)
	}

	return state
}

// cleanLyrics normalizes punctuation per lyric line while leaving
// group headings and blank separators untouched.
func cleanLyrics(lyrics string) string {
	cleaner := normalize.NewCleaner()
	lines := strings.Split(lyrics, "\n")
	for i, line := range lines {
		if line == "" || songimport.IsHeading(strings.TrimSpace(line)) {
			continue
		}
		lines[i] = cleaner.CleanLine(line)
	}
	return strings.Join(lines, "\n")
}

func storeSong(
	cfg *config.Config,
	book *songbook.Book,
	usedSlugs map[string]struct{},
	sourcePath string,
	song songimport.ParsedSong,
	dryRun bool,
) (*songbook.Entry, error) {
	slug := uniqueSlug(book, usedSlugs, sourcePath, song.Title)
	usedSlugs[slug] = struct{}{}

	fileName := slug + ".txt"
	lineCount := 0
	if song.Lyrics != "" {
		lineCount = strings.Count(song.Lyrics, "\n") + 1
	}

	sections := 1
	if song.Lyrics == "" {
		sections = 0
	} else if song.HasGroupHeadings {
		sections = strings.Count(song.Lyrics, "\n\n") + 1
	}

	entry := &songbook.Entry{
		Title:            song.Title,
		Artist:           song.Artist,
		Key:              song.DefaultKey,
		CcliID:           song.CcliID,
		LinkURL:          song.LinkURL,
		Sections:         sections,
		HasGroupHeadings: song.HasGroupHeadings,
		SourceFile:       sourcePath,
		File:             fileName,
		Lines:            lineCount,
		ImportedAt:       time.Now(),
	}

	if !dryRun {
		if err := writeSongFile(cfg.Output, fileName, song); err != nil {
			return nil, err
		}
	}

	book.Songs[slug] = entry
	return entry, nil
}

// uniqueSlug reuses the slug of a previously imported copy of the same
// source file and suffixes collisions between distinct songs.
func uniqueSlug(
	book *songbook.Book,
	usedSlugs map[string]struct{},
	sourcePath string,
	title string,
) string {
	base := songbook.Slug(title)

	if existing, ok := book.Songs[base]; ok && existing.SourceFile == sourcePath {
		return base
	}

	slug := base
	for i := 2; ; i++ {
		if _, taken := usedSlugs[slug]; !taken {
			return slug
		}
		if existing, ok := book.Songs[slug]; ok && existing.SourceFile == sourcePath {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func writeSongFile(outputDir, fileName string, song songimport.ParsedSong) error {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", outputDir).
			Wrapf(err, "creating output directory")
	}

	var sb strings.Builder
	if song.Title != "" {
		sb.WriteString(song.Title)
		sb.WriteString("\n\n")
	}
	sb.WriteString(song.Lyrics)
	sb.WriteString("\n")

	destPath := filepath.Join(outputDir, fileName)

	tempFile, err := os.CreateTemp(outputDir, fileName+".*.tmp")
	if err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", outputDir).
			Wrapf(err, "creating temporary song file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, writeErr := tempFile.WriteString(sb.String()); writeErr != nil {
		_ = tempFile.Close()
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(writeErr, "writing temporary song file")
	}

	if closeErr := tempFile.Close(); closeErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", tempPath).
			Wrapf(closeErr, "closing temporary song file")
	}

	if renameErr := os.Rename(tempPath, destPath); renameErr != nil {
		return oops.
			Code("WRITE_FAILED").
			With("from", tempPath).
			With("to", destPath).
			Wrapf(renameErr, "replacing song file")
	}

	return nil
}

func resolveFiles(cfg *config.Config, inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		inputs = []string{"."}
	}

	seen := make(map[string]struct{})
	var files []string

	addFile := func(path string) {
		cleaned := filepath.Clean(path)
		if _, ok := seen[cleaned]; ok {
			return
		}
		if excluded(cfg.Import.Exclude, cleaned) {
			return
		}
		seen[cleaned] = struct{}{}
		files = append(files, cleaned)
	}

	for _, input := range inputs {
		info, statErr := os.Stat(input)
		switch {
		case statErr == nil && info.IsDir():
			for _, pattern := range cfg.Import.Patterns {
				matches, globErr := doublestar.FilepathGlob(
					filepath.Join(input, pattern),
					doublestar.WithFilesOnly(),
				)
				if globErr != nil {
					return nil, oops.
						Code("INVALID_PATTERN").
						With("pattern", pattern).
						Wrapf(globErr, "expanding import pattern")
				}
				for _, match := range matches {
					addFile(match)
				}
			}
		case statErr == nil:
			addFile(input)
		case strings.ContainsAny(input, "*?[{"):
			matches, globErr := doublestar.FilepathGlob(input, doublestar.WithFilesOnly())
			if globErr != nil {
				return nil, oops.
					Code("INVALID_PATTERN").
					With("pattern", input).
					Wrapf(globErr, "expanding input pattern")
			}
			for _, match := range matches {
				addFile(match)
			}
		default:
			return nil, oops.
				Code("FILE_NOT_FOUND").
				With("path", input).
				Wrapf(statErr, "resolving input %q", input)
		}
	}

	slices.Sort(files)
	return files, nil
}

func excluded(patterns []string, path string) bool {
	slashPath := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, slashPath); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
