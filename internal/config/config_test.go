package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openworship/songsheet/internal/config"
)

func TestLoadAppliesDefaultsAndResolvesOutput(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "songsheet.toml")
	writeFile(t, configPath, `
[import]
clean_lyrics = true
`)

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ConfigDir != tempDir {
		t.Fatalf("ConfigDir = %q, want %q", cfg.ConfigDir, tempDir)
	}

	expectedOutput := filepath.Join(tempDir, "songbook")
	if cfg.Output != expectedOutput {
		t.Fatalf("Output = %q, want %q", cfg.Output, expectedOutput)
	}

	if cfg.Slides.LinesPerSlide != config.DefaultLinesPerSlide {
		t.Fatalf("LinesPerSlide = %d, want %d", cfg.Slides.LinesPerSlide, config.DefaultLinesPerSlide)
	}

	if !cfg.Import.CleanLyrics {
		t.Fatal("CleanLyrics = false, want true")
	}

	expectedPatterns := config.DefaultPatterns()
	if len(cfg.Import.Patterns) != len(expectedPatterns) {
		t.Fatalf("Patterns len = %d, want %d", len(cfg.Import.Patterns), len(expectedPatterns))
	}
	for i, want := range expectedPatterns {
		if cfg.Import.Patterns[i] != want {
			t.Fatalf("Patterns[%d] = %q, want %q", i, cfg.Import.Patterns[i], want)
		}
	}

	if cfg.Display.Format != "table" {
		t.Fatalf("Format = %q, want %q", cfg.Display.Format, "table")
	}
}

func TestLoadUsesProvidedConfigPath(t *testing.T) {
	configDir := t.TempDir()
	configPath := filepath.Join(configDir, "custom.toml")
	writeFile(t, configPath, `
output = "songs"

[slides]
lines_per_slide = 4
`)

	workDir := t.TempDir()
	t.Chdir(workDir)

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expectedOutput := filepath.Join(configDir, "songs")
	if cfg.Output != expectedOutput {
		t.Fatalf("Output = %q, want %q", cfg.Output, expectedOutput)
	}

	if cfg.Slides.LinesPerSlide != 4 {
		t.Fatalf("LinesPerSlide = %d, want 4", cfg.Slides.LinesPerSlide)
	}
}

func TestLoadFindsConfigInParentDirectory(t *testing.T) {
	rootDir := t.TempDir()
	writeFile(t, filepath.Join(rootDir, ".songsheet.toml"), `
output = "songs"
`)

	nested := filepath.Join(rootDir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	t.Chdir(nested)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := cfg.Output, filepath.Join(rootDir, "songs"); got != want {
		// Temp dirs may resolve through symlinks on some platforms.
		if resolved, rErr := filepath.EvalSymlinks(got); rErr != nil || resolved != mustEval(t, want) {
			t.Fatalf("Output = %q, want %q", got, want)
		}
	}
}

func TestLoadReturnsErrorForMissingExplicitPath(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want non-nil")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("Load() error = %q, expected missing-file message", err.Error())
	}
}

func TestLoadRejectsInvalidToml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "songsheet.toml")
	writeFile(t, configPath, `output = [unclosed`)

	if _, err := config.Load(configPath); err == nil {
		t.Fatal("Load() error = nil, want TOML syntax error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		toml   string
		errSub string
	}{
		{
			name: "bad display format",
			toml: `
[display]
format = "yaml"
`,
			errSub: "unknown display format",
		},
		{
			name: "bad glob pattern",
			toml: `
[import]
patterns = ["songs/[.txt"]
`,
			errSub: "invalid glob pattern",
		},
		{
			name: "lines per slide out of range",
			toml: `
[slides]
lines_per_slide = 40
`,
			errSub: "lines_per_slide",
		},
		{
			name: "unknown list field",
			toml: `
[display]
fields = ["title", "tempo"]
`,
			errSub: "unknown list field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "songsheet.toml")
			writeFile(t, configPath, tt.toml)

			_, err := config.Load(configPath)
			if err == nil {
				t.Fatal("Load() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Fatalf("Load() error = %q, want substring %q", err.Error(), tt.errSub)
			}
		})
	}
}

func TestLoadAcceptsMissingOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "songsheet.toml")
	writeFile(t, configPath, `output = "songbook"`)

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	want := filepath.Join(dir, "songbook")
	if cfg.Output != want {
		t.Fatalf("Output = %q, want %q", cfg.Output, want)
	}
}

func TestLoadAcceptsExistingOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "songbook"), 0o750); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}
	configPath := filepath.Join(dir, "songsheet.toml")
	writeFile(t, configPath, `output = "songbook"`)

	if _, err := config.Load(configPath); err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
}

func TestLoadRejectsOutputPointingAtFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "songbook"), "not a directory")
	configPath := filepath.Join(dir, "songsheet.toml")
	writeFile(t, configPath, `output = "songbook"`)

	_, err := config.Load(configPath)
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("Load() error = %q, want substring %q", err.Error(), "not a directory")
	}
}

func TestDefaultUsesWorkingDirectory(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if !strings.HasSuffix(cfg.Output, config.DefaultOutput) {
		t.Fatalf("Output = %q, want %q suffix", cfg.Output, config.DefaultOutput)
	}
	if cfg.Slides.LinesPerSlide != config.DefaultLinesPerSlide {
		t.Fatalf("LinesPerSlide = %d, want %d", cfg.Slides.LinesPerSlide, config.DefaultLinesPerSlide)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
}

func mustEval(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks(%q) error = %v", path, err)
	}
	return resolved
}
