package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/openworship/songsheet/internal/importer"
	"github.com/openworship/songsheet/internal/songbook"
	"github.com/openworship/songsheet/internal/ui"
)

var errMock = errors.New("mock error")

func newTestPrinter(buf *bytes.Buffer, dryRun bool) *ui.ImportPrinter {
	return ui.NewImportPrinterWithWriter(buf, dryRun)
}

func TestHandleEventImported(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(importer.Event{
		Kind:  importer.EventImported,
		File:  "songs/amazing_grace.txt",
		Entry: &songbook.Entry{Title: "Amazing Grace"},
	})

	out := buf.String()
	if !strings.Contains(out, "Amazing Grace") {
		t.Errorf("imported event output missing title, got: %q", out)
	}
	if !strings.Contains(out, "songs/amazing_grace.txt") {
		t.Errorf("imported event output missing file, got: %q", out)
	}
}

func TestHandleEventImportedWithWarning(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(importer.Event{
		Kind:    importer.EventImported,
		File:    "songs/oceans.txt",
		Entry:   &songbook.Entry{Title: "Spirit lead me"},
		Warning: `title "Spirit lead me" does not resemble filename "oceans"`,
	})

	out := buf.String()
	if !strings.Contains(out, "does not resemble") {
		t.Errorf("imported event output missing warning, got: %q", out)
	}
}

func TestHandleEventSkipped(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(importer.Event{
		Kind:   importer.EventSkipped,
		File:   "songs/slides.pptx",
		Reason: "binary file",
	})

	out := buf.String()
	if !strings.Contains(out, "binary file") {
		t.Errorf("skipped event output missing reason, got: %q", out)
	}
}

func TestHandleEventFailed(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.HandleEvent(importer.Event{
		Kind: importer.EventFailed,
		File: "songs/broken.txt",
		Err:  errMock,
	})

	out := buf.String()
	if !strings.Contains(out, "songs/broken.txt") {
		t.Errorf("failed event output missing file, got: %q", out)
	}
	if !strings.Contains(out, "mock error") {
		t.Errorf("failed event output missing error text, got: %q", out)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.PrintSummary(&importer.Result{
		Imported: 4,
		Skipped:  1,
	})

	out := buf.String()
	if !strings.Contains(out, "import complete") {
		t.Errorf("summary missing 'import complete', got: %q", out)
	}
	if !strings.Contains(out, "4 imported") {
		t.Errorf("summary missing import count, got: %q", out)
	}
}

func TestPrintSummaryDryRun(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, true)

	p.PrintSummary(&importer.Result{Imported: 2})

	out := buf.String()
	if !strings.Contains(out, "dry-run complete") {
		t.Errorf("dry-run summary missing label, got: %q", out)
	}
	if !strings.Contains(out, "no files were written") {
		t.Errorf("dry-run summary missing disclaimer, got: %q", out)
	}
}

func TestPrintSummaryWithFailures(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.PrintSummary(&importer.Result{
		Imported: 1,
		Failed:   2,
	})

	out := buf.String()
	if !strings.Contains(out, "2 failed") {
		t.Errorf("summary missing failure count, got: %q", out)
	}
}

func TestPrintSummaryNilResult(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf, false)

	p.PrintSummary(nil)

	if buf.Len() != 0 {
		t.Errorf("expected no output for nil result, got: %q", buf.String())
	}
}
