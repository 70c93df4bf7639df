package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/openworship/songsheet/internal/importer"
)

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// ImportPrinter renders import progress events to stderr with colored
// output.
type ImportPrinter struct {
	w      io.Writer
	dryRun bool
	mu     sync.Mutex
	s      styles
}

// NewImportPrinter creates an ImportPrinter that writes to stderr.
func NewImportPrinter(dryRun bool) *ImportPrinter {
	return &ImportPrinter{
		w:      os.Stderr,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// NewImportPrinterWithWriter creates an ImportPrinter that writes to the
// given writer.
func NewImportPrinterWithWriter(w io.Writer, dryRun bool) *ImportPrinter {
	return &ImportPrinter{
		w:      w,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// HandleEvent is the callback wired into importer.Options.OnEvent.
func (p *ImportPrinter) HandleEvent(e importer.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case importer.EventImported:
		title := e.File
		if e.Entry != nil && e.Entry.Title != "" {
			title = e.Entry.Title
		}
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.green.Sprint("✓"),
			p.s.bold.Sprint(title),
			p.s.dim.Sprintf("(%s)", e.File),
		)
		if e.Warning != "" {
			fmt.Fprintf(p.w, "  %s %s\n",
				p.s.yellow.Sprint("!"),
				p.s.dim.Sprint(e.Warning),
			)
		}

	case importer.EventSkipped:
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.dim.Sprint("—"),
			e.File,
			p.s.dim.Sprintf("(%s)", e.Reason),
		)

	case importer.EventFailed:
		fmt.Fprintf(p.w, "%s %s: %s\n",
			p.s.red.Sprint("✗"),
			p.s.bold.Sprint(e.File),
			e.Err,
		)
	}
}

// PrintSummary renders a final summary line after import completes.
func (p *ImportPrinter) PrintSummary(r *importer.Result) {
	if r == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w)

	label := "import complete"
	if p.dryRun {
		label = p.s.yellow.Sprint("dry-run complete")
	}

	parts := fmt.Sprintf("%s: %d imported, %d skipped",
		label,
		r.Imported,
		r.Skipped,
	)

	if r.Failed > 0 {
		parts += fmt.Sprintf(", %s",
			p.s.red.Sprintf("%d failed", r.Failed),
		)
	}

	fmt.Fprintln(p.w, parts)

	if p.dryRun {
		fmt.Fprintln(p.w, p.s.dim.Sprint("no files were written"))
	}
}
