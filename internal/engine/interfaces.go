package engine

import (
	"context"

	"github.com/jteoh/invsplit/internal/model"
	"github.com/jteoh/invsplit/internal/report"
)

// PageSource is one open source document yielding per-page plain text.
type PageSource interface {
	NumPages() int
	// PageText returns the extracted text of the 1-based page.
	PageText(pageNum int) (string, error)
	Close() error
}

// SourceOpener opens source documents. Decoding and text rendering live
// behind this boundary; the engine only sees page text.
type SourceOpener interface {
	Open(path string) (PageSource, error)
}

// Assembler concatenates selected source pages, in the given order, into one
// output document.
type Assembler interface {
	Assemble(ctx context.Context, outPath string, pages []model.PageRef) error
}

// ReportRenderer renders one company's totals against the report template.
// A missing template must surface as report.ErrTemplateMissing so the engine
// can skip that company's report without aborting the run.
type ReportRenderer interface {
	Render(ctx context.Context, outPath string, rep report.Report) error
}

// ProgressReporter receives page-scan progress for console display.
type ProgressReporter interface {
	Start(totalPages int)
	Advance()
	Finish()
}

// RunLedger persists run history and per-page extraction outcomes for later
// inspection. All methods are best-effort from the engine's point of view:
// ledger failures are logged, never fatal.
type RunLedger interface {
	BeginRun(ctx context.Context) (int64, error)
	RecordPage(ctx context.Context, runID int64, page model.PageDescriptor) error
	CompleteRun(ctx context.Context, runID int64, summary Summary) error
}
