// Package engine implements the scan-and-consolidate pipeline: page
// extraction, company reconciliation, total aggregation, and per-company
// output.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jteoh/invsplit/internal/extract"
	"github.com/jteoh/invsplit/internal/model"
	"github.com/jteoh/invsplit/internal/report"
)

// Options configures a split run.
type Options struct {
	OutputDir   string
	SkipPDFs    bool
	SkipReports bool
}

// Summary describes what a completed run produced.
type Summary struct {
	StartedAt      time.Time
	Duration       time.Duration
	Sources        int
	Pages          int
	Companies      int
	PDFsWritten    int
	ReportsWritten int
	ReportsSkipped int
}

// Splitter wires the scan pass to its collaborators. The scan itself is
// strictly sequential: sources in configured order, pages in document order,
// one pass.
type Splitter struct {
	sources  []model.SourceConfig
	opener   SourceOpener
	assemble Assembler
	renderer ReportRenderer
	progress ProgressReporter
	ledger   RunLedger
	opts     Options
}

// NewSplitter creates a splitter. The progress reporter and run ledger are
// optional; everything else is required.
func NewSplitter(sources []model.SourceConfig, opener SourceOpener, assembler Assembler, renderer ReportRenderer, opts Options) (*Splitter, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("at least one source is required")
	}
	for _, src := range sources {
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("invalid source config: %w", err)
		}
	}
	if opener == nil || assembler == nil || renderer == nil {
		return nil, fmt.Errorf("opener, assembler, and renderer are required")
	}
	return &Splitter{
		sources:  sources,
		opener:   opener,
		assemble: assembler,
		renderer: renderer,
		opts:     opts,
	}, nil
}

// WithProgress attaches a console progress reporter.
func (s *Splitter) WithProgress(p ProgressReporter) *Splitter {
	s.progress = p
	return s
}

// WithLedger attaches a run ledger.
func (s *Splitter) WithLedger(l RunLedger) *Splitter {
	s.ledger = l
	return s
}

// Run executes the full pipeline: scan every page of every source, finalize
// company buckets, then emit the consolidated PDF and report per company.
// A failure producing one company's artifacts never stops the others.
func (s *Splitter) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{StartedAt: time.Now(), Sources: len(s.sources)}

	if err := os.MkdirAll(s.opts.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// All sources stay open for the whole run: the scan reads text from
	// them and assembly copies pages out of them afterwards.
	open := make(map[string]PageSource, len(s.sources))
	defer func() {
		for path, src := range open {
			if err := src.Close(); err != nil {
				slog.Warn("Failed to close source", "source", path, "error", err)
			}
		}
	}()
	totalPages := 0
	for _, cfg := range s.sources {
		src, err := s.opener.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open source %s: %w", cfg.Path, err)
		}
		open[cfg.Path] = src
		totalPages += src.NumPages()
	}

	var runID int64
	if s.ledger != nil {
		id, err := s.ledger.BeginRun(ctx)
		if err != nil {
			slog.Warn("Failed to record run start", "error", err)
		} else {
			runID = id
		}
	}

	if s.progress != nil {
		s.progress.Start(totalPages)
		defer s.progress.Finish()
	}

	aggregator := NewAggregator()
	grouper := NewGrouper()

	for _, cfg := range s.sources {
		if err := s.scanSource(ctx, cfg, open[cfg.Path], aggregator, grouper, runID, summary); err != nil {
			return nil, err
		}
	}

	buckets := grouper.Finalize()
	summary.Companies = len(buckets)

	for _, bucket := range buckets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.emitCompany(ctx, bucket, aggregator, summary)
	}

	summary.Duration = time.Since(summary.StartedAt)
	if s.ledger != nil && runID != 0 {
		if err := s.ledger.CompleteRun(ctx, runID, *summary); err != nil {
			slog.Warn("Failed to record run completion", "error", err)
		}
	}

	slog.Info("Split run complete",
		"sources", summary.Sources,
		"pages", summary.Pages,
		"companies", summary.Companies,
		"pdfs", summary.PDFsWritten,
		"reports", summary.ReportsWritten,
		"reports_skipped", summary.ReportsSkipped,
		"duration", summary.Duration)
	return summary, nil
}

// scanSource runs the extractor over every page of one source, routing
// amounts into the aggregator and descriptors into the grouper.
func (s *Splitter) scanSource(ctx context.Context, cfg model.SourceConfig, src PageSource, aggregator *Aggregator, grouper *Grouper, runID int64, summary *Summary) error {
	extractor := extract.ForKind(cfg.Kind)
	numPages := src.NumPages()

	slog.Info("Scanning source",
		"source", filepath.Base(cfg.Path),
		"kind", cfg.Kind,
		"pages", numPages)

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := src.PageText(pageNum)
		if err != nil {
			// Treated like a parse-miss: the page still joins the UNKNOWN
			// bucket so it is not silently lost from the output.
			slog.Warn("Failed to extract page text",
				"source", filepath.Base(cfg.Path),
				"page", pageNum,
				"error", err)
			text = ""
		}

		fields := extractor.Extract(text)
		key := extract.NormalizeCompanyKey(fields.Company)
		category := extract.NormalizeServiceType(fields.ServiceType)
		amount := extract.ParseAmount(fields.Amount)

		// Total routing follows the source kind: the itemized source feeds
		// category totals, the baseline invoice feeds the primary total,
		// statements feed neither.
		switch cfg.Kind {
		case model.SourceCategorizedInvoice:
			aggregator.AddCategoryAmount(key, category, amount)
		case model.SourcePrimaryInvoice:
			aggregator.AddPrimaryAmount(key, amount)
		}

		page := model.PageDescriptor{
			SourceID:       cfg.Path,
			PageNum:        pageNum,
			RawCompany:     fields.Company,
			CompanyKey:     key,
			Category:       category,
			NamePriority:   cfg.NamePriority,
			SourceOrder:    cfg.SourceOrder,
			SortByCategory: cfg.SortByCategory,
			Amount:         amount,
		}
		grouper.Add(page)
		summary.Pages++

		if s.ledger != nil && runID != 0 {
			if err := s.ledger.RecordPage(ctx, runID, page); err != nil {
				slog.Warn("Failed to record page in ledger",
					"page", pageNum,
					"error", err)
			}
		}
		if s.progress != nil {
			s.progress.Advance()
		}
	}
	return nil
}

// emitCompany writes one company's consolidated PDF and, when it has totals,
// its report. Errors are logged and counted, never propagated: each
// company's artifacts are independent.
func (s *Splitter) emitCompany(ctx context.Context, bucket *CompanyBucket, aggregator *Aggregator, summary *Summary) {
	name := bucket.DisplayName()
	baseName := extract.SanitizeFilename(name)

	if bucket.Key == model.UnknownCompany && bucket.SourceCount() > 1 {
		slog.Warn("Unidentified pages from multiple sources collapsed into one bucket",
			"pages", len(bucket.Pages()),
			"sources", bucket.SourceCount())
	}

	if !s.opts.SkipPDFs {
		pages := bucket.Pages()
		refs := make([]model.PageRef, len(pages))
		for i, p := range pages {
			refs[i] = p.Ref()
		}
		pdfPath := filepath.Join(s.opts.OutputDir, baseName+".pdf")
		if err := s.assemble.Assemble(ctx, pdfPath, refs); err != nil {
			slog.Error("Failed to assemble company PDF",
				"company", name,
				"error", err)
		} else {
			summary.PDFsWritten++
			slog.Info("PDF created", "company", name, "pages", len(refs))
		}
	}

	if s.opts.SkipReports || !aggregator.HasTotals(bucket.Key) {
		return
	}

	rep := report.Report{
		DisplayName:    name,
		CategoryTotals: aggregator.CategoryTotals(bucket.Key),
		PrimaryTotal:   aggregator.PrimaryTotal(bucket.Key),
	}
	reportPath := filepath.Join(s.opts.OutputDir, baseName+".xlsx")
	switch err := s.renderer.Render(ctx, reportPath, rep); {
	case err == nil:
		summary.ReportsWritten++
		slog.Info("Report created", "company", name)
	case errors.Is(err, report.ErrTemplateMissing):
		summary.ReportsSkipped++
		slog.Warn("Report template missing, skipping report", "company", name)
	default:
		summary.ReportsSkipped++
		slog.Error("Failed to render report", "company", name, "error", err)
	}
}
