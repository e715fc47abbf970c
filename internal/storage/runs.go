package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jteoh/invsplit/internal/engine"
	"github.com/jteoh/invsplit/internal/model"
)

// Run is one recorded split run.
type Run struct {
	StartedAt      time.Time
	CompletedAt    *time.Time
	ID             int64
	Sources        int
	Pages          int
	Companies      int
	PDFsWritten    int
	ReportsWritten int
	ReportsSkipped int
}

// BeginRun records the start of a run and returns its id.
func (s *Store) BeginRun(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at) VALUES (?)`,
		time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// RecordPage persists one page's extraction outcome. The amount is stored as
// its canonical decimal string, NULL when absent.
func (s *Store) RecordPage(ctx context.Context, runID int64, page model.PageDescriptor) error {
	var amount sql.NullString
	if page.Amount.Valid {
		amount = sql.NullString{String: page.Amount.Decimal.String(), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_pages (run_id, source_id, page_num, raw_company, company_key, category, amount)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, page.SourceID, page.PageNum, page.RawCompany, page.CompanyKey, string(page.Category), amount)
	if err != nil {
		return fmt.Errorf("failed to insert page record: %w", err)
	}
	return nil
}

// CompleteRun stamps the run with its completion time and summary counts.
func (s *Store) CompleteRun(ctx context.Context, runID int64, summary engine.Summary) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs
		 SET completed_at = ?, sources = ?, pages = ?, companies = ?,
		     pdfs_written = ?, reports_written = ?, reports_skipped = ?
		 WHERE id = ?`,
		time.Now().UTC(), summary.Sources, summary.Pages, summary.Companies,
		summary.PDFsWritten, summary.ReportsWritten, summary.ReportsSkipped, runID)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, completed_at, sources, pages, companies,
		        pdfs_written, reports_written, reports_skipped
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var completed sql.NullTime
		if err := rows.Scan(&r.ID, &r.StartedAt, &completed, &r.Sources, &r.Pages,
			&r.Companies, &r.PDFsWritten, &r.ReportsWritten, &r.ReportsSkipped); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if completed.Valid {
			t := completed.Time
			r.CompletedAt = &t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
