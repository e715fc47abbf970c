// Package model defines the core domain types shared across the pipeline.
package model

import "fmt"

// SourceKind identifies which of the three supported document layouts a
// source follows. The set is closed: adding a layout means adding an
// extractor, so new kinds require a code change by design.
type SourceKind string

const (
	// SourcePrimaryInvoice is the baseline invoice run; its totals feed the
	// per-company primary total.
	SourcePrimaryInvoice SourceKind = "primary_invoice"
	// SourceCategorizedInvoice is the service-type itemized invoice run; its
	// totals feed the per-category totals.
	SourceCategorizedInvoice SourceKind = "categorized_invoice"
	// SourceStatementOfAccount is the statement-of-account run; it
	// contributes pages and company names only, never amounts.
	SourceStatementOfAccount SourceKind = "statement_of_account"
)

// ParseSourceKind converts a configuration string into a SourceKind.
func ParseSourceKind(s string) (SourceKind, error) {
	switch SourceKind(s) {
	case SourcePrimaryInvoice, SourceCategorizedInvoice, SourceStatementOfAccount:
		return SourceKind(s), nil
	default:
		return "", fmt.Errorf("unknown source kind: %q", s)
	}
}

// SourceConfig is the immutable per-source configuration constructed once at
// startup and passed by value into the scan pass.
type SourceConfig struct {
	// Path is the source PDF location and doubles as the source identifier.
	Path string
	Kind SourceKind
	// NamePriority ranks how much this source's company names are trusted
	// when picking a display name; lower wins.
	NamePriority int
	// SourceOrder defines the primary grouping order of pages in the
	// consolidated output.
	SourceOrder int
	// SortByCategory marks sources whose pages are ordered by service
	// category within a company.
	SortByCategory bool
}

// Validate checks that the source configuration is usable.
func (c SourceConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("source path is required")
	}
	if _, err := ParseSourceKind(string(c.Kind)); err != nil {
		return err
	}
	if c.NamePriority <= 0 {
		return fmt.Errorf("source %s: name priority must be positive, got %d", c.Path, c.NamePriority)
	}
	if c.SourceOrder <= 0 {
		return fmt.Errorf("source %s: source order must be positive, got %d", c.Path, c.SourceOrder)
	}
	return nil
}
