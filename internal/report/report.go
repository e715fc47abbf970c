// Package report renders per-company totals into the fixed-layout XLSX
// report template.
package report

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jteoh/invsplit/internal/model"
)

// ErrTemplateMissing indicates the report template workbook does not exist.
// Callers skip report generation for the company and keep going.
var ErrTemplateMissing = errors.New("report template not found")

// Report carries one company's aggregated totals to the filler.
type Report struct {
	DisplayName    string
	CategoryTotals map[model.ServiceCategory]decimal.Decimal
	PrimaryTotal   decimal.NullDecimal
}

// GrandTotal returns the exact sum of the primary total and every category
// total. Absent values contribute zero.
func (r Report) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	if r.PrimaryTotal.Valid {
		total = total.Add(r.PrimaryTotal.Decimal)
	}
	for _, amt := range r.CategoryTotals {
		total = total.Add(amt)
	}
	return total
}
