package engine

import (
	"github.com/shopspring/decimal"

	"github.com/jteoh/invsplit/internal/model"
)

// Aggregator accumulates exact decimal totals per normalized company key:
// category totals from the itemized invoice source and a single primary
// total from the baseline invoice source. Merges are pure additions; nothing
// is rounded until render time.
type Aggregator struct {
	categoryTotals map[string]map[model.ServiceCategory]decimal.Decimal
	primaryTotals  map[string]decimal.Decimal
}

// NewAggregator creates an empty aggregation state.
func NewAggregator() *Aggregator {
	return &Aggregator{
		categoryTotals: make(map[string]map[model.ServiceCategory]decimal.Decimal),
		primaryTotals:  make(map[string]decimal.Decimal),
	}
}

// AddCategoryAmount merge-adds an itemized amount under (company, category).
// Invalid amounts are a no-op: an unparsed total contributes zero, never an
// error.
func (a *Aggregator) AddCategoryAmount(companyKey string, category model.ServiceCategory, amount decimal.NullDecimal) {
	if !amount.Valid {
		return
	}
	totals, ok := a.categoryTotals[companyKey]
	if !ok {
		totals = make(map[model.ServiceCategory]decimal.Decimal)
		a.categoryTotals[companyKey] = totals
	}
	totals[category] = totals[category].Add(amount.Decimal)
}

// AddPrimaryAmount merge-adds a baseline invoice amount under the company.
// Invalid amounts are a no-op.
func (a *Aggregator) AddPrimaryAmount(companyKey string, amount decimal.NullDecimal) {
	if !amount.Valid {
		return
	}
	a.primaryTotals[companyKey] = a.primaryTotals[companyKey].Add(amount.Decimal)
}

// CategoryTotals returns a copy of the per-category totals for a company, or
// nil when the itemized source contributed nothing.
func (a *Aggregator) CategoryTotals(companyKey string) map[model.ServiceCategory]decimal.Decimal {
	totals, ok := a.categoryTotals[companyKey]
	if !ok {
		return nil
	}
	out := make(map[model.ServiceCategory]decimal.Decimal, len(totals))
	for cat, amt := range totals {
		out[cat] = amt
	}
	return out
}

// PrimaryTotal returns the company's baseline invoice total; invalid when the
// primary source contributed nothing.
func (a *Aggregator) PrimaryTotal(companyKey string) decimal.NullDecimal {
	total, ok := a.primaryTotals[companyKey]
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: total, Valid: true}
}

// HasTotals reports whether the company accumulated anything worth a report.
func (a *Aggregator) HasTotals(companyKey string) bool {
	if _, ok := a.primaryTotals[companyKey]; ok {
		return true
	}
	totals, ok := a.categoryTotals[companyKey]
	return ok && len(totals) > 0
}
