package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UnknownCompany is the sentinel key and display name used when no company
// name could be extracted from a page.
const UnknownCompany = "UNKNOWN"

// PageDescriptor captures everything the pipeline knows about a single page
// of a source document. Descriptors are immutable once constructed.
type PageDescriptor struct {
	// SourceID identifies the source document (its path).
	SourceID string
	// PageNum is the 1-based page index within the source.
	PageNum int
	// RawCompany is the company name exactly as extracted; empty when the
	// extractor found none.
	RawCompany string
	// CompanyKey is the normalized join key; never empty, falls back to
	// UnknownCompany.
	CompanyKey string
	Category   ServiceCategory
	// NamePriority and SourceOrder are copied from the source configuration
	// so a descriptor is self-contained for sorting and name resolution.
	NamePriority   int
	SourceOrder    int
	SortByCategory bool
	// Amount is the extracted total; invalid when the page carried none.
	Amount decimal.NullDecimal
}

// PageRef identifies one page of one source document; the ordered PageRef
// list for a company defines its consolidated output.
type PageRef struct {
	SourceID string
	PageNum  int
}

// Ref returns the descriptor's page reference.
func (p PageDescriptor) Ref() PageRef {
	return PageRef{SourceID: p.SourceID, PageNum: p.PageNum}
}

// HasCompanyName reports whether the descriptor carries a usable raw name.
func (p PageDescriptor) HasCompanyName() bool {
	return strings.TrimSpace(p.RawCompany) != ""
}

// Less orders two descriptors within the same company: source order first,
// then category priority when both pages come from a category-sorted source,
// then page number. It is the single comparator used for consolidated output.
func (p PageDescriptor) Less(other PageDescriptor) bool {
	if p.SourceOrder != other.SourceOrder {
		return p.SourceOrder < other.SourceOrder
	}
	if p.SortByCategory && other.SortByCategory {
		if a, b := p.Category.Priority(), other.Category.Priority(); a != b {
			return a < b
		}
	}
	return p.PageNum < other.PageNum
}
