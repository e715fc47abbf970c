package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jteoh/invsplit/internal/model"
)

func TestGrouperBucketsByCompanyKey(t *testing.T) {
	g := NewGrouper()
	g.Add(model.PageDescriptor{CompanyKey: "ACMECORP", SourceID: "a.pdf", PageNum: 1})
	g.Add(model.PageDescriptor{CompanyKey: "BETACO", SourceID: "a.pdf", PageNum: 2})
	g.Add(model.PageDescriptor{CompanyKey: "ACMECORP", SourceID: "b.pdf", PageNum: 1})

	buckets := g.Finalize()
	require.Len(t, buckets, 2)
	// First-seen key order is preserved.
	assert.Equal(t, "ACMECORP", buckets[0].Key)
	assert.Equal(t, "BETACO", buckets[1].Key)
	assert.Len(t, buckets[0].Pages(), 2)
	assert.Equal(t, 2, buckets[0].SourceCount())
}

func TestFinalizeSortsPages(t *testing.T) {
	g := NewGrouper()
	g.Add(model.PageDescriptor{CompanyKey: "K", SourceID: "c.pdf", PageNum: 2, SourceOrder: 3, SortByCategory: true, Category: model.CategoryOthers})
	g.Add(model.PageDescriptor{CompanyKey: "K", SourceID: "a.pdf", PageNum: 5, SourceOrder: 1})
	g.Add(model.PageDescriptor{CompanyKey: "K", SourceID: "c.pdf", PageNum: 9, SourceOrder: 3, SortByCategory: true, Category: model.CategoryTax})
	g.Add(model.PageDescriptor{CompanyKey: "K", SourceID: "a.pdf", PageNum: 1, SourceOrder: 1})

	pages := g.Finalize()[0].Pages()
	require.Len(t, pages, 4)
	assert.Equal(t, model.PageRef{SourceID: "a.pdf", PageNum: 1}, pages[0].Ref())
	assert.Equal(t, model.PageRef{SourceID: "a.pdf", PageNum: 5}, pages[1].Ref())
	// Category-sorted source: TAX before OTHERS although OTHERS has the
	// lower page number.
	assert.Equal(t, model.PageRef{SourceID: "c.pdf", PageNum: 9}, pages[2].Ref())
	assert.Equal(t, model.PageRef{SourceID: "c.pdf", PageNum: 2}, pages[3].Ref())
}

func TestDisplayNamePicksLowestPriorityNonEmpty(t *testing.T) {
	g := NewGrouper()
	g.Add(model.PageDescriptor{CompanyKey: "K", NamePriority: 3, RawCompany: "Acme Corp"})
	g.Add(model.PageDescriptor{CompanyKey: "K", NamePriority: 1, RawCompany: ""})
	g.Add(model.PageDescriptor{CompanyKey: "K", NamePriority: 2, RawCompany: "ACME CORP LTD"})

	assert.Equal(t, "ACME CORP LTD", g.Finalize()[0].DisplayName())
}

func TestDisplayNameIgnoresScanOrder(t *testing.T) {
	g := NewGrouper()
	g.Add(model.PageDescriptor{CompanyKey: "K", NamePriority: 2, RawCompany: "Second Choice"})
	g.Add(model.PageDescriptor{CompanyKey: "K", NamePriority: 1, RawCompany: "  First Choice  "})

	assert.Equal(t, "First Choice", g.Finalize()[0].DisplayName())
}

func TestDisplayNameFallsBackToUnknown(t *testing.T) {
	g := NewGrouper()
	g.Add(model.PageDescriptor{CompanyKey: model.UnknownCompany, NamePriority: 1, RawCompany: "   "})

	assert.Equal(t, model.UnknownCompany, g.Finalize()[0].DisplayName())
}
