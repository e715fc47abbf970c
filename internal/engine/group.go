package engine

import (
	"sort"
	"strings"

	"github.com/jteoh/invsplit/internal/model"
)

// CompanyBucket collects every page belonging to one normalized company key.
// Buckets grow during the scan pass and are finalized exactly once; after
// finalization the page order and display name are fixed.
type CompanyBucket struct {
	Key       string
	pages     []model.PageDescriptor
	name      string
	finalized bool
}

// Pages returns the bucket's descriptors. After finalization the slice is in
// consolidated output order.
func (b *CompanyBucket) Pages() []model.PageDescriptor {
	return b.pages
}

// DisplayName returns the resolved company name; only meaningful after
// finalization.
func (b *CompanyBucket) DisplayName() string {
	return b.name
}

// SourceCount returns the number of distinct sources that contributed pages.
func (b *CompanyBucket) SourceCount() int {
	seen := make(map[string]struct{}, len(b.pages))
	for _, p := range b.pages {
		seen[p.SourceID] = struct{}{}
	}
	return len(seen)
}

// finalize sorts the pages into consolidated order and resolves the display
// name: the raw name from the lowest name-priority descriptor that has one,
// regardless of scan order.
func (b *CompanyBucket) finalize() {
	if b.finalized {
		return
	}
	b.finalized = true

	sort.SliceStable(b.pages, func(i, j int) bool {
		return b.pages[i].Less(b.pages[j])
	})

	b.name = model.UnknownCompany
	best := -1
	for _, p := range b.pages {
		if !p.HasCompanyName() {
			continue
		}
		if best == -1 || p.NamePriority < best {
			best = p.NamePriority
			b.name = strings.TrimSpace(p.RawCompany)
		}
	}
}

// Grouper buckets page descriptors by company key, preserving first-seen key
// order so the consolidated output is deterministic across runs.
type Grouper struct {
	buckets map[string]*CompanyBucket
	order   []string
}

// NewGrouper creates an empty grouper.
func NewGrouper() *Grouper {
	return &Grouper{buckets: make(map[string]*CompanyBucket)}
}

// Add appends a descriptor to its company's bucket, creating the bucket on
// first sight of the key.
func (g *Grouper) Add(p model.PageDescriptor) {
	bucket, ok := g.buckets[p.CompanyKey]
	if !ok {
		bucket = &CompanyBucket{Key: p.CompanyKey}
		g.buckets[p.CompanyKey] = bucket
		g.order = append(g.order, p.CompanyKey)
	}
	bucket.pages = append(bucket.pages, p)
}

// Finalize sorts every bucket and resolves display names, returning the
// buckets in first-seen key order. It must be called exactly once, after the
// scan pass is complete.
func (g *Grouper) Finalize() []*CompanyBucket {
	out := make([]*CompanyBucket, 0, len(g.order))
	for _, key := range g.order {
		bucket := g.buckets[key]
		bucket.finalize()
		out = append(out, bucket)
	}
	return out
}
