package repository

import (
	"strings"

	"golang.org/x/text/cases"
)

// matcher does case-insensitive substring matching with Unicode case folding,
// so Thai and accented names compare the same way as ASCII ones.
type matcher struct {
	caser  cases.Caser
	needle string
}

// newMatcher builds a matcher for query. A Caser keeps state, so a matcher
// belongs to a single search call.
func newMatcher(query string) *matcher {
	caser := cases.Fold()
	return &matcher{
		caser:  caser,
		needle: caser.String(strings.TrimSpace(query)),
	}
}

// match reports whether any field contains the query. An empty query matches
// everything.
func (m *matcher) match(fields ...string) bool {
	if m.needle == "" {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(m.caser.String(f), m.needle) {
			return true
		}
	}
	return false
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

const (
	defaultPageSize = 20
	maxPageSize     = 500
)

// paginate slices out one page. Pages start at 1; size defaults to
// defaultPageSize.
func paginate[T any](items []T, page, size int) ([]T, int64) {
	total := int64(len(items))
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}, total
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
