package ideas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SortKey orders the collection before it is sliced.
type SortKey string

const (
	// SortNewest is descending by publication time.
	SortNewest SortKey = "-published_at"
	// SortOldest is ascending by publication time.
	SortOldest SortKey = "published_at"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = SortNewest
)

var ErrInvalidPageRequest = errors.New("invalid page request")

// Known reports whether the key sorts the collection. Unknown keys are kept
// verbatim and leave the collection in insertion order.
func (k SortKey) Known() bool {
	return k == SortNewest || k == SortOldest
}

// PageRequest selects one page of the collection.
type PageRequest struct {
	Page int
	Size int
	Sort SortKey
}

// ParsePageRequest never fails: a missing, non-numeric or non-positive page or
// size falls back to its default, an empty sort to SortNewest.
func ParsePageRequest(page, size, sort string, defaultSize int) PageRequest {
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	req := PageRequest{
		Page: parsePositive(page, DefaultPage),
		Size: parsePositive(size, defaultSize),
		Sort: SortKey(strings.TrimSpace(sort)),
	}
	if req.Sort == "" {
		req.Sort = DefaultSort
	}
	return req
}

func parsePositive(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// Validate rejects requests built by hand with a zero or negative page or size.
func (r PageRequest) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidPageRequest, r.Page)
	}
	if r.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidPageRequest, r.Size)
	}
	return nil
}

// Bounds returns the [start, end) window of the request inside a collection
// of total items. A page past the end gives start == end == total. The page is
// compared against the page count before multiplying, so no page or size
// overflows.
func (r PageRequest) Bounds(total int) (start, end int) {
	total = max(total, 0)
	if r.Page < 1 || r.Size < 1 || r.Page > TotalPages(total, r.Size) {
		return total, total
	}
	start = (r.Page - 1) * r.Size
	return start, start + min(r.Size, total-start)
}

// CacheKey identifies the request in a page cache.
func (r PageRequest) CacheKey() string {
	return fmt.Sprintf("ideas:page=%d:size=%d:sort=%s", r.Page, r.Size, r.Sort)
}

// TotalPages is ceil(total / size); zero for an empty collection.
func TotalPages(total, size int) int {
	if size < 1 || total < 1 {
		return 0
	}
	pages := total / size
	if total%size > 0 {
		pages++
	}
	return pages
}
