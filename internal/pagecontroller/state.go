// Package pagecontroller owns the client side of the ideas listing: the
// page/size/sort state, its mirror in the address bar, the single in-flight
// fetch, and the projection of state and results into a renderable View.
//
// State transitions are pure functions on State. The Controller applies them,
// pushes history entries, and talks to a Fetcher and a Renderer.
package pagecontroller

import (
	"fmt"
	"math"
	"net/url"

	"ideas-listing/internal/ideas"
	"ideas-listing/internal/models"
)

// Query parameter names of the browser-facing URL.
const (
	ParamPage = "page"
	ParamSize = "size"
	ParamSort = "sort"
)

// State is everything the page shows that is not the posts themselves.
type State struct {
	Page       int
	Size       int
	Sort       ideas.SortKey
	TotalItems int
	TotalPages int
	Loading    bool
}

func DefaultState() State {
	return State{Page: ideas.DefaultPage, Size: ideas.DefaultPageSize, Sort: ideas.DefaultSort}
}

// FromQuery rebuilds state from URL parameters using the same fallbacks as the
// server, so any query string is safe to re-enter.
func FromQuery(q url.Values) State {
	req := ideas.ParsePageRequest(q.Get(ParamPage), q.Get(ParamSize), q.Get(ParamSort), ideas.DefaultPageSize)
	return State{Page: req.Page, Size: req.Size, Sort: req.Sort}
}

// Query serializes the URL-restorable part of the state.
func (s State) Query() url.Values {
	q := url.Values{}
	q.Set(ParamPage, fmt.Sprint(s.Page))
	q.Set(ParamSize, fmt.Sprint(s.Size))
	q.Set(ParamSort, string(s.Sort))
	return q
}

// URL is path with the state's query string.
func (s State) URL(path string) string {
	return path + "?" + s.Query().Encode()
}

func (s State) Request() ideas.PageRequest {
	return ideas.PageRequest{Page: s.Page, Size: s.Size, Sort: s.Sort}
}

// WithPageSize changes the page size and returns to the first page.
func (s State) WithPageSize(size int) State {
	if size < 1 {
		size = ideas.DefaultPageSize
	}
	s.Size = size
	s.Page = 1
	return s
}

// WithSort changes the sort key and returns to the first page.
func (s State) WithSort(key ideas.SortKey) State {
	if key == "" {
		key = ideas.DefaultSort
	}
	s.Sort = key
	s.Page = 1
	return s
}

// CanGoTo reports whether page is inside [1, TotalPages] and not the current page.
func (s State) CanGoTo(page int) bool {
	return page >= 1 && page <= s.TotalPages && page != s.Page
}

// WithPage moves to page when CanGoTo allows it.
func (s State) WithPage(page int) (State, bool) {
	if !s.CanGoTo(page) {
		return s, false
	}
	s.Page = page
	return s, true
}

// Key is a navigation key understood by Step.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
)

// Step applies arrow-key navigation.
func (s State) Step(key Key) (State, bool) {
	switch key {
	case KeyLeft:
		return s.WithPage(s.Page - 1)
	case KeyRight:
		return s.WithPage(s.Page + 1)
	}
	return s, false
}

// WithResult records the totals of a fetched page.
func (s State) WithResult(meta models.PageMeta) State {
	s.TotalItems = meta.Total
	s.TotalPages = meta.TotalPages
	return s
}

// ShowingInfo is the "Showing a - b of n" line under the controls.
// A page too far out to address saturates instead of wrapping.
func (s State) ShowingInfo() string {
	offset := math.MaxInt - 1
	if s.Size > 0 && s.Page-1 <= (math.MaxInt-1)/s.Size {
		offset = (s.Page - 1) * s.Size
	}
	end := s.TotalItems
	if s.Size < s.TotalItems-offset {
		end = offset + s.Size
	}
	return fmt.Sprintf("Showing %d - %d of %d", offset+1, end, s.TotalItems)
}
