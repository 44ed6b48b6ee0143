package pagecontroller

import (
	"net/url"
	"sync"
)

// History is the address bar: the controller pushes an entry per state change
// and reads the current location on load and back/forward.
type History interface {
	Push(rawURL string)
	Location() *url.URL
}

// MemoryHistory is a browser-like session history kept in memory.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []*url.URL
	index   int
}

// NewMemoryHistory starts a history at initial. An unparsable initial URL
// starts at "/".
func NewMemoryHistory(initial string) *MemoryHistory {
	u, err := url.Parse(initial)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	return &MemoryHistory{entries: []*url.URL{u}}
}

// Push drops any forward entries and appends rawURL, resolved against the
// current location.
func (h *MemoryHistory) Push(rawURL string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ref, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	next := h.entries[h.index].ResolveReference(ref)
	h.entries = append(h.entries[:h.index+1], next)
	h.index++
}

func (h *MemoryHistory) Location() *url.URL {
	h.mu.Lock()
	defer h.mu.Unlock()

	u := *h.entries[h.index]
	return &u
}

func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

func (h *MemoryHistory) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
