package pagecontroller

import (
	"fmt"
	"strconv"
	"time"

	"ideas-listing/internal/ideas"
	"ideas-listing/internal/models"
)

type ViewKind int

const (
	ViewLoading ViewKind = iota
	ViewError
	ViewEmpty
	ViewPosts
)

func (k ViewKind) String() string {
	switch k {
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewEmpty:
		return "empty"
	case ViewPosts:
		return "posts"
	}
	return "unknown"
}

const (
	loadingMessage = "Loading posts..."
	errorTitle     = "Oops! Something went wrong"
	errorMessage   = "Failed to load posts. Please check your connection and try again."
	emptyTitle     = "No posts found"
	emptyMessage   = "There are no posts to display at the moment."

	staggerStep = 100 * time.Millisecond

	// FallbackImage replaces a card image that fails to load.
	FallbackImage = `data:image/svg+xml,<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 200"><rect width="300" height="200" fill="%23f0f0f0"/><text x="150" y="100" text-anchor="middle" fill="%23999">Image not found</text></svg>`
)

// PageSizeOptions are the choices of the page size selector.
var PageSizeOptions = []int{10, 20, 50}

// SortOption is one entry of the sort selector.
type SortOption struct {
	Key   ideas.SortKey
	Label string
}

var SortOptions = []SortOption{
	{Key: ideas.SortNewest, Label: "Newest"},
	{Key: ideas.SortOldest, Label: "Oldest"},
}

// View is one render of the page.
type View struct {
	Kind        ViewKind
	State       State
	Title       string
	Message     string
	Cards       []Card
	Pagination  []Control
	ShowingInfo string
}

// Card is one post as shown in the grid. Title is plain text; renderers must
// escape it.
type Card struct {
	ID             int
	Title          string
	Date           string
	ImageURL       string
	FallbackImage  string
	AnimationDelay time.Duration
}

type ControlKind int

const (
	ControlPrev ControlKind = iota
	ControlPage
	ControlEllipsis
	ControlNext
)

// Control is one element of the pagination bar.
type Control struct {
	Kind      ControlKind
	Label     string
	Page      int
	Disabled  bool
	Active    bool
	AriaLabel string
}

const (
	paginationRadius = 2
	ellipsisLabel    = "..."
)

// BuildPagination lays out prev, a window of up to five pages centred on
// current, first/last shortcuts with an ellipsis when the window does not
// reach them, and next. Prev and next are always present and disabled at the
// bounds.
func BuildPagination(current, totalPages int) []Control {
	controls := []Control{pageControl(ControlPrev, "←", current-1, current <= 1, false)}

	start := max(1, current-paginationRadius)
	end := totalPages
	if current <= totalPages-paginationRadius {
		end = current + paginationRadius
	}

	if start > 1 {
		controls = append(controls, pageControl(ControlPage, "1", 1, false, false))
		if start > 2 {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: ellipsisLabel, Disabled: true})
		}
	}

	for p := start; p <= end; p++ {
		controls = append(controls, pageControl(ControlPage, strconv.Itoa(p), p, false, p == current))
	}

	if end < totalPages {
		if end < totalPages-1 {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: ellipsisLabel, Disabled: true})
		}
		controls = append(controls, pageControl(ControlPage, strconv.Itoa(totalPages), totalPages, false, false))
	}

	return append(controls, pageControl(ControlNext, "→", current+1, current >= totalPages, false))
}

func pageControl(kind ControlKind, label string, page int, disabled, active bool) Control {
	return Control{
		Kind:      kind,
		Label:     label,
		Page:      page,
		Disabled:  disabled,
		Active:    active,
		AriaLabel: fmt.Sprintf("Go to page %d", page),
	}
}

// BuildCards projects posts into cards, staggering their entrance by position.
func BuildCards(posts []models.Post, dates DateFormatter) []Card {
	cards := make([]Card, len(posts))
	for i, p := range posts {
		cards[i] = Card{
			ID:             p.ID,
			Title:          p.Title,
			Date:           dates.Format(p.PublishedAt),
			ImageURL:       p.SmallImage,
			FallbackImage:  FallbackImage,
			AnimationDelay: time.Duration(i) * staggerStep,
		}
	}
	return cards
}

func LoadingView(s State) View {
	return View{Kind: ViewLoading, State: s, Message: loadingMessage}
}

// ErrorView covers both transport failures and non-success statuses; the
// difference is not shown to the user.
func ErrorView(s State) View {
	return View{Kind: ViewError, State: s, Title: errorTitle, Message: errorMessage}
}

// ResultView renders a fetched page, or the empty state when it has no posts.
func ResultView(s State, posts []models.Post, dates DateFormatter) View {
	v := View{
		State:       s,
		Pagination:  BuildPagination(s.Page, s.TotalPages),
		ShowingInfo: s.ShowingInfo(),
	}
	if len(posts) == 0 {
		v.Kind = ViewEmpty
		v.Title = emptyTitle
		v.Message = emptyMessage
		return v
	}
	v.Kind = ViewPosts
	v.Cards = BuildCards(posts, dates)
	return v
}
