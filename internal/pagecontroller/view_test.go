package pagecontroller

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ideas-listing/internal/models"
)

// labels flattens controls into their visible labels, marking the active page.
func labels(controls []Control) []string {
	out := make([]string, len(controls))
	for i, c := range controls {
		out[i] = c.Label
		if c.Active {
			out[i] = "[" + c.Label + "]"
		}
	}
	return out
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []string
	}{
		{name: "no pages", current: 1, total: 0, want: []string{"←", "→"}},
		{name: "single page", current: 1, total: 1, want: []string{"←", "[1]", "→"}},
		{name: "first of ten", current: 1, total: 10, want: []string{"←", "[1]", "2", "3", "...", "10", "→"}},
		{name: "middle", current: 5, total: 10, want: []string{"←", "1", "...", "3", "4", "[5]", "6", "7", "...", "10", "→"}},
		{name: "near start no gap", current: 4, total: 10, want: []string{"←", "1", "2", "3", "[4]", "5", "6", "...", "10", "→"}},
		{name: "near end no gap", current: 8, total: 10, want: []string{"←", "1", "...", "6", "7", "[8]", "9", "10", "→"}},
		{name: "last", current: 10, total: 10, want: []string{"←", "1", "...", "8", "9", "[10]", "→"}},
		{name: "five pages", current: 3, total: 5, want: []string{"←", "1", "2", "[3]", "4", "5", "→"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(BuildPagination(tt.current, tt.total)))
		})
	}
}

func TestBuildPagination_HugeCurrentPage(t *testing.T) {
	assert.Equal(t, []string{"←", "1", "...", "→"}, labels(BuildPagination(math.MaxInt, 10)))
	assert.Equal(t, []string{"←", "1", "...", "→"}, labels(BuildPagination(1000000000000000000, 10)))
}

func TestBuildPagination_BoundsDisablePrevNext(t *testing.T) {
	first := BuildPagination(1, 3)
	assert.True(t, first[0].Disabled)
	assert.False(t, first[len(first)-1].Disabled)

	last := BuildPagination(3, 3)
	assert.False(t, last[0].Disabled)
	assert.True(t, last[len(last)-1].Disabled)
	assert.Equal(t, 4, last[len(last)-1].Page)
	assert.Equal(t, "Go to page 2", last[0].AriaLabel)
}

func TestBuildPagination_WindowAtMostFive(t *testing.T) {
	for total := 0; total <= 12; total++ {
		for current := 1; current <= total; current++ {
			active, numbered := 0, 0
			for _, c := range BuildPagination(current, total) {
				if c.Kind == ControlPage {
					numbered++
				}
				if c.Active {
					active++
					assert.Equal(t, current, c.Page)
				}
			}
			assert.Equal(t, 1, active)
			assert.LessOrEqual(t, numbered, 7)
		}
	}
}

func TestBuildCards(t *testing.T) {
	published := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	posts := []models.Post{
		{ID: 3, Title: "<b>bold</b>", PublishedAt: published, SmallImage: "https://img/3"},
		{ID: 9, Title: "second", PublishedAt: published, SmallImage: "https://img/9"},
	}

	cards := BuildCards(posts, NewDateFormatter("id-ID", time.UTC))

	assert.Len(t, cards, 2)
	assert.Equal(t, "<b>bold</b>", cards[0].Title)
	assert.Equal(t, "15 Januari 2024", cards[0].Date)
	assert.Equal(t, "https://img/3", cards[0].ImageURL)
	assert.Equal(t, FallbackImage, cards[0].FallbackImage)
	assert.Equal(t, time.Duration(0), cards[0].AnimationDelay)
	assert.Equal(t, 100*time.Millisecond, cards[1].AnimationDelay)
}

func TestResultView(t *testing.T) {
	dates := NewDateFormatter("id", nil)
	s := State{Page: 11, Size: 10, TotalItems: 100, TotalPages: 10}

	empty := ResultView(s, nil, dates)
	assert.Equal(t, ViewEmpty, empty.Kind)
	assert.Equal(t, emptyTitle, empty.Title)
	assert.NotEmpty(t, empty.Pagination)

	s.Page = 1
	full := ResultView(s, []models.Post{{ID: 1, Title: "x"}}, dates)
	assert.Equal(t, ViewPosts, full.Kind)
	assert.Len(t, full.Cards, 1)
	assert.Equal(t, "Showing 1 - 10 of 100", full.ShowingInfo)
}

func TestDateFormatter(t *testing.T) {
	ts := time.Date(2024, 8, 5, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "05 Agustus 2024", NewDateFormatter("id-ID", nil).Format(ts))
	assert.Equal(t, "August 05, 2024", NewDateFormatter("en-US", nil).Format(ts))
	assert.Equal(t, "05 August 2024", NewDateFormatter("en-GB", nil).Format(ts))
	assert.Equal(t, "05 Agustus 2024", NewDateFormatter("not a locale", nil).Format(ts))

	jakarta := time.FixedZone("WIB", 7*60*60)
	assert.Equal(t, "06 Agustus 2024", NewDateFormatter("id-ID", jakarta).Format(ts))
}
