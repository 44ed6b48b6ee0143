package ideas

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideas-listing/internal/models"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, count int) (Service, []models.Post) {
	t.Helper()
	posts := Generate(count, fixedNow, NewRand(42))
	return NewService(NewSnapshot(posts)), posts
}

type failingStore struct{ err error }

func (s failingStore) Posts(context.Context) ([]models.Post, error) { return nil, s.err }

func TestList_FirstPageNewest(t *testing.T) {
	svc, posts := newTestService(t, 100)

	page, err := svc.List(context.Background(), PageRequest{Page: 1, Size: 10, Sort: SortNewest})
	require.NoError(t, err)

	assert.Len(t, page.Data, 10)
	assert.Equal(t, models.PageMeta{Total: 100, Page: 1, PerPage: 10, TotalPages: 10}, page.Meta)

	sorted := make([]models.Post, len(posts))
	copy(sorted, posts)
	SortPosts(sorted, SortNewest)
	assert.Equal(t, sorted[:10], page.Data)
}

func TestList_PageLengthProperty(t *testing.T) {
	svc, _ := newTestService(t, 37)
	ctx := context.Background()

	for _, size := range []int{1, 3, 10, 36, 37, 50} {
		for p := 1; p <= TotalPages(37, size)+2; p++ {
			page, err := svc.List(ctx, PageRequest{Page: p, Size: size, Sort: SortOldest})
			require.NoError(t, err)

			want := 37 - (p-1)*size
			if want > size {
				want = size
			}
			if want < 0 {
				want = 0
			}
			assert.Len(t, page.Data, want, "page=%d size=%d", p, size)
			assert.Equal(t, 37, page.Meta.Total)
			assert.Equal(t, TotalPages(37, size), page.Meta.TotalPages)
		}
	}
}

func TestList_SortDirections(t *testing.T) {
	svc, _ := newTestService(t, 60)
	ctx := context.Background()

	newest, err := svc.List(ctx, PageRequest{Page: 1, Size: 60, Sort: SortNewest})
	require.NoError(t, err)
	for i := 1; i < len(newest.Data); i++ {
		assert.False(t, newest.Data[i].PublishedAt.After(newest.Data[i-1].PublishedAt))
	}

	oldest, err := svc.List(ctx, PageRequest{Page: 1, Size: 60, Sort: SortOldest})
	require.NoError(t, err)
	for i := 1; i < len(oldest.Data); i++ {
		assert.False(t, oldest.Data[i].PublishedAt.Before(oldest.Data[i-1].PublishedAt))
	}
}

func TestList_StableOnEqualTimestamps(t *testing.T) {
	same := fixedNow.Add(-time.Hour)
	posts := []models.Post{
		{ID: 1, PublishedAt: same},
		{ID: 2, PublishedAt: fixedNow},
		{ID: 3, PublishedAt: same},
		{ID: 4, PublishedAt: same},
	}
	svc := NewService(NewSnapshot(posts))

	page, err := svc.List(context.Background(), PageRequest{Page: 1, Size: 4, Sort: SortNewest})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4}, ids(page.Data))
}

func TestList_UnknownSortKeepsInsertionOrder(t *testing.T) {
	svc, posts := newTestService(t, 20)

	page, err := svc.List(context.Background(), PageRequest{Page: 2, Size: 5, Sort: "title"})
	require.NoError(t, err)
	assert.Equal(t, ids(posts[5:10]), ids(page.Data))
}

func TestList_OutOfRangePage(t *testing.T) {
	svc, _ := newTestService(t, 100)

	page, err := svc.List(context.Background(), PageRequest{Page: 11, Size: 10, Sort: SortNewest})
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 100, page.Meta.Total)
	assert.Equal(t, 10, page.Meta.TotalPages)
}

func TestList_HugePageOrSizeIsEmptyNotPanic(t *testing.T) {
	svc, posts := newTestService(t, 100)

	tests := []struct {
		name      string
		page      string
		size      string
		wantLen   int
		wantPages int
	}{
		{name: "huge page", page: "1000000000000000000", size: "10", wantLen: 0, wantPages: 10},
		{name: "max size third page", page: "3", size: "9223372036854775807", wantLen: 0, wantPages: 1},
		{name: "max size first page", page: "1", size: "9223372036854775807", wantLen: 100, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParsePageRequest(tt.page, tt.size, "", 10)

			var page models.Page
			var err error
			require.NotPanics(t, func() { page, err = svc.List(context.Background(), req) })
			require.NoError(t, err)

			assert.NotNil(t, page.Data)
			assert.Len(t, page.Data, tt.wantLen)
			assert.Equal(t, len(posts), page.Meta.Total)
			assert.Equal(t, tt.wantPages, page.Meta.TotalPages)
		})
	}
}

func TestList_DoesNotMutateStore(t *testing.T) {
	posts := Generate(30, fixedNow, NewRand(7))
	snap := NewSnapshot(posts)
	svc := NewService(snap)

	_, err := svc.List(context.Background(), PageRequest{Page: 1, Size: 30, Sort: SortOldest})
	require.NoError(t, err)

	after, err := snap.Posts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ids(posts), ids(after))
}

func TestList_InvalidRequest(t *testing.T) {
	svc, _ := newTestService(t, 5)

	_, err := svc.List(context.Background(), PageRequest{Page: 0, Size: 10})
	assert.ErrorIs(t, err, ErrInvalidPageRequest)
}

func TestList_StoreError(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewService(failingStore{err: boom})

	_, err := svc.List(context.Background(), PageRequest{Page: 1, Size: 10, Sort: SortNewest})
	assert.ErrorIs(t, err, boom)
}

func TestGenerate(t *testing.T) {
	posts := Generate(100, fixedNow, NewRand(1))
	require.Len(t, posts, 100)

	for i, p := range posts {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, i, p.Position)
		assert.False(t, p.PublishedAt.After(fixedNow))
		assert.True(t, p.PublishedAt.After(fixedNow.AddDate(0, 0, -maxAgeDays)))
		if p.ID > 8 {
			assert.Contains(t, p.Title, "(")
		}
	}
	assert.Equal(t, "https://picsum.photos/300/200?random=7", posts[6].SmallImage)
	assert.Equal(t, "https://picsum.photos/600/400?random=7", posts[6].MediumImage)
}

func TestGenerate_DeterministicUnderSeed(t *testing.T) {
	a := Generate(25, fixedNow, NewRand(99))
	b := Generate(25, fixedNow, NewRand(99))
	assert.Equal(t, a, b)
}

func ids(posts []models.Post) []int {
	out := make([]int, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
