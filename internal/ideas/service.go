package ideas

import (
	"context"
	"fmt"
	"sort"

	"ideas-listing/internal/models"
)

// Service defines the listing contract of the ideas collection
type Service interface {
	List(ctx context.Context, req PageRequest) (models.Page, error)
}

type listingService struct {
	store Store
}

func NewService(store Store) Service {
	return &listingService{store: store}
}

// List sorts a copy of the collection by req.Sort and returns the
// [(page-1)*size, page*size) window. Pages past the end come back empty with
// the same total and total_pages as any other request.
func (s *listingService) List(ctx context.Context, req PageRequest) (models.Page, error) {
	if err := req.Validate(); err != nil {
		return models.Page{}, err
	}

	posts, err := s.store.Posts(ctx)
	if err != nil {
		return models.Page{}, fmt.Errorf("load posts: %w", err)
	}

	SortPosts(posts, req.Sort)

	total := len(posts)
	return models.Page{
		Data: window(posts, req),
		Meta: models.PageMeta{
			Total:      total,
			Page:       req.Page,
			PerPage:    req.Size,
			TotalPages: TotalPages(total, req.Size),
		},
	}, nil
}

// SortPosts orders posts in place. Ties keep their relative order.
func SortPosts(posts []models.Post, key SortKey) {
	switch key {
	case SortNewest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].PublishedAt.After(posts[j].PublishedAt)
		})
	case SortOldest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].PublishedAt.Before(posts[j].PublishedAt)
		})
	}
}

func window(posts []models.Post, req PageRequest) []models.Post {
	start, end := req.Bounds(len(posts))
	if start == end {
		return []models.Post{}
	}
	out := make([]models.Post, end-start)
	copy(out, posts[start:end])
	return out
}
