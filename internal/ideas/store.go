package ideas

import (
	"context"

	"ideas-listing/internal/models"
)

// Store hands out the full collection in insertion order. Callers may reorder
// the returned slice; implementations never hand out their own backing array.
type Store interface {
	Posts(ctx context.Context) ([]models.Post, error)
}

// Snapshot is an immutable in-memory collection built once at startup.
type Snapshot struct {
	posts []models.Post
}

func NewSnapshot(posts []models.Post) *Snapshot {
	own := make([]models.Post, len(posts))
	copy(own, posts)
	return &Snapshot{posts: own}
}

func (s *Snapshot) Posts(_ context.Context) ([]models.Post, error) {
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *Snapshot) Len() int {
	return len(s.posts)
}
