package ideas

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"ideas-listing/internal/models"
)

// PageCache stores encoded pages. Get reports a miss with ok == false.
type PageCache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// CachedService serves pages from a PageCache and falls through to the
// wrapped service on a miss. Cache faults are logged and never fail a request.
type CachedService struct {
	next  Service
	cache PageCache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCachedService(next Service, cache PageCache, ttl time.Duration, log zerolog.Logger) *CachedService {
	return &CachedService{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log.With().Str("component", "page_cache").Logger(),
	}
}

func (s *CachedService) List(ctx context.Context, req PageRequest) (models.Page, error) {
	if err := req.Validate(); err != nil {
		return models.Page{}, err
	}
	key := req.CacheKey()

	data, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
	case ok:
		var page models.Page
		if err := json.Unmarshal(data, &page); err == nil {
			return page, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	}

	page, err := s.next.List(ctx, req)
	if err != nil {
		return models.Page{}, err
	}

	encoded, err := json.Marshal(page)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return page, nil
	}
	if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return page, nil
}
