package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/inflection"
	"github.com/mssola/mihi/internal/repository"
	"github.com/patrickmn/go-cache"
)

type cachedFormRepository struct {
	repository.FormRepository
	cache *cache.Cache
}

// NewCachedFormRepository keeps the result of every lookup for ttl. A zero
// ttl returns inner untouched.
func NewCachedFormRepository(inner repository.FormRepository, ttl, cleanup time.Duration) repository.FormRepository {
	if ttl <= 0 {
		return inner
	}
	return &cachedFormRepository{
		FormRepository: inner,
		cache:          cache.New(ttl, cleanup),
	}
}

func (r *cachedFormRepository) Lookup(ctx context.Context, kind entity.Kind, gender entity.Gender) ([]inflection.FormEntry, error) {
	key := fmt.Sprintf("%s|%d", kind, gender)
	if cached, ok := r.cache.Get(key); ok {
		return cloneEntries(cached.([]inflection.FormEntry)), nil
	}

	entries, err := r.FormRepository.Lookup(ctx, kind, gender)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, cloneEntries(entries), cache.DefaultExpiration)
	return entries, nil
}

func (r *cachedFormRepository) Replace(ctx context.Context, forms []entity.Form) error {
	defer r.cache.Flush()
	return r.FormRepository.Replace(ctx, forms)
}

func cloneEntries(entries []inflection.FormEntry) []inflection.FormEntry {
	out := make([]inflection.FormEntry, len(entries))
	copy(out, entries)
	return out
}
