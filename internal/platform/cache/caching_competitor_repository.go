// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rivalradar_backend/internal/feature/competitors/domain/entity"
	"rivalradar_backend/internal/feature/competitors/usecase"
)

// DefaultTTL is used when the caller passes a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// Observer records cache hits and misses.
type Observer interface {
	ObserveCache(cache string, hit bool)
}

type nopObserver struct{}

func (nopObserver) ObserveCache(string, bool) {}

// CachingCompetitorRepository decorates a CompetitorRepository with a cache of
// each user's company list. Every write through the decorator invalidates the
// owner's entry. Single-record lookups go straight to the inner repository.
type CachingCompetitorRepository struct {
	inner     usecase.CompetitorRepository
	store     store
	ttl       time.Duration
	namespace string
	observer  Observer
}

// Compile-time check to ensure CachingCompetitorRepository implements CompetitorRepository.
var _ usecase.CompetitorRepository = (*CachingCompetitorRepository)(nil)

// NewCachingCompetitorRepository decorates a CompetitorRepository with caching.
// Entries live in Redis when rdb is non-nil and in process memory otherwise.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "competitors".
func NewCachingCompetitorRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CompetitorRepository, namespace string, observer Observer) *CachingCompetitorRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "competitors"
	}
	if observer == nil {
		observer = nopObserver{}
	}
	var s store = newMemoryStore(ttl)
	if rdb != nil {
		s = redisStore{rdb: rdb}
	}
	return &CachingCompetitorRepository{
		inner:     inner,
		store:     s,
		ttl:       ttl,
		namespace: namespace,
		observer:  observer,
	}
}

// ListByOwner returns the user's companies, checking the cache first.
func (c *CachingCompetitorRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Competitor, error) {
	key := c.listKey(ownerID)

	// 1) Check cache
	if b, ok := c.store.get(ctx, key); ok {
		var out []entity.Competitor
		if err := json.Unmarshal(b, &out); err == nil {
			c.observer.ObserveCache(c.store.name(), true)
			return out, nil
		}
		// Delete corrupted cache entry
		c.store.del(ctx, key)
	}
	c.observer.ObserveCache(c.store.name(), false)

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		c.store.set(ctx, key, b, c.ttl)
	}
	return out, nil
}

// FindByID is not cached.
func (c *CachingCompetitorRepository) FindByID(ctx context.Context, ownerID, id uint) (*entity.Competitor, error) {
	return c.inner.FindByID(ctx, ownerID, id)
}

// FindPrimary is not cached.
func (c *CachingCompetitorRepository) FindPrimary(ctx context.Context, ownerID uint) (*entity.Competitor, error) {
	return c.inner.FindPrimary(ctx, ownerID)
}

// Create persists a company and invalidates the owner's list.
func (c *CachingCompetitorRepository) Create(ctx context.Context, comp *entity.Competitor) error {
	if err := c.inner.Create(ctx, comp); err != nil {
		return err
	}
	c.invalidate(ctx, comp.OwnerID)
	return nil
}

// Update persists a company and invalidates the owner's list.
func (c *CachingCompetitorRepository) Update(ctx context.Context, comp *entity.Competitor) error {
	if err := c.inner.Update(ctx, comp); err != nil {
		return err
	}
	c.invalidate(ctx, comp.OwnerID)
	return nil
}

// Delete removes a company and invalidates the owner's list.
func (c *CachingCompetitorRepository) Delete(ctx context.Context, ownerID, id uint) error {
	if err := c.inner.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// RecordAnalysis stores an analysis and invalidates the owner's list.
func (c *CachingCompetitorRepository) RecordAnalysis(ctx context.Context, a *entity.Analysis) error {
	if err := c.inner.RecordAnalysis(ctx, a); err != nil {
		return err
	}
	c.invalidate(ctx, a.OwnerID)
	return nil
}

func (c *CachingCompetitorRepository) invalidate(ctx context.Context, ownerID uint) {
	c.store.del(ctx, c.listKey(ownerID))
}

// listKey generates the cache key of a user's company list.
func (c *CachingCompetitorRepository) listKey(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d:list", c.namespace, ownerID)
}
