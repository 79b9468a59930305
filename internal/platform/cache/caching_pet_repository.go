// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/feature/pets/usecase"
)

// CachingPetRepository decorates a PetRepository with a per-user Redis cache
// of the pet list. Every mutation drops the owner's cached list, so the next
// list call refetches from the store. That invalidation is the data-changed
// signal the presentation layer observes.
type CachingPetRepository struct {
	inner     usecase.PetRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure the decorator still satisfies PetRepository.
var _ usecase.PetRepository = (*CachingPetRepository)(nil)

// NewCachingPetRepository decorates a PetRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "pets".
func NewCachingPetRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PetRepository, namespace string) *CachingPetRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "pets"
	}
	return &CachingPetRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the pet and invalidates the owner's cached list.
func (c *CachingPetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if err := c.inner.Create(ctx, pet); err != nil {
		return err
	}
	c.invalidate(ctx, pet.UserID)
	return nil
}

// Update applies the update and invalidates the owner's cached list.
func (c *CachingPetRepository) Update(ctx context.Context, id string, form usecase.PetForm) error {
	ownerID, _ := c.inner.FindOwnerID(ctx, id)
	if err := c.inner.Update(ctx, id, form); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// Delete removes the pet and invalidates the owner's cached list.
// The owner is looked up before the row disappears.
func (c *CachingPetRepository) Delete(ctx context.Context, id string) error {
	ownerID, _ := c.inner.FindOwnerID(ctx, id)
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// FindOwnerID passes through to the underlying repository.
func (c *CachingPetRepository) FindOwnerID(ctx context.Context, id string) (uint, error) {
	return c.inner.FindOwnerID(ctx, id)
}

// ListByUserID retrieves a user's pets, checking cache first then falling
// back to the store.
func (c *CachingPetRepository) ListByUserID(ctx context.Context, userID uint) ([]entity.Pet, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByUserID(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Pet
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops a user's cached list. Best effort: a failed delete only
// delays freshness until the TTL fires.
func (c *CachingPetRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil || userID == 0 {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}

// cacheKey generates the cache key for a user's pet list.
func (c *CachingPetRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}
