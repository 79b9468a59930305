package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/feature/pets/usecase"
)

// mockPetRepository is a func-field mock counting pass-throughs to the store.
type mockPetRepository struct {
	listCalls        int
	ListByUserIDFunc func(ctx context.Context, userID uint) ([]entity.Pet, error)
	CreateFunc       func(ctx context.Context, pet *entity.Pet) error
	UpdateFunc       func(ctx context.Context, id string, form usecase.PetForm) error
	DeleteFunc       func(ctx context.Context, id string) error
	FindOwnerIDFunc  func(ctx context.Context, id string) (uint, error)
}

func (m *mockPetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pet)
	}
	return nil
}

func (m *mockPetRepository) Update(ctx context.Context, id string, form usecase.PetForm) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, form)
	}
	return nil
}

func (m *mockPetRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPetRepository) FindOwnerID(ctx context.Context, id string) (uint, error) {
	if m.FindOwnerIDFunc != nil {
		return m.FindOwnerIDFunc(ctx, id)
	}
	return 0, usecase.ErrPetNotFound
}

func (m *mockPetRepository) ListByUserID(ctx context.Context, userID uint) ([]entity.Pet, error) {
	m.listCalls++
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func samplePets(userID uint) []entity.Pet {
	return []entity.Pet{
		{ID: uuid.NewString(), Name: "Rex", OwnerName: "Ann", Age: 3, UserID: userID},
		{ID: uuid.NewString(), Name: "Milo", OwnerName: "Ann", Age: 5, UserID: userID},
	}
}

func TestCachingPetRepository_ListByUserID(t *testing.T) {
	t.Run("second list is served from cache", func(t *testing.T) {
		inner := &mockPetRepository{
			ListByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.Pet, error) {
				return samplePets(userID), nil
			},
		}
		repo := NewCachingPetRepository(setupTestRedis(t), time.Minute, inner, "pets")
		ctx := context.Background()

		first, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		second, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.listCalls, "second call must hit the cache")
	})

	t.Run("nil client bypasses the cache", func(t *testing.T) {
		inner := &mockPetRepository{
			ListByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.Pet, error) {
				return samplePets(userID), nil
			},
		}
		repo := NewCachingPetRepository(nil, time.Minute, inner, "pets")
		ctx := context.Background()

		_, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		_, err = repo.ListByUserID(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.listCalls)
	})

	t.Run("corrupted cache entry falls back to the store", func(t *testing.T) {
		rdb := setupTestRedis(t)
		inner := &mockPetRepository{
			ListByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.Pet, error) {
				return samplePets(userID), nil
			},
		}
		repo := NewCachingPetRepository(rdb, time.Minute, inner, "pets")
		ctx := context.Background()

		require.NoError(t, rdb.Set(ctx, "pets:user:1", "{not json", time.Minute).Err())

		pets, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, pets, 2)
		assert.Equal(t, 1, inner.listCalls)
	})

	t.Run("cache is per user", func(t *testing.T) {
		inner := &mockPetRepository{
			ListByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.Pet, error) {
				return samplePets(userID), nil
			},
		}
		repo := NewCachingPetRepository(setupTestRedis(t), time.Minute, inner, "pets")
		ctx := context.Background()

		_, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		_, err = repo.ListByUserID(ctx, 2)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.listCalls, "each user has their own cache entry")
	})
}

func TestCachingPetRepository_MutationsInvalidate(t *testing.T) {
	newRepo := func(t *testing.T, ownerID uint) (*CachingPetRepository, *mockPetRepository) {
		inner := &mockPetRepository{
			ListByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.Pet, error) {
				return samplePets(userID), nil
			},
			FindOwnerIDFunc: func(ctx context.Context, id string) (uint, error) {
				return ownerID, nil
			},
		}
		return NewCachingPetRepository(setupTestRedis(t), time.Minute, inner, "pets"), inner
	}

	t.Run("create drops the owner's cached list", func(t *testing.T) {
		repo, inner := newRepo(t, 1)
		ctx := context.Background()

		_, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, &entity.Pet{Name: "Bella", UserID: 1}))

		_, err = repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, inner.listCalls, "list after create must refetch")
	})

	t.Run("update drops the owner's cached list", func(t *testing.T) {
		repo, inner := newRepo(t, 1)
		ctx := context.Background()

		_, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, uuid.NewString(), usecase.PetForm{Name: "Rex", OwnerName: "Ann", Age: 3}))

		_, err = repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, inner.listCalls, "list after update must refetch")
	})

	t.Run("delete drops the owner's cached list", func(t *testing.T) {
		repo, inner := newRepo(t, 1)
		ctx := context.Background()

		_, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, uuid.NewString()))

		_, err = repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, inner.listCalls, "list after delete must refetch")
	})

	t.Run("failed mutation keeps the cache", func(t *testing.T) {
		repo, inner := newRepo(t, 1)
		inner.DeleteFunc = func(ctx context.Context, id string) error {
			return usecase.ErrPetNotFound
		}
		ctx := context.Background()

		_, err := repo.ListByUserID(ctx, 1)
		require.NoError(t, err)

		assert.Error(t, repo.Delete(ctx, uuid.NewString()))

		_, err = repo.ListByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, inner.listCalls, "a failed delete must not invalidate")
	})
}
