package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/feature/pets/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Pet{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestPet(userID uint) *entity.Pet {
	return &entity.Pet{
		Name:      "Rex",
		OwnerName: "Ann",
		ImageURL:  usecase.DefaultPetImageURL,
		Age:       3,
		UserID:    userID,
	}
}

func TestPetGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetGorm(db)

	pet := newTestPet(1)
	require.NoError(t, repo.Create(context.Background(), pet))

	assert.NotEmpty(t, pet.ID, "BeforeCreate must assign an id")
	_, err := uuid.Parse(pet.ID)
	assert.NoError(t, err, "assigned id must be a UUID")
	assert.False(t, pet.CreatedAt.IsZero(), "CreatedAt is not set")
}

func TestPetGorm_ListByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetGorm(db)

	mine := newTestPet(1)
	require.NoError(t, repo.Create(context.Background(), mine))
	other := newTestPet(2)
	other.Name = "Milo"
	require.NoError(t, repo.Create(context.Background(), other))

	pets, err := repo.ListByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, pets, 1, "only the owner's pets are listed")
	assert.Equal(t, "Rex", pets[0].Name)

	empty, err := repo.ListByUserID(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPetGorm_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetGorm(db)

	pet := newTestPet(1)
	require.NoError(t, repo.Create(context.Background(), pet))

	form := usecase.PetForm{
		Name:      "Rexford",
		OwnerName: "Ann",
		ImageURL:  "https://example.com/rex.png",
		Age:       4,
		Notes:     "prefers the big kennel",
	}
	require.NoError(t, repo.Update(context.Background(), pet.ID, form))

	var got entity.Pet
	require.NoError(t, db.First(&got, "id = ?", pet.ID).Error)
	assert.Equal(t, "Rexford", got.Name)
	assert.Equal(t, "https://example.com/rex.png", got.ImageURL)
	assert.Equal(t, 4, got.Age)
	assert.Equal(t, "prefers the big kennel", got.Notes)
	assert.Equal(t, uint(1), got.UserID, "ownership is not form-editable")

	assert.ErrorIs(t, repo.Update(context.Background(), uuid.NewString(), form), usecase.ErrPetNotFound)
}

func TestPetGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetGorm(db)

	pet := newTestPet(1)
	require.NoError(t, repo.Create(context.Background(), pet))

	require.NoError(t, repo.Delete(context.Background(), pet.ID))

	var count int64
	db.Model(&entity.Pet{}).Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Delete(context.Background(), pet.ID), usecase.ErrPetNotFound)
}

func TestPetGorm_FindOwnerID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPetGorm(db)

	pet := newTestPet(7)
	require.NoError(t, repo.Create(context.Background(), pet))

	ownerID, err := repo.FindOwnerID(context.Background(), pet.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), ownerID)

	_, err = repo.FindOwnerID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, usecase.ErrPetNotFound)
}
