// Package adapters provides repository implementations for the pets feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/feature/pets/usecase"
)

// petGorm is a GORM implementation of the PetRepository interface.
type petGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure petGorm implements PetRepository.
var _ usecase.PetRepository = (*petGorm)(nil)

// NewPetGorm creates a new instance of petGorm with the given connection.
func NewPetGorm(db *gorm.DB) *petGorm {
	return &petGorm{db: db}
}

// Create inserts a pet row; the entity's BeforeCreate hook assigns the ID.
func (r *petGorm) Create(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

// Update replaces the form-editable columns of a pet row.
func (r *petGorm) Update(ctx context.Context, id string, form usecase.PetForm) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Pet{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       form.Name,
			"owner_name": form.OwnerName,
			"image_url":  form.ImageURL,
			"age":        form.Age,
			"notes":      form.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPetNotFound
	}
	return nil
}

// Delete removes a pet row by ID.
func (r *petGorm) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Pet{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPetNotFound
	}
	return nil
}

// FindOwnerID returns only the user_id column for a pet, for the ownership check.
func (r *petGorm) FindOwnerID(ctx context.Context, id string) (uint, error) {
	var pet entity.Pet
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("id = ?", id).
		First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, usecase.ErrPetNotFound
		}
		return 0, err
	}
	return pet.UserID, nil
}

// ListByUserID returns a user's pets in insertion order.
func (r *petGorm) ListByUserID(ctx context.Context, userID uint) ([]entity.Pet, error) {
	var pets []entity.Pet
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}
