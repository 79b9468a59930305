package usecase

import (
	"context"
	"errors"
	"log/slog"

	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/shared/authz"
	"petcare_backend/internal/shared/outcome"
)

// PetRepository abstracts the persistence layer for pet rows.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PetRepository interface {
	// Create inserts a new pet row and fills in its generated ID.
	Create(ctx context.Context, pet *entity.Pet) error

	// Update replaces the mutable fields of an existing pet row.
	Update(ctx context.Context, id string, form PetForm) error

	// Delete removes a pet row. Returns ErrPetNotFound if no row matched.
	Delete(ctx context.Context, id string) error

	// FindOwnerID returns the owning user's id for a pet.
	// Returns ErrPetNotFound if the pet does not exist.
	FindOwnerID(ctx context.Context, id string) (uint, error)

	// ListByUserID returns all pets owned by a user, oldest first.
	ListByUserID(ctx context.Context, userID uint) ([]entity.Pet, error)
}

// SessionAuthority re-derives the calling user from a signed session token.
type SessionAuthority interface {
	CurrentUserID(ctx context.Context, token string) (uint, error)
}

// PetUsecase is the action layer for pet CRUD. Every operation first
// re-derives the caller's session; an absent session aborts the whole
// operation with a redirect to the login page.
type PetUsecase struct {
	pets     PetRepository
	sessions SessionAuthority
}

// NewPetUsecase creates a new PetUsecase.
func NewPetUsecase(pets PetRepository, sessions SessionAuthority) *PetUsecase {
	return &PetUsecase{pets: pets, sessions: sessions}
}

// CreatePet validates the form and inserts a pet owned by the caller.
func (u *PetUsecase) CreatePet(ctx context.Context, token string, form PetForm) outcome.Outcome {
	userID, err := u.sessions.CurrentUserID(ctx, token)
	if err != nil {
		return outcome.Redirect(outcome.TargetLogin)
	}

	validated, err := validatePetForm(form)
	if err != nil {
		return outcome.Failure(MsgInvalidData)
	}

	pet := &entity.Pet{
		Name:      validated.Name,
		OwnerName: validated.OwnerName,
		ImageURL:  validated.ImageURL,
		Age:       validated.Age,
		Notes:     validated.Notes,
		UserID:    userID,
	}
	if err := u.pets.Create(ctx, pet); err != nil {
		slog.Error("pet creation failed", "error", err, "user_id", userID)
		return outcome.Failure(MsgSomethingWrong)
	}
	return outcome.Success()
}

// UpdatePet validates id and form independently, confirms the pet exists,
// enforces ownership, then applies the update. The existence check runs
// strictly before the ownership check so a non-owner probing a missing id
// sees "not found", never a permission error.
func (u *PetUsecase) UpdatePet(ctx context.Context, token, petID string, form PetForm) outcome.Outcome {
	userID, err := u.sessions.CurrentUserID(ctx, token)
	if err != nil {
		return outcome.Redirect(outcome.TargetLogin)
	}

	idErr := validatePetID(petID)
	validated, formErr := validatePetForm(form)
	if idErr != nil || formErr != nil {
		return outcome.Failure(MsgInvalidData)
	}

	ownerID, err := u.pets.FindOwnerID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrPetNotFound) {
			return outcome.Failure(MsgPetNotFound)
		}
		slog.Error("pet owner lookup failed", "error", err, "pet_id", petID)
		return outcome.Failure(MsgSomethingWrong)
	}
	if !authz.CanAct(userID, ownerID) {
		return outcome.Failure(MsgNoUpdatePermission)
	}

	if err := u.pets.Update(ctx, petID, validated); err != nil {
		slog.Error("pet update failed", "error", err, "pet_id", petID, "user_id", userID)
		return outcome.Failure(MsgSomethingWrong)
	}
	return outcome.Success()
}

// DeletePet runs the same validation and ownership sequence as UpdatePet,
// then removes the row.
func (u *PetUsecase) DeletePet(ctx context.Context, token, petID string) outcome.Outcome {
	userID, err := u.sessions.CurrentUserID(ctx, token)
	if err != nil {
		return outcome.Redirect(outcome.TargetLogin)
	}

	if err := validatePetID(petID); err != nil {
		return outcome.Failure(MsgInvalidData)
	}

	ownerID, err := u.pets.FindOwnerID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrPetNotFound) {
			return outcome.Failure(MsgPetNotFound)
		}
		slog.Error("pet owner lookup failed", "error", err, "pet_id", petID)
		return outcome.Failure(MsgSomethingWrong)
	}
	if !authz.CanAct(userID, ownerID) {
		return outcome.Failure(MsgNoDeletePermission)
	}

	if err := u.pets.Delete(ctx, petID); err != nil {
		slog.Error("pet deletion failed", "error", err, "pet_id", petID, "user_id", userID)
		return outcome.Failure(MsgSomethingWrong)
	}
	return outcome.Success()
}

// ListPets returns the caller's pets, used to seed the client list and to
// refetch it after a data change.
func (u *PetUsecase) ListPets(ctx context.Context, token string) ([]entity.Pet, outcome.Outcome) {
	userID, err := u.sessions.CurrentUserID(ctx, token)
	if err != nil {
		return nil, outcome.Redirect(outcome.TargetLogin)
	}

	pets, err := u.pets.ListByUserID(ctx, userID)
	if err != nil {
		slog.Error("pet list failed", "error", err, "user_id", userID)
		return nil, outcome.Failure(MsgSomethingWrong)
	}
	return pets, outcome.Success()
}
