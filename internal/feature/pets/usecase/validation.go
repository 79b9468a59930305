package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultPetImageURL is substituted when a form leaves the image blank.
const DefaultPetImageURL = "https://bytegrad.com/course-assets/react-nextjs/pet-placeholder.png"

// PetForm is the caller-supplied shape for creating or updating a pet.
// All string fields are trimmed before validation.
type PetForm struct {
	Name      string `validate:"required,max=100"`
	OwnerName string `validate:"required,max=100"`
	ImageURL  string `validate:"omitempty,url"`
	Age       int    `validate:"gte=1,lte=100"`
	Notes     string `validate:"max=1000"`
}

var formValidator = validator.New()

// validatePetForm trims and validates a form. On success it returns the
// canonical form, with the placeholder image substituted for a blank URL.
func validatePetForm(form PetForm) (PetForm, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.OwnerName = strings.TrimSpace(form.OwnerName)
	form.ImageURL = strings.TrimSpace(form.ImageURL)
	form.Notes = strings.TrimSpace(form.Notes)

	if err := formValidator.Struct(form); err != nil {
		return PetForm{}, err
	}

	if form.ImageURL == "" {
		form.ImageURL = DefaultPetImageURL
	}
	return form, nil
}

// validatePetID checks that an id matches the store's identifier format.
func validatePetID(id string) error {
	_, err := uuid.Parse(id)
	return err
}
