package usecase

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() PetForm {
	return PetForm{
		Name:      "Rex",
		OwnerName: "Ann",
		ImageURL:  "",
		Age:       3,
		Notes:     "",
	}
}

func TestValidatePetForm_DefaultImage(t *testing.T) {
	got, err := validatePetForm(validForm())
	require.NoError(t, err)
	assert.Equal(t, DefaultPetImageURL, got.ImageURL, "blank image must be replaced with the placeholder")
}

func TestValidatePetForm_KeepsValidImage(t *testing.T) {
	form := validForm()
	form.ImageURL = "https://example.com/rex.png"

	got, err := validatePetForm(form)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/rex.png", got.ImageURL)
}

func TestValidatePetForm_Trimming(t *testing.T) {
	form := validForm()
	form.Name = "  Rex  "
	form.OwnerName = "\tAnn\n"
	form.Notes = "  good boy  "

	got, err := validatePetForm(form)
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, "Ann", got.OwnerName)
	assert.Equal(t, "good boy", got.Notes)
}

func TestValidatePetForm_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PetForm)
	}{
		{"empty name", func(f *PetForm) { f.Name = "" }},
		{"whitespace-only name", func(f *PetForm) { f.Name = "   " }},
		{"name too long", func(f *PetForm) { f.Name = strings.Repeat("a", 101) }},
		{"empty owner name", func(f *PetForm) { f.OwnerName = "" }},
		{"owner name too long", func(f *PetForm) { f.OwnerName = strings.Repeat("b", 101) }},
		{"invalid image url", func(f *PetForm) { f.ImageURL = "not-a-url" }},
		{"zero age", func(f *PetForm) { f.Age = 0 }},
		{"negative age", func(f *PetForm) { f.Age = -4 }},
		{"age above 100", func(f *PetForm) { f.Age = 101 }},
		{"notes too long", func(f *PetForm) { f.Notes = strings.Repeat("n", 1001) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := validatePetForm(form)
			assert.Error(t, err)
		})
	}
}

func TestValidatePetForm_BoundaryValues(t *testing.T) {
	form := validForm()
	form.Age = 100
	form.Name = strings.Repeat("a", 100)
	form.Notes = strings.Repeat("n", 1000)

	_, err := validatePetForm(form)
	assert.NoError(t, err)
}

func TestValidatePetID(t *testing.T) {
	assert.NoError(t, validatePetID(uuid.NewString()))
	assert.Error(t, validatePetID("123"))
	assert.Error(t, validatePetID(""))
	assert.Error(t, validatePetID("not-a-uuid"))
}
