// Package entity defines the domain entities for the pets feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pet represents one boarded pet, owned by exactly one user.
// A pet is visible and mutable only through its owner's session.
type Pet struct {
	// ID is a UUID assigned on insert.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the pet's name.
	Name string `gorm:"size:100;not null"`

	// OwnerName is the name of the pet's (human) owner as shown in the UI.
	OwnerName string `gorm:"size:100;not null"`

	// ImageURL points at the pet's picture; a placeholder is substituted
	// when none was supplied.
	ImageURL string `gorm:"size:2048;not null"`

	// Age in years, 1 through 100.
	Age int `gorm:"not null"`

	// Notes is free-form text, up to 1000 characters.
	Notes string `gorm:"size:1000"`

	// UserID references the owning user's row.
	UserID uint `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when none is set.
func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
