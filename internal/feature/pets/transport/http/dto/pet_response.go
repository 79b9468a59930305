package dto

import "time"

// PetItem is one pet row as returned to clients.
type PetItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerName string    `json:"ownerName"`
	ImageURL  string    `json:"imageUrl"`
	Age       int       `json:"age"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
