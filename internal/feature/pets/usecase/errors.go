// Package usecase implements the CRUD action layer for the pets feature.
package usecase

import "errors"

var (
	// ErrPetNotFound is returned when no pet exists with the given ID.
	ErrPetNotFound = errors.New("pet not found")
)

// User-facing messages. Store detail is logged and never surfaced here.
const (
	MsgInvalidData        = "Invalid data was provided. Please try again."
	MsgPetNotFound        = "Pet not found."
	MsgNoUpdatePermission = "You don't have permission to update this pet."
	MsgNoDeletePermission = "You don't have permission to delete this pet."
	MsgSomethingWrong     = "Something went wrong. Please try again."
)
