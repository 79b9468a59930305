// Package state holds the client-side view of a user's pet list: the
// server-seeded rows plus optimistic transitions applied before the action
// layer has confirmed them.
package state

import (
	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/feature/pets/usecase"
)

// opKind discriminates the closed set of optimistic transitions.
type opKind int

const (
	opAdd opKind = iota
	opEdit
	opDelete
)

// op is one optimistic transition over the local pet list.
// For opAdd, id carries the freshly generated temporary id.
type op struct {
	kind   opKind
	id     string
	fields usecase.PetForm
}

// reduce applies one transition to the list, returning a new slice.
// Edit and delete are no-ops when no record matches; an unrecognized kind
// leaves the state unchanged.
func reduce(pets []entity.Pet, o op) []entity.Pet {
	switch o.kind {
	case opAdd:
		next := make([]entity.Pet, 0, len(pets)+1)
		next = append(next, pets...)
		next = append(next, entity.Pet{
			ID:        o.id,
			Name:      o.fields.Name,
			OwnerName: o.fields.OwnerName,
			ImageURL:  o.fields.ImageURL,
			Age:       o.fields.Age,
			Notes:     o.fields.Notes,
		})
		return next
	case opEdit:
		next := make([]entity.Pet, len(pets))
		for i, p := range pets {
			if p.ID == o.id {
				p.Name = o.fields.Name
				p.OwnerName = o.fields.OwnerName
				p.ImageURL = o.fields.ImageURL
				p.Age = o.fields.Age
				p.Notes = o.fields.Notes
			}
			next[i] = p
		}
		return next
	case opDelete:
		next := make([]entity.Pet, 0, len(pets))
		for _, p := range pets {
			if p.ID != o.id {
				next = append(next, p)
			}
		}
		return next
	default:
		return pets
	}
}
