// Package handler provides HTTP handlers for the pets feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/feature/pets/transport/http/dto"
	"petcare_backend/internal/feature/pets/usecase"
	jwtmw "petcare_backend/internal/platform/jwt"
	"petcare_backend/internal/shared/outcome"
)

// PetUsecase defines the pet actions the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type PetUsecase interface {
	CreatePet(ctx context.Context, token string, form usecase.PetForm) outcome.Outcome
	UpdatePet(ctx context.Context, token, petID string, form usecase.PetForm) outcome.Outcome
	DeletePet(ctx context.Context, token, petID string) outcome.Outcome
	ListPets(ctx context.Context, token string) ([]entity.Pet, outcome.Outcome)
}

// PetHandler handles HTTP requests for pet CRUD.
type PetHandler struct {
	uc PetUsecase
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(uc PetUsecase) *PetHandler {
	return &PetHandler{uc: uc}
}

// List returns the caller's pets.
func (h *PetHandler) List(c *gin.Context) {
	pets, o := h.uc.ListPets(c.Request.Context(), jwtmw.TokenFromContext(c))
	if !o.IsSuccess() {
		respondOutcome(c, o, 0)
		return
	}
	out := make([]dto.PetItem, 0, len(pets))
	for _, p := range pets {
		out = append(out, toItem(p))
	}
	c.JSON(http.StatusOK, out)
}

// Create inserts a new pet owned by the caller.
func (h *PetHandler) Create(c *gin.Context) {
	var req dto.PetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.MsgInvalidData})
		return
	}
	o := h.uc.CreatePet(c.Request.Context(), jwtmw.TokenFromContext(c), toForm(req))
	respondOutcome(c, o, http.StatusCreated)
}

// Update applies a full form update to one of the caller's pets.
func (h *PetHandler) Update(c *gin.Context) {
	var req dto.PetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.MsgInvalidData})
		return
	}
	o := h.uc.UpdatePet(c.Request.Context(), jwtmw.TokenFromContext(c), c.Param("id"), toForm(req))
	respondOutcome(c, o, http.StatusOK)
}

// Delete removes one of the caller's pets.
func (h *PetHandler) Delete(c *gin.Context) {
	o := h.uc.DeletePet(c.Request.Context(), jwtmw.TokenFromContext(c), c.Param("id"))
	respondOutcome(c, o, http.StatusNoContent)
}

// respondOutcome translates an action outcome into an HTTP response.
// successStatus is used for KindSuccess; 204 sends no body.
func respondOutcome(c *gin.Context, o outcome.Outcome, successStatus int) {
	switch {
	case o.IsSuccess():
		if successStatus == http.StatusNoContent {
			c.Status(successStatus)
			return
		}
		c.JSON(successStatus, gin.H{"message": "ok"})
	case o.IsRedirect():
		c.Redirect(http.StatusSeeOther, o.Target)
	default:
		c.JSON(failureStatus(o.Message), gin.H{"error": o.Message})
	}
}

// failureStatus maps a user-facing failure message to an HTTP status.
func failureStatus(message string) int {
	switch message {
	case usecase.MsgPetNotFound:
		return http.StatusNotFound
	case usecase.MsgNoUpdatePermission, usecase.MsgNoDeletePermission:
		return http.StatusForbidden
	case usecase.MsgInvalidData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toForm(req dto.PetReq) usecase.PetForm {
	return usecase.PetForm{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		ImageURL:  req.ImageURL,
		Age:       req.Age,
		Notes:     req.Notes,
	}
}

func toItem(p entity.Pet) dto.PetItem {
	return dto.PetItem{
		ID:        p.ID,
		Name:      p.Name,
		OwnerName: p.OwnerName,
		ImageURL:  p.ImageURL,
		Age:       p.Age,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
