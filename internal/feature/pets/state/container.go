package state

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"petcare_backend/internal/feature/pets/domain/entity"
	"petcare_backend/internal/feature/pets/usecase"
	"petcare_backend/internal/shared/outcome"
)

// ActionClient is the slice of the action layer the container drives.
type ActionClient interface {
	CreatePet(ctx context.Context, token string, form usecase.PetForm) outcome.Outcome
	UpdatePet(ctx context.Context, token, petID string, form usecase.PetForm) outcome.Outcome
	DeletePet(ctx context.Context, token, petID string) outcome.Outcome
}

// Notifier surfaces non-blocking warnings to the user.
type Notifier interface {
	Warn(message string)
}

// Container holds one UI session's pet list, selection and search term.
// One Container exists per active session; nothing here is process-global.
//
// Mutation helpers apply their optimistic transition synchronously, then call
// the action layer. A failure is surfaced as a warning only: the optimistic
// entry stays in the list, and a pending add keeps its temporary id until the
// next Seed replaces the whole list with server rows.
type Container struct {
	mu         sync.Mutex
	token      string
	pets       []entity.Pet
	selectedID string
	searchTerm string
	lastTempID int64

	actions  ActionClient
	notify   Notifier
	navigate func(target string)
	now      func() time.Time
}

// NewContainer creates a container seeded with the server's pet list.
// navigate may be nil if the environment handles redirects elsewhere.
func NewContainer(actions ActionClient, notify Notifier, navigate func(target string),
	token string, seed []entity.Pet) *Container {
	c := &Container{
		token:    token,
		actions:  actions,
		notify:   notify,
		navigate: navigate,
		now:      time.Now,
	}
	c.Seed(seed)
	return c
}

// Seed replaces the whole list with authoritative server rows. This is the
// only point where optimistic entries are reconciled away.
func (c *Container) Seed(pets []entity.Pet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pets = make([]entity.Pet, len(pets))
	copy(c.pets, pets)
}

// Pets returns a copy of the current (optimistic) list.
func (c *Container) Pets() []entity.Pet {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Pet, len(c.pets))
	copy(out, c.pets)
	return out
}

// VisiblePets returns the pets whose name matches the search term,
// case-insensitively. An empty term matches everything.
func (c *Container) VisiblePets() []entity.Pet {
	c.mu.Lock()
	defer c.mu.Unlock()
	term := strings.ToLower(strings.TrimSpace(c.searchTerm))
	out := make([]entity.Pet, 0, len(c.pets))
	for _, p := range c.pets {
		if term == "" || strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// NumberOfPets returns the current (optimistic) list length.
func (c *Container) NumberOfPets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pets)
}

// SetSearchTerm updates the name filter applied by VisiblePets.
func (c *Container) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// SearchTerm returns the current name filter.
func (c *Container) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchTerm
}

// SelectPet marks a pet as the currently viewed one.
func (c *Container) SelectPet(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedID = id
}

// SelectedPetID returns the currently viewed pet id, or "".
func (c *Container) SelectedPetID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

// SelectedPet returns the currently viewed pet, if it is in the list.
func (c *Container) SelectedPet() (entity.Pet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.pets {
		if p.ID == c.selectedID {
			return p, true
		}
	}
	return entity.Pet{}, false
}

// AddPet appends the pet optimistically under a temporary id, then asks the
// action layer to persist it. On failure a warning is shown and the
// temporary entry stays in the list.
func (c *Container) AddPet(ctx context.Context, form usecase.PetForm) {
	c.mu.Lock()
	c.pets = reduce(c.pets, op{kind: opAdd, id: c.nextTempID(), fields: form})
	token := c.token
	c.mu.Unlock()

	c.handle(c.actions.CreatePet(ctx, token, form))
}

// EditPet applies the form to the currently selected pet optimistically,
// then asks the action layer to persist it. No-op when nothing is selected.
func (c *Container) EditPet(ctx context.Context, form usecase.PetForm) {
	c.mu.Lock()
	id := c.selectedID
	if id == "" {
		c.mu.Unlock()
		return
	}
	c.pets = reduce(c.pets, op{kind: opEdit, id: id, fields: form})
	token := c.token
	c.mu.Unlock()

	c.handle(c.actions.UpdatePet(ctx, token, id, form))
}

// DeletePet removes the pet optimistically, then asks the action layer to
// delete it. The selection is cleared only after a confirmed delete of the
// selected pet.
func (c *Container) DeletePet(ctx context.Context, id string) {
	c.mu.Lock()
	c.pets = reduce(c.pets, op{kind: opDelete, id: id})
	token := c.token
	c.mu.Unlock()

	o := c.actions.DeletePet(ctx, token, id)
	if o.IsSuccess() {
		c.mu.Lock()
		if c.selectedID == id {
			c.selectedID = ""
		}
		c.mu.Unlock()
		return
	}
	c.handle(o)
}

// handle surfaces a non-success outcome. Failures warn without rolling back;
// redirects hand navigation to the environment.
func (c *Container) handle(o outcome.Outcome) {
	switch {
	case o.IsFailure():
		if c.notify != nil {
			c.notify.Warn(o.Message)
		}
	case o.IsRedirect():
		if c.navigate != nil {
			c.navigate(o.Target)
		}
	}
}

// nextTempID returns a monotonic timestamp-based id for a pending add.
// Caller must hold c.mu.
func (c *Container) nextTempID() string {
	ms := c.now().UnixMilli()
	if ms <= c.lastTempID {
		ms = c.lastTempID + 1
	}
	c.lastTempID = ms
	return strconv.FormatInt(ms, 10)
}
