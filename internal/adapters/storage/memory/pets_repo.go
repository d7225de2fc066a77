package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"petclinic-customers/internal/domain/pets"
)

type petRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]pets.Pet
	types  map[int]pets.PetType
}

// NewPetRepo arranca con el catálogo de tipos cargado (es de solo lectura).
func NewPetRepo(types []pets.PetType) pets.Repository {
	r := &petRepo{
		nextID: 1,
		byID:   make(map[int]pets.Pet),
		types:  make(map[int]pets.PetType, len(types)),
	}
	for _, t := range types {
		r.types[t.ID] = t
	}
	return r
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
	}
	if _, exists := r.byID[p.ID]; exists {
		return pets.Pet{}, errors.New("pet already exists")
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.byID[p.ID] = clonePet(p)
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerID int) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, clonePet(p))
		}
	}
	sortByID(out)
	return out, nil
}

func (r *petRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, clonePet(p))
	}
	sortByID(out)
	return out, nil
}

func (r *petRepo) ListPetTypes(ctx context.Context) ([]pets.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.PetType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	// Mismo orden que Postgres (ORDER BY name).
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *petRepo) GetPetType(ctx context.Context, id int) (pets.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[id]
	if !ok {
		return pets.PetType{}, pets.ErrNotFound
	}
	return t, nil
}

// clonePet copia los punteros para que nadie mute el estado guardado desde afuera.
func clonePet(p pets.Pet) pets.Pet {
	if p.BirthDate != nil {
		bd := *p.BirthDate
		p.BirthDate = &bd
	}
	if p.Type != nil {
		t := *p.Type
		p.Type = &t
	}
	return p
}

func sortByID(ps []pets.Pet) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}
