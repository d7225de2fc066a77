package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"petclinic-customers/internal/domain/owners"
)

type ownerRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]owners.Owner
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		nextID: 1,
		byID:   make(map[int]owners.Owner),
	}
}

// Create respeta un ID explícito (seed); si viene en 0 asigna el siguiente.
func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == 0 {
		o.ID = r.nextID
	}
	if _, exists := r.byID[o.ID]; exists {
		return owners.Owner{}, errors.New("owner already exists")
	}
	if o.ID >= r.nextID {
		r.nextID = o.ID + 1
	}

	// Las mascotas viven en el petRepo.
	o.Pets = nil
	r.byID[o.ID] = o
	return o, nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.ID]; !exists {
		return owners.ErrNotFound
	}
	o.Pets = nil
	r.byID[o.ID] = o
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
