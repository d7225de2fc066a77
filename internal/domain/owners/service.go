package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petclinic-customers/internal/domain/pets"
	"petclinic-customers/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
)

const metricsDomain = "owner"

type Service struct {
	repo    Repository
	pets    PetLister
	metrics metrics.BusinessMetrics
}

func NewService(repo Repository, petLister PetLister, bm metrics.BusinessMetrics) *Service {
	if bm == nil {
		bm = metrics.NopBusinessMetrics()
	}
	return &Service{
		repo:    repo,
		pets:    petLister,
		metrics: bm,
	}
}

// SaveInput son los datos editables de un owner (alta y modificación).
type SaveInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

func (in SaveInput) normalize() (SaveInput, error) {
	out := SaveInput{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Telephone: strings.TrimSpace(in.Telephone),
	}
	if out.FirstName == "" || out.LastName == "" || out.Address == "" || out.City == "" || out.Telephone == "" {
		return SaveInput{}, ErrInvalidInput
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in SaveInput) (_ Owner, err error) {
	defer func(start time.Time) { s.metrics.Observe(ctx, metricsDomain, "create", start, err) }(time.Now())

	in, err = in.normalize()
	if err != nil {
		return Owner{}, err
	}

	o, err := s.repo.Create(ctx, Owner{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		City:      in.City,
		Telephone: in.Telephone,
	})
	if err != nil {
		return Owner{}, fmt.Errorf("create owner: %w", err)
	}
	o.Pets = []pets.Pet{}
	return o, nil
}

// Update reemplaza los datos del owner; las mascotas no se tocan.
func (s *Service) Update(ctx context.Context, id int, in SaveInput) (_ Owner, err error) {
	defer func(start time.Time) { s.metrics.Observe(ctx, metricsDomain, "update", start, err) }(time.Now())

	in, err = in.normalize()
	if err != nil {
		return Owner{}, err
	}

	current, err := s.getOwner(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.Address = in.Address
	current.City = in.City
	current.Telephone = in.Telephone

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Owner{}, ErrNotFound
		}
		return Owner{}, fmt.Errorf("update owner: %w", err)
	}
	return current, nil
}

// GetByID devuelve el owner con sus mascotas cargadas.
func (s *Service) GetByID(ctx context.Context, id int) (_ Owner, err error) {
	defer func(start time.Time) { s.metrics.Observe(ctx, metricsDomain, "get", start, err) }(time.Now())

	o, err := s.getOwner(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	ps, err := s.pets.ListByOwner(ctx, o.ID)
	if err != nil {
		return Owner{}, fmt.Errorf("list pets of owner %d: %w", o.ID, err)
	}
	o.Pets = ps
	return o, nil
}

// List devuelve todos los owners con sus mascotas (dos queries, sin N+1).
func (s *Service) List(ctx context.Context) (_ []Owner, err error) {
	defer func(start time.Time) { s.metrics.Observe(ctx, metricsDomain, "list", start, err) }(time.Now())

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}

	all, err := s.pets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}

	byOwner := make(map[int][]pets.Pet, len(items))
	for _, p := range all {
		byOwner[p.OwnerID] = append(byOwner[p.OwnerID], p)
	}
	for i := range items {
		items[i].Pets = byOwner[items[i].ID]
	}
	return items, nil
}

// Exists implementa pets.OwnerLookup.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	_, err := s.getOwner(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) getOwner(ctx context.Context, id int) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Owner{}, ErrNotFound
		}
		return Owner{}, fmt.Errorf("get owner %d: %w", id, err)
	}
	return o, nil
}
