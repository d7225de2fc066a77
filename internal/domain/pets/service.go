package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petclinic-customers/internal/platform/metrics"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("pet not found")
	ErrOwnerNotFound  = errors.New("owner not found")
	ErrUnknownPetType = fmt.Errorf("%w: unknown pet type", ErrInvalidInput)
)

const metricsDomain = "pet"

type Service struct {
	repo    Repository
	owners  OwnerLookup
	metrics metrics.BusinessMetrics
}

func NewService(repo Repository, owners OwnerLookup, bm metrics.BusinessMetrics) *Service {
	if bm == nil {
		bm = metrics.NopBusinessMetrics()
	}
	return &Service{
		repo:    repo,
		owners:  owners,
		metrics: bm,
	}
}

// SaveInput es lo que llega para crear o actualizar una mascota.
type SaveInput struct {
	Name      string
	BirthDate *time.Time
	TypeID    int
}

func (s *Service) Create(ctx context.Context, ownerID int, in SaveInput) (_ Pet, err error) {
	defer func(start time.Time) { s.metrics.Observe(ctx, metricsDomain, "create", start, err) }(time.Now())

	name := strings.TrimSpace(in.Name)
	if ownerID <= 0 || name == "" {
		return Pet{}, ErrInvalidInput
	}

	if err := s.ensureOwner(ctx, ownerID); err != nil {
		return Pet{}, err
	}

	pt, err := s.resolveType(ctx, in.TypeID)
	if err != nil {
		return Pet{}, err
	}

	p, err := s.repo.Create(ctx, Pet{
		OwnerID:   ownerID,
		Name:      name,
		BirthDate: in.BirthDate,
		Type:      &pt,
	})
	if err != nil {
		return Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return p, nil
}

// Update pisa name, birthDate y type. La mascota tiene que pertenecer a ownerID.
func (s *Service) Update(ctx context.Context, ownerID, petID int, in SaveInput) (_ Pet, err error) {
	defer func(start time.Time) { s.metrics.Observe(ctx, metricsDomain, "update", start, err) }(time.Now())

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, ErrInvalidInput
	}

	current, err := s.Get(ctx, ownerID, petID)
	if err != nil {
		return Pet{}, err
	}

	pt, err := s.resolveType(ctx, in.TypeID)
	if err != nil {
		return Pet{}, err
	}

	current.Name = name
	current.BirthDate = in.BirthDate
	current.Type = &pt

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, fmt.Errorf("update pet: %w", err)
	}
	return current, nil
}

// Get devuelve la mascota solo si pertenece a ownerID (si no, ErrNotFound).
func (s *Service) Get(ctx context.Context, ownerID, petID int) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerID != ownerID {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, petID int) (_ Pet, err error) {
	defer func(start time.Time) { s.metrics.Observe(ctx, metricsDomain, "get", start, err) }(time.Now())

	if petID <= 0 {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, fmt.Errorf("get pet: %w", err)
	}
	return p, nil
}

func (s *Service) PetTypes(ctx context.Context) ([]PetType, error) {
	return s.repo.ListPetTypes(ctx)
}

func (s *Service) ensureOwner(ctx context.Context, ownerID int) error {
	if s.owners == nil {
		return nil
	}
	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("lookup owner: %w", err)
	}
	if !ok {
		return ErrOwnerNotFound
	}
	return nil
}

func (s *Service) resolveType(ctx context.Context, typeID int) (PetType, error) {
	if typeID <= 0 {
		return PetType{}, ErrUnknownPetType
	}
	pt, err := s.repo.GetPetType(ctx, typeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PetType{}, ErrUnknownPetType
		}
		return PetType{}, fmt.Errorf("get pet type: %w", err)
	}
	return pt, nil
}
