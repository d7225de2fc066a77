package owners

import (
	"context"

	"petclinic-customers/internal/domain/pets"
)

// Repository persiste solo los datos del owner; las mascotas las carga el Service.
type Repository interface {
	// Create asigna el ID y devuelve el owner persistido.
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id int) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
}

// PetLister es lo que el Service necesita de pets para armar Owner.Pets.
type PetLister interface {
	ListByOwner(ctx context.Context, ownerID int) ([]pets.Pet, error)
	ListAll(ctx context.Context) ([]pets.Pet, error)
}
