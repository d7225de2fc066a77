package pets

import "context"

type Repository interface {
	// Create asigna el ID y devuelve la mascota persistida.
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int) (Pet, error)
	ListByOwner(ctx context.Context, ownerID int) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)

	ListPetTypes(ctx context.Context) ([]PetType, error)
	GetPetType(ctx context.Context, id int) (PetType, error)
}
