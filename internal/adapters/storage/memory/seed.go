package memory

import (
	"context"
	"fmt"
	"time"

	"petclinic-customers/internal/domain/owners"
	"petclinic-customers/internal/domain/pets"
)

// DefaultPetTypes es el catálogo base (mismos IDs que la migración de Postgres).
func DefaultPetTypes() []pets.PetType {
	return []pets.PetType{
		{ID: 1, Name: "cat"},
		{ID: 2, Name: "dog"},
		{ID: 3, Name: "lizard"},
		{ID: 4, Name: "snake"},
		{ID: 5, Name: "bird"},
		{ID: 6, Name: "hamster"},
	}
}

var seedOwners = []owners.Owner{
	{ID: 1, FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
	{ID: 2, FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
	{ID: 3, FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
	{ID: 4, FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"},
	{ID: 5, FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"},
	{ID: 6, FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"},
	{ID: 7, FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387"},
	{ID: 8, FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683"},
	{ID: 9, FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435"},
	{ID: 10, FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"},
}

var seedPets = []struct {
	id, ownerID, typeID int
	name, birthDate     string
}{
	{1, 1, 1, "Leo", "2010-09-07"},
	{2, 2, 6, "Basil", "2012-08-06"},
	{3, 3, 2, "Rosy", "2011-04-17"},
	{4, 3, 2, "Jewel", "2010-03-07"},
	{5, 4, 3, "Iggy", "2010-11-30"},
	{6, 5, 4, "George", "2010-01-20"},
	{7, 6, 1, "Samantha", "2012-09-04"},
	{8, 6, 1, "Max", "2012-09-04"},
	{9, 7, 5, "Lucky", "2011-08-06"},
	{10, 8, 2, "Mulligan", "2007-02-24"},
	{11, 9, 5, "Freddy", "2010-03-09"},
	{12, 10, 2, "Lucky", "2010-06-24"},
	{13, 10, 1, "Sly", "2012-06-08"},
}

// Seed carga los owners y mascotas de ejemplo. petRepo tiene que haberse creado con DefaultPetTypes.
func Seed(ctx context.Context, ownerRepo owners.Repository, petRepo pets.Repository) error {
	for _, o := range seedOwners {
		if _, err := ownerRepo.Create(ctx, o); err != nil {
			return fmt.Errorf("seed owner %d: %w", o.ID, err)
		}
	}

	for _, sp := range seedPets {
		bd, err := time.Parse(pets.BirthDateLayout, sp.birthDate)
		if err != nil {
			return fmt.Errorf("seed pet %d: %w", sp.id, err)
		}
		pt, err := petRepo.GetPetType(ctx, sp.typeID)
		if err != nil {
			return fmt.Errorf("seed pet %d: type %d: %w", sp.id, sp.typeID, err)
		}
		if _, err := petRepo.Create(ctx, pets.Pet{
			ID:        sp.id,
			OwnerID:   sp.ownerID,
			Name:      sp.name,
			BirthDate: &bd,
			Type:      &pt,
		}); err != nil {
			return fmt.Errorf("seed pet %d: %w", sp.id, err)
		}
	}
	return nil
}
