package pets

import "time"

// BirthDateLayout es el formato de fecha (yyyy-MM-dd) que usa la API para birthDate.
const BirthDateLayout = "2006-01-02"

// PetType es una especie del catálogo (cat, dog, lizard...). Solo lectura.
type PetType struct {
	ID   int
	Name string
}

// Pet representa una mascota registrada a nombre de un owner.
type Pet struct {
	ID      int
	OwnerID int

	Name      string
	BirthDate *time.Time
	Type      *PetType // nil si no tiene tipo asignado
}
