package owners

import (
	"sort"
	"strings"

	"petclinic-customers/internal/domain/pets"
)

// Owner es el cliente de la clínica, dueño de cero o más mascotas.
type Owner struct {
	ID int

	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	Pets []pets.Pet
}

// SortedPets devuelve las mascotas ordenadas por nombre (case-insensitive, asc).
// No modifica o.Pets.
func (o Owner) SortedPets() []pets.Pet {
	out := make([]pets.Pet, len(o.Pets))
	copy(out, o.Pets)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
