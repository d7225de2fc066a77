package owners

import (
	"encoding/json"

	"petclinic-customers/internal/domain/pets"
	"petclinic-customers/internal/ports/visits"
)

// OwnerDetails es la respuesta JSON de un owner, con sus mascotas ya mapeadas.
type OwnerDetails struct {
	ID        int               `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	Telephone string            `json:"telephone"`
	Pets      []pets.PetDetails `json:"pets"`
}

// NewOwnerDetails mapea cada mascota con pets.NewPetDetails, ordenadas por nombre.
func NewOwnerDetails(o Owner) OwnerDetails {
	sorted := o.SortedPets()
	ps := make([]pets.PetDetails, 0, len(sorted))
	for _, p := range sorted {
		ps = append(ps, pets.NewPetDetails(p))
	}

	return OwnerDetails{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      ps,
	}
}

// MarshalJSON garantiza "pets": [] incluso para un OwnerDetails armado a mano.
func (d OwnerDetails) MarshalJSON() ([]byte, error) {
	type plain OwnerDetails
	if d.Pets == nil {
		d.Pets = []pets.PetDetails{}
	}
	return json.Marshal(plain(d))
}

// PetIDs devuelve los IDs de las mascotas en el mismo orden que Pets. No se serializa.
func (d OwnerDetails) PetIDs() []int {
	out := make([]int, 0, len(d.Pets))
	for _, p := range d.Pets {
		out = append(out, p.ID)
	}
	return out
}

// WithVisits devuelve una copia con las visitas de cada mascota (las que no tienen quedan en []).
func (d OwnerDetails) WithVisits(byPet map[int][]visits.Visit) OwnerDetails {
	ps := make([]pets.PetDetails, len(d.Pets))
	for i, p := range d.Pets {
		vs := byPet[p.ID]
		if vs == nil {
			vs = []visits.Visit{}
		}
		p.Visits = vs
		ps[i] = p
	}
	d.Pets = ps
	return d
}
