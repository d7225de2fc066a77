package pets

import (
	"encoding/json"

	"petclinic-customers/internal/ports/visits"
)

// PetTypeDetails es la forma de PetType en la API.
type PetTypeDetails struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewPetTypeDetails(t PetType) PetTypeDetails {
	return PetTypeDetails{ID: t.ID, Name: t.Name}
}

// PetDetails es la respuesta JSON de una mascota.
// BirthDate y Type se serializan como null cuando no hay dato; Visits nunca es null.
type PetDetails struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BirthDate *string         `json:"birthDate"`
	Type      *PetTypeDetails `json:"type"`
	Visits    []visits.Visit  `json:"visits"`
}

// NewPetDetails mapea una Pet de dominio. Las visitas arrancan vacías;
// las llena quien tenga acceso al visits-service.
func NewPetDetails(p Pet) PetDetails {
	return NewPetDetailsWithVisits(p, nil)
}

func NewPetDetailsWithVisits(p Pet, vs []visits.Visit) PetDetails {
	d := PetDetails{
		ID:     p.ID,
		Name:   p.Name,
		Visits: vs,
	}
	if p.BirthDate != nil {
		s := p.BirthDate.Format(BirthDateLayout)
		d.BirthDate = &s
	}
	if p.Type != nil {
		t := NewPetTypeDetails(*p.Type)
		d.Type = &t
	}
	if d.Visits == nil {
		d.Visits = []visits.Visit{}
	}
	return d
}

// MarshalJSON garantiza "visits": [] incluso para un PetDetails armado a mano.
func (d PetDetails) MarshalJSON() ([]byte, error) {
	type plain PetDetails
	if d.Visits == nil {
		d.Visits = []visits.Visit{}
	}
	return json.Marshal(plain(d))
}
