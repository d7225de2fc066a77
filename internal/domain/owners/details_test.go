package owners

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic-customers/internal/domain/pets"
	"petclinic-customers/internal/ports/visits"
)

func sampleOwner() Owner {
	bd := time.Date(2012, 9, 4, 0, 0, 0, 0, time.UTC)
	return Owner{
		ID:        6,
		FirstName: "Jean",
		LastName:  "Coleman",
		Address:   "105 N. Lake St.",
		City:      "Monona",
		Telephone: "6085552654",
		Pets: []pets.Pet{
			{ID: 8, OwnerID: 6, Name: "Max", BirthDate: &bd, Type: &pets.PetType{ID: 1, Name: "cat"}},
			{ID: 7, OwnerID: 6, Name: "samantha", BirthDate: &bd, Type: &pets.PetType{ID: 1, Name: "cat"}},
			{ID: 15, OwnerID: 6, Name: "Bella"},
		},
	}
}

func TestNewOwnerDetails_MapsFieldsAndSortsPets(t *testing.T) {
	d := NewOwnerDetails(sampleOwner())

	assert.Equal(t, 6, d.ID)
	assert.Equal(t, "Jean", d.FirstName)
	assert.Equal(t, "Coleman", d.LastName)
	assert.Equal(t, "105 N. Lake St.", d.Address)
	assert.Equal(t, "Monona", d.City)
	assert.Equal(t, "6085552654", d.Telephone)

	require.Len(t, d.Pets, 3)
	assert.Equal(t, []string{"Bella", "Max", "samantha"}, []string{d.Pets[0].Name, d.Pets[1].Name, d.Pets[2].Name})
	assert.Equal(t, []int{15, 8, 7}, d.PetIDs())
}

func TestNewOwnerDetails_NoPets(t *testing.T) {
	d := NewOwnerDetails(Owner{ID: 1, FirstName: "George"})
	assert.Empty(t, d.PetIDs())

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "[]", string(raw["pets"]))
}

func TestOwnerDetails_JSONShape(t *testing.T) {
	o := sampleOwner()
	o.Pets = o.Pets[:1]

	b, err := json.Marshal(NewOwnerDetails(o))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 6,
		"firstName": "Jean",
		"lastName": "Coleman",
		"address": "105 N. Lake St.",
		"city": "Monona",
		"telephone": "6085552654",
		"pets": [
			{"id": 8, "name": "Max", "birthDate": "2012-09-04", "type": {"id": 1, "name": "cat"}, "visits": []}
		]
	}`, string(b))
	assert.NotContains(t, string(b), "petIds")
}

func TestOwnerDetails_NilPetsSerializeAsEmptyList(t *testing.T) {
	b, err := json.Marshal(OwnerDetails{ID: 1, FirstName: "George"})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "[]", string(raw["pets"]))
	assert.Equal(t, `"George"`, string(raw["firstName"]))
}

func TestOwnerDetails_WithVisits(t *testing.T) {
	d := NewOwnerDetails(sampleOwner())
	enriched := d.WithVisits(map[int][]visits.Visit{
		7: {{ID: 1, PetID: 7, Description: "rabies shot"}},
	})

	byID := map[int]pets.PetDetails{}
	for _, p := range enriched.Pets {
		byID[p.ID] = p
	}
	require.Len(t, byID[7].Visits, 1)
	assert.Equal(t, "rabies shot", byID[7].Visits[0].Description)
	assert.NotNil(t, byID[8].Visits)
	assert.Empty(t, byID[8].Visits)

	// El original no se modifica.
	for _, p := range d.Pets {
		assert.Empty(t, p.Visits)
	}
}

func TestOwner_SortedPets_DoesNotMutate(t *testing.T) {
	o := sampleOwner()
	_ = o.SortedPets()
	assert.Equal(t, "Max", o.Pets[0].Name)
}
