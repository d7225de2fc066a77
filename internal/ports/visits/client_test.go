package visits

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByPet_GroupsPreservingOrder(t *testing.T) {
	got := ByPet([]Visit{
		{ID: 1, PetID: 7, Description: "rabies shot"},
		{ID: 2, PetID: 8, Description: "neutered"},
		{ID: 3, PetID: 7, Description: "spayed"},
	})

	assert.Len(t, got, 2)
	assert.Equal(t, []int{1, 3}, []int{got[7][0].ID, got[7][1].ID})
	assert.Equal(t, 2, got[8][0].ID)
	assert.Nil(t, got[9])
}

func TestVisit_DateTravelsAsCalendarDay(t *testing.T) {
	var v Visit
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"petId":7,"date":"2013-01-01","description":"rabies shot"}`), &v))
	assert.Equal(t, NewDate(2013, time.January, 1), v.Date)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"petId":7,"date":"2013-01-01","description":"rabies shot"}`, string(out))
}

func TestVisit_DateNullAndInvalid(t *testing.T) {
	var v Visit
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"date":null}`), &v))
	assert.True(t, v.Date.IsZero())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"date":null`)

	err = json.Unmarshal([]byte(`{"date":"2013-01-01T00:00:00Z"}`), &v)
	assert.Error(t, err)
}
