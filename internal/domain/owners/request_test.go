package owners

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerRequest_Validate(t *testing.T) {
	valid := ownerRequest{
		FirstName: "Betty",
		LastName:  "Davis",
		Address:   "638 Cardinal Ave.",
		City:      "Sun Prairie",
		Telephone: "6085551749",
	}
	require.NoError(t, valid.Validate())

	mutate := func(f func(r *ownerRequest)) ownerRequest {
		r := valid
		f(&r)
		return r
	}

	cases := map[string]ownerRequest{
		"missing first name":  mutate(func(r *ownerRequest) { r.FirstName = "" }),
		"blank last name":     mutate(func(r *ownerRequest) { r.LastName = "  " }),
		"missing address":     mutate(func(r *ownerRequest) { r.Address = "" }),
		"missing city":        mutate(func(r *ownerRequest) { r.City = "" }),
		"non numeric phone":   mutate(func(r *ownerRequest) { r.Telephone = "608-555-1749" }),
		"phone too long":      mutate(func(r *ownerRequest) { r.Telephone = "1234567890123" }),
		"first name too long": mutate(func(r *ownerRequest) { r.FirstName = strings.Repeat("a", 31) }),
		"last name too long":  mutate(func(r *ownerRequest) { r.LastName = strings.Repeat("b", 31) }),
		"address too long":    mutate(func(r *ownerRequest) { r.Address = strings.Repeat("c", 256) }),
		"city too long":       mutate(func(r *ownerRequest) { r.City = strings.Repeat("d", 81) }),
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			err := req.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestOwnerRequest_ValidateAcceptsColumnLimits(t *testing.T) {
	req := ownerRequest{
		FirstName: strings.Repeat("á", 30),
		LastName:  strings.Repeat("b", 30),
		Address:   strings.Repeat("c", 255),
		City:      strings.Repeat("d", 80),
		Telephone: "123456789012",
	}
	require.NoError(t, req.Validate())

	req.FirstName += "x"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firstName must be at most 30 characters")
}
