package owners

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"
)

var telephoneRe = regexp.MustCompile(`^\d{1,12}$`)

// ownerRequest es el cuerpo de POST /owners y PUT /owners/{ownerId}.
type ownerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

func (r *ownerRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FirstName, required("firstName", 30)...),
		validation.Field(&r.LastName, required("lastName", 30)...),
		validation.Field(&r.Address, required("address", 255)...),
		validation.Field(&r.City, required("city", 80)...),
		validation.Field(&r.Telephone,
			validation.Required.Error("telephone is required"),
			validation.Match(telephoneRe).Error("telephone must be numeric (max 12 digits)"),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return nil
}

func (r *ownerRequest) toSaveInput() SaveInput {
	return SaveInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		Telephone: r.Telephone,
	}
}

// required: obligatorio, no en blanco y dentro del largo de la columna en Postgres.
func required(field string, maxLen int) []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(field + " is required"),
		validation.By(func(value any) error {
			s, _ := value.(string)
			if strings.TrimSpace(s) == "" {
				return validation.NewError("validation_not_blank", field+" must not be blank")
			}
			return nil
		}),
		validation.RuneLength(1, maxLen).Error(fmt.Sprintf("%s must be at most %d characters", field, maxLen)),
	}
}
