package pets

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/jellydator/validation"
)

// petRequest es el cuerpo de POST/PUT de mascotas.
type petRequest struct {
	ID        int    `json:"id"` // ignorado: manda el path
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD opcional
	TypeID    int    `json:"typeId"`
}

func (r *petRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(notBlank("name")),
			validation.Length(1, 30).Error("name must be between 1 and 30 characters"),
		),
		validation.Field(&r.BirthDate,
			validation.Date(BirthDateLayout).Error("birthDate must be YYYY-MM-DD"),
		),
		validation.Field(&r.TypeID,
			validation.Required.Error("typeId is required"),
			validation.Min(1).Error("typeId must be positive"),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return nil
}

func (r *petRequest) toSaveInput() (SaveInput, error) {
	in := SaveInput{
		Name:   strings.TrimSpace(r.Name),
		TypeID: r.TypeID,
	}
	if bd := strings.TrimSpace(r.BirthDate); bd != "" {
		t, err := time.Parse(BirthDateLayout, bd)
		if err != nil {
			return SaveInput{}, fmt.Errorf("%w: birthDate must be YYYY-MM-DD", ErrInvalidInput)
		}
		in.BirthDate = &t
	}
	return in, nil
}

func notBlank(field string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_not_blank", field+" must not be blank")
		}
		return nil
	}
}
