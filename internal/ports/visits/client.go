package visits

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout es el formato de fecha (yyyy-MM-dd) con el que el visits-service manda "date".
const DateLayout = "2006-01-02"

// Visit es una visita veterinaria tal como la expone el visits-service.
// Este servicio no la persiste; solo la adjunta a PetDetails.
type Visit struct {
	ID          int    `json:"id"`
	PetID       int    `json:"petId"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
}

// Date es un día calendario que viaja como "YYYY-MM-DD". El valor cero se serializa como null.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("visit date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("visit date must be YYYY-MM-DD: %w", err)
	}
	*d = Date{Time: t}
	return nil
}

// Fetcher obtiene las visitas de un conjunto de mascotas.
type Fetcher interface {
	VisitsForPets(ctx context.Context, petIDs []int) ([]Visit, error)
}

// ByPet agrupa visitas por PetID (conserva el orden de entrada).
func ByPet(items []Visit) map[int][]Visit {
	out := make(map[int][]Visit, len(items))
	for _, v := range items {
		out[v.PetID] = append(out[v.PetID], v)
	}
	return out
}
