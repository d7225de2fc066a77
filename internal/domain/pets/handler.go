package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petclinic-customers/internal/platform/logger"
	"petclinic-customers/internal/ports/visits"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /petTypes y las rutas de mascotas anidadas bajo un owner.
// fetcher puede ser nil: en ese caso las visitas salen vacías.
func RegisterRoutes(r chi.Router, svc *Service, fetcher visits.Fetcher, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Get("/petTypes", listPetTypesHandler(svc))

	r.Post("/owners/{ownerId}/pets", createPetHandler(svc))
	r.Get("/owners/{ownerId}/pets/{petId}", getPetHandler(svc, fetcher, log))
	r.Put("/owners/{ownerId}/pets/{petId}", updatePetHandler(svc))
}

// listPetTypesHandler godoc
// @Summary Listar tipos de mascota
// @Tags pets
// @Produce json
// @Success 200 {array} PetTypeDetails
// @Failure 500 {string} string "internal error"
// @Router /petTypes [get]
func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.PetTypes(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]PetTypeDetails, 0, len(items))
		for _, t := range items {
			out = append(out, NewPetTypeDetails(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary Registrar mascota de un owner
// @Tags pets
// @Accept json
// @Produce json
// @Param ownerId path int true "ID del owner"
// @Param payload body petRequest true "birthDate en formato YYYY-MM-DD"
// @Success 201 {object} PetDetails
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "owner not found"
// @Router /owners/{ownerId}/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(w, r, "ownerId")
		if !ok {
			return
		}

		in, ok := decodePetRequest(w, r)
		if !ok {
			return
		}

		p, err := svc.Create(r.Context(), ownerID, in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, NewPetDetails(p))
	}
}

// getPetHandler godoc
// @Summary Detalle de una mascota
// @Description Si el visits-service está configurado, incluye sus visitas.
// @Tags pets
// @Produce json
// @Param ownerId path int true "ID del owner"
// @Param petId path int true "ID de la mascota"
// @Success 200 {object} PetDetails
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "pet not found"
// @Router /owners/{ownerId}/pets/{petId} [get]
func getPetHandler(svc *Service, fetcher visits.Fetcher, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(w, r, "ownerId")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petId")
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), ownerID, petID)
		if err != nil {
			writeError(w, err)
			return
		}

		var vs []visits.Visit
		if fetcher != nil {
			items, err := fetcher.VisitsForPets(r.Context(), []int{p.ID})
			if err != nil {
				// Degradamos a visitas vacías: el detalle de la mascota no depende del visits-service.
				log.Warn("visits fetch failed", map[string]any{"pet_id": p.ID, "error": err})
			} else {
				vs = visits.ByPet(items)[p.ID]
			}
		}

		writeJSON(w, http.StatusOK, NewPetDetailsWithVisits(p, vs))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Tags pets
// @Accept json
// @Param ownerId path int true "ID del owner"
// @Param petId path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota"
// @Success 204
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "pet not found"
// @Router /owners/{ownerId}/pets/{petId} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(w, r, "ownerId")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petId")
		if !ok {
			return
		}

		in, ok := decodePetRequest(w, r)
		if !ok {
			return
		}

		if _, err := svc.Update(r.Context(), ownerID, petID, in); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodePetRequest(w http.ResponseWriter, r *http.Request) (SaveInput, bool) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return SaveInput{}, false
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return SaveInput{}, false
	}
	in, err := req.toSaveInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return SaveInput{}, false
	}
	return in, true
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		http.Error(w, "invalid "+param, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrOwnerNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en owners a propósito (mismo criterio que el resto de módulos).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
