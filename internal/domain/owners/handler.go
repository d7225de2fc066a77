package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petclinic-customers/internal/platform/logger"
	"petclinic-customers/internal/ports/visits"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de owners. fetcher puede ser nil (sin visitas).
func RegisterRoutes(r chi.Router, svc *Service, fetcher visits.Fetcher, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Post("/owners", createOwnerHandler(svc))
	r.Get("/owners", listOwnersHandler(svc))
	r.Get("/owners/{ownerId}", getOwnerHandler(svc, fetcher, log))
	r.Put("/owners/{ownerId}", updateOwnerHandler(svc))
}

// createOwnerHandler godoc
// @Summary Registrar owner
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del owner; telephone solo dígitos (máx 12)"
// @Success 201 {object} OwnerDetails
// @Failure 400 {string} string "invalid json / validación"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeOwnerRequest(w, r)
		if !ok {
			return
		}

		o, err := svc.Create(r.Context(), req.toSaveInput())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, NewOwnerDetails(o))
	}
}

// listOwnersHandler godoc
// @Summary Listar owners
// @Tags owners
// @Produce json
// @Success 200 {array} OwnerDetails
// @Failure 500 {string} string "internal error"
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]OwnerDetails, 0, len(items))
		for _, o := range items {
			out = append(out, NewOwnerDetails(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getOwnerHandler godoc
// @Summary Detalle de un owner
// @Description Incluye sus mascotas ordenadas por nombre. Si el visits-service está configurado, cada mascota trae sus visitas.
// @Tags owners
// @Produce json
// @Param ownerId path int true "ID del owner"
// @Success 200 {object} OwnerDetails
// @Failure 400 {string} string "invalid ownerId"
// @Failure 404 {string} string "owner not found"
// @Router /owners/{ownerId} [get]
func getOwnerHandler(svc *Service, fetcher visits.Fetcher, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		details := NewOwnerDetails(o)
		if fetcher != nil && len(details.Pets) > 0 {
			items, err := fetcher.VisitsForPets(r.Context(), details.PetIDs())
			if err != nil {
				log.Warn("visits fetch failed", map[string]any{"owner_id": o.ID, "error": err})
			} else {
				details = details.WithVisits(visits.ByPet(items))
			}
		}

		writeJSON(w, http.StatusOK, details)
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar owner
// @Tags owners
// @Accept json
// @Param ownerId path int true "ID del owner"
// @Param payload body ownerRequest true "Datos del owner"
// @Success 204
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "owner not found"
// @Router /owners/{ownerId} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		req, ok := decodeOwnerRequest(w, r)
		if !ok {
			return
		}

		if _, err := svc.Update(r.Context(), id, req.toSaveInput()); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeOwnerRequest(w http.ResponseWriter, r *http.Request) (ownerRequest, bool) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return ownerRequest{}, false
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ownerRequest{}, false
	}
	return req, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "ownerId"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid ownerId", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
