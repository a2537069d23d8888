package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcareplus/internal/middleware"
	"petcareplus/internal/platform/logger"
	"petcareplus/internal/platform/validate"
	"petcareplus/internal/ports/session"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.With(middleware.RequireLogin).Get("/", listHandler(svc, log))
		pr.With(middleware.RequireLogin).Get("/{petID}", getHandler(svc, log))

		pr.With(middleware.RequireRole(session.RoleAdmin)).Post("/", createHandler(svc, log))
		pr.With(middleware.RequireRole(session.RoleAdmin)).Put("/{petID}", updateHandler(svc, log))
		pr.With(middleware.RequireRole(session.RoleAdmin)).Delete("/{petID}", deleteHandler(svc, log))
	})
}

type petRequest struct {
	PetID   any    `json:"pet_id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
	OwnerID any    `json:"owner_id"`
}

func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("pets list failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "petID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "pet_id must be an integer")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Pet not found")
				return
			}
			log.Error("pets get failed", map[string]any{"error": err.Error(), "pet_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func createHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodePet(w, r)
		if !ok {
			return
		}

		id, ok := validate.ToInt(req.PetID)
		if !ok {
			writeError(w, http.StatusBadRequest, "pet_id must be an integer")
			return
		}
		ownerID, ok := validate.ToInt(req.OwnerID)
		if !ok {
			writeError(w, http.StatusBadRequest, "owner_id must be an integer")
			return
		}

		p, err := svc.Create(r.Context(), id, Input{
			Name:    req.Name,
			Species: req.Species,
			Gender:  req.Gender,
			OwnerID: ownerID,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Error("pets create failed", map[string]any{"error": err.Error(), "pet_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Pet created",
			"pet_id":  p.PetID,
		})
	}
}

func updateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "petID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "pet_id must be an integer")
			return
		}

		req, ok := decodePet(w, r)
		if !ok {
			return
		}

		ownerID, ok := validate.ToInt(req.OwnerID)
		if !ok {
			writeError(w, http.StatusBadRequest, "owner_id must be an integer")
			return
		}

		if _, err := svc.Update(r.Context(), id, Input{
			Name:    req.Name,
			Species: req.Species,
			Gender:  req.Gender,
			OwnerID: ownerID,
		}); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Pet not found")
			default:
				log.Error("pets update failed", map[string]any{"error": err.Error(), "pet_id": id})
				writeError(w, http.StatusInternalServerError, "Database error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Pet updated"})
	}
}

func deleteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "petID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "pet_id must be an integer")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Pet not found")
				return
			}
			log.Error("pets delete failed", map[string]any{"error": err.Error(), "pet_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted"})
	}
}

func decodePet(w http.ResponseWriter, r *http.Request) (petRequest, bool) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req petRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return petRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
