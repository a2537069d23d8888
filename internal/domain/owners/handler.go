package owners

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
	r.Route("/api/owners", func(or chi.Router) {
		or.With(middleware.RequireLogin).Get("/", listHandler(svc, log))
		or.With(middleware.RequireLogin).Get("/{ownerID}", getHandler(svc, log))

		or.With(middleware.RequireRole(session.RoleAdmin)).Post("/", createHandler(svc, log))
		or.With(middleware.RequireRole(session.RoleAdmin)).Put("/{ownerID}", updateHandler(svc, log))
		or.With(middleware.RequireRole(session.RoleAdmin)).Delete("/{ownerID}", deleteHandler(svc, log))
	})
}

// owner_id puede venir como número o como string numérico en el JSON;
// validate.ToInt resuelve ambos (el decoder usa UseNumber).
type ownerRequest struct {
	OwnerID   any    `json:"owner_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

func (req ownerRequest) input() Input {
	return Input{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}
}

func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("owners list failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "ownerID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "owner_id must be an integer")
			return
		}

		o, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Owner not found")
				return
			}
			log.Error("owners get failed", map[string]any{"error": err.Error(), "owner_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, o)
	}
}

func createHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeOwner(w, r)
		if !ok {
			return
		}

		id, ok := validate.ToInt(req.OwnerID)
		if !ok {
			writeError(w, http.StatusBadRequest, "owner_id must be an integer")
			return
		}

		o, err := svc.Create(r.Context(), id, req.input())
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Error("owners create failed", map[string]any{"error": err.Error(), "owner_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message":  "Owner created",
			"owner_id": o.OwnerID,
		})
	}
}

func updateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "ownerID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "owner_id must be an integer")
			return
		}

		// La clave viene del path; un owner_id en el body se ignora.
		req, ok := decodeOwner(w, r)
		if !ok {
			return
		}

		if _, err := svc.Update(r.Context(), id, req.input()); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Owner not found")
			default:
				log.Error("owners update failed", map[string]any{"error": err.Error(), "owner_id": id})
				writeError(w, http.StatusInternalServerError, "Database error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Owner updated"})
	}
}

func deleteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "ownerID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "owner_id must be an integer")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Owner not found")
				return
			}
			log.Error("owners delete failed", map[string]any{"error": err.Error(), "owner_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Owner deleted"})
	}
}

func decodeOwner(w http.ResponseWriter, r *http.Request) (ownerRequest, bool) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req ownerRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return ownerRequest{}, false
	}
	return req, true
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
