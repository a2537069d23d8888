package appointments

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
	r.Route("/api/appointments", func(ar chi.Router) {
		ar.With(middleware.RequireLogin).Get("/", listHandler(svc, log))
		ar.With(middleware.RequireLogin).Get("/{appointmentID}", getHandler(svc, log))

		ar.With(middleware.RequireRole(session.RoleAdmin)).Post("/", createHandler(svc, log))
		ar.With(middleware.RequireRole(session.RoleAdmin)).Put("/{appointmentID}", updateHandler(svc, log))
		ar.With(middleware.RequireRole(session.RoleAdmin)).Delete("/{appointmentID}", deleteHandler(svc, log))
	})
}

type appointmentRequest struct {
	AppointmentID   any    `json:"appointment_id"`
	PetID           any    `json:"pet_id"`
	VetID           any    `json:"vet_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
}

// ints valida los tres ids enteros del body (menos la clave, que en
// update viene del path). Devuelve el nombre del campo que falló.
func (req appointmentRequest) ints() (petID, vetID int64, badField string) {
	petID, ok := validate.ToInt(req.PetID)
	if !ok {
		return 0, 0, "pet_id"
	}
	vetID, ok = validate.ToInt(req.VetID)
	if !ok {
		return 0, 0, "vet_id"
	}
	return petID, vetID, ""
}

func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("appointments list failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "appointmentID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "appointment_id must be an integer")
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Appointment not found")
				return
			}
			log.Error("appointments get failed", map[string]any{"error": err.Error(), "appointment_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func createHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAppointment(w, r)
		if !ok {
			return
		}

		id, ok := validate.ToInt(req.AppointmentID)
		if !ok {
			writeError(w, http.StatusBadRequest, "appointment_id must be an integer")
			return
		}
		petID, vetID, bad := req.ints()
		if bad != "" {
			writeError(w, http.StatusBadRequest, bad+" must be an integer")
			return
		}

		a, err := svc.Create(r.Context(), id, Input{
			PetID:           petID,
			VetID:           vetID,
			AppointmentDate: req.AppointmentDate,
			AppointmentTime: req.AppointmentTime,
			Reason:          req.Reason,
			Status:          req.Status,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Error("appointments create failed", map[string]any{"error": err.Error(), "appointment_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"message":        "Appointment created",
			"appointment_id": a.AppointmentID,
		})
	}
}

func updateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "appointmentID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "appointment_id must be an integer")
			return
		}

		req, ok := decodeAppointment(w, r)
		if !ok {
			return
		}

		petID, vetID, bad := req.ints()
		if bad != "" {
			writeError(w, http.StatusBadRequest, bad+" must be an integer")
			return
		}

		if _, err := svc.Update(r.Context(), id, Input{
			PetID:           petID,
			VetID:           vetID,
			AppointmentDate: req.AppointmentDate,
			AppointmentTime: req.AppointmentTime,
			Reason:          req.Reason,
			Status:          req.Status,
		}); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, "Appointment not found")
			default:
				log.Error("appointments update failed", map[string]any{"error": err.Error(), "appointment_id": id})
				writeError(w, http.StatusInternalServerError, "Database error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment updated"})
	}
}

func deleteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := validate.ToInt(chi.URLParam(r, "appointmentID"))
		if !ok {
			writeError(w, http.StatusBadRequest, "appointment_id must be an integer")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "Appointment not found")
				return
			}
			log.Error("appointments delete failed", map[string]any{"error": err.Error(), "appointment_id": id})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment deleted"})
	}
}

func decodeAppointment(w http.ResponseWriter, r *http.Request) (appointmentRequest, bool) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req appointmentRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return appointmentRequest{}, false
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
