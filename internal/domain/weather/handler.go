package weather

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcareplus/internal/middleware"
	"petcareplus/internal/platform/logger"
	weatherport "petcareplus/internal/ports/weather"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/weather", func(wr chi.Router) {
		wr.Use(middleware.RequireLogin)
		wr.Post("/fetch", fetchHandler(svc, log))
		wr.Get("/logs", logsHandler(svc, log))
	})
}

type fetchRequest struct {
	City string `json:"city"`
}

func fetchHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Body vacío o sin city es válido: aplica la ciudad default.
		var req fetchRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "Invalid JSON body")
				return
			}
		}

		l, err := svc.FetchAndLog(r.Context(), req.City)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnsupportedCity):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, weatherport.ErrNoCurrentWeather):
				writeError(w, http.StatusBadGateway, "Weather provider returned no data")
			case errors.Is(err, ErrStore):
				log.Error("weather log insert failed", map[string]any{"error": err.Error()})
				writeError(w, http.StatusInternalServerError, "Database error")
			default:
				log.Error("weather provider call failed", map[string]any{"error": err.Error()})
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Weather fetched",
			"data":    l,
		})
	}
}

func logsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Recent(r.Context())
		if err != nil {
			log.Error("weather logs read failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
