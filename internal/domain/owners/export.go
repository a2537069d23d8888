package owners

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"petcareplus/internal/middleware"
	"petcareplus/internal/platform/logger"
	"petcareplus/internal/platform/validate"
	"petcareplus/internal/ports/session"
)

// Orden explícito de columnas del export. El orden de salida no depende
// de cómo se enumeren los campos de la fila.
var csvColumns = []string{"owner_id", "first_name", "last_name", "phone", "email", "address"}

func RegisterExportRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.With(middleware.RequireRole(session.RoleAdmin)).
		Get("/api/export/owners.csv", exportCSVHandler(svc, log))
}

func exportCSVHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("owners export failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		var b strings.Builder
		b.WriteString(strings.Join(csvColumns, ","))
		b.WriteByte('\n')

		for i, o := range items {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(csvRow(o))
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="owners.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(b.String()))
	}
}

func csvRow(o Owner) string {
	fields := []string{
		validate.CSVValue(o.OwnerID),
		validate.CSVValue(o.FirstName),
		validate.CSVValue(o.LastName),
		validate.CSVValue(o.Phone),
		validate.CSVValue(o.Email),
		validate.CSVValue(o.Address),
	}
	return strings.Join(fields, ",")
}
