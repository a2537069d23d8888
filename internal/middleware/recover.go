package middleware

import (
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"petcareplus/internal/platform/logger"
)

// RecoverJSON es el middleware de cola: cualquier panic no manejado
// se loguea con stack y se responde 500 con el body JSON genérico,
// solo si el handler todavía no escribió nada.
func RecoverJSON(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				if log != nil {
					log.Error("panic recovered", map[string]any{
						"panic": rec,
						"path":  r.URL.Path,
						"stack": string(debug.Stack()),
					})
				}

				if ww.BytesWritten() == 0 && ww.Status() == 0 {
					writeError(ww, http.StatusInternalServerError, "Internal server error")
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
