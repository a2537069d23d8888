package middleware

import (
	"context"
	"net/http"

	"petcareplus/internal/platform/logger"
	"petcareplus/internal/ports/session"
)

type ctxKey string

const principalKey ctxKey = "principal"

// SessionContext resuelve la cookie de sesión y, si hay sesión válida,
// inyecta el Principal en el contexto del request.
// Nunca corta el request: sin cookie, firma inválida, sesión vencida o
// store caído, el request sigue como anónimo y los guards deciden 401/403.
func SessionContext(store session.Store, secret string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := session.ParseToken(secret, cookie.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			p, found, err := store.Get(r.Context(), token)
			if err != nil {
				// No tumbamos el request por un store caído; queda anónimo.
				if log != nil {
					log.Warn("session store lookup failed", map[string]any{"error": err.Error()})
				}
				next.ServeHTTP(w, r)
				return
			}
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal lee el Principal inyectado por SessionContext.
func GetPrincipal(ctx context.Context) (session.Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return session.Principal{}, false
	}
	p, ok := v.(session.Principal)
	return p, ok
}

// WithPrincipal inyecta un Principal directo al contexto (para tests).
func WithPrincipal(ctx context.Context, p session.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
