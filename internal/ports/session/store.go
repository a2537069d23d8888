package session

import (
	"context"
	"time"
)

const (
	// CookieName es la cookie que emite el login.
	CookieName = "pcp_session"

	// TTL de la sesión en todos los stores.
	TTL = 24 * time.Hour
)

// Store es el almacén de sesiones (Redis en prod, memoria en dev/tests).
// Get retorna found=false tanto para token inexistente como expirado.
type Store interface {
	Create(ctx context.Context, p Principal) (token string, err error)
	Get(ctx context.Context, token string) (p Principal, found bool, err error)
	Delete(ctx context.Context, token string) error
}
