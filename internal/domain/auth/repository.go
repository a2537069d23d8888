package auth

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// UserStore resuelve credenciales y rol en dos lookups separados
// (users y user_accounts): primero credenciales, después rol.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetRole(ctx context.Context, userID int64) (string, error)
}
