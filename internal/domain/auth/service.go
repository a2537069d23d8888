package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"petcareplus/internal/platform/validate"
	"petcareplus/internal/ports/session"
)

var (
	ErrInvalidInput   = errors.New("email and password are required")
	ErrBadCredentials = errors.New("Invalid email or password")
)

type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// Login valida credenciales y arma el Principal de la sesión.
// Dos llamadas secuenciales al store: credenciales y luego rol.
// Email desconocido y password incorrecto responden igual (ErrBadCredentials)
// para no filtrar qué cuentas existen.
func (s *Service) Login(ctx context.Context, email, password string) (session.Principal, error) {
	email = strings.TrimSpace(email)
	if !validate.Email(email) || password == "" {
		return session.Principal{}, ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return session.Principal{}, ErrBadCredentials
		}
		return session.Principal{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return session.Principal{}, ErrBadCredentials
	}

	role, err := s.users.GetRole(ctx, u.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Cuenta sin fila de rol: cae al nivel de user, igual que
			// un rol desconocido.
			role = session.RoleUser
		} else {
			return session.Principal{}, err
		}
	}

	return session.Principal{UserID: u.ID, Email: u.Email, Role: role}, nil
}
