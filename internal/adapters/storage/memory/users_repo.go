package memory

import (
	"context"
	"strings"
	"sync"

	"petcareplus/internal/domain/auth"
)

type userRecord struct {
	user auth.User
	role string
}

// UsersRepo es el store de credenciales para dev/tests.
// Se siembra con Add; no hay alta de usuarios por API.
type UsersRepo struct {
	mu      sync.RWMutex
	byEmail map[string]userRecord
	byID    map[int64]userRecord
	nextID  int64
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		byEmail: make(map[string]userRecord),
		byID:    make(map[int64]userRecord),
		nextID:  1,
	}
}

// Add siembra un usuario con su rol. password debe venir ya hasheado
// con bcrypt. Devuelve el id asignado.
func (r *UsersRepo) Add(email, hashedPassword, role string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	rec := userRecord{
		user: auth.User{ID: id, Email: strings.TrimSpace(email), Password: hashedPassword},
		role: role,
	}
	r.byEmail[rec.user.Email] = rec
	r.byID[id] = rec
	return id
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byEmail[strings.TrimSpace(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return rec.user, nil
}

func (r *UsersRepo) GetRole(ctx context.Context, userID int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[userID]
	if !ok || rec.role == "" {
		return "", auth.ErrNotFound
	}
	return rec.role, nil
}
