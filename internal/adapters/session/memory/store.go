package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"petcareplus/internal/ports/session"
)

type entry struct {
	principal session.Principal
	expiresAt time.Time
}

// Store guarda sesiones en memoria de proceso (dev/tests).
// La expiración se chequea al leer; no hay barrido de fondo.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *Store) Create(ctx context.Context, p session.Principal) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[token] = entry{
		principal: p,
		expiresAt: s.now().Add(session.TTL),
	}
	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (session.Principal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return session.Principal{}, false, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, token)
		return session.Principal{}, false, nil
	}
	return e.principal, true, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}
