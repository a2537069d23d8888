package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"petcareplus/internal/ports/session"
)

const keyPrefix = "session:"

// Store guarda sesiones en Redis: token -> principal en JSON, con TTL.
// La expiración la maneja Redis solo.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Dial crea y pinguea un cliente Redis.
func Dial(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (s *Store) Create(ctx context.Context, p session.Principal) (string, error) {
	token := uuid.NewString()

	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, b, session.TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (session.Principal, bool, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Principal{}, false, nil
		}
		return session.Principal{}, false, err
	}

	var p session.Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return session.Principal{}, false, err
	}
	return p, true, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
