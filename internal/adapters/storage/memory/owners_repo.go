package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"petcareplus/internal/domain/owners"
)

type ownersRepo struct {
	mu   sync.RWMutex
	byID map[int64]owners.Owner
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{byID: make(map[int64]owners.Owner)}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Clave duplicada: error plano, como el constraint de la base.
	if _, exists := r.byID[o.OwnerID]; exists {
		return errors.New("owner already exists")
	}
	r.byID[o.OwnerID] = o
	return nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}

	// orden estable por clave, igual que el SELECT con ORDER BY
	sort.Slice(out, func(i, j int) bool { return out[i].OwnerID < out[j].OwnerID })
	return out, nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[o.OwnerID]; !exists {
		return owners.ErrNotFound
	}
	r.byID[o.OwnerID] = o
	return nil
}

func (r *ownersRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return owners.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
