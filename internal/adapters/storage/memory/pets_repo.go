package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"petcareplus/internal/domain/pets"
)

type petsRepo struct {
	mu   sync.RWMutex
	byID map[int64]pets.Pet
}

func NewPetsRepo() pets.Repository {
	return &petsRepo{byID: make(map[int64]pets.Pet)}
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.PetID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.PetID] = p
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PetID < out[j].PetID })
	return out, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.PetID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.PetID] = p
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
