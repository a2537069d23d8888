package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name    string
	Species string
	Gender  string
	OwnerID int64
}

func normalize(id int64, in Input) (Pet, error) {
	p := Pet{
		PetID:   id,
		Name:    strings.TrimSpace(in.Name),
		Species: strings.TrimSpace(in.Species),
		Gender:  strings.TrimSpace(in.Gender),
		OwnerID: in.OwnerID,
	}

	if p.Name == "" {
		return Pet{}, invalid("name is required")
	}
	if p.Species == "" {
		return Pet{}, invalid("species is required")
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, id int64, in Input) (Pet, error) {
	p, err := normalize(id, in)
	if err != nil {
		return Pet{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Pet, error) {
	p, err := normalize(id, in)
	if err != nil {
		return Pet{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
