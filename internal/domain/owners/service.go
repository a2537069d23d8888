package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petcareplus/internal/platform/validate"
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
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
}

// normalize valida lo requerido y arma la fila con defaults "".
// Mismas reglas para create y update (la clave viene aparte).
func normalize(id int64, in Input) (Owner, error) {
	o := Owner{
		OwnerID:   id,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
	}

	if o.FirstName == "" {
		return Owner{}, invalid("first_name is required")
	}
	if o.LastName == "" {
		return Owner{}, invalid("last_name is required")
	}
	if !validate.Email(o.Email) {
		return Owner{}, invalid("email is not valid")
	}
	return o, nil
}

func (s *Service) Create(ctx context.Context, id int64, in Input) (Owner, error) {
	o, err := normalize(id, in)
	if err != nil {
		return Owner{}, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Owner, error) {
	o, err := normalize(id, in)
	if err != nil {
		return Owner{}, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
