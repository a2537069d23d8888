package appointments

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id int64) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id int64) error
}
