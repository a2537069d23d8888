package owners

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Repository: una operación = una sentencia SQL. Update y Delete
// retornan ErrNotFound cuando no afectaron ninguna fila.
type Repository interface {
	Create(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id int64) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
	Update(ctx context.Context, o Owner) error
	Delete(ctx context.Context, id int64) error
}
