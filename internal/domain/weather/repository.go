package weather

import "context"

// Repository persiste y lee el log de consultas de clima.
// Insert devuelve la fila con id y logged_at ya generados por el store.
type Repository interface {
	Insert(ctx context.Context, l Log) (Log, error)
	Recent(ctx context.Context, limit int) ([]Log, error)
}
