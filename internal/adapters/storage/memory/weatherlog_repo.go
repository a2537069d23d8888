package memory

import (
	"context"
	"sync"
	"time"

	"petcareplus/internal/domain/weather"
)

type weatherLogRepo struct {
	mu     sync.Mutex
	logs   []weather.Log
	nextID int64
	now    func() time.Time
}

func NewWeatherLogRepo() weather.Repository {
	return &weatherLogRepo{nextID: 1, now: time.Now}
}

func (r *weatherLogRepo) Insert(ctx context.Context, l weather.Log) (weather.Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = r.nextID
	r.nextID++
	l.LoggedAt = r.now()

	r.logs = append(r.logs, l)
	return l, nil
}

func (r *weatherLogRepo) Recent(ctx context.Context, limit int) ([]weather.Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// append-only con ids crecientes: recorrer de atrás hacia adelante
	// ya da el orden más-nuevo-primero.
	out := make([]weather.Log, 0, limit)
	for i := len(r.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.logs[i])
	}
	return out, nil
}
