package weather

import (
	"context"
	"errors"
	"fmt"

	weatherport "petcareplus/internal/ports/weather"
)

var (
	ErrUnsupportedCity = errors.New("Unsupported city for this demo")

	// ErrStore distingue la falla de persistencia de la falla del
	// proveedor; el handler la mapea a 500 "Database error".
	ErrStore = errors.New("weather log store failed")
)

// recentLimit acota la lectura del log a las últimas 50 filas.
const recentLimit = 50

type Service struct {
	provider weatherport.Provider
	repo     Repository
}

func NewService(provider weatherport.Provider, repo Repository) *Service {
	return &Service{provider: provider, repo: repo}
}

// FetchAndLog resuelve la ciudad contra la tabla fija, consulta el
// proveedor una sola vez (sin retry ni cache) y persiste el resultado.
func (s *Service) FetchAndLog(ctx context.Context, cityName string) (Log, error) {
	if cityName == "" {
		cityName = DefaultCity
	}

	c, ok := lookupCity(cityName)
	if !ok {
		return Log{}, ErrUnsupportedCity
	}

	obs, err := s.provider.Current(ctx, c.Lat, c.Lon)
	if err != nil {
		return Log{}, err
	}

	saved, err := s.repo.Insert(ctx, Log{
		City:         c.Name,
		TemperatureC: obs.TemperatureC,
		Windspeed:    obs.Windspeed,
	})
	if err != nil {
		return Log{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return saved, nil
}

// Recent devuelve hasta 50 filas, la más nueva primero.
func (s *Service) Recent(ctx context.Context) ([]Log, error) {
	return s.repo.Recent(ctx, recentLimit)
}
