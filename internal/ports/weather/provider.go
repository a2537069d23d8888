package weather

import (
	"context"
	"errors"
)

// ErrNoCurrentWeather: el proveedor respondió pero sin el bloque de
// condiciones actuales. Los handlers lo mapean a 502.
var ErrNoCurrentWeather = errors.New("provider response has no current weather")

// Observation son las condiciones actuales que nos interesan.
type Observation struct {
	TemperatureC float64
	Windspeed    float64
}

// Provider consulta condiciones actuales por coordenadas.
// Una sola llamada por request: sin retry, sin cache.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (Observation, error)
}
