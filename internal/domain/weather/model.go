package weather

import "time"

// Log es una fila de WeatherLog. Append-only: la app nunca
// actualiza ni borra filas. id y logged_at los genera el store.
type Log struct {
	ID           int64     `json:"id"`
	City         string    `json:"city"`
	TemperatureC float64   `json:"temperature_c"`
	Windspeed    float64   `json:"windspeed"`
	LoggedAt     time.Time `json:"logged_at"`
}
