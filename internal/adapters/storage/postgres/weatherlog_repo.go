package postgres

import (
	"context"
	"database/sql"

	"petcareplus/internal/domain/weather"
)

type WeatherLogRepo struct {
	db *sql.DB
}

func NewWeatherLogRepo(db *sql.DB) *WeatherLogRepo {
	return &WeatherLogRepo{db: db}
}

func (r *WeatherLogRepo) Insert(ctx context.Context, l weather.Log) (weather.Log, error) {
	// id y logged_at los genera la tabla (serial / default now()).
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO "WeatherLog" (city, temperature_c, windspeed)
		VALUES ($1, $2, $3)
		RETURNING id, logged_at
	`,
		l.City, l.TemperatureC, l.Windspeed,
	)
	if err := row.Scan(&l.ID, &l.LoggedAt); err != nil {
		return weather.Log{}, err
	}
	return l, nil
}

func (r *WeatherLogRepo) Recent(ctx context.Context, limit int) ([]weather.Log, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, city, temperature_c, windspeed, logged_at
		FROM "WeatherLog"
		ORDER BY logged_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]weather.Log, 0)
	for rows.Next() {
		var l weather.Log
		if err := rows.Scan(&l.ID, &l.City, &l.TemperatureC, &l.Windspeed, &l.LoggedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
