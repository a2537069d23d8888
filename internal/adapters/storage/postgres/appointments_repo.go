package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petcareplus/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO "Appointment"
			(appointment_id, pet_id, vet_id, appointment_date, appointment_time, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		a.AppointmentID, a.PetID, a.VetID,
		a.AppointmentDate, a.AppointmentTime, a.Reason, a.Status,
	)
	return err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT appointment_id, pet_id, vet_id, appointment_date, appointment_time, reason, status
		FROM "Appointment"
		WHERE appointment_id = $1
	`, id)

	var a appointments.Appointment
	if err := row.Scan(
		&a.AppointmentID, &a.PetID, &a.VetID,
		&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT appointment_id, pet_id, vet_id, appointment_date, appointment_time, reason, status
		FROM "Appointment"
		ORDER BY appointment_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var a appointments.Appointment
		if err := rows.Scan(
			&a.AppointmentID, &a.PetID, &a.VetID,
			&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE "Appointment"
		SET pet_id = $2, vet_id = $3, appointment_date = $4,
		    appointment_time = $5, reason = $6, status = $7
		WHERE appointment_id = $1
	`,
		a.AppointmentID, a.PetID, a.VetID,
		a.AppointmentDate, a.AppointmentTime, a.Reason, a.Status,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM "Appointment" WHERE appointment_id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}
