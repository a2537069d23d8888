package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petcareplus/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	// owner_id duplicado revienta por la PK; el error sube tal cual
	// y el handler lo responde como error genérico de base.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO "Owner" (owner_id, first_name, last_name, phone, email, address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		o.OwnerID, o.FirstName, o.LastName, o.Phone, o.Email, o.Address,
	)
	return err
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT owner_id, first_name, last_name, phone, email, address
		FROM "Owner"
		WHERE owner_id = $1
	`, id)

	var o owners.Owner
	if err := row.Scan(&o.OwnerID, &o.FirstName, &o.LastName, &o.Phone, &o.Email, &o.Address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT owner_id, first_name, last_name, phone, email, address
		FROM "Owner"
		ORDER BY owner_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.OwnerID, &o.FirstName, &o.LastName, &o.Phone, &o.Email, &o.Address); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE "Owner"
		SET first_name = $2, last_name = $3, phone = $4, email = $5, address = $6
		WHERE owner_id = $1
	`,
		o.OwnerID, o.FirstName, o.LastName, o.Phone, o.Email, o.Address,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM "Owner" WHERE owner_id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}
