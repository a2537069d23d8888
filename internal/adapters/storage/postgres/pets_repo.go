package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petcareplus/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	// Sin chequeo referencial contra "Owner": un owner_id colgado entra.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO "Pet" (pet_id, name, species, gender, owner_id)
		VALUES ($1, $2, $3, $4, $5)
	`,
		p.PetID, p.Name, p.Species, p.Gender, p.OwnerID,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT pet_id, name, species, gender, owner_id
		FROM "Pet"
		WHERE pet_id = $1
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.PetID, &p.Name, &p.Species, &p.Gender, &p.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pet_id, name, species, gender, owner_id
		FROM "Pet"
		ORDER BY pet_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.PetID, &p.Name, &p.Species, &p.Gender, &p.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE "Pet"
		SET name = $2, species = $3, gender = $4, owner_id = $5
		WHERE pet_id = $1
	`,
		p.PetID, p.Name, p.Species, p.Gender, p.OwnerID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM "Pet" WHERE pet_id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}
