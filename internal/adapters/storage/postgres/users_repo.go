package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petcareplus/internal/domain/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password
		FROM users
		WHERE email = $1
	`, email)

	var u auth.User
	if err := row.Scan(&u.ID, &u.Email, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetRole(ctx context.Context, userID int64) (string, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT role
		FROM user_accounts
		WHERE user_id = $1
	`, userID)

	var role string
	if err := row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", auth.ErrNotFound
		}
		return "", err
	}
	return role, nil
}
