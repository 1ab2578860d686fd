package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the Postgres-backed account store. The accounts table has a
// unique index on email, which backs the duplicate-email rule even
// under concurrent signups.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Create(ctx context.Context, a Account) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO accounts(id, name, email, password_hash, joined_at)
		VALUES ($1,$2,$3,$4,$5)
	`, a.ID, a.Name, a.Email, a.PasswordHash, a.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (Account, error) {
	var a Account
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, email, password_hash, joined_at
		FROM accounts WHERE email=$1
	`, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}
