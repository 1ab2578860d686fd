package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDuplicateEmail    = errors.New("an account with this email already exists")
	ErrAccountNotFound   = errors.New("no account found with this email")
	ErrInvalidCredential = errors.New("incorrect password")
	ErrPasswordTooShort  = errors.New("password is too short")
)

// Account is the durable credential record. Passwords are stored as
// bcrypt hashes, never in the clear.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	JoinedAt     time.Time
}

// SessionUser is the reduced projection exposed to the session and the
// API. It deliberately carries no credential material.
type SessionUser struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

func (a Account) SessionUser() SessionUser {
	return SessionUser{ID: a.ID, Name: a.Name, Email: a.Email, JoinedAt: a.JoinedAt}
}

type AccountStore interface {
	Create(ctx context.Context, a Account) error
	FindByEmail(ctx context.Context, email string) (Account, error)
}
