package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// Service implements signup/login against the account store. Account
// records and session state live in separate stores: losing a session
// forces a re-login but never deletes an account.
type Service struct {
	Accounts AccountStore
}

func (s *Service) Signup(ctx context.Context, name, email, password string) (SessionUser, error) {
	if len(password) < minPasswordLength {
		return SessionUser{}, ErrPasswordTooShort
	}
	if _, err := s.Accounts.FindByEmail(ctx, email); err == nil {
		return SessionUser{}, ErrDuplicateEmail
	} else if !errors.Is(err, ErrAccountNotFound) {
		return SessionUser{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return SessionUser{}, err
	}

	a := Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		JoinedAt:     time.Now().UTC(),
	}
	if err := s.Accounts.Create(ctx, a); err != nil {
		return SessionUser{}, err
	}
	return a.SessionUser(), nil
}

func (s *Service) Login(ctx context.Context, email, password string) (SessionUser, error) {
	a, err := s.Accounts.FindByEmail(ctx, email)
	if err != nil {
		return SessionUser{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return SessionUser{}, ErrInvalidCredential
	}
	return a.SessionUser(), nil
}
