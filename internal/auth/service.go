package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// EnsureAccount seeds the household account when none exists. Called once
// at startup from the env-configured credentials; a second call with the
// same email is a no-op, so restarts are safe.
func (s *Service) EnsureAccount(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return errors.New("missing household credentials")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.Save(ctx, &HouseholdUser{
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login checks the credentials and returns the account.
func (s *Service) Login(ctx context.Context, email, password string) (*HouseholdUser, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
