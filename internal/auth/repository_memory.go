package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users map[string]*HouseholdUser
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*HouseholdUser),
	}
}

func (r *InMemoryUserRepository) Save(_ context.Context, user *HouseholdUser) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (*HouseholdUser, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}
