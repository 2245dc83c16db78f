package auth

import "context"

// UserRepository defines the data-access contract. Service depends ONLY on
// this interface.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*HouseholdUser, error)
	Save(ctx context.Context, user *HouseholdUser) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
