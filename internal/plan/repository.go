package plan

import "context"

// Repository persists profiles. Service depends ONLY on this interface.
type Repository interface {
	// Load returns the stored profile, or (zero, false) when none exists.
	Load(ctx context.Context, person Person) (Profile, bool, error)

	// Save inserts or replaces the profile for a person.
	Save(ctx context.Context, person Person, p Profile) error
}
