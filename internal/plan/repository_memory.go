package plan

import "context"

// InMemoryRepository backs the service in tests and when no database is
// configured.
type InMemoryRepository struct {
	profiles map[Person]Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{profiles: make(map[Person]Profile)}
}

func (r *InMemoryRepository) Load(_ context.Context, person Person) (Profile, bool, error) {
	p, ok := r.profiles[person]
	return p, ok, nil
}

func (r *InMemoryRepository) Save(_ context.Context, person Person, p Profile) error {
	r.profiles[person] = p
	return nil
}
