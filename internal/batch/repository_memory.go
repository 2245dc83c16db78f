package batch

import "context"

type InMemoryRepository struct {
	schedule Schedule
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{schedule: make(Schedule)}
}

func (r *InMemoryRepository) Load(_ context.Context) (Schedule, error) {
	out := make(Schedule, len(r.schedule))
	for k, v := range r.schedule {
		out[k] = v
	}
	return out, nil
}

func (r *InMemoryRepository) SaveSlot(_ context.Context, key SlotKey, sel Selection) error {
	r.schedule[key] = sel
	return nil
}

func (r *InMemoryRepository) Replace(_ context.Context, s Schedule) error {
	r.schedule = make(Schedule, len(s))
	for k, v := range s {
		r.schedule[k] = v
	}
	return nil
}

func (r *InMemoryRepository) Clear(_ context.Context) error {
	r.schedule = make(Schedule)
	return nil
}
