package batch

import "context"

// Repository persists the weekly schedule between sessions.
type Repository interface {
	// Load returns the stored schedule; an empty schedule when nothing is
	// stored.
	Load(ctx context.Context) (Schedule, error)

	// SaveSlot inserts or replaces one slot entry.
	SaveSlot(ctx context.Context, key SlotKey, sel Selection) error

	// Replace swaps the whole stored schedule for the given one.
	Replace(ctx context.Context, s Schedule) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
