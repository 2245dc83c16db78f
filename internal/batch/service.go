package batch

import (
	"context"
	"errors"

	"github.com/Karmadibsa/OptiCal-Center/internal/catalog"
	"github.com/Karmadibsa/OptiCal-Center/internal/observability"
	"github.com/Karmadibsa/OptiCal-Center/internal/plan"
)

var ErrInvalidSlot = errors.New("invalid day or meal slot")

type Service struct {
	repo    Repository
	catalog *catalog.Service
}

func NewService(repo Repository, cat *catalog.Service) *Service {
	return &Service{repo: repo, catalog: cat}
}

// GetSchedule returns the current weekly selection.
func (s *Service) GetSchedule(ctx context.Context) (Schedule, error) {
	return s.repo.Load(ctx)
}

// Toggle flips one (day, meal, person) cell and persists the slot.
func (s *Service) Toggle(ctx context.Context, key SlotKey, person plan.Person) (Schedule, error) {
	if !key.Valid() {
		return nil, ErrInvalidSlot
	}
	if !person.Valid() {
		return nil, plan.ErrUnknownPerson
	}

	schedule, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	schedule.Toggle(key, person)

	if err := s.repo.SaveSlot(ctx, key, schedule[key]); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SelectAll opts both persons in for all 7 days, both slots.
func (s *Service) SelectAll(ctx context.Context) (Schedule, error) {
	schedule := AllWeek()
	if err := s.repo.Replace(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SelectWeekdays opts both persons in Monday through Friday.
func (s *Service) SelectWeekdays(ctx context.Context) (Schedule, error) {
	schedule := WeekdaysOnly()
	if err := s.repo.Replace(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Reset clears the schedule entirely.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Totals rebuilds the batch-cooking quantities from the current schedule
// and the catalog.
func (s *Service) Totals(ctx context.Context) (Totals, error) {
	schedule, err := s.repo.Load(ctx)
	if err != nil {
		return Totals{}, err
	}

	totals := Aggregate(schedule, s.catalog)
	observability.RecordCatalogMisses(totals.Misses)
	return totals, nil
}
