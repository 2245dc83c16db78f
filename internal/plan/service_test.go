package plan

import (
	"context"
	"errors"
	"testing"
)

type failingRepository struct{}

func (failingRepository) Load(context.Context, Person) (Profile, bool, error) {
	return Profile{}, false, errors.New("store unreachable")
}

func (failingRepository) Save(context.Context, Person, Profile) error {
	return errors.New("store unreachable")
}

func TestGetProfileDefaultsWhenEmpty(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	p, err := service.GetProfile(context.Background(), PersonAxel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != DefaultProfile(PersonAxel) {
		t.Errorf("expected default profile, got %+v", p)
	}
}

func TestGetProfileDefaultsOnLoadFailure(t *testing.T) {
	service := NewService(failingRepository{}, nil)

	p, err := service.GetProfile(context.Background(), PersonPrisca)
	if err != nil {
		t.Fatalf("load failure must not propagate: %v", err)
	}
	if p != DefaultProfile(PersonPrisca) {
		t.Errorf("expected default profile, got %+v", p)
	}
}

func TestGetProfileUnknownPerson(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	if _, err := service.GetProfile(context.Background(), Person("bob")); !errors.Is(err, ErrUnknownPerson) {
		t.Fatalf("expected ErrUnknownPerson, got %v", err)
	}
}

func TestUpdateProfilePatchesFields(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)
	ctx := context.Background()

	weight := 98.0
	galettes := true
	updated, err := service.UpdateProfile(ctx, PersonAxel, ProfileUpdate{
		WeightKg:    &weight,
		OptGalettes: &galettes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.WeightKg != 98 || !updated.OptGalettes {
		t.Errorf("patch not applied: %+v", updated)
	}
	// Untouched fields keep the default values.
	if updated.HeightCm != 183 || updated.DeficitKcal != 300 {
		t.Errorf("unrelated fields changed: %+v", updated)
	}

	// The patch must survive a reload.
	reloaded, err := service.GetProfile(ctx, PersonAxel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded != updated {
		t.Errorf("persisted profile differs: %+v vs %+v", reloaded, updated)
	}
}

func TestGetAllPlansCoversEveryPerson(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	plans, err := service.GetAllPlans(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != len(Persons) {
		t.Fatalf("expected %d plans, got %d", len(Persons), len(plans))
	}
	for _, person := range Persons {
		if _, ok := plans[person]; !ok {
			t.Errorf("missing plan for %s", person)
		}
	}
}
