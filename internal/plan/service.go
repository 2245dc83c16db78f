package plan

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Karmadibsa/OptiCal-Center/internal/observability"
)

var ErrUnknownPerson = errors.New("unknown person")

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// GetProfile loads the stored profile, falling back to the documented
// default when nothing is stored or the store is unreachable. A load
// failure is logged but never propagated: the planner must stay usable.
func (s *Service) GetProfile(ctx context.Context, person Person) (Profile, error) {
	if !person.Valid() {
		return Profile{}, ErrUnknownPerson
	}

	p, ok, err := s.repo.Load(ctx, person)
	if err != nil {
		s.log.Warn("profile load failed, using default",
			zap.String("person", string(person)),
			zap.Error(err),
		)
		return DefaultProfile(person), nil
	}
	if !ok {
		return DefaultProfile(person), nil
	}
	return p, nil
}

// ProfileUpdate is a field-level patch; nil fields are left untouched.
type ProfileUpdate struct {
	WeightKg     *float64 `json:"weight_kg"`
	HeightCm     *float64 `json:"height_cm"`
	AgeYears     *int     `json:"age_years"`
	Sex          *string  `json:"sex"`
	SportMinWeek *float64 `json:"weekly_sport_minutes"`
	DeficitKcal  *float64 `json:"deficit_kcal"`
	OptGalettes  *bool    `json:"option_galettes"`
	OptCheeseG   *float64 `json:"option_cheese_grams"`
}

// UpdateProfile applies a patch on top of the current profile and persists
// the result. It returns the stored profile after the patch.
func (s *Service) UpdateProfile(ctx context.Context, person Person, upd ProfileUpdate) (Profile, error) {
	p, err := s.GetProfile(ctx, person)
	if err != nil {
		return Profile{}, err
	}

	if upd.WeightKg != nil {
		p.WeightKg = *upd.WeightKg
	}
	if upd.HeightCm != nil {
		p.HeightCm = *upd.HeightCm
	}
	if upd.AgeYears != nil {
		p.AgeYears = *upd.AgeYears
	}
	if upd.Sex != nil {
		p.Sex = *upd.Sex
	}
	if upd.SportMinWeek != nil {
		p.SportMinWeek = *upd.SportMinWeek
	}
	if upd.DeficitKcal != nil {
		p.DeficitKcal = *upd.DeficitKcal
	}
	if upd.OptGalettes != nil {
		p.OptGalettes = *upd.OptGalettes
	}
	if upd.OptCheeseG != nil {
		p.OptCheeseG = *upd.OptCheeseG
	}

	if err := s.repo.Save(ctx, person, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// GetPlan recomputes the daily plan from the current profile.
func (s *Service) GetPlan(ctx context.Context, person Person) (PlanResult, error) {
	p, err := s.GetProfile(ctx, person)
	if err != nil {
		return PlanResult{}, err
	}
	result := ComputePlan(person, p)
	observability.RecordPlanComputed(string(person), result.ProteinWarning)
	return result, nil
}

// GetAllPlans recomputes every person's plan, keyed by person.
func (s *Service) GetAllPlans(ctx context.Context) (map[Person]PlanResult, error) {
	plans := make(map[Person]PlanResult, len(Persons))
	for _, person := range Persons {
		result, err := s.GetPlan(ctx, person)
		if err != nil {
			return nil, err
		}
		plans[person] = result
	}
	return plans, nil
}
