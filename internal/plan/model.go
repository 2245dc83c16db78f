package plan

// Person identifies one of the two household members. The set is closed:
// every switch over Person must handle both values.
type Person string

const (
	PersonAxel   Person = "axel"
	PersonPrisca Person = "prisca"
)

// Persons lists every valid member, in display order.
var Persons = []Person{PersonAxel, PersonPrisca}

func (p Person) Valid() bool {
	return p == PersonAxel || p == PersonPrisca
}

// Profile holds the physiological inputs for one person. It is owned by the
// caller and persisted through the Repository; the engine never mutates it.
type Profile struct {
	WeightKg     float64 `json:"weight_kg"`
	HeightCm     float64 `json:"height_cm"`
	AgeYears     int     `json:"age_years"`
	Sex          string  `json:"sex"` // "male" or "female"
	SportMinWeek float64 `json:"weekly_sport_minutes"`
	DeficitKcal  float64 `json:"deficit_kcal"` // may be negative (surplus)
	OptGalettes  bool    `json:"option_galettes"`
	OptCheeseG   float64 `json:"option_cheese_grams"`
}

// FixedItem is one food serving's non-negotiable contribution.
type FixedItem struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
}

// PlanResult is the full daily plan derived from one Profile. It is
// recomputed on every read and never persisted.
type PlanResult struct {
	BMR                float64 `json:"bmr"`
	SedentaryKcal      float64 `json:"sedentary_kcal"`
	TotalDailyKcal     float64 `json:"total_daily_kcal"`
	TargetDailyKcal    float64 `json:"target_daily_kcal"`
	FixedKcal          float64 `json:"fixed_kcal"`
	FixedProteinG      float64 `json:"fixed_protein_g"`
	RemainingKcal      float64 `json:"remaining_kcal"` // un-floored, may be negative
	PastaGramsDay      float64 `json:"pasta_grams_day"`
	PastaMiddayG       float64 `json:"pasta_midday_g"`
	PastaEveningG      float64 `json:"pasta_evening_g"`
	TotalProteinG      float64 `json:"total_protein_g"`
	ProteinGoalG       float64 `json:"protein_goal_g"`
	ProteinWarning     bool    `json:"protein_warning"`
	ProteinSourceGrams float64 `json:"protein_source_grams"`
	EggCount           int     `json:"egg_count"`
	TotalEstimatedKcal float64 `json:"total_estimated_kcal"`
}

// DefaultProfile returns the documented starting profile for a person, used
// when nothing has been persisted yet.
func DefaultProfile(p Person) Profile {
	switch p {
	case PersonPrisca:
		return Profile{
			WeightKg:     70,
			HeightCm:     165,
			AgeYears:     25,
			Sex:          "female",
			SportMinWeek: 120,
			DeficitKcal:  300,
		}
	default: // PersonAxel
		return Profile{
			WeightKg:     105,
			HeightCm:     183,
			AgeYears:     27,
			Sex:          "male",
			SportMinWeek: 190,
			DeficitKcal:  300,
		}
	}
}
