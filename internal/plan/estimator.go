package plan

// metDefault is the MET value used for the weekly sport average
// (mixed running / strength sessions).
const metDefault = 8.0

// sedentaryFactor is applied to BMR; sport is added separately on top.
const sedentaryFactor = 1.2

// Expenditure is the energy side of the plan, before any deficit.
type Expenditure struct {
	BMR        float64
	Sedentary  float64
	SportDaily float64
	TotalDaily float64
}

// EstimateExpenditure computes BMR (Mifflin-St Jeor), the sedentary need and
// the smoothed daily sport contribution. Weekly sport is averaged over 7
// days: the plan is identical every day, there is no training-day cycling.
func EstimateExpenditure(p Profile) Expenditure {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears)
	if p.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	sedentary := bmr * sedentaryFactor

	sportWeek := p.WeightKg * (p.SportMinWeek / 60) * metDefault
	sportDaily := sportWeek / 7

	return Expenditure{
		BMR:        bmr,
		Sedentary:  sedentary,
		SportDaily: sportDaily,
		TotalDaily: sedentary + sportDaily,
	}
}
