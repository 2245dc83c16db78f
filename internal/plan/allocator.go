package plan

import "math"

// Reference flexible carbohydrate source (Pâtes Barilla Protein+), per 100 g
// raw. The remaining calorie budget is closed with this single food.
const (
	pastaRefKcalPer100g = 360.0
	pastaRefProtPer100g = 20.0
)

// Meal-slot split of the flexible source. Always sums to 1.
const (
	middayShare  = 0.55
	eveningShare = 0.45
)

// Daily protein goal in grams per kg of body weight.
const proteinGoalPerKg = 1.6

// ComputePlan runs the whole pipeline for one person: expenditure, fixed
// ledger, flexible allocation, protein check. Pure and deterministic; call
// it again after every profile edit.
//
// RemainingKcal is reported un-floored (it can go negative when the deficit
// exceeds the estimated need); only the derived pasta quantity is floored at
// zero, no food quantity is ever negative.
func ComputePlan(person Person, p Profile) PlanResult {
	exp := EstimateExpenditure(p)
	ledger := ComputeFixedLedger(person, p)

	target := exp.TotalDaily - p.DeficitKcal
	remaining := target - ledger.Kcal

	pastaGrams := 0.0
	if remaining > 0 {
		pastaGrams = remaining / pastaRefKcalPer100g * 100
	}

	pastaProt := pastaGrams / 100 * pastaRefProtPer100g
	totalProt := ledger.ProteinG + pastaProt
	protGoal := p.WeightKg * proteinGoalPerKg

	return PlanResult{
		BMR:                exp.BMR,
		SedentaryKcal:      exp.Sedentary,
		TotalDailyKcal:     exp.TotalDaily,
		TargetDailyKcal:    target,
		FixedKcal:          ledger.Kcal,
		FixedProteinG:      ledger.ProteinG,
		RemainingKcal:      remaining,
		PastaGramsDay:      pastaGrams,
		PastaMiddayG:       pastaGrams * middayShare,
		PastaEveningG:      pastaGrams * eveningShare,
		TotalProteinG:      totalProt,
		ProteinGoalG:       protGoal,
		ProteinWarning:     totalProt < protGoal,
		ProteinSourceGrams: ledger.ProteinSourceGrams,
		EggCount:           ledger.EggCount,
		TotalEstimatedKcal: ledger.Kcal + math.Max(0, remaining),
	}
}
