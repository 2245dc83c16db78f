package plan

import "math"

// --------------------------------------------------
// Fixed nutrition base ("socle")
// --------------------------------------------------

// Items shared by both persons.
var socleCommon = map[string]FixedItem{
	"collation_whey":  {Kcal: 110, ProteinG: 25},
	"collation_fruit": {Kcal: 105, ProteinG: 1},
	"midi_creme":      {Kcal: 90, ProteinG: 1},
	"soir_creme":      {Kcal: 90, ProteinG: 1},
	"legumes":         {Kcal: 100, ProteinG: 4}, // estimate
}

// Per-person overrides and additions. Person-specific entries win over
// common entries of the same name.
var soclePerPerson = map[Person]map[string]FixedItem{
	PersonAxel: {
		"pancakes":   {Kcal: 550, ProteinG: 15}, // 3 pancakes + garnish
		"matin_whey": {Kcal: 110, ProteinG: 25},
	},
	PersonPrisca: {
		"pancakes":   {Kcal: 366, ProteinG: 10}, // 2 pancakes + garnish
		"matin_whey": {Kcal: 0, ProteinG: 0},
	},
}

// Optional add-ons.
var (
	galettesAddOn = FixedItem{Kcal: 334, ProteinG: 13.4} // 2 galettes, flat
	cheesePerGram = FixedItem{Kcal: 4, ProteinG: 0.25}
)

// Yields for the dynamic, weight-dependent items.
const (
	pstKcalPer100g = 330.0
	pstProtPer100g = 50.0
	eggKcalUnit    = 80.0
	eggProtUnit    = 6.0
)

// FixedLedger is the summed non-negotiable part of a daily plan, plus the
// two dynamic quantities it was computed from.
type FixedLedger struct {
	Kcal               float64
	ProteinG           float64
	ProteinSourceGrams float64
	EggCount           int
}

// ProteinSourceGrams returns the daily grams of the raw protein source,
// weight minus 25, floored at zero.
func ProteinSourceGrams(weightKg float64) float64 {
	return math.Max(0, math.Round(weightKg-25))
}

// EggCount is 3 above 80 kg, 2 otherwise. The step is exactly at 80.
func EggCount(weightKg float64) int {
	if weightKg > 80 {
		return 3
	}
	return 2
}

// ComputeFixedLedger sums the static base items, the two dynamic items and
// any enabled add-ons for one person. Inputs are taken as-is: implausible
// profiles produce implausible ledgers, validation belongs to the caller.
func ComputeFixedLedger(person Person, p Profile) FixedLedger {
	socle := make(map[string]FixedItem, len(socleCommon)+2)
	for name, item := range socleCommon {
		socle[name] = item
	}
	for name, item := range soclePerPerson[person] {
		socle[name] = item
	}

	var ledger FixedLedger
	for _, item := range socle {
		ledger.Kcal += item.Kcal
		ledger.ProteinG += item.ProteinG
	}

	ledger.ProteinSourceGrams = ProteinSourceGrams(p.WeightKg)
	ledger.Kcal += ledger.ProteinSourceGrams / 100 * pstKcalPer100g
	ledger.ProteinG += ledger.ProteinSourceGrams / 100 * pstProtPer100g

	ledger.EggCount = EggCount(p.WeightKg)
	ledger.Kcal += float64(ledger.EggCount) * eggKcalUnit
	ledger.ProteinG += float64(ledger.EggCount) * eggProtUnit

	if p.OptGalettes {
		ledger.Kcal += galettesAddOn.Kcal
		ledger.ProteinG += galettesAddOn.ProteinG
	}
	if p.OptCheeseG > 0 {
		ledger.Kcal += p.OptCheeseG * cheesePerGram.Kcal
		ledger.ProteinG += p.OptCheeseG * cheesePerGram.ProteinG
	}

	return ledger
}
