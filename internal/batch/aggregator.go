package batch

import (
	"math"

	"github.com/Karmadibsa/OptiCal-Center/internal/catalog"
	"github.com/Karmadibsa/OptiCal-Center/internal/plan"
)

// slotCandidates maps a meal slot to the catalog item names it may draw
// from. The list must match the catalog's diet item names exactly; a name
// that matches nothing contributes zero and is counted as a miss.
var slotCandidates = map[string][]string{
	MealMidi: {"Riz (cru)", "PST (cru)", "Crème Fraîche"},
	MealSoir: {"Pâtes (cru)", "Œufs", "Crème Fraîche"},
}

// Totals is the aggregated shopping list: grams to prepare per staple
// ingredient. Accumulation stays fractional; Rounded is for display.
type Totals struct {
	Grams  map[string]float64
	Misses int // candidate lookups that matched no diet row
}

// Rounded returns the totals as whole grams.
func (t Totals) Rounded() map[string]int {
	out := make(map[string]int, len(t.Grams))
	for item, grams := range t.Grams {
		out[item] = int(math.Round(grams))
	}
	return out
}

// Aggregate rebuilds the shopping totals from scratch for a schedule. For
// every slot with at least one person opted in, each candidate row tagged
// as a staple contributes its per-person raw grams once per opted-in
// person. Garnish rows are side items and never enter the total; lookup
// misses contribute zero and are only counted.
func Aggregate(schedule Schedule, cat *catalog.Service) Totals {
	totals := Totals{Grams: make(map[string]float64)}

	for key, sel := range schedule {
		if sel.Empty() {
			continue
		}

		for _, item := range slotCandidates[key.Meal] {
			row, found := cat.FindDiet(item)
			if !found {
				totals.Misses++
				continue
			}
			if row.Role != catalog.RoleStaple {
				continue
			}

			for _, person := range plan.Persons {
				if sel.For(person) {
					totals.Grams[item] += catalog.ParseGrams(row.Spec(string(person)))
				}
			}
		}
	}

	return totals
}
