package batch

import (
	"math"
	"testing"

	"github.com/Karmadibsa/OptiCal-Center/internal/catalog"
	"github.com/Karmadibsa/OptiCal-Center/internal/plan"
)

func testCatalog() *catalog.Service {
	return catalog.NewService([]catalog.Row{
		{Category: catalog.CategoryDiet, Section: "Midi", Item: "Riz (cru)",
			AxelSpec: "100", PriscaSpec: "80", Role: catalog.RoleStaple, CookedRatio: 3},
		{Category: catalog.CategoryDiet, Section: "Midi", Item: "PST (cru)",
			AxelSpec: "80g", PriscaSpec: "45g", Role: catalog.RoleStaple, CookedRatio: 2.5},
		{Category: catalog.CategoryDiet, Section: "Midi", Item: "Crème Fraîche",
			AxelSpec: "30g", PriscaSpec: "30g", Role: catalog.RoleGarnish},
		{Category: catalog.CategoryDiet, Section: "Soir", Item: "Pâtes (cru)",
			AxelSpec: "115-125", PriscaSpec: "90", Role: catalog.RoleStaple, CookedRatio: 2.5},
		{Category: catalog.CategoryDiet, Section: "Soir", Item: "Œufs",
			AxelSpec: "3", PriscaSpec: "2", Role: catalog.RoleGarnish},
	})
}

func TestAggregateBothPersons(t *testing.T) {
	schedule := Schedule{
		{Day: "Lundi", Meal: MealMidi}: {Axel: true, Prisca: true},
	}

	totals := Aggregate(schedule, testCatalog())

	if got := totals.Grams["Riz (cru)"]; got != 180 {
		t.Errorf("rice total = %v, want 180", got)
	}
	if got := totals.Grams["PST (cru)"]; got != 125 {
		t.Errorf("protein source total = %v, want 125", got)
	}
	if totals.Misses != 0 {
		t.Errorf("unexpected misses: %d", totals.Misses)
	}
}

func TestAggregateSinglePerson(t *testing.T) {
	schedule := Schedule{
		{Day: "Lundi", Meal: MealMidi}: {Axel: true},
	}

	totals := Aggregate(schedule, testCatalog())
	if got := totals.Grams["Riz (cru)"]; got != 100 {
		t.Errorf("rice total = %v, want 100", got)
	}
}

func TestAggregateEmptySchedule(t *testing.T) {
	totals := Aggregate(Schedule{}, testCatalog())
	if len(totals.Grams) != 0 {
		t.Errorf("empty schedule must yield no totals, got %v", totals.Grams)
	}
}

func TestAggregateSkipsFullyDeselectedSlots(t *testing.T) {
	schedule := Schedule{
		{Day: "Lundi", Meal: MealMidi}: {}, // toggled on then off again
	}

	totals := Aggregate(schedule, testCatalog())
	if len(totals.Grams) != 0 {
		t.Errorf("slot without opted-in persons must not create keys, got %v", totals.Grams)
	}
}

func TestAggregateExcludesGarnish(t *testing.T) {
	totals := Aggregate(AllWeek(), testCatalog())

	if _, ok := totals.Grams["Crème Fraîche"]; ok {
		t.Error("garnish must never appear in the shopping totals")
	}
	if _, ok := totals.Grams["Œufs"]; ok {
		t.Error("eggs must never appear in the shopping totals")
	}
}

func TestAggregateRangeAveragingAcrossWeek(t *testing.T) {
	schedule := Schedule{
		{Day: "Lundi", Meal: MealSoir}: {Axel: true, Prisca: true},
		{Day: "Mardi", Meal: MealSoir}: {Axel: true},
	}

	totals := Aggregate(schedule, testCatalog())

	// Monday: (115+125)/2 + 90, Tuesday: 120 again for Axel.
	want := 120.0 + 90 + 120
	if math.Abs(totals.Grams["Pâtes (cru)"]-want) > 1e-9 {
		t.Errorf("pasta total = %v, want %v", totals.Grams["Pâtes (cru)"], want)
	}
}

func TestAggregateCountsCatalogMisses(t *testing.T) {
	// Catalog without the rice row: each selected Midi slot misses once.
	cat := catalog.NewService([]catalog.Row{
		{Category: catalog.CategoryDiet, Section: "Midi", Item: "PST (cru)",
			AxelSpec: "80", PriscaSpec: "45", Role: catalog.RoleStaple},
		{Category: catalog.CategoryDiet, Section: "Midi", Item: "Crème Fraîche",
			AxelSpec: "30", PriscaSpec: "30", Role: catalog.RoleGarnish},
	})

	schedule := Schedule{
		{Day: "Lundi", Meal: MealMidi}: {Axel: true},
		{Day: "Mardi", Meal: MealMidi}: {Prisca: true},
	}

	totals := Aggregate(schedule, cat)
	if totals.Misses != 2 {
		t.Errorf("misses = %d, want 2", totals.Misses)
	}
	if _, ok := totals.Grams["Riz (cru)"]; ok {
		t.Error("missing row must contribute nothing")
	}
}

func TestTotalsRounded(t *testing.T) {
	totals := Totals{Grams: map[string]float64{"Riz (cru)": 187.5, "PST (cru)": 112.4}}
	rounded := totals.Rounded()

	if rounded["Riz (cru)"] != 188 || rounded["PST (cru)"] != 112 {
		t.Errorf("unexpected rounding: %v", rounded)
	}
}

func TestSelectionFor(t *testing.T) {
	sel := Selection{Axel: true}
	if !sel.For(plan.PersonAxel) || sel.For(plan.PersonPrisca) {
		t.Errorf("selection lookup broken: %+v", sel)
	}
}
