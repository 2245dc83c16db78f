package batch

import "github.com/Karmadibsa/OptiCal-Center/internal/plan"

// Days of the week, in display order.
var Days = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// Weekdays is the Monday-Friday subset used by the bulk weekday select.
var Weekdays = Days[:5]

// Meal slots.
const (
	MealMidi = "Midi"
	MealSoir = "Soir"
)

var Meals = []string{MealMidi, MealSoir}

// SlotKey identifies one meal cell of the week. Keys form a mapping: a
// schedule never holds two entries for the same (day, meal).
type SlotKey struct {
	Day  string `json:"day"`
	Meal string `json:"meal"`
}

func (k SlotKey) Valid() bool {
	dayOK := false
	for _, d := range Days {
		if d == k.Day {
			dayOK = true
			break
		}
	}
	return dayOK && (k.Meal == MealMidi || k.Meal == MealSoir)
}

// Selection says which persons are opted in for a slot.
type Selection struct {
	Axel   bool `json:"axel"`
	Prisca bool `json:"prisca"`
}

func (s Selection) Empty() bool {
	return !s.Axel && !s.Prisca
}

func (s Selection) For(p plan.Person) bool {
	if p == plan.PersonPrisca {
		return s.Prisca
	}
	return s.Axel
}

// Schedule maps slots to selections. Mutations replace or patch entries;
// missing entries read as nobody opted in.
type Schedule map[SlotKey]Selection

// Toggle flips one (day, meal, person) cell.
func (s Schedule) Toggle(key SlotKey, person plan.Person) {
	sel := s[key]
	switch person {
	case plan.PersonPrisca:
		sel.Prisca = !sel.Prisca
	default:
		sel.Axel = !sel.Axel
	}
	s[key] = sel
}

// fullSchedule builds a schedule with both persons opted in on the given
// days, both meal slots.
func fullSchedule(days []string) Schedule {
	s := make(Schedule, len(days)*len(Meals))
	for _, day := range days {
		for _, meal := range Meals {
			s[SlotKey{Day: day, Meal: meal}] = Selection{Axel: true, Prisca: true}
		}
	}
	return s
}

// AllWeek selects every day and slot for both persons.
func AllWeek() Schedule { return fullSchedule(Days) }

// WeekdaysOnly selects Monday through Friday for both persons.
func WeekdaysOnly() Schedule { return fullSchedule(Weekdays) }
