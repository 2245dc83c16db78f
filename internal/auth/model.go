package auth

// HouseholdUser is the single shared account protecting the planner. The
// site is personal: one login for the household, not one per person in
// the plan.
type HouseholdUser struct {
	ID           string
	Email        string
	PasswordHash string
}
