package domain

// UserProfile is the client-side mirror of the backend preferences
// resource. It is kept in sync by explicit fetch and push; the last
// writer wins, there is no reconciliation.
type UserProfile struct {
	Name               string
	Age                int
	HouseholdSize      int
	MealsPerDay        int
	MacroTargets       MacroTargets
	DietaryRestriction string
	Allergies          []string
	CookingProficiency string
	CuisinePreferences []string
}

// MacroTargets are the user's daily calorie and protein goals.
type MacroTargets struct {
	Calories int
	Protein  int
}
