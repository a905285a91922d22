package domain

// MealPlan is a week of day-plans in server order.
type MealPlan struct {
	Days []DayPlan
}

// DayPlan holds one day's meals in serving order.
type DayPlan struct {
	Day   string
	Meals []Meal
}

// Meal is a single planned meal. Ingredients map ingredient names to
// human-readable quantities ("2 cups").
type Meal struct {
	Name            string
	Recipe          string
	Ingredients     map[string]string
	PrepTimeMinutes int
	Difficulty      string
	Macros          MealMacros
}

// MealMacros is the full nutrient bundle for a planned meal. Unlike the
// pantry bundle these are non-optional: fields the server left silent
// default to zero at the decode boundary.
type MealMacros struct {
	Calories      float64
	Carbohydrates float64
	Protein       float64
	Fat           float64
	SaturatedFat  float64
	TransFat      float64
	Sugar         float64
	AddedSugar    float64
	Fiber         float64
	Sodium        float64
	Iron          float64
	Calcium       float64
	Potassium     float64
	VitaminD      float64
}
