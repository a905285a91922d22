package api

import "github.com/Daniaarav2005/Meal-E/internal/domain"

// Wire types mirror the backend JSON exactly: snake_case compound names
// and pointer fields wherever the backend may send null. Keep these in
// lockstep with the server schema; interoperability depends on the field
// names bit-for-bit.

type pantryResponse struct {
	Pantry []pantryItem `json:"pantry"`
}

type pantryItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Quantity    *float64  `json:"quantity"`
	ServingSize *string   `json:"serving_size"`
	Nutrients   nutrients `json:"nutrients"`
}

type nutrients struct {
	Calories      *float64 `json:"calories"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Protein       *float64 `json:"protein"`
	Fat           *float64 `json:"fat"`
	SaturatedFat  *float64 `json:"saturated_fat"`
	TransFat      *float64 `json:"trans_fat"`
	Sugar         *float64 `json:"sugar"`
	AddedSugar    *float64 `json:"added_sugar"`
	Fiber         *float64 `json:"fiber"`
	Sodium        *float64 `json:"sodium"`
	Iron          *float64 `json:"iron"`
	Calcium       *float64 `json:"calcium"`
	Potassium     *float64 `json:"potassium"`
	VitaminD      *float64 `json:"vitamin_d"`
}

type userProfile struct {
	Name               string       `json:"name"`
	Age                int          `json:"age"`
	HouseholdSize      int          `json:"household_size"`
	MealsPerDay        int          `json:"meals_per_day"`
	MacroTargets       macroTargets `json:"macro_targets"`
	DietaryRestriction string       `json:"dietary_restriction"`
	Allergies          []string     `json:"allergies"`
	CookingProficiency string       `json:"cooking_proficiency"`
	CuisinePreferences []string     `json:"cuisine_preferences"`
}

type macroTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
}

type mealPlanResponse struct {
	Plan []dayPlan `json:"plan"`
}

type dayPlan struct {
	Day   string `json:"day"`
	Meals []meal `json:"meals"`
}

type meal struct {
	Name            string            `json:"name"`
	Recipe          string            `json:"recipe"`
	Ingredients     map[string]string `json:"ingredients"`
	PrepTimeMinutes int               `json:"prep_time_minutes"`
	Difficulty      string            `json:"difficulty"`
	Macros          mealMacros        `json:"macros"`
}

// mealMacros tolerates nulls on the wire; the conversion below defaults
// silent fields to zero, matching the non-optional domain bundle.
type mealMacros struct {
	Calories      *float64 `json:"calories"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Protein       *float64 `json:"protein"`
	Fat           *float64 `json:"fat"`
	SaturatedFat  *float64 `json:"saturated_fat"`
	TransFat      *float64 `json:"trans_fat"`
	Sugar         *float64 `json:"sugar"`
	AddedSugar    *float64 `json:"added_sugar"`
	Fiber         *float64 `json:"fiber"`
	Sodium        *float64 `json:"sodium"`
	Iron          *float64 `json:"iron"`
	Calcium       *float64 `json:"calcium"`
	Potassium     *float64 `json:"potassium"`
	VitaminD      *float64 `json:"vitamin_d"`
}

// ── Wire ↔ domain conversions ────────────────────────────────────

func (p pantryItem) toDomain() domain.PantryRecord {
	return domain.PantryRecord{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Quantity:    p.Quantity,
		ServingSize: p.ServingSize,
		Nutrients: domain.NutrientBundle{
			Calories:      p.Nutrients.Calories,
			Carbohydrates: p.Nutrients.Carbohydrates,
			Protein:       p.Nutrients.Protein,
			Fat:           p.Nutrients.Fat,
			SaturatedFat:  p.Nutrients.SaturatedFat,
			TransFat:      p.Nutrients.TransFat,
			Sugar:         p.Nutrients.Sugar,
			AddedSugar:    p.Nutrients.AddedSugar,
			Fiber:         p.Nutrients.Fiber,
			Sodium:        p.Nutrients.Sodium,
			Iron:          p.Nutrients.Iron,
			Calcium:       p.Nutrients.Calcium,
			Potassium:     p.Nutrients.Potassium,
			VitaminD:      p.Nutrients.VitaminD,
		},
	}
}

func (u userProfile) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		Name:               u.Name,
		Age:                u.Age,
		HouseholdSize:      u.HouseholdSize,
		MealsPerDay:        u.MealsPerDay,
		MacroTargets:       domain.MacroTargets{Calories: u.MacroTargets.Calories, Protein: u.MacroTargets.Protein},
		DietaryRestriction: u.DietaryRestriction,
		Allergies:          u.Allergies,
		CookingProficiency: u.CookingProficiency,
		CuisinePreferences: u.CuisinePreferences,
	}
}

func fromDomainProfile(p *domain.UserProfile) userProfile {
	return userProfile{
		Name:               p.Name,
		Age:                p.Age,
		HouseholdSize:      p.HouseholdSize,
		MealsPerDay:        p.MealsPerDay,
		MacroTargets:       macroTargets{Calories: p.MacroTargets.Calories, Protein: p.MacroTargets.Protein},
		DietaryRestriction: p.DietaryRestriction,
		Allergies:          p.Allergies,
		CookingProficiency: p.CookingProficiency,
		CuisinePreferences: p.CuisinePreferences,
	}
}

func (r mealPlanResponse) toDomain() *domain.MealPlan {
	plan := &domain.MealPlan{Days: make([]domain.DayPlan, 0, len(r.Plan))}
	for _, d := range r.Plan {
		day := domain.DayPlan{Day: d.Day, Meals: make([]domain.Meal, 0, len(d.Meals))}
		for _, m := range d.Meals {
			day.Meals = append(day.Meals, domain.Meal{
				Name:            m.Name,
				Recipe:          m.Recipe,
				Ingredients:     m.Ingredients,
				PrepTimeMinutes: m.PrepTimeMinutes,
				Difficulty:      m.Difficulty,
				Macros:          m.Macros.toDomain(),
			})
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

func (m mealMacros) toDomain() domain.MealMacros {
	return domain.MealMacros{
		Calories:      orZero(m.Calories),
		Carbohydrates: orZero(m.Carbohydrates),
		Protein:       orZero(m.Protein),
		Fat:           orZero(m.Fat),
		SaturatedFat:  orZero(m.SaturatedFat),
		TransFat:      orZero(m.TransFat),
		Sugar:         orZero(m.Sugar),
		AddedSugar:    orZero(m.AddedSugar),
		Fiber:         orZero(m.Fiber),
		Sodium:        orZero(m.Sodium),
		Iron:          orZero(m.Iron),
		Calcium:       orZero(m.Calcium),
		Potassium:     orZero(m.Potassium),
		VitaminD:      orZero(m.VitaminD),
	}
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
