package domain

import "strings"

// NutrientAxis selects which nutrient a ranking is sorted by.
type NutrientAxis int

const (
	AxisCalories NutrientAxis = iota
	AxisProtein
	AxisCarbs
	AxisFat
)

// Axes lists every ranking axis in display order.
var Axes = []NutrientAxis{AxisCalories, AxisProtein, AxisCarbs, AxisFat}

// ParseNutrientAxis resolves a user-typed axis name. Returns false for
// anything that is not a rankable nutrient.
func ParseNutrientAxis(s string) (NutrientAxis, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "calories", "cals", "kcal":
		return AxisCalories, true
	case "protein":
		return AxisProtein, true
	case "carbs", "carbohydrates":
		return AxisCarbs, true
	case "fat":
		return AxisFat, true
	}
	return AxisCalories, false
}

// String returns the axis name shown in headers.
func (a NutrientAxis) String() string {
	switch a {
	case AxisCalories:
		return "Calories"
	case AxisProtein:
		return "Protein"
	case AxisCarbs:
		return "Carbs"
	case AxisFat:
		return "Fat"
	default:
		return "Unknown"
	}
}

// Unit returns the measurement unit for the axis.
func (a NutrientAxis) Unit() string {
	if a == AxisCalories {
		return "kcal"
	}
	return "g"
}

// Value extracts the axis value from an item's nutrition snapshot.
// The second return is false when the backend never reported the value.
func (a NutrientAxis) Value(it Item) (float64, bool) {
	switch a {
	case AxisCalories:
		if it.Nutrition.Calories == nil {
			return 0, false
		}
		return float64(*it.Nutrition.Calories), true
	case AxisProtein:
		if it.Nutrition.Protein == nil {
			return 0, false
		}
		return *it.Nutrition.Protein, true
	case AxisCarbs:
		if it.Nutrition.Carbs == nil {
			return 0, false
		}
		return *it.Nutrition.Carbs, true
	case AxisFat:
		if it.Nutrition.Fat == nil {
			return 0, false
		}
		return *it.Nutrition.Fat, true
	}
	return 0, false
}
