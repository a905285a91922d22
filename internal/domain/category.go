package domain

import "strings"

// Category is the closed set of item categories. CategoryAll is a UI
// pseudo-category used only for filtering; real items never carry it.
type Category string

const (
	CategoryAll        Category = "All"
	CategoryVegetables Category = "Vegetables"
	CategoryFruits     Category = "Fruits"
	CategoryDairy      Category = "Dairy"
	CategoryMeat       Category = "Meat"
	CategoryDrinks     Category = "Drinks"
	CategoryLeftovers  Category = "Leftovers"
	CategoryOther      Category = "Other"
)

// Categories lists every category in display order, CategoryAll first.
var Categories = []Category{
	CategoryAll,
	CategoryVegetables,
	CategoryFruits,
	CategoryDairy,
	CategoryMeat,
	CategoryDrinks,
	CategoryLeftovers,
	CategoryOther,
}

// ParseCategory resolves a user-typed name ("dairy", "Leftovers") to a
// category. Returns false for anything outside the closed set.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return CategoryOther, false
}

// Emoji returns the glyph used for category headers and the filter row.
func (c Category) Emoji() string {
	switch c {
	case CategoryVegetables:
		return "🥦"
	case CategoryFruits:
		return "🍎"
	case CategoryDairy:
		return "🥛"
	case CategoryMeat:
		return "🥩"
	case CategoryDrinks:
		return "🧃"
	case CategoryLeftovers:
		return "🍱"
	case CategoryAll:
		return "🧺"
	default:
		return "📦"
	}
}
