// Package classify maps food names to presentation metadata: a display
// emoji, a category, and a formatted quantity string. Everything here is
// a pure function of its input; classification never fails, it falls
// back to CategoryOther and a generic glyph.
package classify

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
)

// FallbackEmoji is returned for names with no table entry.
const FallbackEmoji = "🍽️"

// emojiTable maps lowercased food names to their glyph. Lookup is exact
// match only; "chicken thigh" does not hit the "chicken" entry.
var emojiTable = map[string]string{
	"spinach":        "🥬",
	"chicken":        "🍗",
	"chicken breast": "🍗",
	"milk":           "🥛",
	"cheese":         "🧀",
	"cheddar cheese": "🧀",
	"yogurt":         "🥛",
	"greek yogurt":   "🥛",
	"eggs":           "🥚",
	"egg":            "🥚",
	"pasta":          "🍝",
	"tomato":         "🍅",
	"tomatoes":       "🍅",
	"avocado":        "🥑",
	"salmon":         "🐟",
	"blueberries":    "🫐",
	"apple":          "🍎",
	"banana":         "🍌",
	"carrot":         "🥕",
	"broccoli":       "🥦",
	"beef":           "🥩",
	"bread":          "🍞",
	"butter":         "🧈",
	"orange":         "🍊",
	"strawberry":     "🍓",
	"lemon":          "🍋",
}

// categoryRule couples a category with the substrings that select it.
type categoryRule struct {
	category domain.Category
	keywords []string
}

// categoryRules is the priority-ordered keyword table. First match wins:
// "milk" appears under both Dairy and Drinks and resolves to Dairy because
// Dairy is checked first. The slice order is the contract; do not turn
// this into a map.
var categoryRules = []categoryRule{
	{domain.CategoryDairy, []string{"milk", "cheese", "yogurt", "butter", "cream"}},
	{domain.CategoryMeat, []string{"chicken", "beef", "salmon", "fish", "pork", "turkey", "shrimp"}},
	{domain.CategoryVegetables, []string{"spinach", "carrot", "broccoli", "tomato", "lettuce", "kale", "pepper"}},
	{domain.CategoryFruits, []string{"apple", "banana", "orange", "strawberry", "blueberry", "lemon", "avocado"}},
	{domain.CategoryDrinks, []string{"juice", "soda", "water", "milk"}},
	{domain.CategoryLeftovers, []string{"pasta", "rice", "soup", "leftover"}},
}

// EmojiFor returns the display glyph for a food name. Case-insensitive
// exact-key lookup; FallbackEmoji on miss.
func EmojiFor(name string) string {
	if e, ok := emojiTable[strings.ToLower(name)]; ok {
		return e
	}
	return FallbackEmoji
}

// CategoryFor classifies a food name by substring containment against the
// priority-ordered keyword table. Total and deterministic; names matching
// no keyword resolve to CategoryOther.
func CategoryFor(name string) domain.Category {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryOther
}

// FormatQuantity renders a present numeric quantity for display: integral
// values drop the decimal point ("2"), everything else keeps exactly one
// decimal digit ("2.3"). Missing quantities never reach this function;
// the transformer substitutes domain.MissingValue upstream.
func FormatQuantity(q float64) string {
	if q == math.Trunc(q) {
		return strconv.Itoa(int(q))
	}
	return fmt.Sprintf("%.1f", q)
}
