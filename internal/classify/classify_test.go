package classify

import (
	"testing"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name string
		want domain.Category
	}{
		// Exact keyword hits.
		{"milk", domain.CategoryDairy},
		{"cheese", domain.CategoryDairy},
		{"chicken", domain.CategoryMeat},
		{"salmon", domain.CategoryMeat},
		{"spinach", domain.CategoryVegetables},
		{"broccoli", domain.CategoryVegetables},
		{"apple", domain.CategoryFruits},
		{"avocado", domain.CategoryFruits},
		{"juice", domain.CategoryDrinks},
		{"soda", domain.CategoryDrinks},
		{"pasta", domain.CategoryLeftovers},
		{"leftover curry", domain.CategoryLeftovers},

		// Substring containment, case-insensitive.
		{"Whole Milk", domain.CategoryDairy},
		{"Greek Yogurt", domain.CategoryDairy},
		{"CHICKEN BREAST", domain.CategoryMeat},
		{"Baby Spinach", domain.CategoryVegetables},

		// Priority order: dairy is checked before drinks, so milk is dairy.
		{"Oat Milk", domain.CategoryDairy},

		// No keyword match falls back to Other.
		{"Chopped Garlic", domain.CategoryOther},
		{"Eggs", domain.CategoryOther},
		{"", domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryFor(tt.name); got != tt.want {
				t.Errorf("CategoryFor(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestCategoryForOrangeJuicePriority(t *testing.T) {
	// "Orange Juice" contains both a fruit keyword ("orange") and a drink
	// keyword ("juice"). Fruits are checked before Drinks, so the fruit
	// rule wins. The table order is the contract.
	if got := CategoryFor("Orange Juice"); got != domain.CategoryFruits {
		t.Errorf("CategoryFor(Orange Juice) = %s, want %s", got, domain.CategoryFruits)
	}
}

func TestEmojiFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"milk", "🥛"},
		{"Milk", "🥛"},          // case-insensitive
		{"chicken breast", "🍗"}, // multi-word exact key
		{"broccoli", "🥦"},
		{"avocado", "🥑"},
		{"chicken thigh", FallbackEmoji}, // exact match only, no partials
		{"Chopped Garlic", FallbackEmoji},
		{"", FallbackEmoji},
	}

	for _, tt := range tests {
		if got := EmojiFor(tt.name); got != tt.want {
			t.Errorf("EmojiFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.0, "2"},
		{1.0, "1"},
		{0, "0"},
		{12, "12"},
		{2.5, "2.5"},
		{2.333, "2.3"},
		{0.5, "0.5"},
		{10.25, "10.2"},
	}

	for _, tt := range tests {
		if got := FormatQuantity(tt.in); got != tt.want {
			t.Errorf("FormatQuantity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
