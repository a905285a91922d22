// Package domain defines the core types and interfaces for the Meal-E client.
// All other packages depend on domain; domain depends on nothing.
package domain

import "time"

// MissingValue is the display placeholder for values the backend did not
// report. Missing numbers stay missing all the way to the presentation
// boundary; they are never encoded as a sentinel like -1.
const MissingValue = "—"

// PantryRecord is the raw backend representation of a stored food item.
// It is produced by the API decode step and consumed immediately by the
// transformer. A nil field means the backend sent null or omitted it.
type PantryRecord struct {
	ID          int
	Name        string
	Brand       string
	Quantity    *float64
	ServingSize *string
	Nutrients   NutrientBundle
}

// NutrientBundle is the fixed nutrient set the backend reports per item.
// Absence (nil) is distinct from zero and survives transformation.
type NutrientBundle struct {
	Calories      *float64
	Carbohydrates *float64
	Protein       *float64
	Fat           *float64
	SaturatedFat  *float64
	TransFat      *float64
	Sugar         *float64
	AddedSugar    *float64
	Fiber         *float64
	Sodium        *float64
	Iron          *float64
	Calcium       *float64
	Potassium     *float64
	VitaminD      *float64
}

// Item is the client-enriched representation of a pantry item. The local ID
// is stable for the item's lifetime and unrelated to the backend id, which
// is retained separately for delete correlation.
type Item struct {
	ID        string
	BackendID int
	Name      string
	Emoji     string
	Category  Category
	Quantity  string // display string; MissingValue when the backend sent null
	AddedAt   time.Time
	ExpiresAt time.Time
	Nutrition Nutrition
}

// DaysLeft returns the number of whole days between now and the item's
// expiration. It is always derived from the expiration timestamp, never
// stored, so it stays correct as the clock moves.
func (it Item) DaysLeft(now time.Time) int {
	return int(it.ExpiresAt.Sub(now).Hours() / 24)
}

// ExpiryStatus derives the item's freshness tier relative to now.
func (it Item) ExpiryStatus(now time.Time) ExpiryStatus {
	return StatusForDaysLeft(it.DaysLeft(now))
}

// IsExpiringSoon reports whether the item has three or fewer days left.
func (it Item) IsExpiringSoon(now time.Time) bool {
	return it.DaysLeft(now) <= 3
}

// IsExpired reports whether the item's expiration has passed.
func (it Item) IsExpired(now time.Time) bool {
	return it.DaysLeft(now) < 0
}

// ExpiryStatus is the freshness tier derived from days-until-expiration.
type ExpiryStatus int

const (
	StatusGood ExpiryStatus = iota
	StatusWarning
	StatusCritical
	StatusExpired
)

// StatusForDaysLeft maps a days-left value to its freshness tier. This is
// the single threshold table used everywhere: under 0 expired, 0 or 1
// critical, 2 or 3 warning, anything later good.
func StatusForDaysLeft(days int) ExpiryStatus {
	switch {
	case days < 0:
		return StatusExpired
	case days <= 1:
		return StatusCritical
	case days <= 3:
		return StatusWarning
	default:
		return StatusGood
	}
}

// String returns a machine-readable status name.
func (s ExpiryStatus) String() string {
	switch s {
	case StatusGood:
		return "good"
	case StatusWarning:
		return "warning"
	case StatusCritical:
		return "critical"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Label returns the user-facing status text.
func (s ExpiryStatus) Label() string {
	switch s {
	case StatusGood:
		return "Fresh"
	case StatusWarning:
		return "Expiring soon"
	case StatusCritical:
		return "Expires today"
	case StatusExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// Score returns the per-item contribution to the fridge health score.
func (s ExpiryStatus) Score() int {
	switch s {
	case StatusGood:
		return 100
	case StatusWarning:
		return 50
	case StatusCritical:
		return 10
	default:
		return 0
	}
}

// Nutrition is the per-item snapshot shown on item cards. Nil means the
// backend did not report the value; display layers render it as
// MissingValue instead of a sentinel number.
type Nutrition struct {
	Calories *int
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Fiber    *float64
}
