// Package pantry converts raw backend pantry records into the client's
// enriched inventory model.
package pantry

import (
	"time"

	"github.com/google/uuid"

	"github.com/Daniaarav2005/Meal-E/internal/classify"
	"github.com/Daniaarav2005/Meal-E/internal/domain"
)

// DefaultShelfLifeDays is the expiration window assigned to every fetched
// item. The backend pantry schema carries no per-item expiration date, so
// everything gets the same window; alerts derived from it measure time
// since fetch, not actual freshness. Known product gap.
const DefaultShelfLifeDays = 7

// Enrich converts pantry records into inventory items, one-to-one and
// order-preserving. Total over decoded input: classification falls back
// to Other, missing numbers stay missing. Each call mints fresh local
// ids; the backend id is carried along for delete correlation.
func Enrich(records []domain.PantryRecord, now time.Time) []domain.Item {
	items := make([]domain.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, enrichOne(rec, now))
	}
	return items
}

func enrichOne(rec domain.PantryRecord, now time.Time) domain.Item {
	quantity := domain.MissingValue
	if rec.Quantity != nil {
		quantity = classify.FormatQuantity(*rec.Quantity)
	}

	return domain.Item{
		ID:        uuid.NewString(),
		BackendID: rec.ID,
		Name:      rec.Name,
		Emoji:     classify.EmojiFor(rec.Name),
		Category:  classify.CategoryFor(rec.Name),
		Quantity:  quantity,
		AddedAt:   now,
		ExpiresAt: now.AddDate(0, 0, DefaultShelfLifeDays),
		Nutrition: snapshot(rec.Nutrients),
	}
}

// snapshot picks the card-facing subset out of the full nutrient bundle.
// Calories are truncated to a whole number when present.
func snapshot(n domain.NutrientBundle) domain.Nutrition {
	var calories *int
	if n.Calories != nil {
		c := int(*n.Calories)
		calories = &c
	}
	return domain.Nutrition{
		Calories: calories,
		Protein:  n.Protein,
		Carbs:    n.Carbohydrates,
		Fat:      n.Fat,
		Fiber:    n.Fiber,
	}
}
