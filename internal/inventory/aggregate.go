package inventory

import (
	"sort"
	"time"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
)

// Derived views over the collection. Every read recomputes from the
// current items relative to the caller's now; nothing is cached or
// incrementally maintained.

// ExpiringSoon returns items with three or fewer days left, soonest
// first.
func (s *Store) ExpiringSoon(now time.Time) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Item
	for _, it := range s.items {
		if it.IsExpiringSoon(now) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft(now) < out[j].DaysLeft(now)
	})
	return out
}

// ExpiringSoonCount returns the size of the expiring-soon set.
func (s *Store) ExpiringSoonCount(now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, it := range s.items {
		if it.IsExpiringSoon(now) {
			n++
		}
	}
	return n
}

// CheckIn returns items that are not expiring soon and have not been
// dismissed this session, in fetch order. These are the items the user
// is periodically asked to confirm still exist.
func (s *Store) CheckIn(now time.Time) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Item
	for _, it := range s.items {
		if it.IsExpiringSoon(now) {
			continue
		}
		if _, dismissed := s.dismissed[it.ID]; dismissed {
			continue
		}
		out = append(out, it)
	}
	return out
}

// CategoryCount is one slice of the category breakdown.
type CategoryCount struct {
	Category domain.Category
	Count    int
	Percent  float64
}

// CategoryBreakdown groups items by category, largest group first.
// Groups of equal size order by category name so output is stable.
// Percentages guard against an empty collection by dividing by one.
func (s *Store) CategoryBreakdown() []CategoryCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.Category]int)
	for _, it := range s.items {
		if it.Category == domain.CategoryAll {
			continue
		}
		counts[it.Category]++
	}

	total := len(s.items)
	if total == 0 {
		total = 1
	}

	out := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, CategoryCount{
			Category: cat,
			Count:    n,
			Percent:  float64(n) / float64(total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// RankBy returns all items sorted descending by the chosen nutrient
// axis. The sort is stable: ties keep fetch order, and items whose value
// the backend never reported rank after every known value.
func (s *Store) RankBy(axis domain.NutrientAxis) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, len(s.items))
	copy(out, s.items)

	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := axis.Value(out[i])
		vj, okj := axis.Value(out[j])
		if oki != okj {
			return oki
		}
		return vi > vj
	})
	return out
}

// HealthScore summarizes overall freshness as an integer in [0,100]: the
// floor-mean of per-item scores by expiry status (good=100, warning=50,
// critical=10, expired=0). An empty fridge scores a perfect 100.
func (s *Store) HealthScore(now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return 100
	}

	total := 0
	for _, it := range s.items {
		total += it.ExpiryStatus(now).Score()
	}
	return total / len(s.items)
}

// Recent returns up to n items, most recently added first.
func (s *Store) Recent(n int) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedAt.After(out[j].AddedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// InCategory returns the items in a category sorted by freshness,
// closest to expiring first. CategoryAll returns everything.
func (s *Store) InCategory(cat domain.Category, now time.Time) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Item
	for _, it := range s.items {
		if cat == domain.CategoryAll || it.Category == cat {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft(now) < out[j].DaysLeft(now)
	})
	return out
}

// MostUrgent returns the not-yet-expired item closest to expiring, for
// the home screen callout. The second return is false when nothing
// qualifies.
func (s *Store) MostUrgent(now time.Time) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best domain.Item
	found := false
	for _, it := range s.items {
		d := it.DaysLeft(now)
		if d < 0 {
			continue
		}
		if !found || d < best.DaysLeft(now) {
			best = it
			found = true
		}
	}
	return best, found
}
