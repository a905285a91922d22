package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
	"github.com/Daniaarav2005/Meal-E/internal/logger"
)

// testItem builds an item expiring the given number of days after now.
func testItem(id string, name string, cat domain.Category, daysLeft int, now time.Time) domain.Item {
	return domain.Item{
		ID:        id,
		Name:      name,
		Category:  cat,
		AddedAt:   now,
		ExpiresAt: now.AddDate(0, 0, daysLeft),
	}
}

func TestStoreReplaceAndRemove(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewStore(log)
	now := time.Now()

	gen := store.BeginFetch()
	ok := store.Replace(gen, []domain.Item{
		testItem("a", "Milk", domain.CategoryDairy, 7, now),
		testItem("b", "Salmon", domain.CategoryMeat, 7, now),
	})
	if !ok {
		t.Fatal("replace with current generation rejected")
	}
	if store.Count() != 2 {
		t.Fatalf("count = %d, want 2", store.Count())
	}

	removed, err := store.Remove("a")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Name != "Milk" {
		t.Errorf("removed %q, want Milk", removed.Name)
	}
	if store.Count() != 1 {
		t.Errorf("count after remove = %d, want 1", store.Count())
	}

	if _, err := store.Remove("a"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second remove: err = %v, want ErrNotFound", err)
	}
	if _, err := store.Get("a"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get after remove: err = %v, want ErrNotFound", err)
	}
}

func TestStoreStaleFetchDiscarded(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewStore(log)
	now := time.Now()

	slow := store.BeginFetch()
	fast := store.BeginFetch()

	// The newer request completes first.
	if !store.Replace(fast, []domain.Item{testItem("new", "Apple", domain.CategoryFruits, 7, now)}) {
		t.Fatal("newest generation rejected")
	}

	// The older request completes late and must be discarded.
	if store.Replace(slow, []domain.Item{testItem("old", "Bread", domain.CategoryOther, 7, now)}) {
		t.Fatal("stale generation accepted")
	}

	items := store.Items()
	if len(items) != 1 || items[0].ID != "new" {
		t.Fatalf("store holds %+v, want only the newer fetch", items)
	}
}

func TestStoreRemoveClearsDismissal(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewStore(log)
	now := time.Now()

	gen := store.BeginFetch()
	store.Replace(gen, []domain.Item{
		testItem("a", "Eggs", domain.CategoryOther, 10, now),
	})

	store.DismissCheckIn("a")
	if got := store.CheckIn(now); len(got) != 0 {
		t.Fatalf("dismissed item still in check-in: %+v", got)
	}

	if _, err := store.Remove("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	store.mu.RLock()
	_, stillFlagged := store.dismissed["a"]
	store.mu.RUnlock()
	if stillFlagged {
		t.Error("dismissal flag survived removal")
	}
}

func TestStoreReplaceResetsDismissals(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewStore(log)
	now := time.Now()

	gen := store.BeginFetch()
	store.Replace(gen, []domain.Item{testItem("a", "Eggs", domain.CategoryOther, 10, now)})
	store.DismissCheckIn("a")

	gen = store.BeginFetch()
	store.Replace(gen, []domain.Item{testItem("b", "Eggs", domain.CategoryOther, 10, now)})

	if got := store.CheckIn(now); len(got) != 1 {
		t.Fatalf("check-in after replace = %d items, want 1", len(got))
	}
}
