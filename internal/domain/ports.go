package domain

import (
	"context"
	"time"
)

// PantryAPI is the remote Meal-E backend. The production implementation is
// an HTTP client; tests use fakes. Every call can fail with a recoverable
// error; none terminate the process.
type PantryAPI interface {
	FetchPantry(ctx context.Context) ([]PantryRecord, error)
	DeletePantryItem(ctx context.Context, id int) error
	FetchProfile(ctx context.Context) (*UserProfile, error)
	SaveProfile(ctx context.Context, profile *UserProfile) error
	FetchMealPlan(ctx context.Context, generate bool) (*MealPlan, error)
}

// FridgeReader is the read surface the display needs for its status bar.
// Implementations recompute on every call; nothing is cached.
type FridgeReader interface {
	Count() int
	ExpiringSoonCount(now time.Time) int
	HealthScore(now time.Time) int
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout or route through the terminal UI's scrollback.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
