package conversation

import (
	"context"
	"testing"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
	"github.com/Daniaarav2005/Meal-E/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Home
		{"home", domain.IntentHome, ""},
		{"summary", domain.IntentHome, ""},

		// Inventory
		{"inventory", domain.IntentInventory, ""},
		{"list", domain.IntentInventory, ""},
		{"fridge", domain.IntentInventory, ""},

		// Category filter
		{"show dairy", domain.IntentShowCategory, "dairy"},
		{"show Leftovers", domain.IntentShowCategory, "Leftovers"},
		{"dairy", domain.IntentShowCategory, "dairy"},
		{"Drinks", domain.IntentShowCategory, "Drinks"},

		// Alerts / check-in
		{"alerts", domain.IntentAlerts, ""},
		{"expiring", domain.IntentAlerts, ""},
		{"checkin", domain.IntentCheckIn, ""},
		{"check in", domain.IntentCheckIn, ""},

		// Dismiss / remove carry the item number
		{"dismiss 2", domain.IntentDismiss, "2"},
		{"delete 3", domain.IntentRemove, "3"},
		{"used 1", domain.IntentRemove, "1"},
		{"ate 4", domain.IntentRemove, "4"},

		// Ranking
		{"rank protein", domain.IntentRank, "protein"},
		{"top calories", domain.IntentRank, "calories"},
		{"rank", domain.IntentRank, ""},

		// Score
		{"score", domain.IntentScore, ""},
		{"health", domain.IntentScore, ""},

		// Meal plan
		{"plan", domain.IntentPlan, ""},
		{"meals", domain.IntentPlan, ""},
		{"plan fresh", domain.IntentPlanFresh, ""},
		{"regenerate", domain.IntentPlanFresh, ""},

		// Profile
		{"profile", domain.IntentProfile, ""},
		{"settings", domain.IntentProfile, ""},
		{"set name Jordan", domain.IntentSetProfile, "name Jordan"},

		// Refresh / help / quit
		{"refresh", domain.IntentRefresh, ""},
		{"sync", domain.IntentRefresh, ""},
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"flambé the fridge", domain.IntentUnknown, "flambé the fridge"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if tt.wantPayload != "" && intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}
