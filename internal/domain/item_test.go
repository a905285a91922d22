package domain

import (
	"testing"
	"time"
)

func TestStatusForDaysLeft(t *testing.T) {
	tests := []struct {
		daysLeft int
		want     ExpiryStatus
	}{
		{-10, StatusExpired},
		{-1, StatusExpired},
		{0, StatusCritical},
		{1, StatusCritical},
		{2, StatusWarning},
		{3, StatusWarning},
		{4, StatusGood},
		{30, StatusGood},
	}

	for _, tt := range tests {
		if got := StatusForDaysLeft(tt.daysLeft); got != tt.want {
			t.Errorf("StatusForDaysLeft(%d) = %v, want %v", tt.daysLeft, got, tt.want)
		}
	}
}

func TestDaysLeftTruncatesTowardZero(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      int
	}{
		{"exactly 7 days", now.AddDate(0, 0, 7), 7},
		{"6 days 23 hours rounds down", now.Add(7*24*time.Hour - time.Hour), 6},
		{"12 hours left is today", now.Add(12 * time.Hour), 0},
		{"12 hours past is today", now.Add(-12 * time.Hour), 0},
		{"fully past", now.Add(-48 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{ExpiresAt: tt.expiresAt}
			if got := it.DaysLeft(now); got != tt.want {
				t.Errorf("DaysLeft() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysLeftRecomputedPerCall(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	it := Item{ExpiresAt: base.AddDate(0, 0, 5)}

	if got := it.DaysLeft(base); got != 5 {
		t.Fatalf("DaysLeft at base = %d, want 5", got)
	}
	if got := it.DaysLeft(base.AddDate(0, 0, 3)); got != 2 {
		t.Fatalf("DaysLeft three days later = %d, want 2", got)
	}
}

func TestExpiryStatusScoreAndLabel(t *testing.T) {
	tests := []struct {
		status ExpiryStatus
		score  int
		label  string
	}{
		{StatusGood, 100, "Fresh"},
		{StatusWarning, 50, "Expiring soon"},
		{StatusCritical, 10, "Expires today"},
		{StatusExpired, 0, "Expired"},
	}

	for _, tt := range tests {
		if got := tt.status.Score(); got != tt.score {
			t.Errorf("%v.Score() = %d, want %d", tt.status, got, tt.score)
		}
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("%v.Label() = %q, want %q", tt.status, got, tt.label)
		}
	}
}

func TestIsExpiringSoonBoundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	within := Item{ExpiresAt: now.AddDate(0, 0, 3)}
	if !within.IsExpiringSoon(now) {
		t.Error("item expiring in 3 days should count as expiring soon")
	}

	outside := Item{ExpiresAt: now.AddDate(0, 0, 4)}
	if outside.IsExpiringSoon(now) {
		t.Error("item expiring in 4 days should not count as expiring soon")
	}
}
