package controllers

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mojalektira/backend/models"
)

func TestPeriodStart(t *testing.T) {
	loc := time.UTC
	// Srijeda, 19. mart 2025.
	wednesday := time.Date(2025, 3, 19, 15, 30, 0, 0, loc)
	// Nedjelja, 23. mart 2025.
	sunday := time.Date(2025, 3, 23, 9, 0, 0, 0, loc)
	// Ponedjeljak, 17. mart 2025.
	monday := time.Date(2025, 3, 17, 0, 0, 1, 0, loc)

	tests := []struct {
		name   string
		period string
		now    time.Time
		want   time.Time
	}{
		{"week from wednesday", "week", wednesday, time.Date(2025, 3, 17, 0, 0, 0, 0, loc)},
		{"week from sunday goes back to monday", "week", sunday, time.Date(2025, 3, 17, 0, 0, 0, 0, loc)},
		{"week from monday is same day midnight", "week", monday, time.Date(2025, 3, 17, 0, 0, 0, 0, loc)},
		{"month", "month", wednesday, time.Date(2025, 3, 1, 0, 0, 0, 0, loc)},
		{"year", "year", wednesday, time.Date(2025, 1, 1, 0, 0, 0, 0, loc)},
		{"unknown period defaults to week", "nepoznato", wednesday, time.Date(2025, 3, 17, 0, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodStart(tt.period, tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("PeriodStart(%q, %v) = %v, želim %v", tt.period, tt.now, got, tt.want)
			}
		})
	}
}

// Prelaz sedmice preko granice mjeseca: ponedjeljak ostaje u prošlom mjesecu.
func TestPeriodStartWeekAcrossMonthBoundary(t *testing.T) {
	// Utorak, 1. april 2025.
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	if got := PeriodStart("week", now); !got.Equal(want) {
		t.Errorf("PeriodStart = %v, želim %v", got, want)
	}
}

func TestAggregateScores(t *testing.T) {
	userA := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	userB := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")
	userC := uuid.MustParse("cccccccc-0000-0000-0000-000000000000")

	results := []models.QuizResult{
		{UserID: userB, Score: 2},
		{UserID: userA, Score: 3},
		{UserID: userB, Score: 4},
		{UserID: userC, Score: 6},
		{UserID: userA, Score: 1},
	}

	entries := AggregateScores(results)

	if len(entries) != 3 {
		t.Fatalf("entries = %d, želim 3", len(entries))
	}
	// B i C imaju po 6, ali B ide prije C po ID-u.
	want := []struct {
		userID uuid.UUID
		score  int
	}{
		{userB, 6},
		{userC, 6},
		{userA, 4},
	}
	for i, w := range want {
		if entries[i].UserID != w.userID || entries[i].Score != w.score {
			t.Errorf("entries[%d] = (%s, %d), želim (%s, %d)",
				i, entries[i].UserID, entries[i].Score, w.userID, w.score)
		}
	}
}

func TestAggregateScoresEmpty(t *testing.T) {
	if entries := AggregateScores(nil); len(entries) != 0 {
		t.Errorf("entries = %d, želim 0", len(entries))
	}
}
