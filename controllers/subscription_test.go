package controllers

import (
	"testing"
	"time"

	"github.com/mojalektira/backend/models"
)

func TestBuildSubscriptionStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name          string
		user          models.User
		used          int64
		wantType      models.SubscriptionType
		wantIsFree    bool
		wantRemaining *int64
	}{
		{
			name:          "free with quota left",
			user:          models.User{SubscriptionType: models.SubscriptionFree},
			used:          1,
			wantType:      models.SubscriptionFree,
			wantIsFree:    true,
			wantRemaining: ptr(int64(2)),
		},
		{
			name:          "free over the limit clamps to zero",
			user:          models.User{SubscriptionType: models.SubscriptionFree},
			used:          5,
			wantType:      models.SubscriptionFree,
			wantIsFree:    true,
			wantRemaining: ptr(int64(0)),
		},
		{
			name:          "full has no remaining counter",
			user:          models.User{SubscriptionType: models.SubscriptionFull, SubscriptionExpiresAt: &future},
			used:          10,
			wantType:      models.SubscriptionFull,
			wantIsFree:    false,
			wantRemaining: nil,
		},
		{
			// Istekla pretplata se ponaša isto kao free, i status i provjera
			// prije kviza moraju dati isti odgovor.
			name:          "expired full reports free",
			user:          models.User{SubscriptionType: models.SubscriptionFull, SubscriptionExpiresAt: &past},
			used:          3,
			wantType:      models.SubscriptionFree,
			wantIsFree:    true,
			wantRemaining: ptr(int64(0)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := BuildSubscriptionStatus(&tt.user, tt.used, now)

			if status.SubscriptionType != tt.wantType {
				t.Errorf("SubscriptionType = %q, želim %q", status.SubscriptionType, tt.wantType)
			}
			if status.IsFree != tt.wantIsFree {
				t.Errorf("IsFree = %v, želim %v", status.IsFree, tt.wantIsFree)
			}
			if status.QuizLimit != models.FreeQuizLimit {
				t.Errorf("QuizLimit = %d, želim %d", status.QuizLimit, models.FreeQuizLimit)
			}
			if status.QuizzesUsed != tt.used {
				t.Errorf("QuizzesUsed = %d, želim %d", status.QuizzesUsed, tt.used)
			}
			switch {
			case tt.wantRemaining == nil && status.QuizzesRemaining != nil:
				t.Errorf("QuizzesRemaining = %d, želim nil", *status.QuizzesRemaining)
			case tt.wantRemaining != nil && status.QuizzesRemaining == nil:
				t.Errorf("QuizzesRemaining = nil, želim %d", *tt.wantRemaining)
			case tt.wantRemaining != nil && *status.QuizzesRemaining != *tt.wantRemaining:
				t.Errorf("QuizzesRemaining = %d, želim %d", *status.QuizzesRemaining, *tt.wantRemaining)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
