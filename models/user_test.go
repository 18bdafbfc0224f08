package models

import (
	"testing"
	"time"
)

func TestEffectiveSubscriptionType(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		user User
		want SubscriptionType
	}{
		{
			name: "free stays free",
			user: User{SubscriptionType: SubscriptionFree},
			want: SubscriptionFree,
		},
		{
			name: "full without expiry stays full",
			user: User{SubscriptionType: SubscriptionFull},
			want: SubscriptionFull,
		},
		{
			name: "full with future expiry stays full",
			user: User{SubscriptionType: SubscriptionFull, SubscriptionExpiresAt: &future},
			want: SubscriptionFull,
		},
		{
			name: "expired full degrades to free",
			user: User{SubscriptionType: SubscriptionFull, SubscriptionExpiresAt: &past},
			want: SubscriptionFree,
		},
		{
			name: "expiry exactly now is still valid",
			user: User{SubscriptionType: SubscriptionFull, SubscriptionExpiresAt: &now},
			want: SubscriptionFull,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveSubscriptionType(&tt.user, now); got != tt.want {
				t.Errorf("EffectiveSubscriptionType = %q, želim %q", got, tt.want)
			}
		})
	}
}

func TestEffectiveSubscriptionTypeDoesNotMutate(t *testing.T) {
	past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u := User{SubscriptionType: SubscriptionFull, SubscriptionExpiresAt: &past}

	_ = EffectiveSubscriptionType(&u, time.Now())

	if u.SubscriptionType != SubscriptionFull {
		t.Error("funkcija ne smije mijenjati zapis korisnika")
	}
}

func TestIsInstitutional(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"both markers set", User{InstitutionType: "škola", InstitutionRole: "direktor"}, true},
		{"only type", User{InstitutionType: "škola"}, false},
		{"only role", User{InstitutionRole: "direktor"}, false},
		{"neither", User{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsInstitutional(); got != tt.want {
				t.Errorf("IsInstitutional = %v, želim %v", got, tt.want)
			}
		})
	}
}
