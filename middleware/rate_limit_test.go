package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("pokušaj %d mora proći", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("četvrti pokušaj mora biti odbijen")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.Allow("1.1.1.1") {
		t.Fatal("prvi klijent mora proći")
	}
	if rl.Allow("1.1.1.1") {
		t.Error("drugi pokušaj istog klijenta mora biti odbijen")
	}
	if !rl.Allow("2.2.2.2") {
		t.Error("drugi klijent ima svoj prozor")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	current := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return current }

	if !rl.Allow("k") || !rl.Allow("k") {
		t.Fatal("prva dva pokušaja moraju proći")
	}
	if rl.Allow("k") {
		t.Fatal("treći pokušaj u istom prozoru mora biti odbijen")
	}

	// Istekom prozora brojač kreće ispočetka.
	current = current.Add(time.Minute)
	if !rl.Allow("k") {
		t.Error("prvi pokušaj u novom prozoru mora proći")
	}
}

// Istekli prozori se izbacuju iz mape da ne raste sa brojem klijenata.
func TestRateLimiterEvictsStaleEntries(t *testing.T) {
	current := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Minute)
	rl.now = func() time.Time { return current }

	rl.Allow("1.1.1.1")
	rl.Allow("2.2.2.2")
	rl.Allow("3.3.3.3")

	current = current.Add(2 * time.Minute)
	rl.Allow("4.4.4.4")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.entries) != 1 {
		t.Errorf("entries = %d, želim 1 (samo aktivni klijent)", len(rl.entries))
	}
	if _, ok := rl.entries["4.4.4.4"]; !ok {
		t.Error("aktivni klijent ne smije biti izbačen")
	}
}
