package utils

import "testing"

func TestCSRFTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-tajna")

	token, err := GenerateCSRFToken("sesija-1")
	if err != nil {
		t.Fatalf("GenerateCSRFToken: %v", err)
	}

	if err := VerifyCSRFToken(token, "sesija-1"); err != nil {
		t.Errorf("validan token odbijen: %v", err)
	}
}

func TestVerifyCSRFTokenWrongSession(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-tajna")

	token, err := GenerateCSRFToken("sesija-1")
	if err != nil {
		t.Fatalf("GenerateCSRFToken: %v", err)
	}

	if err := VerifyCSRFToken(token, "sesija-2"); err == nil {
		t.Error("token tuđe sesije mora biti odbijen")
	}
}

func TestVerifyCSRFTokenGarbage(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-tajna")

	if err := VerifyCSRFToken("nije-jwt", "sesija-1"); err == nil {
		t.Error("neispravan token mora biti odbijen")
	}
}

func TestVerifyCSRFTokenWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "tajna-a")
	token, err := GenerateCSRFToken("sesija-1")
	if err != nil {
		t.Fatalf("GenerateCSRFToken: %v", err)
	}

	t.Setenv("SESSION_SECRET", "tajna-b")
	if err := VerifyCSRFToken(token, "sesija-1"); err == nil {
		t.Error("token potpisan drugom tajnom mora biti odbijen")
	}
}
