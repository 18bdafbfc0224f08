package utils

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"too short", "Ab1", ErrPasswordTooShort},
		{"exactly seven chars", "Abcdef1", ErrPasswordTooShort},
		{"no uppercase", "lozinka123", ErrPasswordNoUppercase},
		{"no digit", "Lozinkaaa", ErrPasswordNoDigit},
		{"valid", "Lozinka123", nil},
		{"valid with local letters", "Šifra2024", nil},
		// Dužina se broji u znakovima, ne bajtovima: pet naših slova
		// zauzima devet bajtova ali je i dalje prekratko.
		{"multibyte letters counted as characters", "Šđčć1", ErrPasswordTooShort},
		{"exactly eight multibyte characters", "šđčćžia1", ErrPasswordNoUppercase},
		// Dužina prije velikog slova: kratka lozinka bez velikog slova
		// javlja dužinu.
		{"short and no uppercase", "ab1", ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) = %v, želim %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
