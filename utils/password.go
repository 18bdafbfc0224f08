package utils

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

var (
	ErrPasswordTooShort    = errors.New("Lozinka mora imati najmanje 8 znakova")
	ErrPasswordNoUppercase = errors.New("Lozinka mora sadržavati barem jedno veliko slovo")
	ErrPasswordNoDigit     = errors.New("Lozinka mora sadržavati barem jednu cifru")
)

// ValidatePassword provjerava pravila pojedinačno da bi korisnik dobio
// tačnu poruku o tome šta nedostaje.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}
	hasUpper := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper {
		return ErrPasswordNoUppercase
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	return nil
}
