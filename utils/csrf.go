package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CSRF token je potpisani JWT vezan za token sesije (double-submit šema):
// klijent ga šalje u X-CSRF-Token zaglavlju, a middleware provjerava da
// potpis i sesija iz claim-a odgovaraju kolačiću.

type CSRFClaims struct {
	SessionToken string `json:"session_token"`
	jwt.RegisteredClaims
}

func csrfSecret() []byte {
	return []byte(os.Getenv("SESSION_SECRET"))
}

func GenerateCSRFToken(sessionToken string) (string, error) {
	claims := CSRFClaims{
		SessionToken: sessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(csrfSecret())
}

func VerifyCSRFToken(tokenString, sessionToken string) error {
	claims := &CSRFClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("neočekivana metoda potpisa")
		}
		return csrfSecret(), nil
	})
	if err != nil || !token.Valid {
		return errors.New("nevažeći CSRF token")
	}
	if claims.SessionToken != sessionToken {
		return errors.New("CSRF token ne pripada ovoj sesiji")
	}
	return nil
}
