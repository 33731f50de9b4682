package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsTokenExpired reports whether a bearer token carries an exp claim in the
// past. The signature is not verified here; only the backend can do that.
// A token that cannot be parsed at all counts as expired.
func IsTokenExpired(token string) bool {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		// No exp claim; let the backend decide.
		return false
	}

	return exp.Before(time.Now())
}
