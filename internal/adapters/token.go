package adapters

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired inspects the exp claim of a JWT bearer token without verifying
// it. Opaque tokens and tokens without exp are never reported as expired.
func tokenExpired(token string, now time.Time) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, now.After(exp.Time)
}
