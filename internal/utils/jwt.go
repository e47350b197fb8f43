package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned for tokens that do not carry an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The client never holds the signing key, so the claim is only used to decide
// when to refresh.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}

// TokenExpiresWithin reports whether tokenString is unusable at now+leeway.
// Empty and unparsable tokens count as expired.
func TokenExpiresWithin(tokenString string, now time.Time, leeway time.Duration) bool {
	if tokenString == "" {
		return true
	}
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return !exp.After(now.Add(leeway))
}
