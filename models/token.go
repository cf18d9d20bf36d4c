package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is the response of the osu! client-credentials exchange.
type AccessToken struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

// Lifetime returns how long the token stays valid. When the exchange did not
// report expires_in the exp claim of the JWT is used. ok is false when
// neither is available.
func (t AccessToken) Lifetime(now time.Time) (time.Duration, bool) {
	if t.ExpiresIn > 0 {
		return time.Duration(t.ExpiresIn) * time.Second, true
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, &claims); err != nil {
		return 0, false
	}
	if claims.ExpiresAt == nil {
		return 0, false
	}

	return claims.ExpiresAt.Sub(now), true
}
