package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read out of the stored JWT without the
// server's signing key: the subject and the token's own expiry. It is used
// for display only; the store TTL remains the authority on session validity.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken parses the registered claims of token without verifying the
// signature. Fields the token does not carry are left zero.
func InspectToken(token string) (TokenInfo, error) {
	var claims jwt.RegisteredClaims

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, err
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
