// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"vgb/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads session tokens issued by the Catalog API. The client
// never holds the signing secret, so claims are parsed without verification
// and only used to drop sessions that are already expired.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Expired reports whether a JWT carries an exp claim at or before now.
// Tokens that do not parse as JWTs are opaque and never expire here.
func (i *jwtInspector) Expired(token string, now time.Time) bool {
	token = strings.TrimSpace(token)
	if strings.Count(token, ".") != 2 {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !now.Before(exp.Time)
}
