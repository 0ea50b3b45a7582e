package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "horeca_session"

// SessionTTL bounds the lifetime of a login session.
const SessionTTL = 24 * time.Hour

var sessionSecret = []byte("horeca-dev-session-secret")

// InitSessionSecret replaces the signing key with the configured one. Call
// once at startup before any token is issued.
func InitSessionSecret(secret string) {
	if secret != "" {
		sessionSecret = []byte(secret)
	}
}

// SessionClaims is the session payload: the authenticated business identity.
// Tenant scoping on every request derives from BusinessID, never from
// client-supplied input.
type SessionClaims struct {
	BusinessID int64  `json:"business_id"`
	HorecaName string `json:"horeca_name"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for a logged-in business.
func GenerateSessionToken(businessID int64, horecaName, email string) (string, error) {
	expirationTime := time.Now().Add(SessionTTL)
	claims := &SessionClaims{
		BusinessID: businessID,
		HorecaName: horecaName,
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "horeca-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(sessionSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateSessionToken parses and validates a session token string.
// It returns the claims if the token is valid, otherwise an error.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return sessionSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
