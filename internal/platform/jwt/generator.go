// Package jwtmw provides JWT issuance and the Gin authentication middleware.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID is the Gin context key under which the authenticated
// user's ID is stored by AuthRequired.
const ContextUserID = "userID"

// Issuer defines the interface for session token issuance.
type Issuer interface {
	// IssueToken creates a signed JWT for the given user.
	IssueToken(userID uint) (string, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret     []byte
	expiration time.Duration
}

// NewIssuer creates a new JWT issuer with the provided secret and expiration duration.
func NewIssuer(secret string, expiration time.Duration) Issuer {
	return &issuer{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// IssueToken creates an HS256-signed JWT binding the user ID to an expiry.
func (g *issuer) IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(g.expiration).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
