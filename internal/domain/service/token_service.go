package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the decoded fields embedded in a verified access token.
type Claims struct {
	AccountID uuid.UUID
	Email     string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Verification is a pure function of the token and the signing key; there is
// no store lookup and hence no early revocation in this design.
type TokenService interface {
	// GenerateToken creates a new signed access token binding the account
	// identity and email, expiring a fixed duration after issuance.
	GenerateToken(accountID uuid.UUID, email string) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns the embedded claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
