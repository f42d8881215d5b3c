package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims carried by a session token.
type SessionClaims struct {
	AccountID uuid.UUID `json:"accountId"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new session token for the given account
	// identity.
	GenerateToken(accountID uuid.UUID, firstName, lastName string) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
