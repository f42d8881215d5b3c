// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthProvider identifies how an account proves its identity.
type AuthProvider string

const (
	// ProviderLocal indicates an account with a locally stored password hash.
	ProviderLocal AuthProvider = "local"
	// ProviderSocial indicates an account created from an externally-asserted
	// identity claim. Such accounts carry no local secret: their password hash
	// is empty and password login against them always fails the credential check.
	ProviderSocial AuthProvider = "social"
)

// String returns the string representation of the AuthProvider.
func (p AuthProvider) String() string {
	return string(p)
}

// IsValid checks if the AuthProvider is a known value.
func (p AuthProvider) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderSocial:
		return true
	default:
		return false
	}
}

// Account is the core identity record of the system.
// Email and phone are each unique across all accounts; either one serves as
// the login identifier. An account created through the password path stays
// unusable until its email address has been verified.
type Account struct {
	ID           uuid.UUID    // The unique identifier, assigned on creation.
	Email        string       // Unique contact email, usable as a login identifier.
	Phone        string       // Unique phone number, usable as a login identifier.
	FirstName    string       // The holder's first name.
	LastName     string       // The holder's last name.
	PasswordHash string       // bcrypt hash of the password; empty for social accounts.
	Provider     AuthProvider // How this account authenticates (local or social).
	Verified     bool         // Whether the email address has been confirmed.
	ProfilePic   string       // Stored profile picture filename, if any.
	CreatedAt    time.Time    // Timestamp of account creation.
	UpdatedAt    time.Time    // Timestamp of the last modification.
}

// HasLocalCredential reports whether password login can ever succeed for this
// account. Social accounts have no local secret.
func (a *Account) HasLocalCredential() bool {
	return a.Provider == ProviderLocal && a.PasswordHash != ""
}
