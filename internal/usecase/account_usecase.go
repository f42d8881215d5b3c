// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Fields arrive already validated and trimmed by the delivery layer; the
// plate number is normalized again before use.
type RegisterInput struct {
	PlateNumber string `json:"plateNumber" validate:"required,alphanum,min=3,max=20"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required,alpha"`
	LastName    string `json:"lastName" validate:"required,alpha"`
	Password    string `json:"password" validate:"required,min=5"`
	Phone       string `json:"phone" validate:"required,numeric"`
}

// SocialRegisterInput defines the data required to register an account from
// an externally-asserted identity. No password is involved.
type SocialRegisterInput struct {
	PlateNumber string `json:"plateNumber" validate:"required,alphanum,min=3,max=20"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required,alpha"`
	LastName    string `json:"lastName" validate:"required,alpha"`
	Phone       string `json:"phone" validate:"required,numeric"`
}

// LoginInput defines the data required to log in. LoginID holds either the
// account's email or its phone number; the lookup disambiguates.
type LoginInput struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SocialLoginInput defines the externally-asserted identity claim used for
// social sign-in.
type SocialLoginInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// VerifyEmailInput carries the activation link parameters.
type VerifyEmailInput struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's ID. The password path
// deliberately returns no session token: the account must be verified first.
type RegisterOutput struct {
	AccountID uuid.UUID
}

// AuthOutput returns a session token and the authenticated account's basic
// identity.
type AuthOutput struct {
	Token     string
	AccountID uuid.UUID
	FirstName string
	LastName  string
}

// AccountUsecase defines the interface for account registration and
// authentication operations. This is the contract the delivery layer
// depends on.
type AccountUsecase interface {
	// Register creates a verified-pending account owning the given plate and
	// dispatches the verification email.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// RegisterSocial creates an externally-authenticated account owning the
	// given plate and returns a session token immediately.
	RegisterSocial(ctx context.Context, input *SocialRegisterInput) (*AuthOutput, error)

	// Login authenticates by email-or-phone plus password.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// SocialLogin authenticates by an externally-asserted name claim.
	SocialLogin(ctx context.Context, input *SocialLoginInput) (*AuthOutput, error)

	// VerifyEmail validates an emailed token and flips the account to
	// verified. Re-verifying an already verified account succeeds.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error

	// ProfilePicPath resolves the stored profile picture file for an account.
	ProfilePicPath(ctx context.Context, accountID uuid.UUID) (string, error)
}
