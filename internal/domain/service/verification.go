package service

import (
	"errors"

	"zilptext/internal/domain/entity"
)

// ErrVerificationTokenInvalid is returned when a verification token fails
// validation: bad signature, wrong account, wrong purpose, or expired.
var ErrVerificationTokenInvalid = errors.New("verification token invalid")

// VerificationTokenService issues and checks the email-delivered tokens that
// prove control of an account's registered address. Tokens are derived, not
// stored: the same inputs must re-derive at verify time.
type VerificationTokenService interface {
	// Issue derives a fresh verification token for the account.
	Issue(account *entity.Account) (string, error)

	// Verify checks a token presented for the account. It returns nil on
	// success and ErrVerificationTokenInvalid on any mismatch.
	Verify(account *entity.Account, token string) error
}
