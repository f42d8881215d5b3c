package service

import "context"

// Mailer sends account emails. Delivery is fire-and-forget: the caller does
// not consume a delivery confirmation beyond the returned error.
type Mailer interface {
	// SendVerificationEmail delivers the activation message carrying the
	// verification token to the given address.
	SendVerificationEmail(ctx context.Context, email, token string) error
}
