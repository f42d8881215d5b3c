package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"zilptext/config"
	"zilptext/internal/domain/entity"
	"zilptext/internal/domain/service"
)

const (
	verificationPurpose    = "email-verification"
	defaultVerificationTTL = 72 * time.Hour
)

// hmacVerifier implements VerificationTokenService with purpose-tagged,
// expiring HMAC-SHA256 tokens. Tokens are derived, never stored: the payload
// carries the account id and issue time, and the MAC binds both to the
// server secret and the purpose tag, so a password-reset style token can
// never double as a verification token.
type hmacVerifier struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewVerificationTokenService is the constructor for hmacVerifier.
func NewVerificationTokenService(cfg *config.Config) (service.VerificationTokenService, error) {
	if cfg.SecretKey.Verification == "" {
		return nil, errors.New("verification token secret must be provided")
	}

	ttl := defaultVerificationTTL
	if cfg.Verification != nil && cfg.Verification.TokenTTL > 0 {
		ttl = cfg.Verification.TokenTTL
	}

	return &hmacVerifier{
		secret: []byte(cfg.SecretKey.Verification),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue derives a fresh verification token for the account.
func (v *hmacVerifier) Issue(account *entity.Account) (string, error) {
	if account == nil || account.ID == uuid.Nil {
		return "", errors.New("cannot issue verification token without an account id")
	}

	payload := fmt.Sprintf("%s|%d", account.ID, v.now().Unix())
	mac := v.sign(payload)

	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + base64.RawURLEncoding.EncodeToString(mac), nil
}

// Verify checks a token presented for the account.
func (v *hmacVerifier) Verify(account *entity.Account, token string) error {
	payloadPart, macPart, ok := strings.Cut(token, ".")
	if !ok {
		return service.ErrVerificationTokenInvalid
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(payloadPart)
	if err != nil {
		return service.ErrVerificationTokenInvalid
	}
	presentedMAC, err := base64.RawURLEncoding.DecodeString(macPart)
	if err != nil {
		return service.ErrVerificationTokenInvalid
	}

	payload := string(payloadBytes)
	if !hmac.Equal(presentedMAC, v.sign(payload)) {
		return service.ErrVerificationTokenInvalid
	}

	// The MAC is valid, so the payload is trusted from here on.
	accountPart, issuedPart, ok := strings.Cut(payload, "|")
	if !ok || account == nil || accountPart != account.ID.String() {
		return service.ErrVerificationTokenInvalid
	}

	issuedUnix, err := strconv.ParseInt(issuedPart, 10, 64)
	if err != nil {
		return service.ErrVerificationTokenInvalid
	}
	issuedAt := time.Unix(issuedUnix, 0)
	now := v.now()
	if issuedAt.After(now) || now.Sub(issuedAt) > v.ttl {
		return service.ErrVerificationTokenInvalid
	}

	return nil
}

func (v *hmacVerifier) sign(payload string) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(payload))
	mac.Write([]byte("|" + verificationPurpose))

	return mac.Sum(nil)
}
