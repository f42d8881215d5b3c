package mail

import (
	"testing"

	"zilptext/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T) *smtpMailer {
	t.Helper()

	cfg := &config.Config{
		SMTP: &config.SMTPConfig{
			Host: "smtp.example.com",
			Port: "587",
			From: "noreply@zilptext.com",
		},
		Verification: &config.VerificationConfig{
			ActivationBaseURL: "https://app.zilptext.com/verify",
		},
	}

	mailer, err := NewSMTPMailer(cfg)
	require.NoError(t, err)

	return mailer.(*smtpMailer)
}

func TestNewSMTPMailer_RequiresConfig(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{})
	require.Error(t, err)

	_, err = NewSMTPMailer(&config.Config{SMTP: &config.SMTPConfig{Host: "smtp.example.com"}})
	require.Error(t, err)
}

func TestActivationLink_EscapesQueryParameters(t *testing.T) {
	mailer := newTestMailer(t)

	link, err := mailer.activationLink("driver+tag@example.com", "abc.def")
	require.NoError(t, err)

	assert.Contains(t, link, "https://app.zilptext.com/verify?")
	assert.Contains(t, link, "email=driver%2Btag%40example.com")
	assert.Contains(t, link, "token=abc.def")
}

func TestRenderVerificationBody(t *testing.T) {
	// No ampersand in the link so the assertion is not tripped by HTML escaping.
	link := "https://app.zilptext.com/verify?token=tok"

	body, err := renderVerificationBody(link, 128)
	require.NoError(t, err)

	assert.Contains(t, body, "Thanks for signing up!")
	assert.Contains(t, body, link)
	assert.Contains(t, body, "data:image/png;base64,")
}
