// Package mail provides the SMTP implementation of the domain Mailer.
package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"

	"zilptext/config"
	"zilptext/internal/domain/service"

	"github.com/pkg/errors"
)

const verificationSubject = "Signup | Verification"

// smtpMailer sends account mail over plain SMTP. Delivery is fire-and-forget
// from the caller's point of view; no confirmation is consumed.
type smtpMailer struct {
	host              string
	port              string
	username          string
	password          string
	from              string
	activationBaseURL string
	qrSize            int
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}
	if cfg.Verification == nil || cfg.Verification.ActivationBaseURL == "" {
		return nil, errors.New("verification activation base url must be provided")
	}

	qrSize := cfg.SMTP.QRSize
	if qrSize <= 0 {
		qrSize = 256
	}

	return &smtpMailer{
		host:              cfg.SMTP.Host,
		port:              cfg.SMTP.Port,
		username:          cfg.SMTP.Username,
		password:          cfg.SMTP.Password,
		from:              cfg.SMTP.From,
		activationBaseURL: cfg.Verification.ActivationBaseURL,
		qrSize:            qrSize,
	}, nil
}

// SendVerificationEmail delivers the activation message carrying the
// verification token to the given address.
func (m *smtpMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "verification email cancelled before send")
	}

	link, err := m.activationLink(email, token)
	if err != nil {
		return err
	}

	body, err := renderVerificationBody(link, m.qrSize)
	if err != nil {
		return err
	}

	return m.send(email, verificationSubject, body)
}

// activationLink builds the verification URL with the email and token as
// query parameters, matching what the verification endpoint expects.
func (m *smtpMailer) activationLink(email, token string) (string, error) {
	base, err := url.Parse(m.activationBaseURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid activation base url")
	}

	query := base.Query()
	query.Set("email", email)
	query.Set("token", token)
	base.RawQuery = query.Encode()

	return base.String(), nil
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		m.from, to, subject, body,
	))

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	return errors.Wrap(smtp.SendMail(addr, auth, m.from, []string{to}, msg), "failed to send mail")
}

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Thanks for signing up!</h2>
    <p>Your account has been created. You can log in after you have activated
    your account by pressing the link below.</p>
    <p><a href="{{.Link}}">Activate your account</a></p>
    <p>Or scan this code on your phone:</p>
    <p><img src="data:image/png;base64,{{.QRCode}}" alt="activation QR code"/></p>
    <p style="word-break: break-all; color: #666;">{{.Link}}</p>
    <p>If you didn't create an account, you can safely ignore this email.</p>
</body>
</html>
`))

// renderVerificationBody renders the activation mail with the link embedded
// both as text and as an inline QR code image.
func renderVerificationBody(link string, qrSize int) (string, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode activation qr code")
	}

	var buf bytes.Buffer
	data := struct {
		Link   string
		QRCode string
	}{
		Link:   link,
		QRCode: base64.StdEncoding.EncodeToString(png),
	}
	if err := verificationTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render verification email")
	}

	return buf.String(), nil
}
