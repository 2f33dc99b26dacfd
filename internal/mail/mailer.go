package mail

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/nailsdg/salon-api/internal/config"
)

// Mailer sends the transactional emails of the salon. Without SMTP
// configuration it degrades to a logging stub so local development does
// not need a mail server.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger zerolog.Logger
}

func NewMailer(cfg *config.Config, logger zerolog.Logger) *Mailer {
	m := &Mailer{
		from:   cfg.MailFrom,
		logger: logger.With().Str("component", "mailer").Logger(),
	}

	if cfg.SMTPHost == "" {
		m.logger.Info().Msg("SMTP not configured, emails will be logged only")
		return m
	}

	m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return m
}

// SendVerificationCode emails the four-digit registration code.
func (m *Mailer) SendVerificationCode(to, firstName, code string) error {
	if m.dialer == nil {
		m.logger.Info().Str("to", to).Str("code", code).Msg("verification email skipped (no SMTP)")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome! Confirm your account")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Welcome to Nails by Divine Grace! Your verification code is:</p>
<h2>%s</h2>
<p>The code expires in 15 minutes.</p>`,
		firstName, code,
	))

	return m.dialer.DialAndSend(msg)
}
