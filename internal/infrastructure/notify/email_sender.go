// Package notify holds the best-effort collaborators triggered after an order
// completes: the confirmation email and the WordPress listing publish. Both
// are fire-and-forget from the reconciler's point of view; a failure here is
// logged upstream and never affects the committed order state.
package notify

import (
	"context"
	"fmt"
	"log"

	"bizdir_billing/internal/domain/entities"
	"bizdir_billing/internal/usecase/interfaces"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM"`
	// To is the merchant operations inbox; settlement confirmations land
	// there for the team handling the registration.
	To string `envconfig:"TO"`
}

// LoadEmailConfig reads SMTP_* environment variables.
func LoadEmailConfig() (EmailConfig, error) {
	var cfg EmailConfig
	if err := envconfig.Process("smtp", &cfg); err != nil {
		return EmailConfig{}, err
	}
	return cfg, nil
}

// EmailSender delivers the settlement confirmation over SMTP.
type EmailSender struct {
	cfg    EmailConfig
	dialer *gomail.Dialer
}

var _ interfaces.IConfirmationSender = (*EmailSender)(nil)

func NewEmailSender(cfg EmailConfig) *EmailSender {
	return &EmailSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *EmailSender) SendConfirmation(ctx context.Context, o entities.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", fmt.Sprintf("Payment received for order %s", o.MerchOrderID))
	m.SetBody("text/html", confirmationBody(o))

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	log.Printf("[notify][email] confirmation sent order_id=%s", o.MerchOrderID)
	return nil
}

func confirmationBody(o entities.Order) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Payment Received</h2>
  <p>The payment for listing <strong>%s</strong> has settled.</p>
  <ul>
    <li><strong>Order:</strong> %s</li>
    <li><strong>Amount:</strong> %s ETB</li>
    <li><strong>Transaction:</strong> %s</li>
  </ul>
  <p style="font-size: 0.9em; color: #666;">This is an automated message.</p>
</div>`, o.Title, o.MerchOrderID, o.Amount, o.TransactionID)
}
