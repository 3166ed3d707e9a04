// Package mail sends outbound email through a pluggable transport.
// Delivery is best-effort everywhere in this codebase: callers log
// failures and move on.
package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is one outbound email.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	HTML      string
}

// Mailer sends a single message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SendGridMailer implements Mailer on the SendGrid v3 API.
type SendGridMailer struct {
	client      *sendgrid.Client
	fromName    string
	fromAddress string
}

// NewSendGridMailer creates a mailer sending as the given identity.
func NewSendGridMailer(apiKey, fromName, fromAddress string) *SendGridMailer {
	return &SendGridMailer{
		client:      sendgrid.NewSendClient(apiKey),
		fromName:    fromName,
		fromAddress: fromAddress,
	}
}

// Send delivers one message, treating any non-2xx API status as an error.
func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	from := sgmail.NewEmail(m.fromName, m.fromAddress)
	to := sgmail.NewEmail(msg.ToName, msg.ToAddress)
	email := sgmail.NewSingleEmail(from, msg.Subject, to, "", msg.HTML)

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// Compile-time interface check
var _ Mailer = (*SendGridMailer)(nil)
