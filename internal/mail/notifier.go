package mail

import (
	"context"
	"fmt"
	"html"
	"time"

	"go.uber.org/zap"

	appmiddleware "github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/service/contact"
)

// sendTimeout bounds each notification delivery attempt.
const sendTimeout = 30 * time.Second

// Notifier sends the two contact-submission emails: an acknowledgment
// to the submitter and an alert to the site owner. Delivery failures
// are logged and swallowed; they never affect the submission outcome.
type Notifier struct {
	mailer    Mailer
	ownerAddr string
}

// NewNotifier creates a notifier. A nil mailer or empty owner address
// disables the corresponding message.
func NewNotifier(mailer Mailer, ownerAddr string) *Notifier {
	return &Notifier{mailer: mailer, ownerAddr: ownerAddr}
}

// Dispatch sends both notifications on a detached goroutine. The
// request context's values (request-scoped logger) are kept, but its
// cancellation is not: the response must never wait on delivery, and
// delivery must not die with the request.
func (n *Notifier) Dispatch(ctx context.Context, c *contact.Contact) {
	if n == nil || n.mailer == nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		sendCtx, cancel := context.WithTimeout(detached, sendTimeout)
		defer cancel()
		n.notify(sendCtx, c)
	}()
}

// notify delivers both messages sequentially, logging each failure.
func (n *Notifier) notify(ctx context.Context, c *contact.Contact) {
	ack := Message{
		ToName:    c.FullName,
		ToAddress: c.Email,
		Subject:   "Thank you for reaching out!",
		HTML:      acknowledgmentBody(c),
	}
	if err := n.mailer.Send(ctx, ack); err != nil {
		appmiddleware.LogError(ctx, "failed to send acknowledgment email", err,
			zap.String("contactId", c.ID))
	}

	if n.ownerAddr == "" {
		return
	}
	alert := Message{
		ToAddress: n.ownerAddr,
		Subject:   "New Contact: " + c.Subject,
		HTML:      ownerAlertBody(c),
	}
	if err := n.mailer.Send(ctx, alert); err != nil {
		appmiddleware.LogError(ctx, "failed to send owner alert email", err,
			zap.String("contactId", c.ID))
	}
}

func acknowledgmentBody(c *contact.Contact) string {
	return fmt.Sprintf(`<h2>Thank you for contacting me, %s!</h2>
<p>I have received your message and will get back to you as soon as possible.</p>
<hr>
<h3>Your Message Details:</h3>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong> %s</p>
<hr>
<p>Best regards,<br>Mohammad Ali Khan</p>`,
		html.EscapeString(c.FullName),
		html.EscapeString(c.Subject),
		html.EscapeString(c.Message))
}

func ownerAlertBody(c *contact.Contact) string {
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p>Reply to: %s</p>`,
		html.EscapeString(c.FullName),
		html.EscapeString(c.Email),
		html.EscapeString(c.Phone),
		html.EscapeString(c.Subject),
		html.EscapeString(c.Message),
		html.EscapeString(c.Email))
}
