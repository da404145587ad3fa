package email

import (
	"context"
	"fmt"

	"gopkg.in/mail.v2"
)

// Client sends plain-text mail over SMTP.
type Client struct {
	dialer *mail.Dialer
	from   string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		dialer: mail.NewDialer(smtpHost, smtpPort, username, password),
		from:   from,
	}
}

// Send delivers one message to the given address.
// The SMTP dialog itself is not cancellable; ctx is checked before dialing.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if to == "" {
		return fmt.Errorf("email: empty recipient address")
	}

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	return c.dialer.DialAndSend(message)
}
