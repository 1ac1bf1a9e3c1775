package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailDeliverer mails the notification to the address carried in the content data.
type EmailDeliverer struct {
	sender mailSender
	from   string
}

func NewEmailDeliverer(host string, port int, user, pass, from string) *EmailDeliverer {
	return &EmailDeliverer{
		sender: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (e *EmailDeliverer) buildMessage(content Content) (*gomail.Message, error) {
	to := content.Data[DataKeyEmail]
	if to == "" {
		return nil, ErrNoRecipient
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", content.Title)
	m.SetBody("text/plain", content.Body)
	return m, nil
}

func (e *EmailDeliverer) Deliver(ctx context.Context, content Content) error {
	m, err := e.buildMessage(content)
	if err != nil {
		return err
	}
	if err := e.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
