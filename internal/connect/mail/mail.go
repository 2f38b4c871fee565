// Package mail renders and delivers transactional email.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// Message is a single rendered email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Dispatcher delivers a message. Send returns only after delivery has
// been accepted or has failed.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

var ErrInvalidMessage = errors.New("mail: invalid message")

// Validate checks that both addresses parse and a subject is present.
func (m Message) Validate() error {
	if _, err := mail.ParseAddress(m.From); err != nil {
		return fmt.Errorf("%w: from %q: %v", ErrInvalidMessage, m.From, err)
	}
	if _, err := mail.ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w: to %q: %v", ErrInvalidMessage, m.To, err)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidMessage)
	}
	if strings.ContainsAny(m.Subject, "\r\n") {
		return fmt.Errorf("%w: subject contains line breaks", ErrInvalidMessage)
	}
	return nil
}
