package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by senders built without credentials
var ErrNotConfigured = errors.New("email service is not configured")

// Message is a fully rendered HTML email ready for delivery
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string // optional
}

// Sender delivers a single message. Implementations must be safe for
// concurrent use; one Sender is shared by all requests.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
