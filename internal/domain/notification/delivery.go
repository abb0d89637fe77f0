package notification

import "context"

// Delivery is an outbound message handed to a channel sender
type Delivery struct {
	RecipientEmail string
	Title          string
	Message        string
}

// Sender pushes a notification out over some channel (email, SMS, log).
// Delivery failures must not affect the stored notification; the caller
// treats Send as best effort.
type Sender interface {
	Send(ctx context.Context, d Delivery) error
}
