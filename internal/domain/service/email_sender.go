// Package service defines the ports to external delivery systems.
package service

import "context"

// Email is one outbound message for the email channel.
type Email struct {
	To      string // Recipient address.
	Subject string // Message subject line.
	HTML    string // HTML body.
}

// EmailSender defines the interface for the email notification channel.
type EmailSender interface {
	// SendEmail delivers a single message. An error means the channel failed
	// for this message; callers decide whether that is fatal.
	SendEmail(ctx context.Context, email *Email) error
}
