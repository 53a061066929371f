package service

import "context"

// PushSender defines the interface for the push notification channel.
type PushSender interface {
	// SendPush delivers a push notification to a single device token.
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}
