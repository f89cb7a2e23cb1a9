package service

import "context"

// EmailJob is the payload handed to the mail worker for async delivery.
type EmailJob struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// MailQueue defines the interface for enqueueing outbound mail.
// Delivery is asynchronous and at-least-once; the API never blocks on SMTP.
type MailQueue interface {
	// Enqueue submits an email job for background delivery.
	Enqueue(ctx context.Context, job *EmailJob) error

	// Close releases any resources held by the queue client.
	Close() error
}
