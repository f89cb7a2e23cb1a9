// Package handler contains the asynq task handlers of the mail worker.
package handler

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"

	"quickbite/internal/infra/mail"
	"quickbite/internal/infra/queue"
)

// EmailHandlerParams holds dependencies for EmailHandler, injected by Fx.
type EmailHandlerParams struct {
	fx.In

	Sender mail.Sender
	Logger *slog.Logger
}

// EmailHandler processes queued email jobs.
type EmailHandler struct {
	sender mail.Sender
	logger *slog.Logger
}

// NewEmailHandler is the constructor for EmailHandler.
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{
		sender: params.Sender,
		logger: params.Logger,
	}
}

// HandleEmailSend delivers one queued email. Returning an error makes asynq
// retry the task per its retry policy.
func (h *EmailHandler) HandleEmailSend(ctx context.Context, task *asynq.Task) error {
	job, err := queue.DecodeEmailTask(task)
	if err != nil {
		h.logger.Error("Dropping malformed email task", slog.Any("error", err))

		// Malformed payloads never become valid, skip retries.
		return nil
	}

	logger := h.logger.With(
		slog.String("request_id", job.RequestID),
		slog.String("to", job.To),
	)

	if err := h.sender.Send(ctx, job); err != nil {
		logger.Error("Failed to send email", slog.Any("error", err))

		return err
	}

	logger.Info("Email delivered", slog.String("subject", job.Subject))

	return nil
}
