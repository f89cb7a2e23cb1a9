package queue

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"quickbite/config"
	"quickbite/internal/domain/service"
)

// RedisOpt builds the Asynq Redis connection options from config.
// Shared by the producer client and the worker server.
func RedisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Queue.RedisAddr,
		Password: cfg.Queue.RedisPassword,
		DB:       cfg.Queue.RedisDB,
	}
}

// asynqMailQueue implements service.MailQueue on top of an Asynq client.
type asynqMailQueue struct {
	client *asynq.Client
	logger *slog.Logger
}

// NewMailQueue is the constructor for the mail queue producer.
// Without a configured Redis address it degrades to a logging no-op so
// local development works without a broker.
func NewMailQueue(cfg *config.Config, logger *slog.Logger) service.MailQueue {
	if cfg.Queue == nil || cfg.Queue.RedisAddr == "" {
		logger.Warn("Mail queue not configured, outbound email will only be logged")

		return &noopMailQueue{logger: logger}
	}

	return &asynqMailQueue{
		client: asynq.NewClient(RedisOpt(cfg)),
		logger: logger,
	}
}

// Enqueue submits an email job for background delivery.
func (q *asynqMailQueue) Enqueue(ctx context.Context, job *service.EmailJob) error {
	task, err := NewEmailTask(job)
	if err != nil {
		return err
	}

	info, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		return errors.Wrap(err, "failed to enqueue email task")
	}

	q.logger.Debug("Email task enqueued",
		slog.String("taskID", info.ID),
		slog.String("queue", info.Queue),
		slog.String("to", job.To),
	)

	return nil
}

// Close closes the underlying Redis connections.
func (q *asynqMailQueue) Close() error {
	return q.client.Close()
}

// noopMailQueue logs jobs instead of delivering them.
type noopMailQueue struct {
	logger *slog.Logger
}

func (q *noopMailQueue) Enqueue(_ context.Context, job *service.EmailJob) error {
	q.logger.Info("Email (not sent, queue disabled)",
		slog.String("to", job.To),
		slog.String("subject", job.Subject),
	)

	return nil
}

func (q *noopMailQueue) Close() error {
	return nil
}
