// Package queue provides the Redis-backed mail queue built on Asynq.
// The API enqueues email jobs; the mail worker consumes them.
package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"quickbite/internal/domain/service"
)

// TaskTypeEmailSend is the job type name stored in Redis. Asynq routes
// task type strings to handlers.
const TaskTypeEmailSend = "email:send"

// NewEmailTask constructs an Asynq task carrying an email job.
func NewEmailTask(job *service.EmailJob) (*asynq.Task, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal email job")
	}

	return asynq.NewTask(
		TaskTypeEmailSend,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// DecodeEmailTask parses an email job back out of an Asynq task payload.
func DecodeEmailTask(task *asynq.Task) (*service.EmailJob, error) {
	var job service.EmailJob
	if err := json.Unmarshal(task.Payload(), &job); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal email job")
	}

	return &job, nil
}
