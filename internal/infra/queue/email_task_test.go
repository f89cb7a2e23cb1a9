package queue

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/domain/service"
)

func TestEmailTask_Roundtrip(t *testing.T) {
	job := &service.EmailJob{
		RequestID: "req-123",
		To:        "user@example.com",
		Subject:   "Confirm your email",
		Body:      "click the link",
	}

	task, err := NewEmailTask(job)
	require.NoError(t, err)
	assert.Equal(t, TaskTypeEmailSend, task.Type())

	decoded, err := DecodeEmailTask(task)
	require.NoError(t, err)
	assert.Equal(t, job, decoded)
}

func TestDecodeEmailTask_RejectsMalformedPayload(t *testing.T) {
	task := asynq.NewTask(TaskTypeEmailSend, []byte("{not json"))

	_, err := DecodeEmailTask(task)

	require.Error(t, err)
}
