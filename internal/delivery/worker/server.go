// Package worker runs the asynq consumer that drains the mail queue.
package worker

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"quickbite/config"
	"quickbite/internal/delivery"
	"quickbite/internal/delivery/worker/handler"
	"quickbite/internal/infra/queue"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *asynq.Server
	mux    *asynq.ServeMux
}

// ServerParams holds dependencies for the mail worker server.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	EmailHandler *handler.EmailHandler
}

// NewServer creates the asynq server that consumes queued email tasks.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.Queue == nil || params.Cfg.Queue.RedisAddr == "" {
		return nil, errors.New("queue redis address must be configured for the mail worker")
	}

	concurrency := params.Cfg.Queue.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	server := asynq.NewServer(queue.RedisOpt(params.Cfg), asynq.Config{
		Concurrency: concurrency,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskTypeEmailSend, params.EmailHandler.HandleEmailSend)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: server,
		mux:    mux,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the queue consumer and blocks until shutdown.
func (s *workerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting mail worker",
		slog.String("redisAddr", s.cfg.Queue.RedisAddr),
		slog.Int("concurrency", s.cfg.Queue.Concurrency),
	)
	if err := s.server.Run(s.mux); err != nil {
		return errors.Wrap(err, "failed to run mail worker")
	}

	return nil
}

// stop drains in-flight tasks and shuts the consumer down.
func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down mail worker")
	s.server.Shutdown()

	return nil
}
