package workers

import (
	"context"

	"github.com/rizzmaster/rizznova/internal/config"
	"github.com/rizzmaster/rizznova/internal/logger"
	"github.com/rizzmaster/rizznova/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the application. Workers
// observe ctx and stop when it is cancelled.
func NewWorkers(ctx context.Context, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionCleaner(ctx, storages.SessionRepository, cfg.CleanupInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
