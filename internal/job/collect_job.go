package job

import (
	"Commento/internal/pkg/logger"
	"Commento/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// CollectJob re-collects reviews for every registered service on a schedule,
// so the stores stay fresh between manual collection runs.
type CollectJob struct {
	collectSvc service.CollectService
}

func NewCollectJob(collectSvc service.CollectService) *CollectJob {
	return &CollectJob{collectSvc: collectSvc}
}

func (s *CollectJob) Run() {
	traceID := "job-collect-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	start := time.Now()
	log.InfoContext(ctx, "scheduled collection starting")

	if err := s.collectSvc.CollectAll(ctx); err != nil {
		log.ErrorContext(ctx, "scheduled collection error", "err", err)
		return
	}

	log.InfoContext(ctx, "scheduled collection finished", "elapsed", time.Since(start).String())
}
