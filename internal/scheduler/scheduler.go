package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type hitFlusher interface {
	Flush(ctx context.Context) (int, error)
}

type Scheduler struct {
	flusher  hitFlusher
	interval time.Duration
	logger   logger.Logger
}

func New(
	flusher hitFlusher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		flusher:  flusher,
		interval: interval,
		logger:   logger,
	}
}

// Start периодически сбрасывает буфер хитов до отмены ctx; перед выходом
// выполняет последний сброс.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.tick(context.WithoutCancel(ctx))
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	flushed, err := s.flusher.Flush(ctx)
	if err != nil {
		s.logger.Error("failed to flush hits",
			logger.String("error", err.Error()),
		)
		return
	}

	if flushed > 0 {
		s.logger.Debug("hits flushed",
			logger.Int("count", flushed),
		)
	}
}
