package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/stpnv0/ExploreWithMe/internal/stats"
	"github.com/wb-go/wbf/logger"
)

type StatsService struct {
	buffer *stats.Buffer
	repo   ports.HitRepo
	app    string
	logger logger.Logger
}

// NewStatsService: app задаёт приложение, чьи хиты считаются просмотрами событий.
func NewStatsService(buffer *stats.Buffer, repo ports.HitRepo, app string, logger logger.Logger) *StatsService {
	return &StatsService{
		buffer: buffer,
		repo:   repo,
		app:    app,
		logger: logger,
	}
}

func (s *StatsService) Record(hit domain.Hit) {
	if hit.Timestamp.IsZero() {
		hit.Timestamp = time.Now().UTC()
	}
	if !s.buffer.Add(hit) {
		s.logger.Warn("hit buffer is full, hit dropped",
			logger.String("uri", hit.URI),
		)
	}
}

// Flush записывает накопленные хиты одной пачкой.
func (s *StatsService) Flush(ctx context.Context) (int, error) {
	hits := s.buffer.Drain()
	if len(hits) == 0 {
		return 0, nil
	}

	if err := s.repo.SaveBatch(ctx, hits); err != nil {
		if dropped := s.buffer.Requeue(hits); dropped > 0 {
			s.logger.Warn("hits dropped on requeue", logger.Int("count", dropped))
		}
		return 0, fmt.Errorf("save hits: %w", err)
	}

	return len(hits), nil
}

func (s *StatsService) ViewStats(ctx context.Context, params domain.ViewStatsParams) ([]domain.ViewStats, error) {
	if params.End.Before(params.Start) {
		return nil, fmt.Errorf("%w: start must not be after end", domain.ErrValidation)
	}

	return s.repo.ViewStats(ctx, params)
}

// UniqueViews считает уникальные IP по каждому URI среди хитов своего приложения.
func (s *StatsService) UniqueViews(ctx context.Context, uris []string) (map[string]int, error) {
	res := make(map[string]int, len(uris))
	if len(uris) == 0 {
		return res, nil
	}

	views, err := s.repo.ViewStats(ctx, domain.ViewStatsParams{
		End:    time.Now().UTC(),
		URIs:   uris,
		Unique: true,
	})
	if err != nil {
		return nil, fmt.Errorf("view stats: %w", err)
	}

	for _, v := range views {
		if v.App != s.app {
			continue
		}
		res[v.URI] = v.Hits
	}

	return res, nil
}
