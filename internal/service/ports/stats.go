package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type HitRepo interface {
	SaveBatch(ctx context.Context, hits []domain.Hit) error
	ViewStats(ctx context.Context, params domain.ViewStatsParams) ([]domain.ViewStats, error)
}

// ViewCounter отдаёт число уникальных просмотров по каждому URI.
type ViewCounter interface {
	UniqueViews(ctx context.Context, uris []string) (map[string]int, error)
}

type HitRecorder interface {
	Record(hit domain.Hit)
}
