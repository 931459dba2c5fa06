package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/repository/memory"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports/mocks"
	"github.com/stpnv0/ExploreWithMe/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_RecordAndFlush(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	buf := stats.NewBuffer(10)
	svc := NewStatsService(buf, repo, "ewm", newTestLogger(t))

	svc.Record(domain.Hit{App: "ewm", URI: "/events/1", IP: "1.1.1.1"})
	svc.Record(domain.Hit{App: "ewm", URI: "/events/2", IP: "1.1.1.2", Timestamp: time.Unix(100, 0)})

	repo.EXPECT().SaveBatch(mock.Anything, mock.MatchedBy(func(hits []domain.Hit) bool {
		return len(hits) == 2 && !hits[0].Timestamp.IsZero() && hits[1].Timestamp.Equal(time.Unix(100, 0))
	})).Return(nil)

	n, err := svc.Flush(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, buf.Len())
}

func TestStatsService_Flush_Empty(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewStatsService(stats.NewBuffer(10), repo, "ewm", newTestLogger(t))

	n, err := svc.Flush(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStatsService_Flush_RequeuesOnError(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	buf := stats.NewBuffer(10)
	svc := NewStatsService(buf, repo, "ewm", newTestLogger(t))

	svc.Record(domain.Hit{URI: "/events/1"})
	repoErr := errors.New("db down")
	repo.EXPECT().SaveBatch(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Flush(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Equal(t, 1, buf.Len())
}

func TestStatsService_Record_DropsWhenFull(t *testing.T) {
	buf := stats.NewBuffer(1)
	svc := NewStatsService(buf, nil, "ewm", newTestLogger(t))

	svc.Record(domain.Hit{URI: "/a"})
	svc.Record(domain.Hit{URI: "/b"})

	assert.Equal(t, 1, buf.Len())
}

func TestStatsService_ViewStats_InvalidRange(t *testing.T) {
	svc := NewStatsService(stats.NewBuffer(0), nil, "ewm", newTestLogger(t))

	_, err := svc.ViewStats(context.Background(), domain.ViewStatsParams{
		Start: time.Now(),
		End:   time.Now().Add(-time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatsService_UniqueViews(t *testing.T) {
	repo := mocks.NewMockHitRepo(t)
	svc := NewStatsService(stats.NewBuffer(0), repo, "ewm", newTestLogger(t))

	repo.EXPECT().ViewStats(mock.Anything, mock.MatchedBy(func(p domain.ViewStatsParams) bool {
		return p.Unique && len(p.URIs) == 2
	})).Return([]domain.ViewStats{
		{App: "ewm", URI: "/events/1", Hits: 3},
		{App: "other", URI: "/events/1", Hits: 1},
	}, nil)

	views, err := svc.UniqueViews(context.Background(), []string{"/events/1", "/events/2"})

	require.NoError(t, err)
	assert.Equal(t, 3, views["/events/1"])
	assert.Zero(t, views["/events/2"])
}

func TestStatsService_UniqueViews_SameIPAcrossApps(t *testing.T) {
	store := memory.New()
	svc := NewStatsService(stats.NewBuffer(10), store.Hits(), "ewm", newTestLogger(t))
	ts := time.Now().Add(-time.Minute)

	svc.Record(domain.Hit{App: "ewm", URI: "/events/1", IP: "1.1.1.1", Timestamp: ts})
	svc.Record(domain.Hit{App: "ewm", URI: "/events/1", IP: "1.1.1.1", Timestamp: ts})
	svc.Record(domain.Hit{App: "mobile", URI: "/events/1", IP: "1.1.1.1", Timestamp: ts})
	_, err := svc.Flush(context.Background())
	require.NoError(t, err)

	views, err := svc.UniqueViews(context.Background(), []string{"/events/1"})

	require.NoError(t, err)
	assert.Equal(t, 1, views["/events/1"])
}
