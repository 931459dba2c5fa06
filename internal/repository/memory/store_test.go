package memory

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func seed(t *testing.T) (*Store, string) {
	t.Helper()
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "u1", Email: "u1@example.com"}))
	require.NoError(t, s.Events().Create(ctx, &domain.Event{
		ID:          "e1",
		InitiatorID: "u1",
		State:       domain.EventStatePublished,
		EventDate:   time.Now().Add(time.Hour),
	}))
	return s, "e1"
}

func pending(id, requester string) *domain.ParticipationRequest {
	return &domain.ParticipationRequest{
		ID:          id,
		EventID:     "e1",
		RequesterID: requester,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now(),
	}
}

func TestStore_RollbackDiscardsChanges(t *testing.T) {
	s, _ := seed(t)
	repo := s.Requests()
	boom := errors.New("boom")

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		require.NoError(t, repo.Create(ctx, pending("r1", "u2")))

		exists, err := repo.ExistsActive(ctx, "u2", "e1")
		require.NoError(t, err)
		assert.True(t, exists)

		return boom
	})

	assert.ErrorIs(t, err, boom)
	list, err := repo.ListByEvent(context.Background(), "e1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_CommitAppliesChanges(t *testing.T) {
	s, _ := seed(t)
	repo := s.Requests()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, pending("r1", "u2")))

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		return repo.UpdateStatus(ctx, []string{"r1"}, domain.RequestStatusConfirmed)
	})
	require.NoError(t, err)

	n, err := repo.CountByEventAndStatus(ctx, "e1", domain.RequestStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_LockRequiresTx(t *testing.T) {
	s, eventID := seed(t)

	_, err := s.Events().LockByID(context.Background(), eventID)

	assert.Error(t, err)
}

func TestStore_NestedTxReusesLock(t *testing.T) {
	s, eventID := seed(t)

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		if _, err := s.Events().LockByID(ctx, eventID); err != nil {
			return err
		}
		return s.WithinTx(ctx, func(ctx context.Context) error {
			_, err := s.Events().LockByID(ctx, eventID)
			return err
		})
	})

	assert.NoError(t, err)
}

func TestStore_LockSerializesTransactions(t *testing.T) {
	s, eventID := seed(t)

	var inside, maxInside atomic.Int32
	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			return s.WithinTx(context.Background(), func(ctx context.Context) error {
				if _, err := s.Events().LockByID(ctx, eventID); err != nil {
					return err
				}
				n := inside.Add(1)
				if n > maxInside.Load() {
					maxInside.Store(n)
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
				return nil
			})
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, maxInside.Load())
}

func TestStore_LockUnknownEvent(t *testing.T) {
	s, _ := seed(t)

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		for i := 0; i < 100; i++ {
			if _, err := s.Events().LockByID(ctx, fmt.Sprintf("missing-%d", i)); !errors.Is(err, domain.ErrEventNotFound) {
				return fmt.Errorf("lock missing-%d: %v", i, err)
			}
		}
		return nil
	})
	require.NoError(t, err)

	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	assert.Empty(t, s.eventLocks)
}

func TestEventRepo_ListPaged(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Users().Create(ctx, &domain.User{ID: "u1", Email: "u1@example.com"}))
	base := time.Now().Add(24 * time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Events().Create(ctx, &domain.Event{
			ID:          fmt.Sprintf("e%d", i),
			InitiatorID: "u1",
			State:       domain.EventStatePublished,
			EventDate:   base.Add(time.Duration(i) * time.Hour),
		}))
	}

	first, err := s.Events().ListPublished(ctx, domain.Page{From: 0, Size: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "e4", first[0].ID)
	assert.Equal(t, "e3", first[1].ID)

	last, err := s.Events().ListByInitiator(ctx, "u1", domain.Page{From: 4, Size: 2})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "e0", last[0].ID)

	none, err := s.Events().ListByInitiator(ctx, "u1", domain.Page{From: 10, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepo_Update(t *testing.T) {
	s, eventID := seed(t)
	ctx := context.Background()
	e, err := s.Events().GetByID(ctx, eventID)
	require.NoError(t, err)

	e.Title = "Renamed"
	e.ParticipantLimit = 7
	e.State = domain.EventStateCanceled
	require.NoError(t, s.Events().Update(ctx, e))

	got, err := s.Events().GetByID(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 7, got.ParticipantLimit)
	assert.Equal(t, domain.EventStateCanceled, got.State)

	assert.ErrorIs(t, s.Events().Update(ctx, &domain.Event{ID: "missing"}), domain.ErrEventNotFound)
}

func TestUserRepo_ListPaged(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Users().Create(ctx, &domain.User{
			ID:        fmt.Sprintf("u%d", i),
			Email:     fmt.Sprintf("u%d@example.com", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	page, err := s.Users().List(ctx, domain.Page{From: 1, Size: 1})

	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "u1", page[0].ID)
}

func TestRequestRepo_ActivePairUnique(t *testing.T) {
	s, _ := seed(t)
	repo := s.Requests()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, pending("r1", "u2")))

	err := repo.Create(ctx, pending("r2", "u2"))
	assert.ErrorIs(t, err, domain.ErrRequestExists)

	require.NoError(t, repo.UpdateStatus(ctx, []string{"r1"}, domain.RequestStatusCanceled))
	assert.NoError(t, repo.Create(ctx, pending("r2", "u2")))
}

func TestRequestRepo_UpdateStatusUnknownID(t *testing.T) {
	s, _ := seed(t)
	repo := s.Requests()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, pending("r1", "u2")))

	err := repo.UpdateStatus(ctx, []string{"r1", "missing"}, domain.RequestStatusRejected)

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	req, err := repo.GetByIDAndRequester(ctx, "r1", "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
}

func TestUserRepo_EmailTaken(t *testing.T) {
	s, _ := seed(t)

	err := s.Users().Create(context.Background(), &domain.User{ID: "u9", Email: "u1@example.com"})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestHitRepo_ViewStats(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Hits().SaveBatch(ctx, []domain.Hit{
		{App: "ewm", URI: "/events/1", IP: "1.1.1.1", Timestamp: base},
		{App: "ewm", URI: "/events/1", IP: "1.1.1.1", Timestamp: base.Add(time.Minute)},
		{App: "ewm", URI: "/events/1", IP: "2.2.2.2", Timestamp: base.Add(2 * time.Minute)},
		{App: "ewm", URI: "/events/2", IP: "1.1.1.1", Timestamp: base},
		{App: "ewm", URI: "/events/2", IP: "1.1.1.1", Timestamp: base.Add(48 * time.Hour)},
	}))
	window := domain.ViewStatsParams{Start: base.Add(-time.Hour), End: base.Add(time.Hour)}

	all, err := s.Hits().ViewStats(ctx, window)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.ViewStats{App: "ewm", URI: "/events/1", Hits: 3}, all[0])
	assert.Equal(t, domain.ViewStats{App: "ewm", URI: "/events/2", Hits: 1}, all[1])

	window.Unique = true
	window.URIs = []string{"/events/1"}
	unique, err := s.Hits().ViewStats(ctx, window)
	require.NoError(t, err)
	require.Len(t, unique, 1)
	assert.Equal(t, 2, unique[0].Hits)
}
