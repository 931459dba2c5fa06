package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type EventRepo struct {
	s *Store
}

func (r *EventRepo) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[e.ID]; ok {
		return fmt.Errorf("insert event: duplicate id %s", e.ID)
	}
	if _, ok := r.s.users[e.InitiatorID]; !ok {
		return fmt.Errorf("insert event: %w", domain.ErrUserNotFound)
	}
	r.s.events[e.ID] = *e
	return nil
}

func (r *EventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r *EventRepo) GetOwnedBy(ctx context.Context, id, initiatorID string) (*domain.Event, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.InitiatorID != initiatorID {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (r *EventRepo) LockByID(ctx context.Context, id string) (*domain.Event, error) {
	if err := r.s.lockEvent(ctx, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *EventRepo) LockOwnedBy(ctx context.Context, id, initiatorID string) (*domain.Event, error) {
	if err := r.s.lockEvent(ctx, id); err != nil {
		return nil, err
	}
	return r.GetOwnedBy(ctx, id, initiatorID)
}

func (r *EventRepo) ListByInitiator(_ context.Context, initiatorID string, page domain.Page) ([]*domain.Event, error) {
	return r.list(page, func(e domain.Event) bool { return e.InitiatorID == initiatorID }), nil
}

func (r *EventRepo) ListPublished(_ context.Context, page domain.Page) ([]*domain.Event, error) {
	return r.list(page, func(e domain.Event) bool { return e.State == domain.EventStatePublished }), nil
}

func (r *EventRepo) list(page domain.Page, keep func(domain.Event) bool) []*domain.Event {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Event, 0)
	for _, e := range r.s.events {
		if keep(e) {
			e := e
			res = append(res, &e)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].EventDate.Equal(res[j].EventDate) {
			return res[i].ID < res[j].ID
		}
		return res[i].EventDate.After(res[j].EventDate)
	})

	start, end := page.Bounds(len(res))
	return res[start:end]
}

func (r *EventRepo) UpdateState(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	stored.State = e.State
	stored.PublishedAt = e.PublishedAt
	r.s.events[e.ID] = stored
	return nil
}

func (r *EventRepo) Update(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	stored.Title = e.Title
	stored.Annotation = e.Annotation
	stored.Description = e.Description
	stored.EventDate = e.EventDate
	stored.ParticipantLimit = e.ParticipantLimit
	stored.RequestModeration = e.RequestModeration
	stored.State = e.State
	r.s.events[e.ID] = stored
	return nil
}
