package memory

import (
	"context"
	"fmt"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type RequestRepo struct {
	s *Store
}

// view возвращает заявки в порядке создания с учётом изменений текущей транзакции.
func (r *RequestRepo) view(ctx context.Context) []domain.ParticipationRequest {
	r.s.mu.RLock()
	res := make([]domain.ParticipationRequest, 0, len(r.s.order))
	for _, id := range r.s.order {
		res = append(res, r.s.requests[id])
	}
	r.s.mu.RUnlock()

	t, ok := txFrom(ctx)
	if !ok {
		return res
	}

	for i, req := range res {
		if staged, ok := t.staged[req.ID]; ok {
			res[i] = staged
		}
	}
	for _, id := range t.added {
		res = append(res, t.staged[id])
	}

	return res
}

func (r *RequestRepo) filter(ctx context.Context, keep func(domain.ParticipationRequest) bool) []*domain.ParticipationRequest {
	res := make([]*domain.ParticipationRequest, 0)
	for _, req := range r.view(ctx) {
		if keep(req) {
			req := req
			res = append(res, &req)
		}
	}
	return res
}

func (r *RequestRepo) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	for _, existing := range r.view(ctx) {
		if existing.ID == req.ID {
			return fmt.Errorf("insert request: duplicate id %s", req.ID)
		}
		if existing.RequesterID == req.RequesterID && existing.EventID == req.EventID &&
			existing.Status.IsActive() && req.Status.IsActive() {
			return domain.ErrRequestExists
		}
	}

	if t, ok := txFrom(ctx); ok {
		t.staged[req.ID] = *req
		t.added = append(t.added, req.ID)
		return nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.requests[req.ID] = *req
	r.s.order = append(r.s.order, req.ID)
	return nil
}

func (r *RequestRepo) GetByIDAndRequester(ctx context.Context, id, requesterID string) (*domain.ParticipationRequest, error) {
	res := r.filter(ctx, func(req domain.ParticipationRequest) bool {
		return req.ID == id && req.RequesterID == requesterID
	})
	if len(res) == 0 {
		return nil, domain.ErrRequestNotFound
	}
	return res[0], nil
}

func (r *RequestRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.ParticipationRequest, error) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return r.filter(ctx, func(req domain.ParticipationRequest) bool {
		_, ok := set[req.ID]
		return ok
	}), nil
}

func (r *RequestRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error) {
	return r.filter(ctx, func(req domain.ParticipationRequest) bool {
		return req.EventID == eventID
	}), nil
}

func (r *RequestRepo) ListByEventAndStatus(
	ctx context.Context,
	eventID string,
	status domain.RequestStatus,
) ([]*domain.ParticipationRequest, error) {
	return r.filter(ctx, func(req domain.ParticipationRequest) bool {
		return req.EventID == eventID && req.Status == status
	}), nil
}

func (r *RequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	return r.filter(ctx, func(req domain.ParticipationRequest) bool {
		return req.RequesterID == requesterID
	}), nil
}

func (r *RequestRepo) ExistsActive(ctx context.Context, requesterID, eventID string) (bool, error) {
	res := r.filter(ctx, func(req domain.ParticipationRequest) bool {
		return req.RequesterID == requesterID && req.EventID == eventID && req.Status.IsActive()
	})
	return len(res) > 0, nil
}

func (r *RequestRepo) CountByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) (int, error) {
	res, _ := r.ListByEventAndStatus(ctx, eventID, status)
	return len(res), nil
}

func (r *RequestRepo) CountConfirmedByEvents(ctx context.Context, eventIDs []string) (map[string]int, error) {
	set := make(map[string]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		set[id] = struct{}{}
	}

	res := make(map[string]int, len(eventIDs))
	for _, req := range r.view(ctx) {
		if _, ok := set[req.EventID]; ok && req.Status == domain.RequestStatusConfirmed {
			res[req.EventID]++
		}
	}
	return res, nil
}

func (r *RequestRepo) UpdateStatus(ctx context.Context, ids []string, status domain.RequestStatus) error {
	current := make(map[string]domain.ParticipationRequest)
	for _, req := range r.view(ctx) {
		current[req.ID] = req
	}

	updated := make([]domain.ParticipationRequest, 0, len(ids))
	for _, id := range ids {
		req, ok := current[id]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrRequestNotFound, id)
		}
		req.Status = status
		updated = append(updated, req)
	}

	if t, ok := txFrom(ctx); ok {
		for _, req := range updated {
			t.staged[req.ID] = req
		}
		return nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, req := range updated {
		r.s.requests[req.ID] = req
	}
	return nil
}
