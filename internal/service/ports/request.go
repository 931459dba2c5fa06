package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, r *domain.ParticipationRequest) error
	GetByIDAndRequester(ctx context.Context, id, requesterID string) (*domain.ParticipationRequest, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error)
	ListByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) ([]*domain.ParticipationRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error)
	ExistsActive(ctx context.Context, requesterID, eventID string) (bool, error)
	CountByEventAndStatus(ctx context.Context, eventID string, status domain.RequestStatus) (int, error)
	CountConfirmedByEvents(ctx context.Context, eventIDs []string) (map[string]int, error)
	UpdateStatus(ctx context.Context, ids []string, status domain.RequestStatus) error
}
