package ports

import (
	"context"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetOwnedBy(ctx context.Context, id, initiatorID string) (*domain.Event, error)
	// LockByID и LockOwnedBy блокируют строку события до конца текущей транзакции.
	LockByID(ctx context.Context, id string) (*domain.Event, error)
	LockOwnedBy(ctx context.Context, id, initiatorID string) (*domain.Event, error)
	ListByInitiator(ctx context.Context, initiatorID string, page domain.Page) ([]*domain.Event, error)
	ListPublished(ctx context.Context, page domain.Page) ([]*domain.Event, error)
	UpdateState(ctx context.Context, e *domain.Event) error
	// Update сохраняет редактируемые поля события и его состояние.
	Update(ctx context.Context, e *domain.Event) error
}
