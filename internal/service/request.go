package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RequestService struct {
	requestRepo ports.RequestRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	tx          ports.Transactor
	logger      logger.Logger
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	tx ports.Transactor,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (s *RequestService) Create(ctx context.Context, requesterID, eventID string) (*domain.ParticipationRequest, error) {
	var req *domain.ParticipationRequest

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
			return fmt.Errorf("check requester: %w", err)
		}

		// блокировка события сериализует проверку мест и вставку
		event, err := s.eventRepo.LockByID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("lock event: %w", err)
		}

		exists, err := s.requestRepo.ExistsActive(ctx, requesterID, eventID)
		if err != nil {
			return fmt.Errorf("check existing request: %w", err)
		}
		if exists {
			return domain.ErrRequestExists
		}

		if event.InitiatorID == requesterID {
			return domain.ErrInitiatorRequest
		}

		if event.State != domain.EventStatePublished {
			return domain.ErrEventNotPublished
		}

		if event.ParticipantLimit > 0 {
			confirmed, err := s.requestRepo.CountByEventAndStatus(ctx, eventID, domain.RequestStatusConfirmed)
			if err != nil {
				return fmt.Errorf("count confirmed: %w", err)
			}
			if confirmed >= event.ParticipantLimit {
				return domain.ErrParticipantLimit
			}
		}

		req = &domain.ParticipationRequest{
			ID:          uuid.New().String(),
			EventID:     eventID,
			RequesterID: requesterID,
			Status:      event.InitialRequestStatus(),
			CreatedAt:   time.Now().UTC(),
		}

		if err = s.requestRepo.Create(ctx, req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("participation request created",
		logger.String("request_id", req.ID),
		logger.String("event_id", eventID),
		logger.String("requester_id", requesterID),
		logger.String("status", string(req.Status)),
	)

	return req, nil
}

func (s *RequestService) Cancel(ctx context.Context, requesterID, requestID string) (*domain.ParticipationRequest, error) {
	var req *domain.ParticipationRequest

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
			return fmt.Errorf("check requester: %w", err)
		}

		found, err := s.requestRepo.GetByIDAndRequester(ctx, requestID, requesterID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		if _, err = s.eventRepo.LockByID(ctx, found.EventID); err != nil {
			return fmt.Errorf("lock event: %w", err)
		}

		// статус мог измениться до того, как мы получили блокировку
		req, err = s.requestRepo.GetByIDAndRequester(ctx, requestID, requesterID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		if !req.Status.Cancelable() {
			return domain.ErrRequestNotCancelable
		}

		if err = s.requestRepo.UpdateStatus(ctx, []string{req.ID}, domain.RequestStatusCanceled); err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}
		req.Status = domain.RequestStatusCanceled

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("participation request cancelled",
		logger.String("request_id", req.ID),
		logger.String("event_id", req.EventID),
		logger.String("requester_id", requesterID),
	)

	return req, nil
}

// UpdateStatus применяет решение организатора ко всей пачке заявок или не
// меняет ничего. Если подтверждение заполняет лимит, оставшиеся ожидающие
// заявки события отклоняются в той же транзакции.
func (s *RequestService) UpdateStatus(
	ctx context.Context,
	organizerID, eventID string,
	input domain.StatusUpdateInput,
) (*domain.StatusUpdateResult, error) {
	ids := uniqueIDs(input.RequestIDs)
	result := &domain.StatusUpdateResult{
		Confirmed: []*domain.ParticipationRequest{},
		Rejected:  []*domain.ParticipationRequest{},
	}
	autoRejected := 0

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.GetByID(ctx, organizerID); err != nil {
			return fmt.Errorf("check organizer: %w", err)
		}

		event, err := s.eventRepo.LockOwnedBy(ctx, eventID, organizerID)
		if err != nil {
			return fmt.Errorf("lock event: %w", err)
		}

		if !input.Status.IsModerationTarget() {
			return domain.ErrInvalidStatus
		}

		if !event.RequiresModeration() {
			return domain.ErrModerationNotRequired
		}

		if len(ids) == 0 {
			return fmt.Errorf("%w: request ids are required", domain.ErrValidation)
		}

		requests, err := s.requestRepo.ListByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("list requests: %w", err)
		}
		if err = checkBatch(ids, requests, eventID); err != nil {
			return err
		}

		confirmed := 0
		if input.Status == domain.RequestStatusConfirmed {
			confirmed, err = s.requestRepo.CountByEventAndStatus(ctx, eventID, domain.RequestStatusConfirmed)
			if err != nil {
				return fmt.Errorf("count confirmed: %w", err)
			}
			if confirmed+len(requests) > event.ParticipantLimit {
				return domain.ErrParticipantLimit
			}
		}

		if err = s.requestRepo.UpdateStatus(ctx, ids, input.Status); err != nil {
			return fmt.Errorf("update requests: %w", err)
		}

		for _, r := range requests {
			r.Status = input.Status
		}
		if input.Status == domain.RequestStatusConfirmed {
			result.Confirmed = append(result.Confirmed, requests...)
		} else {
			result.Rejected = append(result.Rejected, requests...)
		}

		if input.Status != domain.RequestStatusConfirmed || confirmed+len(requests) < event.ParticipantLimit {
			return nil
		}

		rejected, err := s.rejectRemaining(ctx, eventID, ids)
		if err != nil {
			return err
		}
		autoRejected = len(rejected)
		result.Rejected = append(result.Rejected, rejected...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("participation requests moderated",
		logger.String("event_id", eventID),
		logger.String("organizer_id", organizerID),
		logger.String("status", string(input.Status)),
		logger.Int("confirmed", len(result.Confirmed)),
		logger.Int("rejected", len(result.Rejected)),
		logger.Int("auto_rejected", autoRejected),
	)

	return result, nil
}

// rejectRemaining отклоняет ожидающие заявки события, не вошедшие в пачку.
func (s *RequestService) rejectRemaining(ctx context.Context, eventID string, batch []string) ([]*domain.ParticipationRequest, error) {
	pending, err := s.requestRepo.ListByEventAndStatus(ctx, eventID, domain.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	inBatch := make(map[string]struct{}, len(batch))
	for _, id := range batch {
		inBatch[id] = struct{}{}
	}

	rejected := make([]*domain.ParticipationRequest, 0, len(pending))
	ids := make([]string, 0, len(pending))
	for _, r := range pending {
		if _, ok := inBatch[r.ID]; ok {
			continue
		}
		r.Status = domain.RequestStatusRejected
		rejected = append(rejected, r)
		ids = append(ids, r.ID)
	}

	if len(ids) == 0 {
		return rejected, nil
	}

	if err = s.requestRepo.UpdateStatus(ctx, ids, domain.RequestStatusRejected); err != nil {
		return nil, fmt.Errorf("auto-reject pending: %w", err)
	}

	return rejected, nil
}

func (s *RequestService) ListForEvent(ctx context.Context, organizerID, eventID string) ([]*domain.ParticipationRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, organizerID); err != nil {
		return nil, fmt.Errorf("check organizer: %w", err)
	}

	if _, err := s.eventRepo.GetOwnedBy(ctx, eventID, organizerID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return s.requestRepo.ListByEvent(ctx, eventID)
}

func (s *RequestService) ListForUser(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	return s.requestRepo.ListByRequester(ctx, requesterID)
}

func checkBatch(ids []string, requests []*domain.ParticipationRequest, eventID string) error {
	found := make(map[string]*domain.ParticipationRequest, len(requests))
	for _, r := range requests {
		found[r.ID] = r
	}

	for _, id := range ids {
		r, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrRequestNotFound, id)
		}
		if r.EventID != eventID {
			return fmt.Errorf("%w: request %s, event %s", domain.ErrRequestEventMismatch, id, eventID)
		}
		if r.Status != domain.RequestStatusPending {
			return fmt.Errorf("%w: request %s is %s", domain.ErrRequestNotPending, id, r.Status)
		}
	}

	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
