package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	minLeadTime     = 2 * time.Hour
	minPublishAhead = time.Hour
)

type EventService struct {
	repo        ports.EventRepo
	requestRepo ports.RequestRepo
	userRepo    ports.UserRepo
	tx          ports.Transactor
	views       ports.ViewCounter
	hits        ports.HitRecorder
	app         string
	logger      logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	requestRepo ports.RequestRepo,
	userRepo ports.UserRepo,
	tx ports.Transactor,
	views ports.ViewCounter,
	hits ports.HitRecorder,
	app string,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:        repo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		tx:          tx,
		views:       views,
		hits:        hits,
		app:         app,
		logger:      logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, initiatorID string, input domain.CreateEventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	moderation := true
	if input.RequestModeration != nil {
		moderation = *input.RequestModeration
	}

	event := &domain.Event{
		ID:                uuid.New().String(),
		Title:             input.Title,
		Annotation:        input.Annotation,
		Description:       input.Description,
		EventDate:         input.EventDate.UTC(),
		ParticipantLimit:  input.ParticipantLimit,
		RequestModeration: moderation,
		State:             domain.EventStatePending,
		InitiatorID:       initiatorID,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("initiator_id", initiatorID),
	)

	return event, nil
}

func validateEventInput(input domain.CreateEventInput) error {
	if err := checkLength("title", input.Title, 3, 120); err != nil {
		return err
	}
	if err := checkLength("annotation", input.Annotation, 20, 2000); err != nil {
		return err
	}
	if err := checkLength("description", input.Description, 20, 7000); err != nil {
		return err
	}
	if err := checkLimit(input.ParticipantLimit); err != nil {
		return err
	}
	return checkEventDate(input.EventDate)
}

func validateUpdateInput(input domain.UpdateEventInput) error {
	if input.Title != nil {
		if err := checkLength("title", *input.Title, 3, 120); err != nil {
			return err
		}
	}
	if input.Annotation != nil {
		if err := checkLength("annotation", *input.Annotation, 20, 2000); err != nil {
			return err
		}
	}
	if input.Description != nil {
		if err := checkLength("description", *input.Description, 20, 7000); err != nil {
			return err
		}
	}
	if input.ParticipantLimit != nil {
		if err := checkLimit(*input.ParticipantLimit); err != nil {
			return err
		}
	}
	if input.EventDate != nil {
		if err := checkEventDate(*input.EventDate); err != nil {
			return err
		}
	}
	if input.StateAction != nil {
		if _, err := domain.ParseInitiatorStateAction(string(*input.StateAction)); err != nil {
			return err
		}
	}
	return nil
}

func checkLength(field, value string, lo, hi int) error {
	if n := utf8.RuneCountInString(value); n < lo || n > hi {
		return fmt.Errorf("%w: %s must be %d..%d characters", domain.ErrValidation, field, lo, hi)
	}
	return nil
}

func checkLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: participant_limit must not be negative", domain.ErrValidation)
	}
	return nil
}

func checkEventDate(date time.Time) error {
	if date.Before(time.Now().Add(minLeadTime)) {
		return fmt.Errorf("%w: event_date must be at least two hours from now", domain.ErrValidation)
	}
	return nil
}

// UpdateByInitiator меняет поля неопубликованного события и переводит его
// на модерацию или снимает с неё.
func (s *EventService) UpdateByInitiator(
	ctx context.Context,
	initiatorID, eventID string,
	input domain.UpdateEventInput,
) (*domain.EventDetails, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.repo.LockOwnedBy(ctx, eventID, initiatorID)
		if err != nil {
			return err
		}
		if !event.Editable() {
			return domain.ErrEventNotEditable
		}

		applyUpdate(event, input)

		if err = s.repo.Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event updated by initiator",
		logger.String("event_id", event.ID),
		logger.String("initiator_id", initiatorID),
		logger.String("state", string(event.State)),
	)

	details, err := s.withCounters(ctx, []*domain.Event{event})
	if err != nil {
		return nil, err
	}

	return details[0], nil
}

func applyUpdate(event *domain.Event, input domain.UpdateEventInput) {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Annotation != nil {
		event.Annotation = *input.Annotation
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventDate != nil {
		event.EventDate = input.EventDate.UTC()
	}
	if input.ParticipantLimit != nil {
		event.ParticipantLimit = *input.ParticipantLimit
	}
	if input.RequestModeration != nil {
		event.RequestModeration = *input.RequestModeration
	}
	if input.StateAction != nil {
		switch *input.StateAction {
		case domain.StateActionSendToReview:
			event.State = domain.EventStatePending
		case domain.StateActionCancelReview:
			event.State = domain.EventStateCanceled
		}
	}
}

func (s *EventService) ListByInitiator(ctx context.Context, initiatorID string, page domain.Page) ([]*domain.EventDetails, error) {
	if _, err := s.userRepo.GetByID(ctx, initiatorID); err != nil {
		return nil, fmt.Errorf("check initiator: %w", err)
	}

	events, err := s.repo.ListByInitiator(ctx, initiatorID, page)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return s.withCounters(ctx, events)
}

func (s *EventService) GetOwned(ctx context.Context, initiatorID, eventID string) (*domain.EventDetails, error) {
	event, err := s.repo.GetOwnedBy(ctx, eventID, initiatorID)
	if err != nil {
		return nil, err
	}

	details, err := s.withCounters(ctx, []*domain.Event{event})
	if err != nil {
		return nil, err
	}

	return details[0], nil
}

// AdminUpdateState публикует или отклоняет событие под блокировкой его строки.
func (s *EventService) AdminUpdateState(ctx context.Context, eventID string, action domain.StateAction) (*domain.Event, error) {
	var event *domain.Event
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.repo.LockByID(ctx, eventID)
		if err != nil {
			return err
		}

		if err = applyAdminAction(event, action); err != nil {
			return err
		}

		if err = s.repo.UpdateState(ctx, event); err != nil {
			return fmt.Errorf("update event state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("event state changed",
		logger.String("event_id", event.ID),
		logger.String("state", string(event.State)),
	)

	return event, nil
}

func applyAdminAction(event *domain.Event, action domain.StateAction) error {
	switch action {
	case domain.StateActionPublish:
		if event.State != domain.EventStatePending {
			return domain.ErrEventNotPending
		}
		now := time.Now().UTC()
		if event.EventDate.Before(now.Add(minPublishAhead)) {
			return fmt.Errorf("%w: must start at least one hour after publication", domain.ErrEventTooSoon)
		}
		event.State = domain.EventStatePublished
		event.PublishedAt = &now
	case domain.StateActionReject:
		if event.State == domain.EventStatePublished {
			return domain.ErrEventAlreadyPublished
		}
		event.State = domain.EventStateCanceled
	default:
		return fmt.Errorf("%w: unknown state action %q", domain.ErrValidation, action)
	}
	return nil
}

// GetPublished возвращает опубликованное событие и учитывает просмотр.
func (s *EventService) GetPublished(ctx context.Context, eventID, ip string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.State != domain.EventStatePublished {
		return nil, domain.ErrEventNotFound
	}

	s.hits.Record(domain.Hit{
		App:       s.app,
		URI:       EventURI(eventID),
		IP:        ip,
		Timestamp: time.Now().UTC(),
	})

	details, err := s.withCounters(ctx, []*domain.Event{event})
	if err != nil {
		return nil, err
	}

	return details[0], nil
}

func (s *EventService) ListPublished(ctx context.Context, page domain.Page) ([]*domain.EventDetails, error) {
	events, err := s.repo.ListPublished(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return s.withCounters(ctx, events)
}

func (s *EventService) withCounters(ctx context.Context, events []*domain.Event) ([]*domain.EventDetails, error) {
	res := make([]*domain.EventDetails, 0, len(events))
	if len(events) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(events))
	uris := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
		uris = append(uris, EventURI(e.ID))
	}

	confirmed, err := s.requestRepo.CountConfirmedByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	views, err := s.views.UniqueViews(ctx, uris)
	if err != nil {
		return nil, fmt.Errorf("count views: %w", err)
	}

	for _, e := range events {
		res = append(res, &domain.EventDetails{
			Event:             *e,
			ConfirmedRequests: confirmed[e.ID],
			Views:             views[EventURI(e.ID)],
		})
	}

	return res, nil
}

func EventURI(eventID string) string {
	return "/events/" + eventID
}
