package domain

import (
	"fmt"
	"time"
)

type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

type StateAction string

const (
	StateActionPublish StateAction = "PUBLISH_EVENT"
	StateActionReject  StateAction = "REJECT_EVENT"

	StateActionSendToReview StateAction = "SEND_TO_REVIEW"
	StateActionCancelReview StateAction = "CANCEL_REVIEW"
)

// ParseStateAction разбирает действие администратора.
func ParseStateAction(s string) (StateAction, error) {
	switch a := StateAction(s); a {
	case StateActionPublish, StateActionReject:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown state action %q", ErrValidation, s)
	}
}

// ParseInitiatorStateAction разбирает действие организатора над своим событием.
func ParseInitiatorStateAction(s string) (StateAction, error) {
	switch a := StateAction(s); a {
	case StateActionSendToReview, StateActionCancelReview:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown state action %q", ErrValidation, s)
	}
}

type Event struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Annotation        string     `json:"annotation"`
	Description       string     `json:"description"`
	EventDate         time.Time  `json:"event_date"`
	ParticipantLimit  int        `json:"participant_limit"`
	RequestModeration bool       `json:"request_moderation"`
	State             EventState `json:"state"`
	InitiatorID       string     `json:"initiator_id"`
	CreatedAt         time.Time  `json:"created_at"`
	PublishedAt       *time.Time `json:"published_at"`
}

// Editable: организатор меняет событие, пока оно не опубликовано.
func (e *Event) Editable() bool {
	return e.State == EventStatePending || e.State == EventStateCanceled
}

// RequiresModeration: заявки ждут решения организатора только при ограниченном
// числе мест и включённой модерации.
func (e *Event) RequiresModeration() bool {
	return e.ParticipantLimit > 0 && e.RequestModeration
}

// InitialRequestStatus определяет статус новой заявки на событие.
func (e *Event) InitialRequestStatus() RequestStatus {
	if e.RequiresModeration() {
		return RequestStatusPending
	}
	return RequestStatusConfirmed
}

type EventDetails struct {
	Event             Event `json:"event"`
	ConfirmedRequests int   `json:"confirmed_requests"`
	Views             int   `json:"views"`
}

type CreateEventInput struct {
	Title             string
	Annotation        string
	Description       string
	EventDate         time.Time
	ParticipantLimit  int
	RequestModeration *bool
}

// UpdateEventInput: nil-поле остаётся без изменений.
type UpdateEventInput struct {
	Title             *string
	Annotation        *string
	Description       *string
	EventDate         *time.Time
	ParticipantLimit  *int
	RequestModeration *bool
	StateAction       *StateAction
}
