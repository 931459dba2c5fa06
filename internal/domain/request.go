package domain

import (
	"fmt"
	"time"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

// ActiveStatuses блокируют повторную заявку того же пользователя на то же событие.
var ActiveStatuses = []RequestStatus{RequestStatusPending, RequestStatusConfirmed}

// ParseRequestStatus принимает только известные имена статусов.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case RequestStatusPending, RequestStatusConfirmed, RequestStatusRejected, RequestStatusCanceled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown request status %q", ErrValidation, s)
	}
}

func (s RequestStatus) IsActive() bool {
	return s == RequestStatusPending || s == RequestStatusConfirmed
}

// Cancelable: отменить можно только ожидающую или подтверждённую заявку.
func (s RequestStatus) Cancelable() bool {
	return s.IsActive()
}

// IsModerationTarget сообщает, может ли организатор перевести заявку в этот статус.
func (s RequestStatus) IsModerationTarget() bool {
	return s == RequestStatusConfirmed || s == RequestStatusRejected
}

type ParticipationRequest struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	RequesterID string        `json:"requester_id"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

type StatusUpdateInput struct {
	RequestIDs []string
	Status     RequestStatus
}

type StatusUpdateResult struct {
	Confirmed []*ParticipationRequest
	Rejected  []*ParticipationRequest
}
