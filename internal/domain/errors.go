package domain

import (
	"errors"
	"fmt"
)

// Корневые виды ошибок; обработчик сопоставляет их с HTTP-статусами.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
)

var (
	ErrEventNotFound   = fmt.Errorf("event %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrRequestNotFound = fmt.Errorf("request %w", ErrNotFound)
)

var (
	ErrRequestExists         = fmt.Errorf("%w: participation request already exists", ErrConflict)
	ErrInitiatorRequest      = fmt.Errorf("%w: initiator cannot request participation in own event", ErrConflict)
	ErrEventNotPublished     = fmt.Errorf("%w: cannot participate in unpublished event", ErrConflict)
	ErrParticipantLimit      = fmt.Errorf("%w: participant limit reached", ErrConflict)
	ErrRequestNotCancelable  = fmt.Errorf("%w: only pending or confirmed requests can be cancelled", ErrConflict)
	ErrModerationNotRequired = fmt.Errorf("%w: event does not require request moderation", ErrConflict)
	ErrRequestNotPending     = fmt.Errorf("%w: request must have status PENDING", ErrConflict)
	ErrEventNotPending       = fmt.Errorf("%w: event must be in PENDING state", ErrConflict)
	ErrEventAlreadyPublished = fmt.Errorf("%w: published event cannot be rejected", ErrConflict)
	ErrEventTooSoon          = fmt.Errorf("%w: event date is too close", ErrConflict)
	ErrEventNotEditable      = fmt.Errorf("%w: only pending or canceled events can be changed", ErrConflict)
	ErrEmailTaken            = fmt.Errorf("%w: email is already taken", ErrConflict)
)

var (
	ErrInvalidStatus        = fmt.Errorf("%w: status must be CONFIRMED or REJECTED", ErrValidation)
	ErrRequestEventMismatch = fmt.Errorf("%w: request does not belong to event", ErrValidation)
)
