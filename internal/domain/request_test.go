package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "CONFIRMED", "REJECTED", "CANCELED"} {
		st, err := ParseRequestStatus(s)
		require.NoError(t, err)
		assert.Equal(t, RequestStatus(s), st)
	}

	for _, s := range []string{"", "confirmed", "CANCELLED", "APPROVED"} {
		_, err := ParseRequestStatus(s)
		assert.ErrorIs(t, err, ErrValidation, "status %q", s)
	}
}

func TestRequestStatus_Predicates(t *testing.T) {
	tests := []struct {
		status     RequestStatus
		active     bool
		moderation bool
	}{
		{RequestStatusPending, true, false},
		{RequestStatusConfirmed, true, true},
		{RequestStatusRejected, false, true},
		{RequestStatusCanceled, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.active, tt.status.IsActive(), tt.status)
		assert.Equal(t, tt.active, tt.status.Cancelable(), tt.status)
		assert.Equal(t, tt.moderation, tt.status.IsModerationTarget(), tt.status)
	}
}

func TestEvent_InitialRequestStatus(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		moderation bool
		want       RequestStatus
	}{
		{"unlimited moderated", 0, true, RequestStatusConfirmed},
		{"unlimited open", 0, false, RequestStatusConfirmed},
		{"limited open", 10, false, RequestStatusConfirmed},
		{"limited moderated", 10, true, RequestStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{ParticipantLimit: tt.limit, RequestModeration: tt.moderation}
			assert.Equal(t, tt.want, e.InitialRequestStatus())
			assert.Equal(t, tt.want == RequestStatusPending, e.RequiresModeration())
		})
	}
}

func TestParseStateAction(t *testing.T) {
	a, err := ParseStateAction("PUBLISH_EVENT")
	require.NoError(t, err)
	assert.Equal(t, StateActionPublish, a)

	_, err = ParseStateAction("SEND_TO_REVIEW")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrParticipantLimit, ErrConflict)
	assert.ErrorIs(t, ErrRequestNotPending, ErrConflict)
	assert.ErrorIs(t, ErrRequestNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrInvalidStatus, ErrValidation)
	assert.NotErrorIs(t, ErrEventNotFound, ErrConflict)
}
