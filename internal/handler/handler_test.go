package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	hmocks "github.com/stpnv0/ExploreWithMe/internal/handler/mocks"
	"github.com/stpnv0/ExploreWithMe/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type services struct {
	requests *hmocks.MockRequestSvc
	events   *hmocks.MockEventSvc
	users    *hmocks.MockUserSvc
	stats    *hmocks.MockStatsSvc
}

func setupRouter(t *testing.T) (services, http.Handler) {
	t.Helper()
	s := services{
		requests: hmocks.NewMockRequestSvc(t),
		events:   hmocks.NewMockEventSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		stats:    hmocks.NewMockStatsSvc(t),
	}

	h := NewHandler(s.requests, s.events, s.users, s.stats)

	r := ginext.New("test")
	router.Register(r, h)

	return s, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func newRequest(eventID, userID string, status domain.RequestStatus) *domain.ParticipationRequest {
	return &domain.ParticipationRequest{
		ID:          uuid.New().String(),
		EventID:     eventID,
		RequesterID: userID,
		Status:      status,
		CreatedAt:   time.Now(),
	}
}

// --- Requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	s, r := setupRouter(t)

	userID, eventID := uuid.New().String(), uuid.New().String()
	s.requests.EXPECT().Create(mock.Anything, userID, eventID).
		Return(newRequest(eventID, userID, domain.RequestStatusPending), nil)

	w := doJSON(t, r, http.MethodPost, "/users/"+userID+"/requests?eventId="+eventID, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, eventID, resp.Event)
	assert.Equal(t, userID, resp.Requester)
}

func TestHandler_CreateRequest_MissingEventID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users/"+uuid.New().String()+"/requests", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRequest_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "duplicate", err: domain.ErrRequestExists, code: http.StatusConflict},
		{name: "initiator", err: domain.ErrInitiatorRequest, code: http.StatusConflict},
		{name: "unpublished", err: domain.ErrEventNotPublished, code: http.StatusConflict},
		{name: "limit", err: domain.ErrParticipantLimit, code: http.StatusConflict},
		{name: "no event", err: domain.ErrEventNotFound, code: http.StatusNotFound},
		{name: "no user", err: domain.ErrUserNotFound, code: http.StatusNotFound},
		{name: "internal", err: errors.New("db error"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, r := setupRouter(t)
			userID, eventID := uuid.New().String(), uuid.New().String()
			s.requests.EXPECT().Create(mock.Anything, userID, eventID).Return(nil, tt.err)

			w := doJSON(t, r, http.MethodPost, "/users/"+userID+"/requests?eventId="+eventID, nil)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CancelRequest_Success(t *testing.T) {
	s, r := setupRouter(t)

	userID, eventID := uuid.New().String(), uuid.New().String()
	req := newRequest(eventID, userID, domain.RequestStatusCanceled)
	s.requests.EXPECT().Cancel(mock.Anything, userID, req.ID).Return(req, nil)

	w := doJSON(t, r, http.MethodPatch, "/users/"+userID+"/requests/"+req.ID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELED", resp.Status)
}

func TestHandler_CancelRequest_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/users/"+uuid.New().String()+"/requests/bad/cancel", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserRequests_Success(t *testing.T) {
	s, r := setupRouter(t)

	userID := uuid.New().String()
	s.requests.EXPECT().ListForUser(mock.Anything, userID).Return([]*domain.ParticipationRequest{
		newRequest(uuid.New().String(), userID, domain.RequestStatusConfirmed),
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/users/"+userID+"/requests", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetEventRequests_NotOwner(t *testing.T) {
	s, r := setupRouter(t)

	userID, eventID := uuid.New().String(), uuid.New().String()
	s.requests.EXPECT().ListForEvent(mock.Anything, userID, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/users/"+userID+"/events/"+eventID+"/requests", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateRequestStatus_Success(t *testing.T) {
	s, r := setupRouter(t)

	userID, eventID := uuid.New().String(), uuid.New().String()
	a := newRequest(eventID, uuid.New().String(), domain.RequestStatusConfirmed)
	c := newRequest(eventID, uuid.New().String(), domain.RequestStatusRejected)

	s.requests.EXPECT().UpdateStatus(mock.Anything, userID, eventID, domain.StatusUpdateInput{
		RequestIDs: []string{a.ID},
		Status:     domain.RequestStatusConfirmed,
	}).Return(&domain.StatusUpdateResult{
		Confirmed: []*domain.ParticipationRequest{a},
		Rejected:  []*domain.ParticipationRequest{c},
	}, nil)

	w := doJSON(t, r, http.MethodPatch, "/users/"+userID+"/events/"+eventID+"/requests", dto.StatusUpdateRequest{
		RequestIDs: []string{a.ID},
		Status:     "CONFIRMED",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.ConfirmedRequests, 1)
	require.Len(t, resp.RejectedRequests, 1)
	assert.Equal(t, []string{a.ID}, resp.ConfirmedRequests[0].RequestIDs)
	assert.Equal(t, "REJECTED", resp.RejectedRequests[0].Status)
}

func TestHandler_UpdateRequestStatus_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch,
		"/users/"+uuid.New().String()+"/events/"+uuid.New().String()+"/requests",
		dto.StatusUpdateRequest{RequestIDs: []string{uuid.New().String()}, Status: "APPROVED"},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateRequestStatus_EmptyBatch(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch,
		"/users/"+uuid.New().String()+"/events/"+uuid.New().String()+"/requests",
		dto.StatusUpdateRequest{RequestIDs: []string{}, Status: "CONFIRMED"},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateRequestStatus_LimitConflict(t *testing.T) {
	s, r := setupRouter(t)

	userID, eventID := uuid.New().String(), uuid.New().String()
	s.requests.EXPECT().UpdateStatus(mock.Anything, userID, eventID, mock.Anything).
		Return(nil, domain.ErrParticipantLimit)

	w := doJSON(t, r, http.MethodPatch, "/users/"+userID+"/events/"+eventID+"/requests", dto.StatusUpdateRequest{
		RequestIDs: []string{uuid.New().String()},
		Status:     "CONFIRMED",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "participant limit")
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	s, r := setupRouter(t)

	userID := uuid.New().String()
	date := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	event := &domain.Event{
		ID:               uuid.New().String(),
		Title:            "Concert",
		EventDate:        date,
		ParticipantLimit: 10,
		State:            domain.EventStatePending,
		InitiatorID:      userID,
		CreatedAt:        time.Now(),
	}

	s.events.EXPECT().CreateEvent(mock.Anything, userID, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Title == "Concert" && in.EventDate.Equal(date) && in.RequestModeration == nil
	})).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/users/"+userID+"/events", dto.CreateEventRequest{
		Title:            "Concert",
		Annotation:       "Live music in the park all evening",
		Description:      "Bring a blanket, food trucks on site",
		EventDate:        date.Format(time.RFC3339),
		ParticipantLimit: 10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.State)
	assert.Nil(t, resp.PublishedOn)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"title":"X","annotation":"Y","description":"Z","eventDate":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/"+uuid.New().String()+"/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserEvents_Paged(t *testing.T) {
	s, r := setupRouter(t)

	userID := uuid.New().String()
	s.events.EXPECT().ListByInitiator(mock.Anything, userID, domain.Page{From: 5, Size: 2}).
		Return([]*domain.EventDetails{{Event: domain.Event{ID: "e6"}}}, nil)

	w := doJSON(t, r, http.MethodGet, "/users/"+userID+"/events?from=5&size=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserEvents_InvalidPage(t *testing.T) {
	_, r := setupRouter(t)

	userID := uuid.New().String()
	for _, query := range []string{"?from=-1", "?size=0", "?size=abc", "?from=x"} {
		w := doJSON(t, r, http.MethodGet, "/users/"+userID+"/events"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %s", query)
	}
}

func TestHandler_UpdateUserEvent_Success(t *testing.T) {
	s, r := setupRouter(t)

	userID, eventID := uuid.New().String(), uuid.New().String()
	date := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	s.events.EXPECT().UpdateByInitiator(mock.Anything, userID, eventID, mock.MatchedBy(func(in domain.UpdateEventInput) bool {
		return in.Title != nil && *in.Title == "Renamed concert" &&
			in.EventDate != nil && in.EventDate.Equal(date) &&
			in.StateAction != nil && *in.StateAction == domain.StateActionCancelReview &&
			in.Annotation == nil && in.ParticipantLimit == nil
	})).Return(&domain.EventDetails{
		Event: domain.Event{ID: eventID, Title: "Renamed concert", State: domain.EventStateCanceled, EventDate: date},
	}, nil)

	body := []byte(`{"title":"Renamed concert","eventDate":"` + date.Format(time.RFC3339) + `","stateAction":"CANCEL_REVIEW"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+userID+"/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELED", resp.State)
	assert.Equal(t, "Renamed concert", resp.Title)
}

func TestHandler_UpdateUserEvent_Published(t *testing.T) {
	s, r := setupRouter(t)

	userID, eventID := uuid.New().String(), uuid.New().String()
	s.events.EXPECT().UpdateByInitiator(mock.Anything, userID, eventID, mock.Anything).
		Return(nil, domain.ErrEventNotEditable)

	w := doJSON(t, r, http.MethodPatch, "/users/"+userID+"/events/"+eventID, map[string]any{"title": "Renamed concert"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateUserEvent_BadInput(t *testing.T) {
	_, r := setupRouter(t)

	path := "/users/" + uuid.New().String() + "/events/" + uuid.New().String()
	for _, body := range []map[string]any{
		{"stateAction": "PUBLISH_EVENT"},
		{"eventDate": "tomorrow"},
	} {
		w := doJSON(t, r, http.MethodPatch, path, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}
}

func TestHandler_AdminUpdateEvent_Publish(t *testing.T) {
	s, r := setupRouter(t)

	eventID := uuid.New().String()
	now := time.Now()
	s.events.EXPECT().AdminUpdateState(mock.Anything, eventID, domain.StateActionPublish).
		Return(&domain.Event{ID: eventID, State: domain.EventStatePublished, PublishedAt: &now}, nil)

	w := doJSON(t, r, http.MethodPatch, "/admin/events/"+eventID, dto.AdminUpdateEventRequest{StateAction: "PUBLISH_EVENT"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PUBLISHED", resp.State)
	assert.NotNil(t, resp.PublishedOn)
}

func TestHandler_AdminUpdateEvent_UnknownAction(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/admin/events/"+uuid.New().String(), dto.AdminUpdateEventRequest{StateAction: "ARCHIVE"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	s, r := setupRouter(t)

	eventID := uuid.New().String()
	s.events.EXPECT().GetPublished(mock.Anything, eventID, mock.AnythingOfType("string")).
		Return(&domain.EventDetails{
			Event:             domain.Event{ID: eventID, State: domain.EventStatePublished},
			ConfirmedRequests: 3,
			Views:             12,
		}, nil)

	w := doJSON(t, r, http.MethodGet, "/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.ConfirmedRequests)
	assert.Equal(t, 12, resp.Views)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	s, r := setupRouter(t)

	s.events.EXPECT().ListPublished(mock.Anything, domain.DefaultPage()).Return([]*domain.EventDetails{
		{Event: domain.Event{ID: "e1"}},
		{Event: domain.Event{ID: "e2"}},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	s, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Name: "Alice", Email: "alice@example.com"}
	s.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Name: "Alice", Email: "alice@example.com"}).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/admin/users", dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/admin/users", dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateUser_InvalidEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/users", dto.CreateUserRequest{Name: "Alice", Email: "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().List(mock.Anything, domain.Page{From: 0, Size: 2}).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/admin/users?size=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Stats ---

func TestHandler_SaveHit_Success(t *testing.T) {
	s, r := setupRouter(t)

	s.stats.EXPECT().Record(mock.MatchedBy(func(h domain.Hit) bool {
		return h.URI == "/events/1" && h.IP == "192.168.0.1" &&
			h.Timestamp.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	})).Return()

	w := doJSON(t, r, http.MethodPost, "/hit", dto.HitRequest{
		App:       "ewm-main-service",
		URI:       "/events/1",
		IP:        "192.168.0.1",
		Timestamp: "2026-03-01 10:00:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_SaveHit_InvalidIP(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/hit", dto.HitRequest{App: "ewm", URI: "/events/1", IP: "localhost"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStats_Success(t *testing.T) {
	s, r := setupRouter(t)

	s.stats.EXPECT().ViewStats(mock.Anything, mock.MatchedBy(func(p domain.ViewStatsParams) bool {
		return p.Unique && len(p.URIs) == 2 && p.Start.Year() == 2026
	})).Return([]domain.ViewStats{{App: "ewm", URI: "/events/1", Hits: 5}}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/stats?start=2026-01-01%2000:00:00&end=2026-12-31%2023:59:59&uris=/events/1&uris=/events/2&unique=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ViewStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 5, resp[0].Hits)
}

func TestHandler_GetStats_MissingStart(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/stats?end=2026-12-31%2023:59:59", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
