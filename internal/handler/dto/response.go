package dto

import (
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type RequestResponse struct {
	ID        string `json:"id"`
	Created   string `json:"created"`
	Event     string `json:"event"`
	Requester string `json:"requester"`
	Status    string `json:"status"`
}

type StatusUpdateEntry struct {
	RequestIDs []string `json:"requestIds"`
	Status     string   `json:"status"`
}

type StatusUpdateResponse struct {
	ConfirmedRequests []StatusUpdateEntry `json:"confirmedRequests"`
	RejectedRequests  []StatusUpdateEntry `json:"rejectedRequests"`
}

type EventResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Annotation        string  `json:"annotation"`
	Description       string  `json:"description"`
	EventDate         string  `json:"eventDate"`
	ParticipantLimit  int     `json:"participantLimit"`
	RequestModeration bool    `json:"requestModeration"`
	State             string  `json:"state"`
	Initiator         string  `json:"initiator"`
	CreatedOn         string  `json:"createdOn"`
	PublishedOn       *string `json:"publishedOn,omitempty"`
	ConfirmedRequests int     `json:"confirmedRequests"`
	Views             int     `json:"views"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ViewStatsResponse struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int    `json:"hits"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRequestResponse(r *domain.ParticipationRequest) RequestResponse {
	return RequestResponse{
		ID:        r.ID,
		Created:   r.CreatedAt.Format(time.RFC3339),
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
	}
}

func ToRequestResponses(rs []*domain.ParticipationRequest) []RequestResponse {
	resp := make([]RequestResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ToRequestResponse(r))
	}
	return resp
}

func ToStatusUpdateResponse(res *domain.StatusUpdateResult) StatusUpdateResponse {
	return StatusUpdateResponse{
		ConfirmedRequests: toStatusEntries(res.Confirmed),
		RejectedRequests:  toStatusEntries(res.Rejected),
	}
}

func toStatusEntries(rs []*domain.ParticipationRequest) []StatusUpdateEntry {
	entries := make([]StatusUpdateEntry, 0, len(rs))
	for _, r := range rs {
		entries = append(entries, StatusUpdateEntry{
			RequestIDs: []string{r.ID},
			Status:     string(r.Status),
		})
	}
	return entries
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		Description:       e.Description,
		EventDate:         e.EventDate.Format(time.RFC3339),
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		State:             string(e.State),
		Initiator:         e.InitiatorID,
		CreatedOn:         e.CreatedAt.Format(time.RFC3339),
	}
	if e.PublishedAt != nil {
		published := e.PublishedAt.Format(time.RFC3339)
		resp.PublishedOn = &published
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventResponse {
	resp := ToEventResponse(&d.Event)
	resp.ConfirmedRequests = d.ConfirmedRequests
	resp.Views = d.Views
	return resp
}

func ToEventDetailsResponses(ds []*domain.EventDetails) []EventResponse {
	resp := make([]EventResponse, 0, len(ds))
	for _, d := range ds {
		resp = append(resp, ToEventDetailsResponse(d))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func ToViewStatsResponse(v domain.ViewStats) ViewStatsResponse {
	return ViewStatsResponse{
		App:  v.App,
		URI:  v.URI,
		Hits: v.Hits,
	}
}
