package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type RequestSvc interface {
	Create(ctx context.Context, requesterID, eventID string) (*domain.ParticipationRequest, error)
	Cancel(ctx context.Context, requesterID, requestID string) (*domain.ParticipationRequest, error)
	UpdateStatus(ctx context.Context, organizerID, eventID string, input domain.StatusUpdateInput) (*domain.StatusUpdateResult, error)
	ListForEvent(ctx context.Context, organizerID, eventID string) ([]*domain.ParticipationRequest, error)
	ListForUser(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error)
}

type EventSvc interface {
	CreateEvent(ctx context.Context, initiatorID string, input domain.CreateEventInput) (*domain.Event, error)
	ListByInitiator(ctx context.Context, initiatorID string, page domain.Page) ([]*domain.EventDetails, error)
	GetOwned(ctx context.Context, initiatorID, eventID string) (*domain.EventDetails, error)
	UpdateByInitiator(ctx context.Context, initiatorID, eventID string, input domain.UpdateEventInput) (*domain.EventDetails, error)
	AdminUpdateState(ctx context.Context, eventID string, action domain.StateAction) (*domain.Event, error)
	GetPublished(ctx context.Context, eventID, ip string) (*domain.EventDetails, error)
	ListPublished(ctx context.Context, page domain.Page) ([]*domain.EventDetails, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]*domain.User, error)
}

type Handler struct {
	requestService RequestSvc
	eventService   EventSvc
	userService    UserSvc
	statsService   StatsSvc
}

func NewHandler(requestService RequestSvc, eventService EventSvc, userService UserSvc, statsService StatsSvc) *Handler {
	return &Handler{
		requestService: requestService,
		eventService:   eventService,
		userService:    userService,
		statsService:   statsService,
	}
}

// Participation requests

func (h *Handler) CreateRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	eventID := c.Query("eventId")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	req, err := h.requestService.Create(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(req))
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	req, err := h.requestService.Cancel(c.Request.Context(), userID, requestID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(req))
}

func (h *Handler) GetUserRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) GetEventRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListForEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) UpdateRequestStatus(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status, err := domain.ParseRequestStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.requestService.UpdateStatus(c.Request.Context(), userID, eventID, domain.StatusUpdateInput{
		RequestIDs: req.RequestIDs,
		Status:     status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusUpdateResponse(res))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid eventDate format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		EventDate:         eventDate,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetUserEvents(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	page, ok := pageParams(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListByInitiator(c.Request.Context(), userID, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponses(events))
}

func (h *Handler) GetUserEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	details, err := h.eventService.GetOwned(c.Request.Context(), userID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) UpdateUserEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		ParticipantLimit:  req.ParticipantLimit,
		RequestModeration: req.RequestModeration,
	}

	if req.EventDate != nil {
		eventDate, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid eventDate format, expected RFC3339",
			})
			return
		}
		input.EventDate = &eventDate
	}

	if req.StateAction != nil {
		action, err := domain.ParseInitiatorStateAction(*req.StateAction)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input.StateAction = &action
	}

	details, err := h.eventService.UpdateByInitiator(c.Request.Context(), userID, eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) AdminUpdateEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.AdminUpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	action, err := domain.ParseStateAction(req.StateAction)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.AdminUpdateState(c.Request.Context(), eventID, action)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.eventService.GetPublished(c.Request.Context(), eventID, c.ClientIP())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListPublished(c.Request.Context(), page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponses(events))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	page, ok := pageParams(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

// pageParams читает from и size; по умолчанию первая страница из десяти записей.
func pageParams(c *ginext.Context) (domain.Page, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from"})
		return domain.Page{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid size"})
		return domain.Page{}, false
	}

	page, err := domain.NewPage(from, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.Page{}, false
	}
	return page, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
