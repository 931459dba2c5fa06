package dto

type CreateEventRequest struct {
	Title             string `json:"title" binding:"required"`
	Annotation        string `json:"annotation" binding:"required"`
	Description       string `json:"description" binding:"required"`
	EventDate         string `json:"eventDate" binding:"required"`
	ParticipantLimit  int    `json:"participantLimit" binding:"gte=0"`
	RequestModeration *bool  `json:"requestModeration"`
}

// UpdateEventRequest: отсутствующее поле не меняется.
type UpdateEventRequest struct {
	Title             *string `json:"title"`
	Annotation        *string `json:"annotation"`
	Description       *string `json:"description"`
	EventDate         *string `json:"eventDate"`
	ParticipantLimit  *int    `json:"participantLimit"`
	RequestModeration *bool   `json:"requestModeration"`
	StateAction       *string `json:"stateAction"`
}

type AdminUpdateEventRequest struct {
	StateAction string `json:"stateAction" binding:"required"`
}

type StatusUpdateRequest struct {
	RequestIDs []string `json:"requestIds" binding:"required,min=1,dive,uuid"`
	Status     string   `json:"status" binding:"required"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,max=250"`
	Email string `json:"email" binding:"required,email,max=254"`
}

type HitRequest struct {
	App       string `json:"app" binding:"required"`
	URI       string `json:"uri" binding:"required"`
	IP        string `json:"ip" binding:"required,ip"`
	Timestamp string `json:"timestamp"`
}
