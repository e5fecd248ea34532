package handlers

import (
	"context"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/auth"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/service"
)

type EventHandler struct {
	svc         *service.Service
	authHandler *auth.AuthHandler
}

func NewEventHandler(svc *service.Service, authHandler *auth.AuthHandler) *EventHandler {
	return &EventHandler{svc: svc, authHandler: authHandler}
}

type EventResponse struct {
	ID                  uint      `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Location            string    `json:"location"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	OrganizerID         uint      `json:"organizer_id"`
	MaxVolunteers       int       `json:"max_volunteers"`
	Status              string    `json:"status"`
	Approved            bool      `json:"approved"`
	AttendanceLocked    bool      `json:"attendance_locked"`
	TotalVolunteerHours float64   `json:"total_volunteer_hours"`
	TotalRegistrations  int       `json:"total_registrations"`

	ApprovedVolunteerIDs []uint                `json:"approved_volunteer_ids,omitempty"`
	Registrations        []models.Registration `json:"registrations,omitempty"`
}

func toEventResponse(event *models.Event, includeLedger bool) EventResponse {
	resp := EventResponse{
		ID:                  event.ID,
		Title:               event.Title,
		Description:         event.Description,
		Location:            event.Location,
		StartTime:           event.StartTime,
		EndTime:             event.EndTime,
		OrganizerID:         event.OrganizerID,
		MaxVolunteers:       event.MaxVolunteers,
		Status:              event.Status,
		Approved:            event.Approved,
		AttendanceLocked:    event.AttendanceLocked,
		TotalVolunteerHours: event.TotalVolunteerHours,
		TotalRegistrations:  event.TotalRegistrations,
	}
	if includeLedger {
		resp.ApprovedVolunteerIDs = event.ApprovedVolunteerIDs()
		resp.Registrations = event.Registrations
	}
	return resp
}

type CreateEventRequest struct {
	auth.AuthInput
	Body struct {
		Title         string    `json:"title" doc:"Event title" required:"true"`
		Description   string    `json:"description" doc:"What volunteers will be doing"`
		Location      string    `json:"location"`
		StartTime     time.Time `json:"start_time" required:"true"`
		EndTime       time.Time `json:"end_time" required:"true"`
		MaxVolunteers int       `json:"max_volunteers" doc:"Volunteer capacity" required:"true" minimum:"1"`
	}
}

type CreateEventResponse struct {
	Body EventResponse
}

func (h *EventHandler) HandleCreateEvent(ctx context.Context, input *CreateEventRequest) (*CreateEventResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	event, err := h.svc.CreateEvent(ctx, user, service.CreateEventInput{
		Title:         input.Body.Title,
		Description:   input.Body.Description,
		Location:      input.Body.Location,
		StartTime:     input.Body.StartTime,
		EndTime:       input.Body.EndTime,
		MaxVolunteers: input.Body.MaxVolunteers,
	})
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &CreateEventResponse{Body: toEventResponse(event, false)}, nil
}

type ListEventsRequest struct {
	auth.AuthInput
	Mine bool `query:"mine" doc:"List the caller's own events instead of open ones"`
}

type ListEventsResponse struct {
	Body []EventResponse
}

func (h *EventHandler) HandleListEvents(ctx context.Context, input *ListEventsRequest) (*ListEventsResponse, error) {
	var (
		events []models.Event
		err    error
	)
	if input.Mine {
		user, uerr := h.authHandler.CurrentUser(ctx, input.AuthInput)
		if uerr != nil {
			return nil, uerr
		}
		events, err = h.svc.ListOwnEvents(ctx, user)
	} else {
		events, err = h.svc.ListOpenEvents(ctx)
	}
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := &ListEventsResponse{Body: make([]EventResponse, 0, len(events))}
	for i := range events {
		resp.Body = append(resp.Body, toEventResponse(&events[i], false))
	}
	return resp, nil
}

type GetEventRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type GetEventResponse struct {
	Body EventResponse
}

func (h *EventHandler) HandleGetEvent(ctx context.Context, input *GetEventRequest) (*GetEventResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	event, err := h.svc.GetEvent(ctx, user, input.ID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	includeLedger := user.IsAdmin() || event.OrganizerID == user.ID
	return &GetEventResponse{Body: toEventResponse(event, includeLedger)}, nil
}

type EventActionRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func message(msg string) *MessageResponse {
	res := &MessageResponse{}
	res.Body.Message = msg
	return res
}

func (h *EventHandler) HandleApproveEvent(ctx context.Context, input *EventActionRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.ApproveEvent(ctx, user, input.ID); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Event approved"), nil
}

func (h *EventHandler) HandleCompleteEvent(ctx context.Context, input *EventActionRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.CompleteEvent(ctx, user, input.ID); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Event marked as completed"), nil
}

func (h *EventHandler) HandleCancelEvent(ctx context.Context, input *EventActionRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.CancelEvent(ctx, user, input.ID); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Event cancelled"), nil
}

func (h *EventHandler) HandleDeleteEvent(ctx context.Context, input *EventActionRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteEvent(ctx, user, input.ID); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Event deleted"), nil
}
