package handlers

import (
	"context"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/auth"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/service"
)

type AttendanceHandler struct {
	svc         *service.Service
	authHandler *auth.AuthHandler
}

func NewAttendanceHandler(svc *service.Service, authHandler *auth.AuthHandler) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, authHandler: authHandler}
}

type MarkAttendanceRequest struct {
	auth.AuthInput
	EventID     uint `path:"id"`
	VolunteerID uint `path:"volunteerID"`
	Body        struct {
		Present      bool   `json:"present"`
		WorkDuration string `json:"work_duration" doc:"Hours worked, free text, e.g. \"3 hours\". Required when present."`
	}
}

func (h *AttendanceHandler) HandleMarkAttendance(ctx context.Context, input *MarkAttendanceRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.MarkAttendance(ctx, user, input.EventID, input.VolunteerID, input.Body.Present, input.Body.WorkDuration); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Attendance recorded"), nil
}

type FinalizeRequest struct {
	auth.AuthInput
	EventID uint `path:"id"`
}

type FinalizeResponse struct {
	Body service.FinalizeResult
}

func (h *AttendanceHandler) HandleFinalize(ctx context.Context, input *FinalizeRequest) (*FinalizeResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	result, err := h.svc.Finalize(ctx, user, input.EventID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &FinalizeResponse{Body: *result}, nil
}
