package handlers

import (
	"context"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/auth"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/service"
)

type RatingHandler struct {
	svc         *service.Service
	authHandler *auth.AuthHandler
}

func NewRatingHandler(svc *service.Service, authHandler *auth.AuthHandler) *RatingHandler {
	return &RatingHandler{svc: svc, authHandler: authHandler}
}

type RateVolunteerRequest struct {
	auth.AuthInput
	EventID     uint `path:"id"`
	VolunteerID uint `path:"volunteerID"`
	Body        struct {
		Rating int `json:"rating" doc:"1-5 stars" required:"true" minimum:"1" maximum:"5"`
	}
}

func (h *RatingHandler) HandleRateVolunteer(ctx context.Context, input *RateVolunteerRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.RateVolunteer(ctx, user, input.EventID, input.VolunteerID, input.Body.Rating); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Rating stored"), nil
}

type SubmitFeedbackRequest struct {
	auth.AuthInput
	EventID uint `path:"id"`
	Body    struct {
		Rating   int    `json:"rating" doc:"1-5 stars" required:"true" minimum:"1" maximum:"5"`
		Feedback string `json:"feedback" doc:"Free-text feedback for the organizer"`
	}
}

func (h *RatingHandler) HandleSubmitFeedback(ctx context.Context, input *SubmitFeedbackRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.SubmitFeedback(ctx, user, input.EventID, input.Body.Rating, input.Body.Feedback); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Feedback submitted"), nil
}
