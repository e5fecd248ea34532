package handlers

import (
	"context"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/auth"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/service"
)

type VolunteerHandler struct {
	svc         *service.Service
	authHandler *auth.AuthHandler
}

func NewVolunteerHandler(svc *service.Service, authHandler *auth.AuthHandler) *VolunteerHandler {
	return &VolunteerHandler{svc: svc, authHandler: authHandler}
}

type ListOwnRegistrationsResponse struct {
	Body []models.Registration
}

func (h *VolunteerHandler) HandleListOwnRegistrations(ctx context.Context, input *auth.AuthInput) (*ListOwnRegistrationsResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, *input)
	if err != nil {
		return nil, err
	}
	regs, err := h.svc.ListOwnRegistrations(ctx, user)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &ListOwnRegistrationsResponse{Body: regs}, nil
}

type StatsResponse struct {
	Body struct {
		VolunteerID     uint    `json:"volunteer_id"`
		TotalHours      float64 `json:"total_hours"`
		ImpactScore     float64 `json:"impact_score"`
		CompletedEvents int     `json:"completed_events"`
	}
}

func (h *VolunteerHandler) HandleStats(ctx context.Context, input *auth.AuthInput) (*StatsResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, *input)
	if err != nil {
		return nil, err
	}
	vs, err := h.svc.VolunteerStats(ctx, user.ID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	res := &StatsResponse{}
	res.Body.VolunteerID = vs.VolunteerID
	res.Body.TotalHours = vs.TotalHours
	res.Body.ImpactScore = vs.ImpactScore
	res.Body.CompletedEvents = vs.CompletedEvents
	return res, nil
}

type CertificatesResponse struct {
	Body []models.Certificate
}

func (h *VolunteerHandler) HandleCertificates(ctx context.Context, input *auth.AuthInput) (*CertificatesResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, *input)
	if err != nil {
		return nil, err
	}
	certs, err := h.svc.VolunteerCertificates(ctx, user.ID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return &CertificatesResponse{Body: certs}, nil
}
