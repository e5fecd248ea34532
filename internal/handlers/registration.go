package handlers

import (
	"context"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/auth"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/service"
)

type RegistrationHandler struct {
	svc         *service.Service
	authHandler *auth.AuthHandler
}

func NewRegistrationHandler(svc *service.Service, authHandler *auth.AuthHandler) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, authHandler: authHandler}
}

type ApplyRequest struct {
	auth.AuthInput
	EventID uint `path:"id"`
	Body    struct {
		Name   string `json:"name" doc:"Applicant name" required:"true"`
		Age    int    `json:"age" doc:"Applicant age" required:"true" minimum:"1" maximum:"120"`
		Gender string `json:"gender" enum:"male,female,other" required:"false"`
		Phone  string `json:"phone" doc:"Contact phone number" required:"true"`
	}
}

type ApplyResponse struct {
	Body struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
}

func (h *RegistrationHandler) HandleApply(ctx context.Context, input *ApplyRequest) (*ApplyResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	reg, err := h.svc.Apply(ctx, user, input.EventID, service.ApplicantInput{
		Name:   input.Body.Name,
		Age:    input.Body.Age,
		Gender: input.Body.Gender,
		Phone:  input.Body.Phone,
	})
	if err != nil {
		return nil, mapServiceError(err)
	}

	res := &ApplyResponse{}
	res.Body.Message = "Application submitted"
	res.Body.Status = reg.Status
	return res, nil
}

type RegistrationActionRequest struct {
	auth.AuthInput
	EventID     uint `path:"id"`
	VolunteerID uint `path:"volunteerID"`
}

func (h *RegistrationHandler) HandleApprove(ctx context.Context, input *RegistrationActionRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.ApproveRegistration(ctx, user, input.EventID, input.VolunteerID); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Registration approved"), nil
}

type RejectRequest struct {
	auth.AuthInput
	EventID     uint `path:"id"`
	VolunteerID uint `path:"volunteerID"`
	Body        struct {
		Reason string `json:"reason" doc:"Why the application was rejected"`
	}
}

func (h *RegistrationHandler) HandleReject(ctx context.Context, input *RejectRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.RejectRegistration(ctx, user, input.EventID, input.VolunteerID, input.Body.Reason); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Registration rejected"), nil
}

type WithdrawRequest struct {
	auth.AuthInput
	EventID uint `path:"id"`
	Body    struct {
		Reason string `json:"reason" doc:"Why you are withdrawing (at least 10 characters)" required:"true" minLength:"10"`
	}
}

func (h *RegistrationHandler) HandleWithdraw(ctx context.Context, input *WithdrawRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.CancelRegistration(ctx, user, input.EventID, input.Body.Reason); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Registration cancelled"), nil
}

func (h *RegistrationHandler) HandleRemove(ctx context.Context, input *RegistrationActionRequest) (*MessageResponse, error) {
	user, err := h.authHandler.CurrentUser(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if err := h.svc.RemoveRegistration(ctx, user, input.EventID, input.VolunteerID); err != nil {
		return nil, mapServiceError(err)
	}
	return message("Registration removed"), nil
}
