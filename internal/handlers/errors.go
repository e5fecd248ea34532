package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/service"
)

// mapServiceError translates typed service failures into huma errors. The
// error kind travels in the details so clients can branch on it without
// parsing messages.
func mapServiceError(err error) error {
	var serr *service.Error
	if errors.As(err, &serr) {
		detail := &huma.ErrorDetail{Location: "kind", Message: string(serr.Kind)}
		switch serr.Kind {
		case service.KindNotFound:
			return huma.Error404NotFound(serr.Message, detail)
		case service.KindForbidden:
			return huma.Error403Forbidden(serr.Message, detail)
		case service.KindValidation:
			return huma.Error422UnprocessableEntity(serr.Message, detail)
		default:
			// Conflict, InvalidState, CapacityExceeded, AlreadyFinalized,
			// AlreadySubmitted: the request is well-formed but clashes with
			// the current state.
			return huma.Error409Conflict(serr.Message, detail)
		}
	}

	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}
	return huma.Error500InternalServerError("Unexpected error: " + err.Error())
}
